package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveOperation(t *testing.T) {
	ok := testutil.ToFloat64(storeOperations.WithLabelValues(OpAdd, "ok"))
	failed := testutil.ToFloat64(storeOperations.WithLabelValues(OpAdd, "error"))

	ObserveOperation(OpAdd, nil)
	ObserveOperation(OpAdd, nil)
	ObserveOperation(OpAdd, errors.New("duplicate"))

	assert.Equal(t, ok+2, testutil.ToFloat64(storeOperations.WithLabelValues(OpAdd, "ok")))
	assert.Equal(t, failed+1, testutil.ToFloat64(storeOperations.WithLabelValues(OpAdd, "error")))
}

func TestObserveDecodeError(t *testing.T) {
	before := testutil.ToFloat64(decodeErrors.WithLabelValues(SourceQuery))
	ObserveDecodeError(SourceQuery)
	assert.Equal(t, before+1, testutil.ToFloat64(decodeErrors.WithLabelValues(SourceQuery)))
}
