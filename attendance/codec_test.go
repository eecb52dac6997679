package attendance

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerialize_Empty(t *testing.T) {
	assert.Equal(t, "{}", NewStore().Serialize())
}

func TestSerialize_KeepsInsertionOrder(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.AddSubject("Zoology", 20))
	require.NoError(t, s.AddSubject("Algebra", 30))
	require.NoError(t, s.SetMissed("Algebra", 3))

	assert.Equal(t, `{"Zoology":{"total":20,"missed":0},"Algebra":{"total":30,"missed":3}}`, s.Serialize())
}

func TestLoadFromSerialized_RoundTrip(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.AddSubject("Math", 30))
	require.NoError(t, s.AddSubject("Data Structures & Algorithms", 42))
	require.NoError(t, s.AddSubject(`Quote "this"`, 3))
	require.NoError(t, s.AddSubject("Économie", 25))
	require.NoError(t, s.SetMissed("Math", 6))
	require.NoError(t, s.SetMissed(`Quote "this"`, 3))

	loaded := NewStore()
	require.NoError(t, loaded.LoadFromSerialized(s.Serialize()))

	assert.Equal(t, s.Subjects(), loaded.Subjects())
	assert.Equal(t, s.Serialize(), loaded.Serialize())
}

func TestLoadFromSerialized_ReplacesContent(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.AddSubject("Old", 10))

	require.NoError(t, s.LoadFromSerialized(`{"Math": {"total": 30, "missed": 2}}`))

	_, ok := s.Get("Old")
	assert.False(t, ok)
	rec, ok := s.Get("Math")
	require.True(t, ok)
	assert.Equal(t, Record{Total: 30, Missed: 2}, rec)
}

func TestLoadFromSerialized_TrustsValues(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.LoadFromSerialized(`{"Odd":{"total":0,"missed":5},"Partial":{"total":9},"Extra":{"total":2,"missed":1,"note":"x"}}`))

	rec, _ := s.Get("Odd")
	assert.Equal(t, Record{Total: 0, Missed: 5}, rec)
	assert.Equal(t, 0.0, rec.Percent())

	rec, _ = s.Get("Partial")
	assert.Equal(t, Record{Total: 9}, rec)

	rec, _ = s.Get("Extra")
	assert.Equal(t, Record{Total: 2, Missed: 1}, rec)
}

func TestLoadFromSerialized_DuplicateKeys(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.LoadFromSerialized(`{"A":{"total":1,"missed":0},"B":{"total":2,"missed":0},"A":{"total":5,"missed":1}}`))

	assert.Equal(t, `{"A":{"total":5,"missed":1},"B":{"total":2,"missed":0}}`, s.Serialize())
}

func TestLoadFromSerialized_DecodeError(t *testing.T) {
	inputs := []string{
		"not json",
		"",
		"null",
		"[]",
		`"text"`,
		`{"a":1}`,
		`{"a":null}`,
		`{"a":{"total":"x"}}`,
		`{"a":{"total":1.5}}`,
		`{"a":{"total":1}`,
		`{"a":{"total":1}} trailing`,
		`{}{}`,
	}
	for _, raw := range inputs {
		t.Run(raw, func(t *testing.T) {
			s := NewStore()
			require.NoError(t, s.AddSubject("Math", 30))

			err := s.LoadFromSerialized(raw)

			var decodeErr *DecodeError
			require.True(t, errors.As(err, &decodeErr), "got %v", err)
			assert.Equal(t, raw, decodeErr.Raw)
			assert.Equal(t, 0, s.Len())
			assert.Equal(t, EmptySerialized, s.Serialize())
		})
	}
}
