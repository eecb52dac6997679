package attendance

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// QueryParam is the URL query parameter that carries a serialized store.
const QueryParam = "subjects"

// EmptySerialized is the encoding of a store without subjects.
const EmptySerialized = "{}"

// Serialize encodes the store as a compact JSON object keyed by subject name,
// in insertion order: {"Math":{"total":30,"missed":6}}.
func (s *Store) Serialize() string {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range s.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		// strings and a struct of two ints always marshal
		key, _ := json.Marshal(name)
		val, _ := json.Marshal(s.subjects[name])
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.String()
}

// LoadFromSerialized replaces the content of the store with the subjects
// encoded in raw. Counts are taken as-is. On failure the store is left empty
// and a *DecodeError is returned.
func (s *Store) LoadFromSerialized(raw string) error {
	s.ClearAll()

	order, subjects, err := decode(raw)
	if err != nil {
		return &DecodeError{Raw: raw, Err: err}
	}
	s.order = order
	s.subjects = subjects
	return nil
}

func decode(raw string) ([]string, map[string]Record, error) {
	dec := json.NewDecoder(strings.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, nil, errors.Wrap(err, "reading object")
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, nil, errors.Errorf("expected a JSON object, got %v", tok)
	}

	var order []string
	subjects := make(map[string]Record)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, errors.Wrap(err, "reading subject name")
		}
		name, ok := tok.(string)
		if !ok {
			return nil, nil, errors.Errorf("expected a subject name, got %v", tok)
		}

		var rec *Record
		if err := dec.Decode(&rec); err != nil {
			return nil, nil, errors.Wrapf(err, "subject %q", name)
		}
		if rec == nil {
			return nil, nil, errors.Errorf("subject %q: expected an object, got null", name)
		}

		// duplicate keys keep their first position and their last value
		if _, seen := subjects[name]; !seen {
			order = append(order, name)
		}
		subjects[name] = *rec
	}

	if _, err := dec.Token(); err != nil {
		return nil, nil, errors.Wrap(err, "closing object")
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, nil, errors.New("unexpected data after object")
	}
	return order, subjects, nil
}
