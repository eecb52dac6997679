// Package attendance keeps the per-session mapping of subjects to attendance
// records and its query-parameter encoding.
package attendance

import "strings"

// Store maps subject names to records and remembers insertion order.
// A Store belongs to a single request and is not safe for concurrent use.
type Store struct {
	subjects map[string]Record
	order    []string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{subjects: make(map[string]Record)}
}

// AddSubject inserts name with the given total and no missed classes.
// The name is trimmed first.
func (s *Store) AddSubject(name string, total int) error {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return &InvalidSubjectError{Reason: ErrBlankName}
	case total < 1:
		return &InvalidSubjectError{Name: name, Reason: ErrInvalidTotal}
	}
	if _, ok := s.subjects[name]; ok {
		return &InvalidSubjectError{Name: name, Reason: ErrDuplicateSubject}
	}

	s.subjects[name] = Record{Total: total}
	s.order = append(s.order, name)
	return nil
}

// SetMissed updates the missed count of name. Values outside [0, total] are
// rejected with a RangeError; callers that want clamping use Clamp first.
func (s *Store) SetMissed(name string, missed int) error {
	key, rec, ok := s.lookup(name)
	if !ok {
		return &InvalidSubjectError{Name: key, Reason: ErrUnknownSubject}
	}
	if missed < 0 || missed > rec.Total {
		return &RangeError{Name: key, Missed: missed, Total: rec.Total}
	}

	rec.Missed = missed
	s.subjects[key] = rec
	return nil
}

// ClearAll removes every subject.
func (s *Store) ClearAll() {
	s.subjects = make(map[string]Record)
	s.order = nil
}

// Get returns the record of name.
func (s *Store) Get(name string) (Record, bool) {
	_, rec, ok := s.lookup(name)
	return rec, ok
}

// lookup finds name as given, then trimmed. Decoded keys are kept verbatim,
// so a key with surrounding spaces only matches exactly.
func (s *Store) lookup(name string) (string, Record, bool) {
	if rec, ok := s.subjects[name]; ok {
		return name, rec, true
	}
	key := strings.TrimSpace(name)
	rec, ok := s.subjects[key]
	return key, rec, ok
}

// Len returns the number of subjects.
func (s *Store) Len() int {
	return len(s.order)
}

// Subjects returns the subjects in insertion order.
func (s *Store) Subjects() []Subject {
	subjects := make([]Subject, 0, len(s.order))
	for _, name := range s.order {
		subjects = append(subjects, Subject{Name: name, Record: s.subjects[name]})
	}
	return subjects
}

// Clamp limits missed to [0, total] of name, never going below 0. Unknown
// subjects return missed unchanged.
func (s *Store) Clamp(name string, missed int) int {
	rec, ok := s.Get(name)
	if !ok {
		return missed
	}
	if missed > rec.Total {
		missed = rec.Total
	}
	if missed < 0 {
		missed = 0
	}
	return missed
}
