// Package store holds the shared mutable state behind the todo server: the
// record collection and the page counter.
//
// Both types guard their state with a single mutex held only for the span of
// one operation. Callers receive copies, so rendering never touches the lock.
package store

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors returned by Store operations.
var (
	ErrConflict = errors.New("store: record id already exists")
	ErrNotFound = errors.New("store: record not found")
)

// IsConflict reports whether err is a duplicate-id failure.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsNotFound reports whether err addressed a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// Record is a single todo item. Two records are the same entity iff their IDs
// match.
type Record struct {
	ID   uint64 `msgpack:"id"`
	Text string `msgpack:"text"`
}

// Store is an in-memory, insertion-ordered record collection.
type Store struct {
	mu      sync.Mutex
	records []Record
}

// New creates a store, creating each seed record in order.
func New(seed ...Record) (*Store, error) {
	s := &Store{}
	for _, r := range seed {
		if err := s.Create(r); err != nil {
			return nil, fmt.Errorf("seed: %w", err)
		}
	}
	return s, nil
}

// List returns a snapshot of all records in insertion order.
func (s *Store) List() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Create appends r unless a record with the same ID exists.
func (s *Store) Create(r Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(r.ID) >= 0 {
		return fmt.Errorf("%w: id %d", ErrConflict, r.ID)
	}
	s.records = append(s.records, r)
	return nil
}

// Delete removes the record with the given ID.
func (s *Store) Delete(id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	s.records = append(s.records[:i], s.records[i+1:]...)
	return nil
}

// Update replaces the record addressed by id with r, keeping its position.
//
// r.ID may differ from id. If it names another existing record the update
// fails with ErrConflict, since two records would then share an ID.
func (s *Store) Update(id uint64, r Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	if r.ID != id && s.indexOf(r.ID) >= 0 {
		return fmt.Errorf("%w: id %d", ErrConflict, r.ID)
	}
	s.records[i] = r
	return nil
}

// indexOf returns the position of id or -1. Caller must hold mu.
func (s *Store) indexOf(id uint64) int {
	for i := range s.records {
		if s.records[i].ID == id {
			return i
		}
	}
	return -1
}
