// Package store implements the CSV-backed entity stores. Each store
// owns one flat file plus an in-memory cache of the whole collection;
// every mutation re-serializes the full collection and overwrites the
// file. A per-store mutex serializes writers within this process, but
// clients of the raw overwrite endpoints can still clobber each other
// (last write wins) — that hazard is documented, not solved here.
package store

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/niceliubing/real-estate/internal/csvio"
)

// ErrNotFound is returned when an update targets an id that is not in
// the collection.
var ErrNotFound = errors.New("record not found")

// NextID allocates the next id for a collection: the maximum of all
// integer-parseable ids plus one, as a string. Non-numeric ids are
// ignored; an empty collection starts at "1". Two concurrent callers
// that both read before either saves can compute the same id — callers
// must hold the store lock for allocate-and-save to be safe.
func NextID(ids []string) string {
	max := 0
	for _, id := range ids {
		n, err := strconv.Atoi(id)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return strconv.Itoa(max + 1)
}

// Codec describes how one entity type maps to and from CSV rows.
type Codec[T any] struct {
	Header  []string
	ToRow   func(T) map[string]string
	FromRow func(map[string]string) T
	ID      func(T) string
	SetID   func(*T, string)
	// Touch stamps timestamps: created is true for appends.
	Touch func(*T, time.Time, bool)
}

// Store is a CSV-file-backed collection of T with a write-through
// in-memory cache.
type Store[T any] struct {
	path  string
	codec Codec[T]
	seed  func() []T

	mu     sync.Mutex
	cache  []T
	loaded bool
}

// New creates a store over the CSV file at path. seed supplies the
// default dataset persisted when the file is missing, empty, or fails
// to decode; it may be nil for collections that seed empty.
func New[T any](path string, codec Codec[T], seed func() []T) *Store[T] {
	if seed == nil {
		seed = func() []T { return []T{} }
	}
	return &Store[T]{path: path, codec: codec, seed: seed}
}

// Path returns the backing file path.
func (s *Store[T]) Path() string {
	return s.path
}

// Load reads the backing file, decodes it, populates the cache and
// returns a snapshot. Missing or empty files and decode failures all
// fall back to the seed dataset, which is persisted immediately so
// subsequent loads are stable.
func (s *Store[T]) Load() ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoadedLocked(); err != nil {
		return nil, err
	}
	return s.snapshotLocked(), nil
}

// Save replaces the whole collection: cache and file.
func (s *Store[T]) Save(records []T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = append([]T(nil), records...)
	s.loaded = true
	return s.writeLocked()
}

// Append assigns the next id (unless the record already carries one,
// as contact messages do), stamps timestamps, adds the record and
// persists the full collection.
func (s *Store[T]) Append(record T) (T, error) {
	var zero T
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoadedLocked(); err != nil {
		return zero, err
	}
	if s.codec.ID(record) == "" {
		s.codec.SetID(&record, NextID(s.idsLocked()))
	}
	if s.codec.Touch != nil {
		s.codec.Touch(&record, time.Now().UTC(), true)
	}
	s.cache = append(s.cache, record)
	if err := s.writeLocked(); err != nil {
		// Roll back the in-memory append so the cache matches disk.
		s.cache = s.cache[:len(s.cache)-1]
		return zero, err
	}
	return s.cloneLocked(record), nil
}

// Update replaces the record with the matching id, refreshes its
// updatedAt and persists the full collection. Returns ErrNotFound and
// leaves the store unchanged when the id is absent.
func (s *Store[T]) Update(record T) (T, error) {
	var zero T
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoadedLocked(); err != nil {
		return zero, err
	}
	id := s.codec.ID(record)
	for i := range s.cache {
		if s.codec.ID(s.cache[i]) != id {
			continue
		}
		if s.codec.Touch != nil {
			s.codec.Touch(&record, time.Now().UTC(), false)
		}
		previous := s.cache[i]
		s.cache[i] = record
		if err := s.writeLocked(); err != nil {
			s.cache[i] = previous
			return zero, err
		}
		return s.cloneLocked(record), nil
	}
	return zero, fmt.Errorf("id %q: %w", id, ErrNotFound)
}

// FindByID returns the cached record with the given id, loading first
// if needed.
func (s *Store[T]) FindByID(id string) (T, error) {
	var zero T
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoadedLocked(); err != nil {
		return zero, err
	}
	for _, record := range s.cache {
		if s.codec.ID(record) == id {
			return s.cloneLocked(record), nil
		}
	}
	return zero, fmt.Errorf("id %q: %w", id, ErrNotFound)
}

// RawCSV returns the backing file verbatim. A missing file yields just
// the header row so clients can always decode the response.
func (s *Store[T]) RawCSV() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return strings.Join(s.codec.Header, ",") + "\n", nil
		}
		return "", fmt.Errorf("failed to read %s: %w", s.path, err)
	}
	return string(data), nil
}

// ReplaceRaw overwrites the backing file byte-for-byte with the given
// body and invalidates the cache. No structural validation happens
// here; a malformed body surfaces as a seed-data fallback on the next
// Load.
func (s *Store[T]) ReplaceRaw(body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.writeFileLocked([]byte(body)); err != nil {
		return err
	}
	s.cache = nil
	s.loaded = false
	return nil
}

// Invalidate drops the cache so the next read re-decodes the file.
func (s *Store[T]) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = nil
	s.loaded = false
}

func (s *Store[T]) ensureLoadedLocked() error {
	if s.loaded {
		return nil
	}
	data, err := os.ReadFile(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	if err == nil && strings.TrimSpace(string(data)) != "" {
		rows, decodeErr := csvio.Decode(string(data))
		if decodeErr == nil && len(rows) > 0 {
			records := make([]T, 0, len(rows))
			for _, row := range rows {
				records = append(records, s.codec.FromRow(row))
			}
			s.cache = records
			s.loaded = true
			return nil
		}
		if decodeErr != nil {
			// Best-effort policy: a file that cannot be parsed is
			// treated the same as an empty one.
			log.Printf("Store %s: decode failed (%v), falling back to defaults", s.path, decodeErr)
		}
	}

	s.cache = s.seed()
	s.loaded = true
	if err := s.writeLocked(); err != nil {
		return fmt.Errorf("failed to persist seed data: %w", err)
	}
	return nil
}

func (s *Store[T]) writeLocked() error {
	rows := make([]map[string]string, 0, len(s.cache))
	for _, record := range s.cache {
		rows = append(rows, s.codec.ToRow(record))
	}
	text, err := csvio.Encode(s.codec.Header, rows)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", s.path, err)
	}
	return s.writeFileLocked([]byte(text))
}

func (s *Store[T]) writeFileLocked(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	return nil
}

// cloneLocked copies one record so it shares no memory with the
// cache. A plain struct copy is not enough: list-valued fields
// (images, features) would still alias the cached record's backing
// arrays. Round-tripping through the codec yields the same record a
// fresh decode of the file would.
func (s *Store[T]) cloneLocked(record T) T {
	return s.codec.FromRow(s.codec.ToRow(record))
}

// snapshotLocked returns a copy of the cache that shares no memory
// with it.
func (s *Store[T]) snapshotLocked() []T {
	out := make([]T, len(s.cache))
	for i, record := range s.cache {
		out[i] = s.cloneLocked(record)
	}
	return out
}

func (s *Store[T]) idsLocked() []string {
	ids := make([]string, 0, len(s.cache))
	for _, record := range s.cache {
		ids = append(ids, s.codec.ID(record))
	}
	return ids
}
