package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"sparklean/internal/adapter/persistence/recordid"
	"sparklean/internal/domain/entities"
	"sparklean/internal/usecase/interfaces"
)

const maxIDAttempts = 5

var errIDExhausted = errors.New("could not generate a unique record id")

// Store persists estimate requests as a single JSON snapshot file: an ordered
// array, head = most recent, re-read in full on first use and re-written in
// full on every mutation. Fine for a low-volume lead inbox; the whole-file
// rewrite is the known scalability limit of this backend.
//
// Consistency policy (persist-then-commit): every mutation builds the next
// collection state, persists it, and only commits it to memory after the write
// succeeded. A failed persist leaves memory and disk exactly as they were and
// surfaces a *PersistenceError.
//
// One Store instance must own the file within a process. Two processes
// pointing at the same path can lose updates to each other; deployments that
// need that use the DynamoDB or SQLite backend instead.

type Store struct {
	path string

	loadOnce sync.Once
	mu       sync.RWMutex
	records  []entities.EstimateRequest
	unread   int
}

var _ interfaces.IEstimateRequestRepository = (*Store)(nil)

func New(path string) *Store {
	return &Store{path: path}
}

// load runs at most once per Store. Missing or unreadable files start empty;
// a present-but-corrupt snapshot is quarantined first so it stays recoverable.
func (s *Store) load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := readSnapshotFile(s.path)
	if !ok {
		s.records = []entities.EstimateRequest{}
		return
	}

	var records []entities.EstimateRequest
	if err := json.Unmarshal(data, &records); err != nil {
		log.Printf("[store][snapshot] corrupt snapshot %s, starting empty: %v", s.path, err)
		quarantineSnapshot(s.path)
		s.records = []entities.EstimateRequest{}
		return
	}

	s.records = records
	s.unread = 0
	for _, r := range records {
		if r.IsNew {
			s.unread++
		}
	}
}

// persist serializes next and writes it atomically. Callers hold the write
// lock and commit to memory only after a nil return.
func (s *Store) persist(next []entities.EstimateRequest) error {
	data, err := json.MarshalIndent(next, "", "  ")
	if err != nil {
		return &PersistenceError{Path: s.path, Err: err}
	}
	return writeSnapshotFile(s.path, data)
}

// Create assigns id, creation time and the unread flag, inserts the record at
// the head of the collection and persists. The generated id is checked against
// the live set and regenerated on collision.
func (s *Store) Create(_ context.Context, e entities.EstimateRequest) (entities.EstimateRequest, error) {
	s.loadOnce.Do(s.load)
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.uniqueIDLocked()
	if err != nil {
		return entities.EstimateRequest{}, err
	}

	e.ID = id
	e.CreatedAt = time.Now().UTC()
	e.IsNew = true

	next := make([]entities.EstimateRequest, 0, len(s.records)+1)
	next = append(next, e)
	next = append(next, s.records...)

	if err := s.persist(next); err != nil {
		return entities.EstimateRequest{}, err
	}
	s.records = next
	s.unread++
	return e, nil
}

func (s *Store) uniqueIDLocked() (string, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id, err := recordid.New()
		if err != nil {
			return "", err
		}
		if s.indexOfLocked(id) == -1 {
			return id, nil
		}
		log.Printf("[store][snapshot] record id collision on %s, retrying", id)
	}
	return "", errIDExhausted
}

func (s *Store) indexOfLocked(id string) int {
	for i := range s.records {
		if s.records[i].ID == id {
			return i
		}
	}
	return -1
}

// List returns a copy of the collection in stored order, most recent first.
func (s *Store) List(_ context.Context) ([]entities.EstimateRequest, error) {
	s.loadOnce.Do(s.load)
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entities.EstimateRequest, len(s.records))
	copy(out, s.records)
	return out, nil
}

// MarkAsRead flips the unread flag on the matching record. Unknown ids return
// (false, nil); marking an already-read record is a successful no-op that
// skips the disk write.
func (s *Store) MarkAsRead(_ context.Context, id string) (bool, error) {
	s.loadOnce.Do(s.load)
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOfLocked(id)
	if i == -1 {
		return false, nil
	}
	if !s.records[i].IsNew {
		return true, nil
	}

	next := make([]entities.EstimateRequest, len(s.records))
	copy(next, s.records)
	next[i].IsNew = false

	if err := s.persist(next); err != nil {
		return false, err
	}
	s.records = next
	s.unread--
	return true, nil
}

// MarkAllAsRead clears the unread flag on every record, persisting once. A
// collection with nothing unread is left untouched.
func (s *Store) MarkAllAsRead(_ context.Context) error {
	s.loadOnce.Do(s.load)
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.unread == 0 {
		return nil
	}

	next := make([]entities.EstimateRequest, len(s.records))
	copy(next, s.records)
	for i := range next {
		next[i].IsNew = false
	}

	if err := s.persist(next); err != nil {
		return err
	}
	s.records = next
	s.unread = 0
	return nil
}

// Delete removes the matching record permanently. Unknown ids return
// (false, nil) without touching the snapshot.
func (s *Store) Delete(_ context.Context, id string) (bool, error) {
	s.loadOnce.Do(s.load)
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOfLocked(id)
	if i == -1 {
		return false, nil
	}
	removed := s.records[i]

	next := make([]entities.EstimateRequest, 0, len(s.records)-1)
	next = append(next, s.records[:i]...)
	next = append(next, s.records[i+1:]...)

	if err := s.persist(next); err != nil {
		return false, err
	}
	s.records = next
	if removed.IsNew {
		s.unread--
	}
	return true, nil
}

// UnreadCount returns the cached count of records still flagged new.
func (s *Store) UnreadCount(_ context.Context) (int, error) {
	s.loadOnce.Do(s.load)
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unread, nil
}
