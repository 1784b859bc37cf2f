package snapshot

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"sparklean/internal/adapter/persistence/recordid"
	"sparklean/internal/domain/entities"
	"sparklean/internal/usecase/interfaces"
)

// NotificationLog persists the SMS delivery log in its own snapshot file,
// newest first, with the same lazy-load and persist-then-commit behavior as
// the estimate store. Append-mostly and small; corrupt or missing files start
// empty (the log is best-effort telemetry, not lead data).

type NotificationLog struct {
	path string

	loadOnce sync.Once
	mu       sync.RWMutex
	entries  []entities.Notification
}

var _ interfaces.INotificationRepository = (*NotificationLog)(nil)

func NewNotificationLog(path string) *NotificationLog {
	return &NotificationLog{path: path}
}

func (l *NotificationLog) load() {
	l.mu.Lock()
	defer l.mu.Unlock()

	data, ok := readSnapshotFile(l.path)
	if !ok {
		l.entries = []entities.Notification{}
		return
	}

	var entries []entities.Notification
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Printf("[store][notifications] corrupt snapshot %s, starting empty: %v", l.path, err)
		quarantineSnapshot(l.path)
		l.entries = []entities.Notification{}
		return
	}
	l.entries = entries
}

// Append assigns id and timestamp, prepends the entry and persists.
func (l *NotificationLog) Append(_ context.Context, n entities.Notification) (entities.Notification, error) {
	l.loadOnce.Do(l.load)
	l.mu.Lock()
	defer l.mu.Unlock()

	id, err := recordid.New()
	if err != nil {
		return entities.Notification{}, err
	}
	n.ID = id
	n.CreatedAt = time.Now().UTC()

	next := make([]entities.Notification, 0, len(l.entries)+1)
	next = append(next, n)
	next = append(next, l.entries...)

	data, err := json.MarshalIndent(next, "", "  ")
	if err != nil {
		return entities.Notification{}, &PersistenceError{Path: l.path, Err: err}
	}
	if err := writeSnapshotFile(l.path, data); err != nil {
		return entities.Notification{}, err
	}
	l.entries = next
	return n, nil
}

// List returns a copy of the delivery log, newest first.
func (l *NotificationLog) List(_ context.Context) ([]entities.Notification, error) {
	l.loadOnce.Do(l.load)
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]entities.Notification, len(l.entries))
	copy(out, l.entries)
	return out, nil
}
