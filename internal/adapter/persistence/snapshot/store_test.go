package snapshot

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"sparklean/internal/domain/entities"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "estimates.json")
	return New(path), path
}

func sampleRequest(name string) entities.EstimateRequest {
	phone := "+15551234567"
	quote := entities.QuoteBreakdown{Base: 150, Bathrooms: 1, BathroomLine: 20, Total: 170}
	return entities.EstimateRequest{
		FullName:         name,
		Phone:            &phone,
		Address:          "12 Main St, Brooklyn",
		Rooms:            2,
		Bathrooms:        1,
		ServiceType:      entities.ServiceTypeRegular,
		ServiceTypeLabel: entities.ServiceTypeRegular.Label(),
		Quote:            &quote,
	}
}

func TestStoreCreate(t *testing.T) {
	ctx := context.Background()
	s, path := newTestStore(t)

	created, err := s.Create(ctx, sampleRequest("Ana"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if created.CreatedAt.IsZero() {
		t.Fatalf("expected assigned creation time")
	}
	if !created.IsNew {
		t.Fatalf("expected record to start unread")
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected snapshot file after create: %v", err)
	}

	list, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 1 || list[0].ID != created.ID {
		t.Fatalf("unexpected list: %+v", list)
	}
}

func TestStoreIDUniqueness(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	seen := map[string]bool{}
	for i := 0; i < 25; i++ {
		created, err := s.Create(ctx, sampleRequest(fmt.Sprintf("Customer %d", i)))
		if err != nil {
			t.Fatalf("create %d failed: %v", i, err)
		}
		if seen[created.ID] {
			t.Fatalf("duplicate id %s", created.ID)
		}
		seen[created.ID] = true
	}
}

func TestStoreOrdering(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	first, err := s.Create(ctx, sampleRequest("First"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	second, err := s.Create(ctx, sampleRequest("Second"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	list, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 records, got %d", len(list))
	}
	if list[0].ID != second.ID || list[1].ID != first.ID {
		t.Fatalf("expected most-recent-first ordering, got [%s %s]", list[0].ID, list[1].ID)
	}
}

func TestStoreMarkAsRead(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	created, err := s.Create(ctx, sampleRequest("Ana"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	t.Run("unknown id", func(t *testing.T) {
		found, err := s.MarkAsRead(ctx, "missing")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found {
			t.Fatalf("expected not found")
		}
	})

	t.Run("transitions to read", func(t *testing.T) {
		found, err := s.MarkAsRead(ctx, created.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !found {
			t.Fatalf("expected found")
		}
		list, _ := s.List(ctx)
		if list[0].IsNew {
			t.Fatalf("expected record to be read")
		}
		count, _ := s.UnreadCount(ctx)
		if count != 0 {
			t.Fatalf("expected unread count 0, got %d", count)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		found, err := s.MarkAsRead(ctx, created.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !found {
			t.Fatalf("expected repeated mark-read to succeed")
		}
		list, _ := s.List(ctx)
		if list[0].IsNew {
			t.Fatalf("read state must never revert")
		}
	})
}

func TestStoreMarkAllAsRead(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	for i := 0; i < 3; i++ {
		if _, err := s.Create(ctx, sampleRequest(fmt.Sprintf("Customer %d", i))); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	if err := s.MarkAllAsRead(ctx); err != nil {
		t.Fatalf("mark all failed: %v", err)
	}
	count, _ := s.UnreadCount(ctx)
	if count != 0 {
		t.Fatalf("expected unread count 0, got %d", count)
	}
	list, _ := s.List(ctx)
	for _, e := range list {
		if e.IsNew {
			t.Fatalf("expected every record read, %s is not", e.ID)
		}
	}

	// Nothing unread: must be a no-op, not an error.
	if err := s.MarkAllAsRead(ctx); err != nil {
		t.Fatalf("repeated mark all failed: %v", err)
	}
}

func TestStoreDelete(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	keep, err := s.Create(ctx, sampleRequest("Keep"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	drop, err := s.Create(ctx, sampleRequest("Drop"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	t.Run("removes record", func(t *testing.T) {
		found, err := s.Delete(ctx, drop.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !found {
			t.Fatalf("expected found")
		}
		list, _ := s.List(ctx)
		if len(list) != 1 || list[0].ID != keep.ID {
			t.Fatalf("unexpected survivors: %+v", list)
		}
	})

	t.Run("unknown id leaves collection unchanged", func(t *testing.T) {
		before, _ := s.List(ctx)
		found, err := s.Delete(ctx, drop.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found {
			t.Fatalf("expected not found for deleted id")
		}
		after, _ := s.List(ctx)
		if len(before) != len(after) || before[0].ID != after[0].ID {
			t.Fatalf("collection changed: %+v vs %+v", before, after)
		}
	})
}

func TestStoreUnreadCountConsistency(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	assertConsistent := func(step string) {
		t.Helper()
		count, err := s.UnreadCount(ctx)
		if err != nil {
			t.Fatalf("%s: unread count failed: %v", step, err)
		}
		list, err := s.List(ctx)
		if err != nil {
			t.Fatalf("%s: list failed: %v", step, err)
		}
		scan := 0
		for _, e := range list {
			if e.IsNew {
				scan++
			}
		}
		if count != scan {
			t.Fatalf("%s: cached count %d != scanned %d", step, count, scan)
		}
	}

	var ids []string
	for i := 0; i < 4; i++ {
		created, err := s.Create(ctx, sampleRequest(fmt.Sprintf("Customer %d", i)))
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		ids = append(ids, created.ID)
		assertConsistent("after create")
	}

	if _, err := s.MarkAsRead(ctx, ids[0]); err != nil {
		t.Fatalf("mark read failed: %v", err)
	}
	assertConsistent("after mark read")

	if _, err := s.Delete(ctx, ids[1]); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	assertConsistent("after deleting unread")

	if _, err := s.Delete(ctx, ids[0]); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	assertConsistent("after deleting read")

	if err := s.MarkAllAsRead(ctx); err != nil {
		t.Fatalf("mark all failed: %v", err)
	}
	assertConsistent("after mark all")
}

func TestStoreCrashRecovery(t *testing.T) {
	ctx := context.Background()
	s, path := newTestStore(t)

	created, err := s.Create(ctx, sampleRequest("Ana"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := s.MarkAsRead(ctx, created.ID); err != nil {
		t.Fatalf("mark read failed: %v", err)
	}

	// Fresh instance on the same snapshot simulates a process restart.
	reopened := New(path)
	list, err := reopened.List(ctx)
	if err != nil {
		t.Fatalf("list after restart failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 record after restart, got %d", len(list))
	}
	got := list[0]
	if got.ID != created.ID || got.FullName != created.FullName || got.IsNew {
		t.Fatalf("record changed across restart: %+v", got)
	}
	if got.Quote == nil || got.Quote.Total != created.Quote.Total {
		t.Fatalf("quote lost across restart: %+v", got.Quote)
	}
	count, _ := reopened.UnreadCount(ctx)
	if count != 0 {
		t.Fatalf("expected unread count 0 after restart, got %d", count)
	}
}

func TestStoreCorruptSnapshot(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "estimates.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}

	s := New(path)
	list, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty collection, got %d records", len(list))
	}

	// The corrupt bytes must survive for out-of-band inspection.
	matches, err := filepath.Glob(path + ".corrupt-*")
	if err != nil || len(matches) != 1 {
		t.Fatalf("expected one quarantined snapshot, got %v (err=%v)", matches, err)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil || string(data) != "{not json" {
		t.Fatalf("quarantined bytes changed: %q (err=%v)", data, err)
	}
}

func TestStorePersistFailure(t *testing.T) {
	ctx := context.Background()

	t.Run("create surfaces persistence error and stores nothing", func(t *testing.T) {
		// Parent "directory" is a regular file, so every write fails.
		parent := filepath.Join(t.TempDir(), "notadir")
		if err := os.WriteFile(parent, []byte("x"), 0o644); err != nil {
			t.Fatalf("seed file: %v", err)
		}
		s := New(filepath.Join(parent, "estimates.json"))

		_, err := s.Create(ctx, sampleRequest("Ana"))
		var perr *PersistenceError
		if !errors.As(err, &perr) {
			t.Fatalf("expected PersistenceError, got %v", err)
		}

		list, _ := s.List(ctx)
		if len(list) != 0 {
			t.Fatalf("expected no committed records, got %d", len(list))
		}
		count, _ := s.UnreadCount(ctx)
		if count != 0 {
			t.Fatalf("expected unread count 0, got %d", count)
		}
	})

	t.Run("failed mark read leaves memory untouched", func(t *testing.T) {
		s, path := newTestStore(t)
		created, err := s.Create(ctx, sampleRequest("Ana"))
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}

		// Block the rename by planting a directory at the snapshot path.
		if err := os.Remove(path); err != nil {
			t.Fatalf("remove snapshot: %v", err)
		}
		if err := os.Mkdir(path, 0o755); err != nil {
			t.Fatalf("plant directory: %v", err)
		}

		_, err = s.MarkAsRead(ctx, created.ID)
		var perr *PersistenceError
		if !errors.As(err, &perr) {
			t.Fatalf("expected PersistenceError, got %v", err)
		}

		list, _ := s.List(ctx)
		if len(list) != 1 || !list[0].IsNew {
			t.Fatalf("in-memory state changed despite failed persist: %+v", list)
		}
		count, _ := s.UnreadCount(ctx)
		if count != 1 {
			t.Fatalf("expected unread count 1, got %d", count)
		}
	})
}

func TestStoreConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	const n = 10
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := s.Create(ctx, sampleRequest(fmt.Sprintf("Customer %d", i))); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent create failed: %v", err)
	}

	list, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != n {
		t.Fatalf("expected %d records, got %d", n, len(list))
	}
	seen := map[string]bool{}
	for _, e := range list {
		if seen[e.ID] {
			t.Fatalf("duplicate id %s", e.ID)
		}
		seen[e.ID] = true
	}
	count, _ := s.UnreadCount(ctx)
	if count != n {
		t.Fatalf("expected unread count %d, got %d", n, count)
	}
}
