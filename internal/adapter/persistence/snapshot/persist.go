package snapshot

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

// PersistenceError reports a failed durable read/write. It is distinct from
// not-found outcomes: a mutation that hits it has NOT been applied, neither in
// memory nor on disk.

type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("snapshot persist failed for %s: %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// readSnapshotFile returns the raw snapshot bytes. A missing file is a normal
// first-run condition and yields (nil, false). Any other read failure is
// logged and treated the same: losing leads to a startup crash would be worse
// than starting empty.
func readSnapshotFile(path string) ([]byte, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("[store][snapshot] unreadable snapshot %s, starting empty: %v", path, err)
		}
		return nil, false
	}
	return data, true
}

// quarantineSnapshot moves a corrupt snapshot aside so an operator can inspect
// it out-of-band. The next successful persist writes a fresh file; the corrupt
// bytes are never overwritten in place.
func quarantineSnapshot(path string) {
	aside := fmt.Sprintf("%s.corrupt-%d", path, time.Now().Unix())
	if err := os.Rename(path, aside); err != nil {
		log.Printf("[store][snapshot] could not quarantine corrupt snapshot %s: %v", path, err)
		return
	}
	log.Printf("[store][snapshot] corrupt snapshot moved to %s", aside)
}

// writeSnapshotFile persists the full serialized collection atomically: the
// bytes land in a temp file that is renamed over the target, so readers never
// observe a partially written snapshot.
func writeSnapshotFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &PersistenceError{Path: path, Err: err}
		}
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return &PersistenceError{Path: path, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		return &PersistenceError{Path: path, Err: err}
	}
	return nil
}
