// Package recordid generates identifiers for persisted records. ULIDs embed a
// millisecond timestamp followed by random entropy, so ids sort in creation
// order and collisions are negligible; stores still detect and retry them.
package recordid

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// New returns a fresh ULID string.
func New() (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
