package imaging

import (
	cryptorand "crypto/rand"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(cryptorand.Reader, 0)
)

// DefaultName returns a unique, time-sortable file name for a capture
// taken at the given moment.
func DefaultName(at time.Time) string {
	entropyMu.Lock()
	id := ulid.MustNew(ulid.Timestamp(at), entropy)
	entropyMu.Unlock()
	return "shot-" + strings.ToLower(id.String()) + ".png"
}
