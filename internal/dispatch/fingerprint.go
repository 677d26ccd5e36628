package dispatch

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"

	"github.com/worklens/worklens/internal/session"
)

// fingerprint identifies a computation request by its inputs: the period
// key plus a digest of the sorted session ids. Sorting makes the digest
// independent of snapshot ordering, so reordered but otherwise identical
// collections hit the same cache entry.
func fingerprint(key string, sessions []session.WorkSession) string {
	ids := make([]string, 0, len(sessions))
	for _, s := range sessions {
		ids = append(ids, s.ID)
	}
	sort.Strings(ids)

	h := sha256.New()
	h.Write([]byte(key))
	for _, id := range ids {
		h.Write([]byte{0})
		h.Write([]byte(id))
	}
	return key + "@" + hex.EncodeToString(h.Sum(nil))
}
