package engine

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/sebastian-gasior/jobfit/internal/types"
)

// contentHash derives the cache key as a pure function of the normalized
// input: the profile's canonical JSON form (struct field order is fixed, so
// key order is stable) plus the trimmed job text. Identical inputs always
// produce the same key.
func contentHash(profile *types.CandidateProfile, jobText string) string {
	h := sha256.New()
	if data, err := json.Marshal(profile); err == nil {
		h.Write(data)
	}
	h.Write([]byte{0})
	h.Write([]byte(strings.TrimSpace(jobText)))
	return hex.EncodeToString(h.Sum(nil))
}
