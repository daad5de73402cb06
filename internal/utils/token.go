package utils

import (
	"crypto/rand"
	"strconv"
	"strings"
	"time"
)

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateToken mints an opaque bearer token: two random base-36 fragments
// plus a base-36 millisecond timestamp, the same shape the original server
// issued. Uniqueness is probabilistic, not guaranteed.
func GenerateToken() string {
	return randomBase36(13) + randomBase36(13) + strconv.FormatInt(time.Now().UnixMilli(), 36)
}

// GenerateID assigns entity ids: an 8-character random base-36 fragment
// plus a base-36 millisecond timestamp. No collision check is performed.
func GenerateID() string {
	return randomBase36(8) + strconv.FormatInt(time.Now().UnixMilli(), 36)
}

func randomBase36(n int) string {
	buf := make([]byte, n)
	// crypto/rand never fails on supported platforms; fall back to the
	// zero buffer rather than panicking in a request path.
	_, _ = rand.Read(buf)

	var b strings.Builder
	b.Grow(n)
	for _, c := range buf {
		b.WriteByte(base36Alphabet[int(c)%len(base36Alphabet)])
	}
	return b.String()
}
