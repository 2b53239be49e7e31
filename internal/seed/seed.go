// Package seed derives independent, reproducible RNG seeds for the games
// of a simulation run.
package seed

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"strconv"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// RunKey is the key every game seed of a run is derived from.
// A zero base seed selects the date key of now, giving one reproducible
// run per day.
func RunKey(base int64, now time.Time) string {
	if base == 0 {
		return DateKey(now)
	}
	return strconv.FormatInt(base, 10)
}

// ForGame returns the seed of game index within the run keyed by key,
// using HMAC(key, index). The result is never 0.
func ForGame(key string, index int) int64 {
	h := hmac.New(sha256.New, []byte(key))
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(index))
	h.Write(buf[:])
	sum := h.Sum(nil)
	// take first 8 bytes, clear the sign bit
	n := int64(binary.BigEndian.Uint64(sum[:8]) &^ (1 << 63))
	if n == 0 {
		return 1
	}
	return n
}
