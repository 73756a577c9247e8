// internal/daily/daily.go
//
// Deterministic "puzzle of the day" seeding.
// Every player sharing the same salt gets the same board for a given UTC
// date and difficulty.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Seed derives a generator seed from HMAC(salt, "YYYY-MM-DD/difficulty").
func Seed(date time.Time, salt, difficulty string) int64 {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date) + "/" + difficulty))
	sum := h.Sum(nil)
	// first 8 bytes, sign bit cleared so the seed stays non-negative
	return int64(binary.BigEndian.Uint64(sum[:8]) &^ (1 << 63))
}
