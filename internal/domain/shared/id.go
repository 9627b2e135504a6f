package shared

import (
	"crypto/rand"
	"fmt"
	"time"
)

const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// NewID generates a unique identifier in the form
// "{prefix}_{unix-millis}_{6 random alphanumerics}". The format is part of the
// external API contract and must stay stable.
func NewID(prefix string) string {
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), randomSuffix(6))
}

func randomSuffix(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing is effectively unrecoverable; fall back to a
		// timestamp-derived suffix so ID generation never blocks a request.
		nano := time.Now().UnixNano()
		for i := range buf {
			buf[i] = idAlphabet[nano%int64(len(idAlphabet))]
			nano /= 7
		}
		return string(buf)
	}
	for i := range buf {
		buf[i] = idAlphabet[int(buf[i])%len(idAlphabet)]
	}
	return string(buf)
}
