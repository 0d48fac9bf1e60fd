package ordercode

import "crypto/rand"

const (
	Prefix    = "ORD-"
	suffixLen = 6

	// Excludes 0/O and 1/I/L so codes read unambiguously over the phone.
	charset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// Generate mints a candidate order code, e.g. "ORD-K4TQ8Z". Uniqueness is
// the caller's job: codes are primary keys and inserts retry on collision.
func Generate() string {
	buf := make([]byte, suffixLen)
	if _, err := rand.Read(buf); err != nil {
		panic("ordercode: crypto/rand unavailable: " + err.Error())
	}

	out := make([]byte, suffixLen)
	for i, b := range buf {
		// len(charset) is 32, which divides 256, so no modulo bias.
		out[i] = charset[int(b)%len(charset)]
	}
	return Prefix + string(out)
}
