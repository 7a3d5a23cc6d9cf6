package crypto

import (
	"crypto/hmac"
	"crypto/rand"
	"encoding/hex"
	"strconv"

	"golang.org/x/crypto/sha3"
)

// KeyBytes is the commitment key width, matching the digest strength of
// the HMAC core.
const KeyBytes = 32

// GenerateKey returns a fresh 256-bit commitment key. Keys are single
// use: one protocol invocation, one key.
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeyBytes)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	return key, nil
}

// Commit binds value under key: lowercase hex of HMAC-SHA3-256 over the
// decimal form of value.
func Commit(key []byte, value int) string {
	mac := hmac.New(sha3.New256, key)
	mac.Write([]byte(strconv.Itoa(value)))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify recomputes the commitment for (key, value) and compares it with
// digest in constant time.
func Verify(key []byte, value int, digest string) bool {
	want, err := hex.DecodeString(digest)
	if err != nil {
		return false
	}

	mac := hmac.New(sha3.New256, key)
	mac.Write([]byte(strconv.Itoa(value)))
	return hmac.Equal(mac.Sum(nil), want)
}

// EncodeKey renders a key for the reveal line.
func EncodeKey(key []byte) string {
	return hex.EncodeToString(key)
}
