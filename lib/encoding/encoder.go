// Package encoding fingerprints msgpack-encoded values.
//
// The server uses it to fingerprint the data a fragment is rendered from, so
// identical snapshots produce identical ETags while the key keeps the tags
// opaque to clients.
package encoding

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"

	"github.com/vmihailenco/msgpack/v5"
)

// sigLen is the truncated HMAC length: 16 bytes = 128 bits.
const sigLen = 16

// Encoder keys an HMAC-SHA256 over msgpack payloads.
type Encoder struct {
	key []byte
}

// NewEncoder creates an encoder with the given key. Keys shorter than 32
// bytes are stretched with SHA-256.
func NewEncoder(key []byte) (*Encoder, error) {
	if len(key) == 0 {
		return nil, errors.New("encoding: empty key")
	}
	if len(key) < 32 {
		h := sha256.Sum256(key)
		key = h[:]
	}
	return &Encoder{key: key}, nil
}

// RandomKey returns 32 bytes of cryptographically random data, suitable for
// a key that only needs to live as long as the process.
func RandomKey() ([]byte, error) {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	return key, nil
}

// Fingerprint returns the base64url HMAC of v's msgpack encoding. Equal
// values always yield equal fingerprints under the same key.
func (e *Encoder) Fingerprint(v any) (string, error) {
	packed, err := msgpack.Marshal(v)
	if err != nil {
		return "", err
	}
	mac := hmac.New(sha256.New, e.key)
	mac.Write(packed)
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil)[:sigLen]), nil
}
