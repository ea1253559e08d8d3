package hxtodo

import (
	"fmt"

	"github.com/pthm/hxtodo/lib/encoding"
)

// Encoder is an alias for encoding.Encoder for convenience.
type Encoder = encoding.Encoder

// NewEncoder creates a new encoder with the given key.
func NewEncoder(key []byte) (*Encoder, error) {
	return encoding.NewEncoder(key)
}

// ETag returns a strong entity tag for the data a fragment renders from.
//
// Pass the render parameters, not the rendered HTML: components are pure, so
// equal parameters always produce equal output.
func ETag(enc *Encoder, v any) (string, error) {
	fp, err := enc.Fingerprint(v)
	if err != nil {
		return "", fmt.Errorf("hxtodo: etag: %w", err)
	}
	return `"` + fp + `"`, nil
}
