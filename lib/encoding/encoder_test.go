package encoding

import (
	"crypto/sha256"
	"testing"
)

type testRecord struct {
	ID   uint64 `msgpack:"id"`
	Text string `msgpack:"text"`
}

func TestNewEncoder(t *testing.T) {
	// Should work with any non-empty key length (derives 32-byte key)
	if _, err := NewEncoder([]byte("short")); err != nil {
		t.Fatalf("NewEncoder with short key failed: %v", err)
	}
	if _, err := NewEncoder([]byte("this-is-a-32-byte-key-for-hmac!!")); err != nil {
		t.Fatalf("NewEncoder with 32-byte key failed: %v", err)
	}
	if _, err := NewEncoder(nil); err == nil {
		t.Fatal("NewEncoder with empty key should fail")
	}
}

func TestRandomKey(t *testing.T) {
	a, err := RandomKey()
	if err != nil {
		t.Fatalf("RandomKey failed: %v", err)
	}
	b, _ := RandomKey()
	if len(a) != 32 {
		t.Errorf("len = %d, want 32", len(a))
	}
	if string(a) == string(b) {
		t.Error("two random keys should differ")
	}
}

func TestFingerprintDeterministic(t *testing.T) {
	enc, _ := NewEncoder([]byte("test-key"))
	recs := []testRecord{{ID: 1, Text: "a"}}

	f1, err := enc.Fingerprint(recs)
	if err != nil {
		t.Fatalf("Fingerprint failed: %v", err)
	}
	f2, _ := enc.Fingerprint([]testRecord{{ID: 1, Text: "a"}})
	if f1 != f2 {
		t.Errorf("fingerprints differ for equal values: %q vs %q", f1, f2)
	}

	f3, _ := enc.Fingerprint([]testRecord{{ID: 1, Text: "b"}})
	if f1 == f3 {
		t.Error("fingerprints should differ for different values")
	}

	// 16 bytes in unpadded base64url.
	if len(f1) != 22 {
		t.Errorf("len(fingerprint) = %d, want 22", len(f1))
	}
}

func TestFingerprintKeyed(t *testing.T) {
	a, _ := NewEncoder([]byte("key-a"))
	b, _ := NewEncoder([]byte("key-b"))
	v := testRecord{ID: 1, Text: "a"}

	fa, _ := a.Fingerprint(v)
	fb, _ := b.Fingerprint(v)
	if fa == fb {
		t.Error("different keys should give different fingerprints")
	}

	// A short key is stretched to its SHA-256, so both forms agree.
	sum := sha256.Sum256([]byte("key-a"))
	stretched, _ := NewEncoder(sum[:])
	fs, _ := stretched.Fingerprint(v)
	if fa != fs {
		t.Errorf("stretched key fingerprint = %q, want %q", fs, fa)
	}
}

func TestFingerprintUnencodable(t *testing.T) {
	enc, _ := NewEncoder([]byte("test-key"))
	if _, err := enc.Fingerprint(make(chan int)); err == nil {
		t.Error("expected error fingerprinting a channel")
	}
}
