package hxtodo

import (
	"strings"
	"testing"
)

func TestETag(t *testing.T) {
	enc, err := NewEncoder([]byte("test-key"))
	if err != nil {
		t.Fatalf("NewEncoder() error = %v", err)
	}

	type rec struct {
		ID   uint64
		Text string
	}

	a, err := ETag(enc, []rec{{1, "a"}})
	if err != nil {
		t.Fatalf("ETag() error = %v", err)
	}
	if !strings.HasPrefix(a, `"`) || !strings.HasSuffix(a, `"`) {
		t.Errorf("ETag %q should be quoted", a)
	}

	b, _ := ETag(enc, []rec{{1, "a"}})
	if a != b {
		t.Errorf("equal inputs gave %q and %q", a, b)
	}

	c, _ := ETag(enc, []rec{{1, "b"}})
	if a == c {
		t.Error("different inputs should give different tags")
	}
}
