package hxtodo

import (
	"net/http"
	"testing"
)

func TestResultConstructors(t *testing.T) {
	body := Text("x")

	tests := []struct {
		name       string
		r          Result
		wantStatus int
		wantBody   bool
	}{
		{"OK", OK(body), http.StatusOK, true},
		{"Created", Created(body), http.StatusCreated, true},
		{"NoContent", NoContent(), http.StatusNoContent, false},
		{"Empty", Empty(http.StatusNotFound), http.StatusNotFound, false},
		{"PlainText", PlainText(http.StatusOK, "hi"), http.StatusOK, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.r.GetStatus() != tt.wantStatus {
				t.Errorf("GetStatus() = %d, want %d", tt.r.GetStatus(), tt.wantStatus)
			}
			if (tt.r.GetBody() != nil) != tt.wantBody {
				t.Errorf("GetBody() presence = %v, want %v", tt.r.GetBody() != nil, tt.wantBody)
			}
		})
	}
}

func TestResultPlainTextContentType(t *testing.T) {
	r := PlainText(http.StatusOK, "hi")
	if r.GetContentType() != "text/plain; charset=utf-8" {
		t.Errorf("GetContentType() = %q", r.GetContentType())
	}
	if OK(nil).GetContentType() != "" {
		t.Error("HTML results should not override content type")
	}
}

func TestResultChaining(t *testing.T) {
	r := OK(nil).
		Status(http.StatusAccepted).
		Header("Cache-Control", "no-store").
		Header("X-Other", "1").
		Trigger("todos:changed", map[string]any{"id": 1}).
		ETag(`"abc"`)

	if r.GetStatus() != http.StatusAccepted {
		t.Errorf("GetStatus() = %d", r.GetStatus())
	}
	if r.GetHeaders()["Cache-Control"] != "no-store" || r.GetHeaders()["X-Other"] != "1" {
		t.Errorf("GetHeaders() = %v", r.GetHeaders())
	}
	if r.GetTrigger() != "todos:changed" {
		t.Errorf("GetTrigger() = %q", r.GetTrigger())
	}
	if r.GetTriggerData()["id"] != 1 {
		t.Errorf("GetTriggerData() = %v", r.GetTriggerData())
	}
	if r.GetETag() != `"abc"` {
		t.Errorf("GetETag() = %q", r.GetETag())
	}
}

func TestResultIsValue(t *testing.T) {
	base := OK(nil)
	_ = base.Header("X-A", "1")
	if base.GetHeaders() != nil {
		t.Error("builder methods must not mutate the receiver's headers")
	}
}
