package hxtodoecho

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pthm/hxtodo"
)

func testRouter() *hxtodo.Router {
	rt := hxtodo.NewRouter()
	rt.GET("/", func(ctx context.Context, req *hxtodo.Request) hxtodo.Result {
		return hxtodo.PlainText(http.StatusOK, "root")
	})
	rt.GET("/hello/{name}", func(ctx context.Context, req *hxtodo.Request) hxtodo.Result {
		return hxtodo.PlainText(http.StatusOK, "Hello, "+req.Params.String("name")+"!")
	})
	rt.DELETE("/todos/{id:uint}", func(ctx context.Context, req *hxtodo.Request) hxtodo.Result {
		return hxtodo.Empty(http.StatusOK)
	})
	return rt
}

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestMount(t *testing.T) {
	e := echo.New()
	Mount(e, testRouter())

	tests := []struct {
		method, target string
		code           int
		body           string
	}{
		{http.MethodGet, "/", http.StatusOK, "root"},
		{http.MethodGet, "/hello/echo", http.StatusOK, "Hello, echo!"},
		{http.MethodDelete, "/todos/1", http.StatusOK, ""},
		{http.MethodGet, "/missing", http.StatusNotFound, "Not found\n"},
		{http.MethodPatch, "/hello/echo", http.StatusNotFound, "Not found\n"},
	}
	for _, tt := range tests {
		rec := serve(e, tt.method, tt.target)
		if rec.Code != tt.code {
			t.Errorf("%s %s: expected %d, got %d", tt.method, tt.target, tt.code, rec.Code)
		}
		if rec.Body.String() != tt.body {
			t.Errorf("%s %s: expected body %q, got %q", tt.method, tt.target, tt.body, rec.Body.String())
		}
	}
}

func TestMountWithPrefix(t *testing.T) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	Mount(e, testRouter(), WithPrefix("/app/"))

	if rec := serve(e, http.MethodGet, "/app/hello/x"); rec.Body.String() != "Hello, x!" {
		t.Errorf("prefixed route: got %d %q", rec.Code, rec.Body.String())
	}
	if rec := serve(e, http.MethodGet, "/health"); rec.Body.String() != "ok" {
		t.Errorf("echo route shadowed: got %d %q", rec.Code, rec.Body.String())
	}
	if rec := serve(e, http.MethodGet, "/hello/x"); rec.Code != http.StatusNotFound {
		t.Errorf("unprefixed path should not reach the handler, got %d", rec.Code)
	}
}

func TestNewRecovers(t *testing.T) {
	e := New(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := serve(e, http.MethodGet, "/")
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}
