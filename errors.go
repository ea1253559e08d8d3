package hxtodo

import "errors"

// Sentinel errors for dispatch and rendering.
var (
	ErrNoRoute = errors.New("hxtodo: no route")
	ErrDecode  = errors.New("hxtodo: request decode failed")
	ErrRender  = errors.New("hxtodo: render failed")
)

// IsNoRoute checks if err means no route matched the request.
func IsNoRoute(err error) bool {
	return errors.Is(err, ErrNoRoute)
}

// IsDecodeError checks if err is a malformed body or path variable.
func IsDecodeError(err error) bool {
	return errors.Is(err, ErrDecode)
}

// IsRenderError checks if err came from writing a component.
func IsRenderError(err error) bool {
	return errors.Is(err, ErrRender)
}
