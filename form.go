package hxtodo

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
)

// maxFormBytes bounds the body read for form decoding.
const maxFormBytes = 1 << 20

// decodeForm reads an application/x-www-form-urlencoded body that must carry
// exactly the given fields, each once. Query parameters are ignored.
func decodeForm(r *http.Request, fields []string) (url.Values, error) {
	ct, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || ct != "application/x-www-form-urlencoded" {
		return nil, fmt.Errorf("%w: content type %q", ErrDecode, r.Header.Get("Content-Type"))
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxFormBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if len(body) > maxFormBytes {
		return nil, fmt.Errorf("%w: body too large", ErrDecode)
	}

	vals, err := url.ParseQuery(string(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	for _, f := range fields {
		switch n := len(vals[f]); n {
		case 1:
		case 0:
			return nil, fmt.Errorf("%w: missing field %q", ErrDecode, f)
		default:
			return nil, fmt.Errorf("%w: field %q repeated %d times", ErrDecode, f, n)
		}
	}
	if len(vals) != len(fields) {
		for k := range vals {
			if !contains(fields, k) {
				return nil, fmt.Errorf("%w: unexpected field %q", ErrDecode, k)
			}
		}
	}

	return vals, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
