package binder

import (
	"fmt"
	"io"
	"mime"
	"net/http"
)

const (
	// MaxBodySize caps every request body, multipart included (1MB).
	MaxBodySize = 1 << 20
	// MaxMemory is the in-memory limit passed to multipart parsing (10MB).
	// Bodies are capped by MaxBodySize first, so file parts never spill to disk.
	MaxMemory = 10 << 20
)

// Values decodes the request body into flat field values. JSON objects,
// application/x-www-form-urlencoded and multipart/form-data are accepted.
// For repeated form keys the first value wins.
func Values(r *http.Request) (map[string]string, error) {
	mediaType, err := mediaType(r)
	if err != nil {
		return nil, err
	}

	switch mediaType {
	case "application/json":
		return decodeJSON(r)
	case "application/x-www-form-urlencoded", "multipart/form-data":
		return decodeForm(r, mediaType)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mediaType)
	}
}

// readBody reads at most MaxBodySize+1 bytes so callers can tell an
// oversized body from one that fits exactly.
func readBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}
	return io.ReadAll(io.LimitReader(r.Body, MaxBodySize+1))
}

func mediaType(r *http.Request) (string, error) {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return "", ErrMissingContentType
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
	}
	return mt, nil
}
