package binder

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
)

func decodeForm(r *http.Request, mediaType string) (map[string]string, error) {
	body, err := readBody(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
	}
	if len(body) > MaxBodySize {
		return nil, ErrBodyTooLarge
	}
	r.Body = io.NopCloser(bytes.NewReader(body))

	if mediaType == "multipart/form-data" {
		err = r.ParseMultipartForm(MaxMemory)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
	}

	values := make(map[string]string, len(r.PostForm))
	for key, vals := range r.PostForm {
		if len(vals) > 0 {
			values[key] = vals[0]
		}
	}
	return values, nil
}
