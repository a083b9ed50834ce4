package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
)

// decodeJSON accepts a single object whose values are strings, numbers,
// booleans or null. Numbers keep their literal text so "007" style values
// survive only when sent as strings.
func decodeJSON(r *http.Request) (map[string]string, error) {
	body, err := readBody(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
	}
	if len(body) > MaxBodySize {
		return nil, ErrBodyTooLarge
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after object", ErrFailedToParseJSON)
	}

	values := make(map[string]string, len(raw))
	for key, v := range raw {
		s, err := scalar(v)
		if err != nil {
			return nil, fmt.Errorf("%w: field %q: %v", ErrFailedToParseJSON, key, err)
		}
		values[key] = s
	}
	return values, nil
}

func scalar(v any) (string, error) {
	switch v := v.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case bool:
		return strconv.FormatBool(v), nil
	default:
		return "", errors.New("value must be a string, number, boolean or null")
	}
}
