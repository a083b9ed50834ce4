// Package binder reads submitted form fields from an HTTP request body.
//
//	values, err := binder.Values(r)
//	switch {
//	case errors.Is(err, binder.ErrUnsupportedMediaType):
//	    // 415
//	case err != nil:
//	    // 400
//	}
//
// The result is a flat map of field name to raw string value, ready for
// schema validation. Only request bodies are read; query parameters are
// ignored.
package binder
