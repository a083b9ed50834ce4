package forms

import (
	"encoding/json"
	"net/http"
)

// ErrorDetail is the body of every non-validation error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorBody struct {
	Error ErrorDetail `json:"error"`
}

// FormResult is returned by form endpoints. Errors holds one entry per
// declared field; valid fields map to "".
type FormResult struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors"`
	Phone  string            `json:"phone,omitempty"`
}

type PhoneResult struct {
	Normalized string `json:"normalized"`
	Formatted  string `json:"formatted"`
}

type KeyResult struct {
	Allowed bool `json:"allowed"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
