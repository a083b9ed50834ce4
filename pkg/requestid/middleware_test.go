package requestid_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/requestid"
)

func serve(t *testing.T, incoming string) (*httptest.ResponseRecorder, string) {
	t.Helper()
	var seen string
	handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestid.FromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodPost, "/forms/company", nil)
	if incoming != "" {
		req.Header.Set(requestid.Header, incoming)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec, seen
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("generates uuid when header is missing", func(t *testing.T) {
		t.Parallel()
		rec, seen := serve(t, "")
		require.Equal(t, http.StatusNoContent, rec.Code)
		_, err := uuid.Parse(seen)
		require.NoError(t, err)
		assert.Equal(t, seen, rec.Header().Get(requestid.Header))
	})

	t.Run("keeps valid incoming id", func(t *testing.T) {
		t.Parallel()
		rec, seen := serve(t, "form_submit-42")
		assert.Equal(t, "form_submit-42", seen)
		assert.Equal(t, "form_submit-42", rec.Header().Get(requestid.Header))
	})

	t.Run("replaces malformed ids", func(t *testing.T) {
		t.Parallel()
		for _, id := range []string{"a b", "a/b", "<script>", "id;drop", strings.Repeat("x", 129)} {
			rec, seen := serve(t, id)
			assert.NotEqual(t, id, seen)
			_, err := uuid.Parse(rec.Header().Get(requestid.Header))
			assert.NoError(t, err, id)
		}
	})
}

func TestValid(t *testing.T) {
	t.Parallel()
	assert.True(t, requestid.Valid(strings.Repeat("a", 128)))
	assert.False(t, requestid.Valid(strings.Repeat("a", 129)))
	assert.False(t, requestid.Valid(""))
}

func TestFromContext(t *testing.T) {
	t.Parallel()
	assert.Empty(t, requestid.FromContext(context.Background()))
	//nolint:staticcheck // nil context is handled explicitly
	assert.Empty(t, requestid.FromContext(nil))
	assert.Equal(t, "abc", requestid.FromContext(requestid.WithContext(context.Background(), "abc")))
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()
	extract := requestid.LoggerExtractor()

	_, ok := extract(context.Background())
	assert.False(t, ok)

	attr, ok := extract(requestid.WithContext(context.Background(), "abc"))
	require.True(t, ok)
	assert.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "abc", attr.Value.String())
}
