package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/tripwise/backend/internal/middleware"
)

// drain reads the whole body the way a JSON decoder would and reports 413
// when the read is cut off.
var drain = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	if _, err := io.ReadAll(r.Body); err != nil {
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		return
	}
	w.WriteHeader(http.StatusNoContent)
})

func TestMaxBodySizeHandler(t *testing.T) {
	const limit = 64
	trip := `{"title":"Rome","destination":"Rome"}`

	tests := []struct {
		name          string
		body          string
		contentLength int64 // -1 means unknown (chunked)
		want          int
	}{
		{"within limit", trip, int64(len(trip)), http.StatusNoContent},
		{"exactly at limit", strings.Repeat("a", limit), limit, http.StatusNoContent},
		{"declared length over limit", strings.Repeat("a", 2*limit), 2 * limit, http.StatusRequestEntityTooLarge},
		{"unknown length over limit", strings.Repeat("a", 2*limit), -1, http.StatusRequestEntityTooLarge},
	}

	h := middleware.NewMaxBodySizeHandler(limit)(drain)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/session/trips", strings.NewReader(tc.body))
			req.ContentLength = tc.contentLength
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tc.want, rec.Code)
		})
	}
}
