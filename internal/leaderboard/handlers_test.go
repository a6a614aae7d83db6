package leaderboard

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// Validation runs before any DB access, so these paths are testable
// with a nil pool.
func TestPostScore_Validation(t *testing.T) {
	handler := Handler(nil, zap.NewNop())

	cases := []struct {
		name string
		body string
	}{
		{"missing name", `{"score": 100, "accuracy": 80}`},
		{"blank name", `{"name": "   ", "score": 100, "accuracy": 80}`},
		{"missing score", `{"name": "Alex", "accuracy": 80}`},
		{"missing accuracy", `{"name": "Alex", "score": 100}`},
		{"not json", `name=Alex`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/leaderboard", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			handler(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	handler := Handler(nil, zap.NewNop())

	req := httptest.NewRequest(http.MethodPut, "/api/leaderboard", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandler_Options(t *testing.T) {
	handler := Handler(nil, zap.NewNop())

	req := httptest.NewRequest(http.MethodOptions, "/api/leaderboard", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestResetHandler_MethodNotAllowed(t *testing.T) {
	handler := ResetHandler(nil, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/leaderboard", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
