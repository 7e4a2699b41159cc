package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sumanthd032/smartblog/internal/ai"
	"github.com/sumanthd032/smartblog/internal/auth"
	"github.com/sumanthd032/smartblog/internal/service"
)

func TestWriteServiceError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		status   int
		code     string
		wwwAuth  bool
		noDetail bool
	}{
		{name: "bad credentials", err: service.ErrInvalidCredentials, status: http.StatusUnauthorized, code: "NOT_AUTHENTICATED", wwwAuth: true},
		{name: "expired token", err: &auth.Error{Reason: auth.ReasonExpired}, status: http.StatusUnauthorized, code: "NOT_AUTHENTICATED", wwwAuth: true},
		{name: "forbidden", err: auth.ErrForbidden, status: http.StatusForbidden, code: "FORBIDDEN"},
		{name: "taken", err: service.ErrUsernameTaken, status: http.StatusConflict, code: "USERNAME_TAKEN"},
		{name: "post missing", err: fmt.Errorf("wrapped: %w", service.ErrPostNotFound), status: http.StatusNotFound, code: "NOT_FOUND"},
		{name: "comment missing", err: service.ErrCommentNotFound, status: http.StatusNotFound, code: "NOT_FOUND"},
		{name: "user missing", err: service.ErrUserNotFound, status: http.StatusNotFound, code: "NOT_FOUND"},
		{name: "ai disabled", err: service.ErrAIDisabled, status: http.StatusServiceUnavailable, code: "AI_DISABLED"},
		{name: "empty ai content", err: ai.ErrEmptyContent, status: http.StatusBadRequest, code: "VALIDATION_ERROR"},
		{name: "unknown", err: errors.New("pq: secret table details"), status: http.StatusInternalServerError, code: "INTERNAL", noDetail: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)

			writeServiceError(rec, req, tt.err, "test")

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), `"code":"`+tt.code+`"`)
			if tt.wwwAuth {
				assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
			} else {
				assert.Empty(t, rec.Header().Get("WWW-Authenticate"))
			}
			if tt.noDetail {
				assert.NotContains(t, rec.Body.String(), "secret table")
			}
		})
	}
}

func TestWriteServiceError_AuthReasonNotLeaked(t *testing.T) {
	expired := httptest.NewRecorder()
	writeServiceError(expired, httptest.NewRequest(http.MethodGet, "/", nil), &auth.Error{Reason: auth.ReasonExpired}, "test")

	unknown := httptest.NewRecorder()
	writeServiceError(unknown, httptest.NewRequest(http.MethodGet, "/", nil), &auth.Error{Reason: auth.ReasonUnknownSubject}, "test")

	assert.Equal(t, expired.Body.String(), unknown.Body.String())
	assert.NotContains(t, expired.Body.String(), "expired")
}
