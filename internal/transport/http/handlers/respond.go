package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/sumanthd032/smartblog/internal/ai"
	"github.com/sumanthd032/smartblog/internal/auth"
	"github.com/sumanthd032/smartblog/internal/service"
	"github.com/sumanthd032/smartblog/pkg/validator"
)

// maxBodyBytes caps every request body the handlers read.
const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}

func writeValidationErrors(w http.ResponseWriter, errs validator.ValidationErrors) {
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"error": map[string]any{
			"code":   "VALIDATION_ERROR",
			"fields": errs,
		},
	})
}

// decodeAndValidate reads a JSON body into dst and checks its tags. It
// writes the 400 response itself and reports false on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if !decodeJSON(w, r, dst) {
		return false
	}
	if errs := validator.Struct(dst); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return false
	}
	return true
}

// decodeJSON reads a JSON body of at most maxBodyBytes into dst, writing
// the 400 or 413 response itself on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeBodyError(w, err, "INVALID_JSON", "Invalid request body")
		return false
	}
	return true
}

func writeBodyError(w http.ResponseWriter, err error, code, message string) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, "BODY_TOO_LARGE", "Request body is too large")
		return
	}
	writeError(w, http.StatusBadRequest, code, message)
}

// writeServiceError maps service and auth errors onto HTTP responses.
// Anything unrecognised is logged and reported as a bare 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, op string) {
	log := zerolog.Ctx(r.Context())

	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		log.Debug().Str("op", op).Msg("login rejected")
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeError(w, http.StatusUnauthorized, "NOT_AUTHENTICATED", "Incorrect username or password")
	case errors.Is(err, auth.ErrNotAuthenticated):
		reason, _ := auth.ReasonOf(err)
		log.Debug().Str("op", op).Stringer("reason", reason).Msg("not authenticated")
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeError(w, http.StatusUnauthorized, "NOT_AUTHENTICATED", "Could not validate credentials")
	case errors.Is(err, auth.ErrForbidden):
		writeError(w, http.StatusForbidden, "FORBIDDEN", "You do not have permission to perform this action")
	case errors.Is(err, service.ErrUsernameTaken):
		writeError(w, http.StatusConflict, "USERNAME_TAKEN", "Username is already taken")
	case errors.Is(err, service.ErrPostNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Post not found")
	case errors.Is(err, service.ErrCommentNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Comment not found")
	case errors.Is(err, service.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "User not found")
	case errors.Is(err, service.ErrAIDisabled):
		writeError(w, http.StatusServiceUnavailable, "AI_DISABLED", "AI assistant is not configured")
	case errors.Is(err, ai.ErrEmptyContent):
		writeValidationErrors(w, validator.ValidationErrors{"content": "This field is required"})
	default:
		log.Error().Err(err).Str("op", op).Msg("request failed")
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
	}
}
