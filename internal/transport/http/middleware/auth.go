package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/sumanthd032/smartblog/internal/auth"
)

// Auth rejects requests without a valid bearer token and stores the
// resolved principal in the request context.
func Auth(resolver *auth.Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, _ := bearerToken(r)

			p, err := resolver.Resolve(r.Context(), token)
			if err != nil {
				rejectToken(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), p)))
		})
	}
}

// OptionalAuth lets anonymous requests through. A request that does carry a
// bearer token must carry a valid one.
func OptionalAuth(resolver *auth.Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			p, err := resolver.Resolve(r.Context(), token)
			if err != nil {
				rejectToken(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), p)))
		})
	}
}

// bearerToken reports whether an Authorization header was sent at all; the
// token is empty when the header is present but not a bearer credential.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", true
	}
	return strings.TrimSpace(token), true
}

func rejectToken(w http.ResponseWriter, r *http.Request, err error) {
	log := zerolog.Ctx(r.Context())

	if !errors.Is(err, auth.ErrNotAuthenticated) {
		log.Error().Err(err).Msg("resolving principal")
		writeJSONError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	reason, _ := auth.ReasonOf(err)
	log.Debug().Stringer("reason", reason).Msg("rejected bearer token")

	w.Header().Set("WWW-Authenticate", "Bearer")
	writeJSONError(w, http.StatusUnauthorized, "NOT_AUTHENTICATED", "Could not validate credentials")
}

func writeJSONError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
