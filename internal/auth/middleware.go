package auth

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"
)

// Require returns middleware that authenticates the bearer token and
// enforces the expected realm. Requests without a valid token get 401;
// tokens from the wrong realm get 403.
func (v *Verifier) Require(realm Realm, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				logger.Warn().Str("path", r.URL.Path).Msg("missing bearer token")
				writeAuthError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			identity, err := v.Verify(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				logger.Warn().Err(err).Str("path", r.URL.Path).Msg("token verification failed")
				writeAuthError(w, http.StatusUnauthorized, "invalid bearer token")
				return
			}

			if identity.Realm != realm {
				logger.Warn().
					Str("path", r.URL.Path).
					Str("realm", string(identity.Realm)).
					Msg("wrong realm for route")
				writeAuthError(w, http.StatusForbidden, "forbidden")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"error": "` + message + `"}`))
}
