package http

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/jaychenthinkfast/OneTabCloud/internal/logger"
)

const bearerScheme = "Bearer"

// auth is an HTTP middleware that admits requests carrying the server
// credential as a bearer token.
//
// The middleware rejects requests with HTTP 401 Unauthorized when:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header value cannot be parsed as a bearer token
//     ([ErrInvalidAuthorizationHeader] or [ErrEmptyToken]).
//   - The token differs from the configured credential ([ErrWrongCredential]).
//
// Tokens are compared in constant time.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		token, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		if h.credential == "" || subtle.ConstantTimeCompare([]byte(token), []byte(h.credential)) != 1 {
			log.Err(ErrWrongCredential).Msg("request rejected")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value of the form:
//
//	Authorization: Bearer <token>
//
// The scheme is matched case-insensitively. It returns
// [ErrInvalidAuthorizationHeader] for another scheme or a missing separator
// and [ErrEmptyToken] when the token part is blank.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	scheme, token, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", ErrInvalidAuthorizationHeader
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrEmptyToken
	}

	return token, nil
}
