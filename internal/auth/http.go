// ABOUTME: HTTP middleware gating protected endpoints behind a bearer token
// ABOUTME: Verifies the JWT and attaches the decoded identity to the request context

package auth

import (
	"encoding/json"
	"net/http"
	"strings"
)

// Response messages for guard rejections. Existing clients match on these
// strings, so they are fixed.
const (
	msgNoToken      = "Access denied. No token provided."
	msgInvalidToken = "Invalid or expired token."
)

// extractBearerToken extracts a bearer token from the Authorization header.
// A bare token without the "Bearer " prefix is accepted as-is; signature
// verification decides whether it means anything.
func extractBearerToken(authHeader string) string {
	return strings.TrimPrefix(authHeader, "Bearer ")
}

// Middleware creates an HTTP middleware that requires a valid token on each
// request. A missing token is a 401; a token that fails verification or has
// expired is a 403. On success the decoded identity is attached to the
// request context for the remainder of that request's processing.
//
// The middleware performs no store lookup: the signature is trusted as
// sufficient proof of continued validity. Revocation before expiry is
// structurally impossible with stateless tokens.
func Middleware(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r.Header.Get("Authorization"))
			if token == "" {
				writeJSONMessage(w, http.StatusUnauthorized, msgNoToken)
				return
			}

			principalID, err := verifier.Verify(token)
			if err != nil {
				writeJSONMessage(w, http.StatusForbidden, msgInvalidToken)
				return
			}

			identity := &Identity{PrincipalID: principalID}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

// writeJSONMessage writes a {"message": ...} JSON body with the given status.
func writeJSONMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
