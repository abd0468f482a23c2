package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"slices"
	"strings"

	"github.com/shopstack/shopstack-go/internal/crypto"
	"github.com/shopstack/shopstack-go/internal/envelope"
)

type contextKey string

const claimsKey contextKey = "claims"

// RequireRoles returns middleware gating a route behind a bearer token
// whose role is in the given set. An empty set means the route is public
// and no token is read. Denials short-circuit before the handler runs:
// missing or malformed header and failed verification are unauthorized,
// a valid token with the wrong role is forbidden.
func RequireRoles(secret string, roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(roles) == 0 {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if authHeader == "" || !found || token == "" {
				writeEnvelope(w, envelope.Unauthorized, "no token")
				return
			}

			claims, err := crypto.ValidateToken(token, secret)
			if err != nil {
				writeEnvelope(w, envelope.Unauthorized, "invalid token")
				return
			}

			if !slices.Contains(roles, claims.Role) {
				writeEnvelope(w, envelope.Forbidden, "insufficient role")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext extracts the verified token claims the role gate
// attached to the request context.
func ClaimsFromContext(ctx context.Context) (*crypto.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*crypto.Claims)
	return claims, ok
}

func writeEnvelope(w http.ResponseWriter, st envelope.Status, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(st.HTTP)
	json.NewEncoder(w).Encode(envelope.Build(st, nil, detail, nil))
}
