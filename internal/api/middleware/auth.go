package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/estudioluz/booking-service/internal/api/handlers"
	"github.com/estudioluz/booking-service/internal/service/auth"
)

const msgUnauthorized = "autenticação necessária"

type contextKey string

// OperatorClaimsKey holds the verified operator claims in the request context
const OperatorClaimsKey contextKey = "operatorClaims"

// TokenVerifier checks bearer tokens; production wires the auth service
type TokenVerifier interface {
	VerifyToken(token string) (*auth.Claims, error)
}

// Auth requires a valid "Authorization: Bearer <token>" header and stores
// the operator claims in the request context
func Auth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			claims, err := verifier.VerifyToken(token)
			if err != nil {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), OperatorClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext returns the operator claims stored by Auth
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(OperatorClaimsKey).(*auth.Claims)
	return claims, ok
}
