package http

import (
	"context"
	"net/http"
	"strings"

	"wegorent-backend/internal/security"
)

type contextKey string

const claimsKey contextKey = "partner_claims"

// AuthMiddleware validates the Bearer token and stores the partner claims on
// the request context. Refresh tokens are rejected here; only access tokens
// reach the API.
func AuthMiddleware(tokens security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				respondError(w, security.ErrInvalidToken)
				return
			}

			claims, err := tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				respondError(w, err)
				return
			}
			if claims.Type != security.TokenTypeAccess {
				respondError(w, security.ErrWrongTokenType)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// partnerIDFrom returns the authenticated partner id, or 0 when the request
// skipped the auth middleware.
func partnerIDFrom(r *http.Request) int32 {
	claims, ok := r.Context().Value(claimsKey).(*security.PartnerClaims)
	if !ok {
		return 0
	}
	return claims.PartnerID
}
