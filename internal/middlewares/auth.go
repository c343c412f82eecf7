package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mtsfitness/fitness-backend/internal/logger"
	"github.com/mtsfitness/fitness-backend/internal/oidc"
)

// ClaimsResolver resolves the authenticated claims carried by a request,
// returning (nil, nil) when the request has no valid session.
type ClaimsResolver interface {
	FromRequest(ctx context.Context, r *http.Request) (*oidc.Claims, error)
}

// AuthMiddleware returns a middleware that requires an authenticated session
// and stores the resolved claims in the request context.
func AuthMiddleware(resolver ClaimsResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			claims, err := resolver.FromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("failed to resolve session", "err", err)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]string{"message": "Internal Server Error"})
				return
			}
			if claims == nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"message": "Not authenticated"})
				return
			}

			next.ServeHTTP(w, r.WithContext(setClaimsToContext(ctx, claims)))
		})
	}
}

// claimsContextKey is an unexported type for claims keys in context
type claimsContextKey struct{}

var claimsKey = claimsContextKey{}

// setClaimsToContext stores claims in the context
func setClaimsToContext(ctx context.Context, claims *oidc.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// GetClaimsFromContext retrieves the authenticated claims from the context.
// Returns nil if the request was not authenticated.
func GetClaimsFromContext(ctx context.Context) *oidc.Claims {
	claims, _ := ctx.Value(claimsKey).(*oidc.Claims)
	return claims
}
