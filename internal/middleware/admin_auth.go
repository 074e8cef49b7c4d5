package middleware

import (
	"net/http"
	"strings"

	"elite-hub/treinador/internal/auth"
)

// AdminAuthMiddleware guards the /api/v1/admin group. Tokens are minted by
// cmd/admin_token_gen and must carry the admin role.
func AdminAuthMiddleware(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			// With no configured secret every HS256 signature would verify
			// against the empty key, so the gate stays shut.
			if len(secret) == 0 {
				http.Error(w, "Unauthorized. Admin auth not configured", http.StatusUnauthorized)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				http.Error(w, "Unauthorized. Missing bearer token", http.StatusUnauthorized)
				return
			}

			claims, err := auth.ParseAdminToken(strings.TrimPrefix(authHeader, "Bearer "), secret)
			if err != nil {
				http.Error(w, "Unauthorized. Invalid token", http.StatusUnauthorized)
				return
			}

			if claims.Role != auth.RoleAdmin {
				http.Error(w, "Unauthorized. Need admin perms", http.StatusUnauthorized)
				return
			}

			ctx := auth.SetAdminClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
