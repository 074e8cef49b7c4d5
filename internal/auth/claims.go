package auth

import (
	"context"
	"os"

	"github.com/golang-jwt/jwt/v5"
)

const RoleAdmin = "admin"

// AdminClaims is carried by the bearer tokens issued to staff operating the
// admin panel. Athletes never hold tokens; their flow starts at /login.
type AdminClaims struct {
	ProfileID string `json:"profile_id"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

type claimsContextKey struct{}

func SetAdminClaims(ctx context.Context, claims *AdminClaims) context.Context {
	return context.WithValue(ctx, claimsContextKey{}, claims)
}

func GetAdminClaims(ctx context.Context) *AdminClaims {
	claims, _ := ctx.Value(claimsContextKey{}).(*AdminClaims)
	return claims
}

// Secret returns the HMAC signing secret for admin tokens.
func Secret() []byte {
	return []byte(os.Getenv("ADMIN_JWT_SECRET"))
}

// ParseAdminToken validates a signed token string and returns its claims.
func ParseAdminToken(tokenStr string, secret []byte) (*AdminClaims, error) {
	claims := &AdminClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}
