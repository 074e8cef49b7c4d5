package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"elite-hub/treinador/internal/auth"

	"github.com/golang-jwt/jwt/v5"
)

func main() {
	profileID := flag.String("profile", "", "admin profile id to embed in the token")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	secret := os.Getenv("ADMIN_JWT_SECRET")
	if secret == "" {
		log.Fatal("ADMIN_JWT_SECRET is not set")
	}

	claims := auth.AdminClaims{
		ProfileID: *profileID,
		Role:      auth.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(*ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		log.Fatalf("sign token: %v", err)
	}

	fmt.Println("Admin token:", signed)
}
