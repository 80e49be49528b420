// Command admintoken mints an admin JWT for the confirmation and stats
// endpoints. Intended for operators; tokens expire after 24 hours.
package main

import (
	"fmt"
	"log"
	"time"

	"dzpay/internal/config"
	"dzpay/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

func main() {
	config.LoadEnv()

	secret := config.GetEnv("JWT_SECRET", "")
	if secret == "" {
		log.Fatal("JWT_SECRET must be set in environment")
	}

	now := time.Now()
	claims := models.AdminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
		},
		Role:        "admin",
		Permissions: models.DefaultAdminPermissions(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		log.Fatal("Failed to sign token:", err)
	}

	fmt.Println(token)
}
