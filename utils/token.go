package utils

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
)

var jwtSecret []byte

func init() {
    // Load the .env file
    if err := godotenv.Load(); err != nil {
        // It's okay if the .env file isn't found; environment variables may be set elsewhere
        log.Println("No .env file found or error loading .env file:", err)
    }

    secret := os.Getenv("JWT_SECRET")
    if secret == "" {
        log.Println("JWT_SECRET is not set, falling back to the development secret")
        secret = "feemaster-dev-secret"
    }
    jwtSecret = []byte(secret)
}

// GenerateToken creates a signed access token carrying the caller's role.
func GenerateToken(username, role string) (string, error) {
    token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
        "sub":  username,
        "role": role,
        "exp":  time.Now().Add(72 * time.Hour).Unix(),
    })

    return token.SignedString(jwtSecret)
}

// ParseToken validates a token string and returns the role claim.
func ParseToken(tokenString string) (string, error) {
    token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
        return jwtSecret, nil
    })
    if err != nil || !token.Valid {
        return "", errors.New("invalid token")
    }

    claims, ok := token.Claims.(jwt.MapClaims)
    if !ok {
        return "", errors.New("invalid token claims")
    }

    role, ok := claims["role"].(string)
    if !ok || role == "" {
        return "", errors.New("missing role claim")
    }

    return role, nil
}
