package utils

import (
	"fmt"
	"mediplant-service/internal/pkg/constvars"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.New().String()
}

func GenerateCartSessionID() string {
	return uuid.New().String()
}

// GenerateRegistrationLinkJWT signs a short-lived token that institutions
// embed in the registration links they hand to new patients.
func GenerateRegistrationLinkJWT(institutionID, secret string, expiryHours int) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"institution_id": institutionID,
		"exp":            time.Now().Add(time.Duration(expiryHours) * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func GenerateFileName(prefix, name, fileExtension string) string {
	timestamp := time.Now().Format("20060102_150405.000000000")
	return fmt.Sprintf("%s_%s_%s.%s", prefix, name, timestamp, fileExtension)
}
