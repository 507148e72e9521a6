package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v4"
)

// ParseDisplayPrice converts a Brazilian display price such as "R$ 25,90" or
// "R$ 1.234,56" into centavos. Malformed input is an error, never a silent
// zero, because cart subtotals are derived from these values.
func ParseDisplayPrice(displayPrice string) (int64, error) {
	trimmed := strings.TrimSpace(displayPrice)
	trimmed = strings.TrimPrefix(trimmed, "R$")
	trimmed = strings.TrimSpace(trimmed)
	if trimmed == "" {
		return 0, fmt.Errorf("empty price string %q", displayPrice)
	}

	// "1.234,56" uses '.' for thousands and ',' for cents.
	trimmed = strings.ReplaceAll(trimmed, ".", "")
	parts := strings.Split(trimmed, ",")
	if len(parts) > 2 {
		return 0, fmt.Errorf("malformed price string %q", displayPrice)
	}

	reais, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil || reais < 0 {
		return 0, fmt.Errorf("malformed price string %q", displayPrice)
	}

	var cents int64
	if len(parts) == 2 {
		if len(parts[1]) != 2 {
			return 0, fmt.Errorf("malformed cents in price string %q", displayPrice)
		}
		cents, err = strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("malformed cents in price string %q", displayPrice)
		}
	}

	return reais*100 + cents, nil
}

// FormatDisplayPrice renders centavos back into the "R$ 1.234,56" form.
func FormatDisplayPrice(cents int64) string {
	reais := cents / 100
	remainder := cents % 100

	digits := strconv.FormatInt(reais, 10)
	var grouped strings.Builder
	for i, digit := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(digit)
	}

	return fmt.Sprintf("R$ %s,%02d", grouped.String(), remainder)
}

// ParseRegistrationLinkJWT validates a registration-link token and returns
// the institution it was issued for.
func ParseRegistrationLinkJWT(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid token claims")
	}

	institutionID, ok := claims["institution_id"].(string)
	if !ok || institutionID == "" {
		return "", fmt.Errorf("token missing institution_id claim")
	}

	return institutionID, nil
}
