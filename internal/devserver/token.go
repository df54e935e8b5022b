package devserver

import (
	"errors"
	"time"

	"campushub_client/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// Claims - полезная нагрузка bearer-токена dev-сервера
type Claims struct {
	UserID   string          `json:"userId"`
	UserType models.UserType `json:"userType"`
	jwt.RegisteredClaims
}

// GenerateToken выпускает HS256 access token
func GenerateToken(secret string, ttl time.Duration, userID string, userType models.UserType) (string, error) {
	claims := &Claims{
		UserID:   userID,
		UserType: userType,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken проверяет подпись и срок действия токена
func ParseToken(secret, tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
