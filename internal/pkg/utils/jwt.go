package utils

import (
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/spf13/viper"

	"github.com/andika-123140096/website-desa/internal/domain"
	"github.com/andika-123140096/website-desa/internal/pkg/constants"
)

// AuthClaims is the bearer-token payload. IDDusun is set only for
// kepala dusun and ketua RT accounts.
type AuthClaims struct {
	UserID  string      `json:"user_id"`
	Role    domain.Role `json:"role"`
	IDDusun *int64      `json:"id_dusun,omitempty"`
	jwt.StandardClaims
}

func secret() []byte {
	return []byte(viper.GetString(constants.ViperJWTSecret))
}

func NewAuthToken(userID string, role domain.Role, idDusun *int64, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := AuthClaims{
		UserID:  userID,
		Role:    role,
		IDDusun: idDusun,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(ttl).Unix(),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}

func ParseAuthToken(raw string) (*AuthClaims, error) {
	claims := &AuthClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, constants.ErrInvalidAuthToken
		}
		return secret(), nil
	})
	if err != nil || !token.Valid {
		return nil, constants.ErrInvalidAuthToken
	}

	return claims, nil
}
