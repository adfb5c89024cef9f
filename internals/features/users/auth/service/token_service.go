// file: internals/features/users/auth/service/token_service.go
package service

import (
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"bimbelku_backend/internals/configs"
	"bimbelku_backend/internals/features/users/auth/model"
)

// IssueAccessToken — JWT HMAC dengan klaim sub/role/name.
// TTL dari env JWT_TTL_HOURS (default 24 jam).
func IssueAccessToken(user model.UserModel) (string, time.Time, error) {
	ttl := 24
	if val := os.Getenv("JWT_TTL_HOURS"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			ttl = parsed
		}
	}

	expiresAt := time.Now().Add(time.Duration(ttl) * time.Hour)
	claims := jwt.MapClaims{
		"sub":  user.UserID.String(),
		"role": user.UsersRole,
		"name": user.UsersName,
		"iat":  time.Now().Unix(),
		"exp":  expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}
