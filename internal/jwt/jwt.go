package jwt

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sechive-dev/sechive-web/internal/domain"
	internal_errors "github.com/sechive-dev/sechive-web/internal/errors"
)

// Service decodes access tokens minted by the API. The client never signs
// tokens itself; it only verifies the shared-secret signature and reads the
// claims needed for rendering.
type Service interface {
	DecodeToken(jwtStr string) (*domain.User, error)
}

type Jwt struct {
	secretKey string
}

func New(secretKey string) Service {
	return &Jwt{secretKey}
}

func (j *Jwt) DecodeToken(jwtStr string) (*domain.User, error) {
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, &internal_errors.ErrorWithStatusCode{
				Message:    fmt.Sprintf("Unexpected signing method: %v", token.Header["alg"]),
				StatusCode: http.StatusUnauthorized,
			}
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return nil, &internal_errors.ErrorWithStatusCode{Message: "Invalid token signature", StatusCode: http.StatusUnauthorized}
	}
	if !token.Valid {
		return nil, &internal_errors.ErrorWithStatusCode{Message: "Invalid access token", StatusCode: http.StatusUnauthorized}
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, &internal_errors.ErrorWithStatusCode{Message: "Invalid token claims", StatusCode: http.StatusUnauthorized}
	}

	uidFloat, ok := claims["uid"].(float64)
	if !ok {
		return nil, &internal_errors.ErrorWithStatusCode{Message: "Invalid token claims", StatusCode: http.StatusUnauthorized}
	}
	handle, ok := claims["handle"].(string)
	if !ok {
		return nil, &internal_errors.ErrorWithStatusCode{Message: "Invalid token claims", StatusCode: http.StatusUnauthorized}
	}
	isAdmin, _ := claims["admin"].(bool)

	user := &domain.User{
		Id:     int64(uidFloat),
		Handle: handle,
		Admin:  isAdmin,
	}
	if createdAt, ok := claims["created_at"].(float64); ok {
		user.CreatedAt = time.Unix(int64(createdAt), 0)
	}
	return user, nil
}
