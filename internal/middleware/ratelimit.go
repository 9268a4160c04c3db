package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/sechive-dev/sechive-web/internal/ratelimiter"
	"github.com/sechive-dev/sechive-web/internal/utils"
)

// RateLimit limits requests per identity. Admins are exempt.
func RateLimit(rl *ratelimiter.IdentityLimiter, getIdentity func(r *http.Request) (string, error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if user := GetUserFromContext(r); user != nil && user.Admin {
				next.ServeHTTP(w, r)
				return
			}

			identity, err := getIdentity(r)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}
			if !rl.Allow(identity) {
				http.Error(w, "Rate limit exceeded, try again later", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// GetUserIdentity derives a rate-limit identity from the authenticated user.
// Possible only after auth middleware has run.
func GetUserIdentity(r *http.Request) (string, error) {
	user := GetUserFromContext(r)
	if user == nil {
		return "", errors.New("can't get user id")
	}
	return fmt.Sprintf("user_%d", user.Id), nil
}

// GetIPIdentity derives a rate-limit identity from the client IP.
func GetIPIdentity(r *http.Request) (string, error) {
	ip, err := utils.GetIP(r)
	if err != nil {
		return "", err
	}
	return "ip_" + ip, nil
}
