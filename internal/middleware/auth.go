package middleware

import (
	"context"
	"encoding/base64"
	"net/http"

	"github.com/sechive-dev/sechive-web/internal/domain"
	"github.com/sechive-dev/sechive-web/internal/jwt"
)

const (
	AccessTokenCookie = "accessToken"
	flashCookieError  = "flash_error"
)

// Key to store the user claims in the request context
type key int

const UserClaimsKey key = 0

// Auth holds dependencies for authentication middleware. Unauthorized
// browser requests are redirected to /login instead of getting a bare 401.
type Auth struct {
	jwtService    jwt.Service
	secureCookies bool
}

func NewAuth(jwtService jwt.Service, secureCookies bool) *Auth {
	return &Auth{
		jwtService:    jwtService,
		secureCookies: secureCookies,
	}
}

// NeedAuth returns middleware that requires a valid session.
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return a.auth(false)
}

// AdminOnly returns middleware that requires an admin session.
func (a *Auth) AdminOnly() func(http.Handler) http.Handler {
	return a.auth(true)
}

// OptionalAuth populates user context when a valid token is present but
// never redirects.
func (a *Auth) OptionalAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if user := a.extractUser(r); user != nil {
				ctx := context.WithValue(r.Context(), UserClaimsKey, user)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractUser reads and validates the access-token cookie. Returns nil when
// the request carries no usable session.
func (a *Auth) extractUser(r *http.Request) *domain.User {
	cookie, err := r.Cookie(AccessTokenCookie)
	if err != nil || cookie.Value == "" {
		return nil
	}
	user, err := a.jwtService.DecodeToken(cookie.Value)
	if err != nil {
		return nil
	}
	return user
}

func (a *Auth) auth(adminOnly bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := a.extractUser(r)
			if user == nil {
				a.redirectToLogin(w, r, "Please log in to continue")
				return
			}
			if adminOnly && !user.Admin {
				a.redirectToLogin(w, r, "Access denied")
				return
			}

			ctx := context.WithValue(r.Context(), UserClaimsKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (a *Auth) redirectToLogin(w http.ResponseWriter, r *http.Request, errorMsg string) {
	// Flash message travels base64-encoded to survive special characters.
	encodedMessage := base64.StdEncoding.EncodeToString([]byte(errorMsg))
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieError,
		Value:    encodedMessage,
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		Secure:   a.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// GetUserFromContext retrieves the user from the context
func GetUserFromContext(r *http.Request) *domain.User {
	user, ok := r.Context().Value(UserClaimsKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}

// PopFlashError reads and clears the flash error cookie set by redirects.
func PopFlashError(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(flashCookieError)
	if err != nil || cookie.Value == "" {
		return ""
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieError,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	decoded, err := base64.StdEncoding.DecodeString(cookie.Value)
	if err != nil {
		return ""
	}
	return string(decoded)
}
