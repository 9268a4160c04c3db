package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sechive-dev/sechive-web/internal/domain"
	"github.com/sechive-dev/sechive-web/internal/jwt"
)

const testSecret = "auth-test-secret"

func token(t *testing.T, admin bool) string {
	t.Helper()
	claims := gojwt.MapClaims{
		"uid":    float64(7),
		"handle": "ava",
		"admin":  admin,
		"exp":    time.Now().Add(time.Hour).Unix(),
	}
	s, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return s
}

func userEcho(captured **domain.User) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*captured = GetUserFromContext(r)
		w.WriteHeader(http.StatusOK)
	})
}

func TestNeedAuth(t *testing.T) {
	auth := NewAuth(jwt.New(testSecret), false)

	t.Run("valid cookie passes and populates context", func(t *testing.T) {
		var user *domain.User
		r := httptest.NewRequest("GET", "/", nil)
		r.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: token(t, false)})
		w := httptest.NewRecorder()

		auth.NeedAuth()(userEcho(&user)).ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, user)
		assert.Equal(t, int64(7), user.Id)
		assert.Equal(t, "ava", user.Handle)
	})

	t.Run("missing cookie redirects to login", func(t *testing.T) {
		var user *domain.User
		w := httptest.NewRecorder()

		auth.NeedAuth()(userEcho(&user)).ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
		assert.Nil(t, user)
	})

	t.Run("garbage token redirects to login", func(t *testing.T) {
		var user *domain.User
		r := httptest.NewRequest("GET", "/", nil)
		r.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "garbage"})
		w := httptest.NewRecorder()

		auth.NeedAuth()(userEcho(&user)).ServeHTTP(w, r)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Nil(t, user)
	})
}

func TestAdminOnly(t *testing.T) {
	auth := NewAuth(jwt.New(testSecret), false)

	t.Run("admin passes", func(t *testing.T) {
		var user *domain.User
		r := httptest.NewRequest("GET", "/admin", nil)
		r.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: token(t, true)})
		w := httptest.NewRecorder()

		auth.AdminOnly()(userEcho(&user)).ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, user)
		assert.True(t, user.Admin)
	})

	t.Run("non-admin redirected", func(t *testing.T) {
		var user *domain.User
		r := httptest.NewRequest("GET", "/admin", nil)
		r.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: token(t, false)})
		w := httptest.NewRecorder()

		auth.AdminOnly()(userEcho(&user)).ServeHTTP(w, r)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Nil(t, user)
	})
}

func TestOptionalAuth(t *testing.T) {
	auth := NewAuth(jwt.New(testSecret), false)

	t.Run("anonymous request still served", func(t *testing.T) {
		var user *domain.User
		w := httptest.NewRecorder()

		auth.OptionalAuth()(userEcho(&user)).ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Nil(t, user)
	})

	t.Run("valid session populates context", func(t *testing.T) {
		var user *domain.User
		r := httptest.NewRequest("GET", "/", nil)
		r.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: token(t, false)})
		w := httptest.NewRecorder()

		auth.OptionalAuth()(userEcho(&user)).ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, user)
	})
}

func TestPopFlashError(t *testing.T) {
	auth := NewAuth(jwt.New(testSecret), false)

	// Trigger a redirect to capture the flash cookie.
	w := httptest.NewRecorder()
	auth.NeedAuth()(okHandler()).ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	var flash *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "flash_error" {
			flash = c
		}
	}
	require.NotNil(t, flash)

	r := httptest.NewRequest("GET", "/login", nil)
	r.AddCookie(flash)
	w2 := httptest.NewRecorder()

	assert.Equal(t, "Please log in to continue", PopFlashError(w2, r))
}
