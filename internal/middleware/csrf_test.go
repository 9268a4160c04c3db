package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestGenerateCSRFToken(t *testing.T) {
	mw := GenerateCSRFToken(CSRFConfig{SecureCookies: false})

	t.Run("sets cookie and context when missing", func(t *testing.T) {
		var tokenInContext string
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenInContext = GetCSRFToken(r)
		})

		w := httptest.NewRecorder()
		mw(inner).ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

		require.NotEmpty(t, tokenInContext)
		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "csrf_token", cookies[0].Name)
		assert.Equal(t, tokenInContext, cookies[0].Value)
	})

	t.Run("reuses existing cookie", func(t *testing.T) {
		var tokenInContext string
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenInContext = GetCSRFToken(r)
		})

		r := httptest.NewRequest("GET", "/", nil)
		r.AddCookie(&http.Cookie{Name: "csrf_token", Value: "existing"})
		w := httptest.NewRecorder()
		mw(inner).ServeHTTP(w, r)

		assert.Equal(t, "existing", tokenInContext)
		assert.Empty(t, w.Result().Cookies())
	})
}

func TestValidateCSRFToken(t *testing.T) {
	mw := ValidateCSRFToken()

	postForm := func(token string, withCookie bool) *httptest.ResponseRecorder {
		form := url.Values{}
		if token != "" {
			form.Set("csrf_token", token)
		}
		r := httptest.NewRequest("POST", "/comments", strings.NewReader(form.Encode()))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		if withCookie {
			r.AddCookie(&http.Cookie{Name: "csrf_token", Value: "secret"})
		}
		w := httptest.NewRecorder()
		mw(okHandler()).ServeHTTP(w, r)
		return w
	}

	t.Run("valid token passes", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, postForm("secret", true).Code)
	})

	t.Run("mismatched token rejected", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, postForm("wrong", true).Code)
	})

	t.Run("missing cookie rejected", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, postForm("secret", false).Code)
	})

	t.Run("GET skips validation", func(t *testing.T) {
		w := httptest.NewRecorder()
		mw(okHandler()).ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
