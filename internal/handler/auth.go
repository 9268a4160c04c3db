package handler

import (
	"io"
	"net/http"
	"strings"

	mw "github.com/sechive-dev/sechive-web/internal/middleware"
	"github.com/sechive-dev/sechive-web/internal/utils"
)

func (h *Handler) LoginGetHandler(w http.ResponseWriter, r *http.Request) {
	if mw.GetUserFromContext(r) != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.renderTemplate(w, r, "login.html", nil)
}

// LoginHandler authenticates against the API and relays its access-token
// cookie to the browser, rewriting the security attributes for our origin.
func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	if email == "" || password == "" {
		redirectWithError(w, r, "/login", "Email and password are required")
		return
	}

	resp, err := h.APIClient.Login(r.Context(), email, password)
	if err != nil {
		redirectWithError(w, r, "/login", "Backend unavailable, try again later")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		msg := strings.TrimSpace(string(body))
		if msg == "" {
			msg = "Login failed"
		}
		redirectWithError(w, r, "/login", msg)
		return
	}

	if !h.relayAccessToken(w, resp) {
		redirectWithError(w, r, "/login", "Login failed")
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) RegisterGetHandler(w http.ResponseWriter, r *http.Request) {
	if mw.GetUserFromContext(r) != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.renderTemplate(w, r, "register.html", nil)
}

func (h *Handler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	handle := strings.TrimSpace(r.FormValue("handle"))
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	if handle == "" || email == "" || password == "" {
		redirectWithError(w, r, "/register", "Handle, email and password are required")
		return
	}

	resp, err := h.APIClient.Register(r.Context(), handle, email, password)
	if err != nil {
		redirectWithError(w, r, "/register", "Backend unavailable, try again later")
		return
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Some deployments log the user in on registration; relay the cookie
		// when it is there.
		if h.relayAccessToken(w, resp) {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		redirectWithSuccess(w, r, "/login", "Account created, please log in")
	default:
		body, _ := io.ReadAll(resp.Body)
		msg := strings.TrimSpace(string(body))
		if msg == "" {
			msg = "Registration failed"
		}
		redirectWithError(w, r, "/register", msg)
	}
}

func (h *Handler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.APIClient.Logout(r); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     mw.AccessTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.Public.SecureCookies,
	})
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// relayAccessToken copies the API's access-token cookie onto our response.
func (h *Handler) relayAccessToken(w http.ResponseWriter, resp *http.Response) bool {
	for _, cookie := range resp.Cookies() {
		if cookie.Name != mw.AccessTokenCookie {
			continue
		}
		http.SetCookie(w, &http.Cookie{
			Name:     cookie.Name,
			Value:    cookie.Value,
			Path:     "/",
			MaxAge:   int(h.Public.JwtTTL.Seconds()),
			HttpOnly: true,
			Secure:   h.Public.SecureCookies,
			SameSite: http.SameSiteLaxMode,
		})
		return true
	}
	return false
}
