package handler

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/sechive-dev/sechive-web/internal/domain"
)

// redirectWithError redirects back to targetURL with the error message in
// the query string, where the next render picks it up.
func redirectWithError(w http.ResponseWriter, r *http.Request, targetURL, errMsg string) {
	u, err := url.Parse(targetURL)
	if err != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	q := u.Query()
	q.Set("error", errMsg)
	u.RawQuery = q.Encode()
	http.Redirect(w, r, u.String(), http.StatusSeeOther)
}

func redirectWithSuccess(w http.ResponseWriter, r *http.Request, targetURL, msg string) {
	u, err := url.Parse(targetURL)
	if err != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	q := u.Query()
	q.Set("success", msg)
	u.RawQuery = q.Encode()
	http.Redirect(w, r, u.String(), http.StatusSeeOther)
}

// parseMessagesFromQuery extracts flash messages passed via redirect.
func parseMessagesFromQuery(r *http.Request) (errMsg, successMsg string) {
	return r.URL.Query().Get("error"), r.URL.Query().Get("success")
}

func parseId(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}

func parsePostId(raw string) (domain.PostId, error) {
	return parseId(raw)
}
