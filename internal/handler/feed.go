package handler

import (
	"net/http"
	"strconv"

	"github.com/sechive-dev/sechive-web/internal/domain"
	"github.com/sechive-dev/sechive-web/internal/logger"
	mw "github.com/sechive-dev/sechive-web/internal/middleware"
	"github.com/sechive-dev/sechive-web/internal/utils"
)

const homeFeedKey = "home"

func feedKey(kind domain.PostKind) string {
	if kind == "" {
		return homeFeedKey
	}
	return "kind:" + string(kind)
}

// FeedGetHandler renders the post feed. On a plain revisit (no cursor) a
// fresh session-cached page is served first so the browser can restore the
// previous scroll position without waiting for the API.
func (h *Handler) FeedGetHandler(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	cursor := r.URL.Query().Get("cursor")
	kind := domain.PostKind(r.URL.Query().Get("kind"))

	var data FeedPageData
	data.Kind = kind

	if cursor == "" && user != nil {
		if state, fresh, err := h.SessionCache.GetFeed(user.Id, feedKey(kind), h.Public.FeedCacheTTL); err == nil && fresh {
			data.Posts = h.renderPosts(state.Page.Posts)
			data.NextCursor = state.Page.NextCursor
			data.ScrollOffset = state.ScrollOffset
			h.renderTemplate(w, r, "feed.html", data)
			return
		}
	}

	page, err := h.APIClient.GetFeed(r, cursor, kind, h.Public.FeedPageSize)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if cursor == "" && user != nil {
		if err := h.SessionCache.SaveFeed(user.Id, feedKey(kind), page, 0); err != nil {
			logger.Log.Warn("failed to save feed state", "userId", user.Id, "error", err)
		}
	}

	data.Posts = h.renderPosts(page.Posts)
	data.NextCursor = page.NextCursor
	h.renderTemplate(w, r, "feed.html", data)
}

// FeedPositionHandler records the scroll offset reported by the browser
// before navigation, for restoration on the next feed visit.
func (h *Handler) FeedPositionHandler(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	offset, err := strconv.Atoi(r.FormValue("scroll_offset"))
	if err != nil || offset < 0 {
		http.Error(w, "invalid scroll offset", http.StatusBadRequest)
		return
	}
	kind := domain.PostKind(r.FormValue("kind"))

	if err := h.SessionCache.SaveScroll(user.Id, feedKey(kind), offset); err != nil {
		logger.Log.Warn("failed to save scroll offset", "userId", user.Id, "error", err)
	}
	w.WriteHeader(http.StatusNoContent)
}
