package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sechive-dev/sechive-web/internal/utils"
)

func (h *Handler) GroupsGetHandler(w http.ResponseWriter, r *http.Request) {
	groups, err := h.APIClient.GetGroups(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	h.renderTemplate(w, r, "groups.html", GroupsPageData{Groups: groups})
}

func (h *Handler) GroupGetHandler(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	cursor := r.URL.Query().Get("cursor")

	group, err := h.APIClient.GetGroup(r, slug)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	page, err := h.APIClient.GetGroupFeed(r, slug, cursor, h.Public.FeedPageSize)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	data := GroupPageData{
		Group:      group,
		Posts:      h.renderPosts(page.Posts),
		NextCursor: page.NextCursor,
	}
	h.renderTemplate(w, r, "group.html", data)
}

func (h *Handler) GroupJoinHandler(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	if err := h.APIClient.JoinGroup(r, slug); err != nil {
		redirectWithError(w, r, "/groups/"+slug, err.Error())
		return
	}
	redirectWithSuccess(w, r, "/groups/"+slug, "Joined")
}

func (h *Handler) GroupLeaveHandler(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	if err := h.APIClient.LeaveGroup(r, slug); err != nil {
		redirectWithError(w, r, "/groups/"+slug, err.Error())
		return
	}
	redirectWithSuccess(w, r, "/groups/"+slug, "Left the group")
}
