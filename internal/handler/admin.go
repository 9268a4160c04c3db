package handler

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/sechive-dev/sechive-web/internal/utils"
)

// AdminGetHandler renders the moderation console with open reports.
func (h *Handler) AdminGetHandler(w http.ResponseWriter, r *http.Request) {
	reports, err := h.APIClient.GetReports(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	h.renderTemplate(w, r, "admin.html", AdminPageData{Reports: reports})
}

func (h *Handler) AdminRemovePostHandler(w http.ResponseWriter, r *http.Request) {
	postId, err := parsePostId(mux.Vars(r)["postId"])
	if err != nil {
		http.Error(w, "Invalid post ID", http.StatusBadRequest)
		return
	}
	if err := h.APIClient.RemovePost(r, postId); err != nil {
		redirectWithError(w, r, "/admin", err.Error())
		return
	}
	redirectWithSuccess(w, r, "/admin", "Post removed")
}

func (h *Handler) AdminRemoveCommentHandler(w http.ResponseWriter, r *http.Request) {
	commentId, err := parseId(mux.Vars(r)["commentId"])
	if err != nil {
		http.Error(w, "Invalid comment ID", http.StatusBadRequest)
		return
	}
	if err := h.APIClient.RemoveComment(r, commentId); err != nil {
		redirectWithError(w, r, "/admin", err.Error())
		return
	}
	redirectWithSuccess(w, r, "/admin", "Comment removed")
}

func (h *Handler) AdminSuspendUserHandler(w http.ResponseWriter, r *http.Request) {
	userId, err := parseId(mux.Vars(r)["userId"])
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}
	reason := strings.TrimSpace(r.FormValue("reason"))
	if err := h.APIClient.SuspendUser(r, userId, reason); err != nil {
		redirectWithError(w, r, "/admin", err.Error())
		return
	}
	redirectWithSuccess(w, r, "/admin", "User suspended")
}

func (h *Handler) AdminUnsuspendUserHandler(w http.ResponseWriter, r *http.Request) {
	userId, err := parseId(mux.Vars(r)["userId"])
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}
	if err := h.APIClient.UnsuspendUser(r, userId); err != nil {
		redirectWithError(w, r, "/admin", err.Error())
		return
	}
	redirectWithSuccess(w, r, "/admin", "User unsuspended")
}
