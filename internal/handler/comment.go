package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/sechive-dev/sechive-web/internal/api"
	"github.com/sechive-dev/sechive-web/internal/domain"
	"github.com/sechive-dev/sechive-web/internal/utils"
)

// CommentCreateHandler posts a reply and redirects back to the thread.
// An empty parent_id field means a top-level comment.
func (h *Handler) CommentCreateHandler(w http.ResponseWriter, r *http.Request) {
	postId, err := parsePostId(mux.Vars(r)["postId"])
	if err != nil {
		http.Error(w, "Invalid post ID", http.StatusBadRequest)
		return
	}
	postURL := fmt.Sprintf("/posts/%d", postId)

	body := strings.TrimSpace(r.FormValue("body"))
	if body == "" {
		redirectWithError(w, r, postURL, "Comment cannot be empty")
		return
	}
	if len(body) > h.Public.CommentMaxLen {
		redirectWithError(w, r, postURL, "Comment is too long")
		return
	}

	req := api.CreateCommentRequest{Body: body}
	if parentRaw := r.FormValue("parent_id"); parentRaw != "" {
		parentId, err := parseId(parentRaw)
		if err != nil {
			redirectWithError(w, r, postURL, "Invalid parent comment")
			return
		}
		cid := domain.CommentId(parentId)
		req.ParentId = &cid
	}

	commentId, err := h.APIClient.CreateComment(r, postId, req)
	if err != nil {
		redirectWithError(w, r, postURL, err.Error())
		return
	}

	http.Redirect(w, r, fmt.Sprintf("%s#comment-%d", postURL, commentId), http.StatusSeeOther)
}

func (h *Handler) CommentUpdateHandler(w http.ResponseWriter, r *http.Request) {
	commentId, err := parseId(mux.Vars(r)["commentId"])
	if err != nil {
		http.Error(w, "Invalid comment ID", http.StatusBadRequest)
		return
	}

	postId, err := parsePostId(r.FormValue("post_id"))
	if err != nil {
		http.Error(w, "Invalid post ID", http.StatusBadRequest)
		return
	}
	postURL := fmt.Sprintf("/posts/%d", postId)

	body := strings.TrimSpace(r.FormValue("body"))
	if body == "" {
		redirectWithError(w, r, postURL, "Comment cannot be empty")
		return
	}
	if len(body) > h.Public.CommentMaxLen {
		redirectWithError(w, r, postURL, "Comment is too long")
		return
	}

	if err := h.APIClient.UpdateComment(r, commentId, api.UpdateCommentRequest{Body: body}); err != nil {
		redirectWithError(w, r, postURL, err.Error())
		return
	}

	http.Redirect(w, r, fmt.Sprintf("%s#comment-%d", postURL, commentId), http.StatusSeeOther)
}

// CommentDeleteHandler removes a comment. The API keeps the node as a
// tombstone when it still has replies, so the tree shape survives.
func (h *Handler) CommentDeleteHandler(w http.ResponseWriter, r *http.Request) {
	commentId, err := parseId(mux.Vars(r)["commentId"])
	if err != nil {
		http.Error(w, "Invalid comment ID", http.StatusBadRequest)
		return
	}

	postId, err := parsePostId(r.FormValue("post_id"))
	if err != nil {
		http.Error(w, "Invalid post ID", http.StatusBadRequest)
		return
	}
	postURL := fmt.Sprintf("/posts/%d", postId)

	if err := h.APIClient.DeleteComment(r, commentId); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	redirectWithSuccess(w, r, postURL, "Comment deleted")
}
