package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"

	"github.com/sechive-dev/sechive-web/internal/api"
	"github.com/sechive-dev/sechive-web/internal/commenttree"
	"github.com/sechive-dev/sechive-web/internal/domain"
	"github.com/sechive-dev/sechive-web/internal/utils"
)

// PostGetHandler renders a post page with its reply tree. The post and its
// comments are fetched concurrently.
func (h *Handler) PostGetHandler(w http.ResponseWriter, r *http.Request) {
	postId, err := parsePostId(mux.Vars(r)["postId"])
	if err != nil {
		http.Error(w, "Invalid post ID", http.StatusBadRequest)
		return
	}

	var (
		post     domain.Post
		comments []domain.Comment
	)
	g, _ := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		post, err = h.APIClient.GetPost(r, postId)
		return err
	})
	g.Go(func() error {
		var err error
		comments, err = h.APIClient.GetComments(r, postId)
		return err
	})
	if err := g.Wait(); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	roots := commenttree.Build(comments)
	data := PostPageData{
		Post:          h.renderPost(post),
		Thread:        h.renderThread(roots),
		CommentCount:  len(comments),
		ThreadVersion: commenttree.Version(comments),
		PollInterval:  int(h.Public.PollInterval.Seconds()),
	}
	h.renderTemplate(w, r, "post.html", data)
}

// ThreadFragmentHandler re-renders only the reply tree of a post. The client
// sends the version token it last saw; when the thread is positionally
// unchanged the handler answers 304 and the client keeps its DOM as is.
func (h *Handler) ThreadFragmentHandler(w http.ResponseWriter, r *http.Request) {
	postId, err := parsePostId(mux.Vars(r)["postId"])
	if err != nil {
		http.Error(w, "Invalid post ID", http.StatusBadRequest)
		return
	}

	comments, err := h.APIClient.GetComments(r, postId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	version := commenttree.Version(comments)
	if since := r.URL.Query().Get("version"); since != "" && since == version {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	data := ThreadFragmentData{
		PostId:        postId,
		Thread:        h.renderThread(commenttree.Build(comments)),
		ThreadVersion: version,
		Common:        h.initCommonTemplateData(w, r),
	}
	w.Header().Set("X-Thread-Version", version)
	h.renderPartial(w, "post.html", "thread", data)
}

func (h *Handler) PostCreateGetHandler(w http.ResponseWriter, r *http.Request) {
	h.renderTemplate(w, r, "post_create.html", nil)
}

func (h *Handler) PostCreateHandler(w http.ResponseWriter, r *http.Request) {
	req := api.CreatePostRequest{
		Title: strings.TrimSpace(r.FormValue("title")),
		Body:  r.FormValue("body"),
		Kind:  domain.PostKind(r.FormValue("kind")),
	}
	if groupRaw := r.FormValue("group_id"); groupRaw != "" {
		groupId, err := parseId(groupRaw)
		if err != nil {
			redirectWithError(w, r, "/posts/new", "Invalid group")
			return
		}
		req.GroupId = &groupId
	}

	if err := utils.ValidateStruct(req); err != nil {
		redirectWithError(w, r, "/posts/new", "Title, body and kind are required")
		return
	}
	if len(req.Title) > h.Public.PostTitleMaxLen {
		redirectWithError(w, r, "/posts/new", "Title is too long")
		return
	}
	if len(req.Body) > h.Public.PostBodyMaxLen {
		redirectWithError(w, r, "/posts/new", "Body is too long")
		return
	}

	postId, err := h.APIClient.CreatePost(r, req)
	if err != nil {
		redirectWithError(w, r, "/posts/new", err.Error())
		return
	}

	http.Redirect(w, r, "/posts/"+strconv.FormatInt(postId, 10), http.StatusSeeOther)
}

// VoteHandler casts or retracts a vote and returns the fresh tally as JSON,
// letting the page update the score in place.
func (h *Handler) VoteHandler(w http.ResponseWriter, r *http.Request) {
	postId, err := parsePostId(mux.Vars(r)["postId"])
	if err != nil {
		http.Error(w, "Invalid post ID", http.StatusBadRequest)
		return
	}

	direction, err := strconv.Atoi(r.FormValue("direction"))
	if err != nil || direction < -1 || direction > 1 {
		http.Error(w, "Invalid vote direction", http.StatusBadRequest)
		return
	}

	result, err := h.APIClient.Vote(r, postId, direction)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(result)
}
