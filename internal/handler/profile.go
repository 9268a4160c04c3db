package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"

	"github.com/sechive-dev/sechive-web/internal/domain"
	"github.com/sechive-dev/sechive-web/internal/utils"
)

const profilePostsLimit = 20

// ProfileGetHandler renders a user's public profile with their recent posts.
func (h *Handler) ProfileGetHandler(w http.ResponseWriter, r *http.Request) {
	handle := domain.Handle(mux.Vars(r)["handle"])

	var (
		profile domain.Profile
		posts   []domain.Post
	)
	g, _ := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		profile, err = h.APIClient.GetProfile(r, handle)
		return err
	})
	g.Go(func() error {
		var err error
		posts, err = h.APIClient.GetUserPosts(r, handle, profilePostsLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	data := ProfilePageData{
		Profile:   profile,
		AvatarURL: h.Media.Resolve(profile.AvatarURL),
		Posts:     h.renderPosts(posts),
	}
	h.renderTemplate(w, r, "profile.html", data)
}

func (h *Handler) FollowHandler(w http.ResponseWriter, r *http.Request) {
	handle := mux.Vars(r)["handle"]
	if err := h.APIClient.Follow(r, domain.Handle(handle)); err != nil {
		redirectWithError(w, r, "/users/"+handle, err.Error())
		return
	}
	http.Redirect(w, r, "/users/"+handle, http.StatusSeeOther)
}

func (h *Handler) UnfollowHandler(w http.ResponseWriter, r *http.Request) {
	handle := mux.Vars(r)["handle"]
	if err := h.APIClient.Unfollow(r, domain.Handle(handle)); err != nil {
		redirectWithError(w, r, "/users/"+handle, err.Error())
		return
	}
	http.Redirect(w, r, "/users/"+handle, http.StatusSeeOther)
}
