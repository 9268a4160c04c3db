package apiclient

import (
	"fmt"
	"net/http"

	"github.com/sechive-dev/sechive-web/internal/domain"
	internal_errors "github.com/sechive-dev/sechive-web/internal/errors"
	"github.com/sechive-dev/sechive-web/internal/utils"
)

func (c *APIClient) GetProfile(r *http.Request, handle domain.Handle) (domain.Profile, error) {
	var profile domain.Profile
	path := fmt.Sprintf("/v1/users/%s", handle)
	resp, err := c.do(r.Context(), "GET", path, nil, r.Cookies()...)
	if err != nil {
		return profile, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return profile, &internal_errors.ErrorWithStatusCode{
			Message:    fmt.Sprintf("user %s not found", handle),
			StatusCode: resp.StatusCode,
		}
	}

	if err := utils.Decode(resp.Body, &profile); err != nil {
		return profile, fmt.Errorf("cannot decode profile response: %w", err)
	}
	return profile, nil
}

// GetUserPosts fetches a user's recent posts for the profile page.
func (c *APIClient) GetUserPosts(r *http.Request, handle domain.Handle, limit int) ([]domain.Post, error) {
	path := fmt.Sprintf("/v1/users/%s/posts?limit=%d", handle, limit)
	resp, err := c.do(r.Context(), "GET", path, nil, r.Cookies()...)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &internal_errors.ErrorWithStatusCode{
			Message:    fmt.Sprintf("posts of %s not available", handle),
			StatusCode: resp.StatusCode,
		}
	}

	var page domain.PostPage
	if err := utils.Decode(resp.Body, &page); err != nil {
		return nil, fmt.Errorf("cannot decode user posts response: %w", err)
	}
	return page.Posts, nil
}

func (c *APIClient) Follow(r *http.Request, handle domain.Handle) error {
	return c.setFollow(r, handle, "POST")
}

func (c *APIClient) Unfollow(r *http.Request, handle domain.Handle) error {
	return c.setFollow(r, handle, "DELETE")
}

func (c *APIClient) setFollow(r *http.Request, handle domain.Handle, method string) error {
	path := fmt.Sprintf("/v1/users/%s/follow", handle)
	resp, err := c.do(r.Context(), method, path, nil, r.Cookies()...)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return drainError("update follow state", resp)
	}
	return nil
}
