package apiclient

import (
	"fmt"
	"net/http"

	"github.com/sechive-dev/sechive-web/internal/domain"
	internal_errors "github.com/sechive-dev/sechive-web/internal/errors"
	"github.com/sechive-dev/sechive-web/internal/utils"
)

func (c *APIClient) GetGroups(r *http.Request) ([]domain.Group, error) {
	resp, err := c.do(r.Context(), "GET", "/v1/groups", nil, r.Cookies()...)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &internal_errors.ErrorWithStatusCode{
			Message: "failed to load groups", StatusCode: resp.StatusCode,
		}
	}

	var response struct {
		Groups []domain.Group `json:"groups"`
	}
	if err := utils.Decode(resp.Body, &response); err != nil {
		return nil, fmt.Errorf("cannot decode groups response: %w", err)
	}
	return response.Groups, nil
}

func (c *APIClient) GetGroup(r *http.Request, slug string) (domain.Group, error) {
	var group domain.Group
	path := fmt.Sprintf("/v1/groups/%s", slug)
	resp, err := c.do(r.Context(), "GET", path, nil, r.Cookies()...)
	if err != nil {
		return group, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return group, &internal_errors.ErrorWithStatusCode{
			Message:    fmt.Sprintf("group %s not found", slug),
			StatusCode: resp.StatusCode,
		}
	}

	if err := utils.Decode(resp.Body, &group); err != nil {
		return group, fmt.Errorf("cannot decode group response: %w", err)
	}
	return group, nil
}

// GetGroupFeed fetches the post feed scoped to one group.
func (c *APIClient) GetGroupFeed(r *http.Request, slug, cursor string, limit int) (domain.PostPage, error) {
	var page domain.PostPage
	path := fmt.Sprintf("/v1/groups/%s/posts?limit=%d", slug, limit)
	if cursor != "" {
		path += "&cursor=" + cursor
	}
	resp, err := c.do(r.Context(), "GET", path, nil, r.Cookies()...)
	if err != nil {
		return page, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return page, &internal_errors.ErrorWithStatusCode{
			Message:    fmt.Sprintf("feed of group %s not available", slug),
			StatusCode: resp.StatusCode,
		}
	}

	if err := utils.Decode(resp.Body, &page); err != nil {
		return page, fmt.Errorf("cannot decode group feed response: %w", err)
	}
	return page, nil
}

func (c *APIClient) JoinGroup(r *http.Request, slug string) error {
	return c.setMembership(r, slug, "POST")
}

func (c *APIClient) LeaveGroup(r *http.Request, slug string) error {
	return c.setMembership(r, slug, "DELETE")
}

func (c *APIClient) setMembership(r *http.Request, slug, method string) error {
	path := fmt.Sprintf("/v1/groups/%s/membership", slug)
	resp, err := c.do(r.Context(), method, path, nil, r.Cookies()...)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return drainError("update group membership", resp)
	}
	return nil
}
