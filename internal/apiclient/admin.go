package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sechive-dev/sechive-web/internal/api"
	"github.com/sechive-dev/sechive-web/internal/domain"
	internal_errors "github.com/sechive-dev/sechive-web/internal/errors"
	"github.com/sechive-dev/sechive-web/internal/utils"
)

// Admin moderation endpoints. All of them require an admin token; the API
// enforces that, the client just forwards cookies.

func (c *APIClient) GetReports(r *http.Request) ([]api.Report, error) {
	resp, err := c.do(r.Context(), "GET", "/v1/admin/reports", nil, r.Cookies()...)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &internal_errors.ErrorWithStatusCode{
			Message: "failed to load reports", StatusCode: resp.StatusCode,
		}
	}

	var response api.ReportsResponse
	if err := utils.Decode(resp.Body, &response); err != nil {
		return nil, fmt.Errorf("cannot decode reports response: %w", err)
	}
	return response.Reports, nil
}

func (c *APIClient) RemovePost(r *http.Request, postId domain.PostId) error {
	path := fmt.Sprintf("/v1/admin/posts/%d", postId)
	return c.adminDelete(r, path, "remove post")
}

func (c *APIClient) RemoveComment(r *http.Request, commentId domain.CommentId) error {
	path := fmt.Sprintf("/v1/admin/comments/%d", commentId)
	return c.adminDelete(r, path, "remove comment")
}

func (c *APIClient) adminDelete(r *http.Request, path, action string) error {
	resp, err := c.do(r.Context(), "DELETE", path, nil, r.Cookies()...)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return drainError(action, resp)
	}
	return nil
}

func (c *APIClient) SuspendUser(r *http.Request, userId domain.UserId, reason string) error {
	jsonBody, err := json.Marshal(api.SuspendUserRequest{Reason: reason})
	if err != nil {
		return fmt.Errorf("failed to marshal suspend data: %w", err)
	}

	path := fmt.Sprintf("/v1/admin/users/%d/suspend", userId)
	resp, err := c.do(r.Context(), "POST", path, bytes.NewBuffer(jsonBody), r.Cookies()...)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return drainError("suspend user", resp)
	}
	return nil
}

func (c *APIClient) UnsuspendUser(r *http.Request, userId domain.UserId) error {
	path := fmt.Sprintf("/v1/admin/users/%d/suspend", userId)
	return c.adminDelete(r, path, "unsuspend user")
}
