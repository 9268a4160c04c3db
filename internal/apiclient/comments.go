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

// GetComments fetches the flat comment list for a post. The API returns
// comments in chronological order; reply-tree reconstruction happens
// client-side.
func (c *APIClient) GetComments(r *http.Request, postId domain.PostId) ([]domain.Comment, error) {
	path := fmt.Sprintf("/v1/posts/%d/comments", postId)
	resp, err := c.do(r.Context(), "GET", path, nil, r.Cookies()...)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &internal_errors.ErrorWithStatusCode{
			Message:    fmt.Sprintf("comments for post %d not found or access denied", postId),
			StatusCode: resp.StatusCode,
		}
	}

	var response api.CommentsResponse
	if err := utils.Decode(resp.Body, &response); err != nil {
		return nil, fmt.Errorf("cannot decode comments response: %w", err)
	}
	return response.Comments, nil
}

func (c *APIClient) CreateComment(r *http.Request, postId domain.PostId, data api.CreateCommentRequest) (domain.CommentId, error) {
	jsonBody, err := json.Marshal(data)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal comment data: %w", err)
	}

	path := fmt.Sprintf("/v1/posts/%d/comments", postId)
	resp, err := c.do(r.Context(), "POST", path, bytes.NewBuffer(jsonBody), r.Cookies()...)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return 0, drainError("create comment", resp)
	}

	var response api.CreateCommentResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return 0, nil // id is cosmetic here, the page re-fetches anyway
	}
	return response.Id, nil
}

func (c *APIClient) UpdateComment(r *http.Request, commentId domain.CommentId, data api.UpdateCommentRequest) error {
	jsonBody, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal comment data: %w", err)
	}

	path := fmt.Sprintf("/v1/comments/%d", commentId)
	resp, err := c.do(r.Context(), "PUT", path, bytes.NewBuffer(jsonBody), r.Cookies()...)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return drainError("update comment", resp)
	}
	return nil
}

func (c *APIClient) DeleteComment(r *http.Request, commentId domain.CommentId) error {
	path := fmt.Sprintf("/v1/comments/%d", commentId)
	resp, err := c.do(r.Context(), "DELETE", path, nil, r.Cookies()...)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return drainError("delete comment", resp)
	}
	return nil
}
