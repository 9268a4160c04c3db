package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sechive-dev/sechive-web/internal/api"
	"github.com/sechive-dev/sechive-web/internal/domain"
	internal_errors "github.com/sechive-dev/sechive-web/internal/errors"
	"github.com/sechive-dev/sechive-web/internal/utils"
)

// GetFeed fetches one feed page. cursor is empty for the first page; kind
// filters by post kind when non-empty.
func (c *APIClient) GetFeed(r *http.Request, cursor string, kind domain.PostKind, limit int) (domain.PostPage, error) {
	var page domain.PostPage

	query := url.Values{}
	query.Set("limit", fmt.Sprint(limit))
	if cursor != "" {
		query.Set("cursor", cursor)
	}
	if kind != "" {
		query.Set("kind", string(kind))
	}

	resp, err := c.do(r.Context(), "GET", "/v1/posts?"+query.Encode(), nil, r.Cookies()...)
	if err != nil {
		return page, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return page, &internal_errors.ErrorWithStatusCode{
			Message: "failed to load feed", StatusCode: resp.StatusCode,
		}
	}

	if err := utils.Decode(resp.Body, &page); err != nil {
		return page, fmt.Errorf("cannot decode feed response: %w", err)
	}
	return page, nil
}

func (c *APIClient) GetPost(r *http.Request, postId domain.PostId) (domain.Post, error) {
	var post domain.Post
	path := fmt.Sprintf("/v1/posts/%d", postId)
	resp, err := c.do(r.Context(), "GET", path, nil, r.Cookies()...)
	if err != nil {
		return post, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return post, &internal_errors.ErrorWithStatusCode{
			Message:    fmt.Sprintf("post %d not found or access denied", postId),
			StatusCode: resp.StatusCode,
		}
	}

	if err := utils.Decode(resp.Body, &post); err != nil {
		return post, fmt.Errorf("cannot decode post response: %w", err)
	}
	return post, nil
}

func (c *APIClient) CreatePost(r *http.Request, data api.CreatePostRequest) (domain.PostId, error) {
	jsonBody, err := json.Marshal(data)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal post data: %w", err)
	}

	resp, err := c.do(r.Context(), "POST", "/v1/posts", bytes.NewBuffer(jsonBody), r.Cookies()...)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return 0, drainError("create post", resp)
	}

	var response api.CreatePostResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return 0, fmt.Errorf("failed to decode create post response: %w", err)
	}
	return response.Id, nil
}

// Vote casts, changes or retracts the viewer's vote on a post and returns the
// fresh tally so the caller can re-render without a full reload.
func (c *APIClient) Vote(r *http.Request, postId domain.PostId, direction int) (api.VoteResponse, error) {
	var result api.VoteResponse

	jsonBody, err := json.Marshal(api.VoteRequest{Direction: direction})
	if err != nil {
		return result, fmt.Errorf("failed to marshal vote data: %w", err)
	}

	path := fmt.Sprintf("/v1/posts/%d/vote", postId)
	resp, err := c.do(r.Context(), "POST", path, bytes.NewBuffer(jsonBody), r.Cookies()...)
	if err != nil {
		return result, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return result, drainError("vote", resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return result, fmt.Errorf("failed to decode vote response: %w", err)
	}
	return result, nil
}
