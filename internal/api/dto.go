// Package api holds the request/response DTOs of the backend REST contract.
package api

import "github.com/sechive-dev/sechive-web/internal/domain"

// Request DTOs

type CreateCommentRequest struct {
	Body     string            `json:"body" validate:"required"`
	ParentId *domain.CommentId `json:"parent_id,omitempty"`
}

type UpdateCommentRequest struct {
	Body string `json:"body" validate:"required"`
}

type CreatePostRequest struct {
	Kind    domain.PostKind `json:"kind" validate:"required,oneof=question discussion blog project"`
	Title   string          `json:"title" validate:"required"`
	Body    string          `json:"body" validate:"required"`
	GroupId *domain.GroupId `json:"group_id,omitempty"`
}

type VoteRequest struct {
	Direction int `json:"direction" validate:"oneof=-1 0 1"`
}

type SuspendUserRequest struct {
	Reason string `json:"reason"`
}

// Response DTOs

type CommentsResponse struct {
	Comments []domain.Comment `json:"comments"`
}

type CreateCommentResponse struct {
	Id domain.CommentId `json:"id"`
}

type CreatePostResponse struct {
	Id domain.PostId `json:"id"`
}

type VoteResponse struct {
	Score      int `json:"score"`
	ViewerVote int `json:"viewer_vote"`
}

// ReportsResponse lists open moderation reports for the admin console.
type ReportsResponse struct {
	Reports []Report `json:"reports"`
}

type Report struct {
	Id        int64             `json:"id"`
	Reason    string            `json:"reason"`
	Reporter  domain.Author     `json:"reporter"`
	Reported  domain.Author     `json:"reported"`
	PostId    *domain.PostId    `json:"post_id,omitempty"`
	CommentId *domain.CommentId `json:"comment_id,omitempty"`
}
