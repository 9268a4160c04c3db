package domain

import "time"

// Author is a denormalized snapshot of the commenting user taken by the API
// at fetch time. It is a value copy, not a reference to live profile state.
type Author struct {
	Id          UserId `json:"id"`
	Handle      Handle `json:"handle"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url,omitempty"`
}

// Comment is the flat record as delivered by the API. ParentId is nil for
// top-level comments. UpdatedAt changes whenever Body is edited.
type Comment struct {
	Id        CommentId  `json:"id"`
	PostId    PostId     `json:"post_id"`
	Body      string     `json:"body"`
	ParentId  *CommentId `json:"parent_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Author    Author     `json:"author"`

	// Viewer capabilities computed server-side for this specific comment.
	CanEdit   bool `json:"can_edit,omitempty"`
	CanDelete bool `json:"can_delete,omitempty"`
}
