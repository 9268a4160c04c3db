package domain

import "time"

type Group struct {
	Id           GroupId   `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description,omitempty"`
	MemberCount  int       `json:"member_count"`
	ViewerJoined bool      `json:"viewer_joined"`
	CreatedAt    time.Time `json:"created_at"`
}
