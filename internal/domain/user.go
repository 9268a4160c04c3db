package domain

import "time"

// User is the authenticated viewer as reconstructed from JWT claims.
type User struct {
	Id        UserId
	Handle    Handle
	Admin     bool
	CreatedAt time.Time
}

// Profile is another user's public profile as returned by the API.
type Profile struct {
	Id             UserId    `json:"id"`
	Handle         Handle    `json:"handle"`
	DisplayName    string    `json:"display_name"`
	Bio            string    `json:"bio,omitempty"`
	AvatarURL      string    `json:"avatar_url,omitempty"`
	Reputation     int       `json:"reputation"`
	FollowerCount  int       `json:"follower_count"`
	FollowingCount int       `json:"following_count"`
	ViewerFollows  bool      `json:"viewer_follows"`
	Suspended      bool      `json:"suspended,omitempty"`
	JoinedAt       time.Time `json:"joined_at"`
}
