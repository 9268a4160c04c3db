package domain

import "time"

type PostKind string

const (
	KindQuestion   PostKind = "question"
	KindDiscussion PostKind = "discussion"
	KindBlog       PostKind = "blog"
	KindProject    PostKind = "project"
)

type Post struct {
	Id           PostId    `json:"id"`
	Kind         PostKind  `json:"kind"`
	Title        string    `json:"title"`
	Body         string    `json:"body"`
	Author       Author    `json:"author"`
	GroupId      *GroupId  `json:"group_id,omitempty"`
	Score        int       `json:"score"`
	ViewerVote   int       `json:"viewer_vote"` // -1, 0 or 1
	CommentCount int       `json:"comment_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	CanEdit   bool `json:"can_edit,omitempty"`
	CanDelete bool `json:"can_delete,omitempty"`
}

// PostPage is one page of the feed. NextCursor is empty on the last page.
type PostPage struct {
	Posts      []Post `json:"posts"`
	NextCursor string `json:"next_cursor,omitempty"`
}
