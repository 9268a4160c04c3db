package domain

type (
	UserId    = int64
	PostId    = int64
	CommentId = int64
	GroupId   = int64

	Handle   = string
	Email    = string
	Password = string
)
