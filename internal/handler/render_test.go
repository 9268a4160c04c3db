package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sechive-dev/sechive-web/internal/commenttree"
	"github.com/sechive-dev/sechive-web/internal/domain"
	"github.com/sechive-dev/sechive-web/internal/markdown"
	"github.com/sechive-dev/sechive-web/internal/media"
)

func newRenderTestHandler() *Handler {
	return &Handler{
		TextProcessor: markdown.New(),
		Media:         media.NewResolver("http://media:9000"),
	}
}

func comment(id domain.CommentId, parent *domain.CommentId, body string) domain.Comment {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return domain.Comment{
		Id:        id,
		PostId:    1,
		Body:      body,
		ParentId:  parent,
		CreatedAt: now,
		UpdatedAt: now,
		Author:    domain.Author{Id: 1, Handle: "alice", DisplayName: "Alice", AvatarURL: "avatars/alice.png"},
	}
}

func TestRenderThread_DepthFollowsNesting(t *testing.T) {
	h := newRenderTestHandler()
	c1 := domain.CommentId(1)
	c2 := domain.CommentId(2)

	roots := commenttree.Build([]domain.Comment{
		comment(1, nil, "root"),
		comment(2, &c1, "child"),
		comment(3, &c2, "grandchild"),
		comment(4, nil, "second root"),
	})

	views := h.renderThread(roots)
	require.Len(t, views, 2)

	assert.Equal(t, 0, views[0].Depth)
	require.Len(t, views[0].Children, 1)
	assert.Equal(t, 1, views[0].Children[0].Depth)
	require.Len(t, views[0].Children[0].Children, 1)
	assert.Equal(t, 2, views[0].Children[0].Children[0].Depth)

	assert.Equal(t, 0, views[1].Depth)
	assert.Empty(t, views[1].Children)
}

func TestRenderComment_BodyAndAvatar(t *testing.T) {
	h := newRenderTestHandler()

	roots := commenttree.Build([]domain.Comment{
		comment(1, nil, "hello **world**, ping @bob"),
	})
	require.Len(t, roots, 1)

	view := h.renderComment(roots[0], 0)
	assert.Contains(t, string(view.BodyHTML), "<strong>world</strong>")
	assert.Contains(t, string(view.BodyHTML), `href="/users/bob"`)
	assert.Equal(t, "http://media:9000/avatars/alice.png", view.AvatarURL)
}

func TestRenderPosts(t *testing.T) {
	h := newRenderTestHandler()

	views := h.renderPosts([]domain.Post{
		{Id: 1, Title: "first", Body: "plain"},
		{Id: 2, Title: "second", Body: "`code`"},
	})
	require.Len(t, views, 2)
	assert.Equal(t, domain.PostId(1), views[0].Id)
	assert.Contains(t, string(views[1].BodyHTML), "<code>code</code>")
}
