package commenttree

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sechive-dev/sechive-web/internal/domain"
)

func ptr(id domain.CommentId) *domain.CommentId { return &id }

func comment(id domain.CommentId, parent *domain.CommentId) domain.Comment {
	return domain.Comment{
		Id:        id,
		Body:      "body",
		ParentId:  parent,
		CreatedAt: time.Unix(1700000000+int64(id), 0),
		UpdatedAt: time.Unix(1700000000+int64(id), 0),
		Author:    domain.Author{Id: 1, DisplayName: "ava"},
	}
}

func ids(nodes []*Node) []domain.CommentId {
	out := make([]domain.CommentId, len(nodes))
	for i, n := range nodes {
		out[i] = n.Id
	}
	return out
}

func TestBuild_AllTopLevel(t *testing.T) {
	flat := []domain.Comment{
		comment(3, nil),
		comment(1, nil),
		comment(2, nil),
	}

	roots := Build(flat)

	require.Len(t, roots, 3)
	// One root per input comment, in input order, each with no children.
	assert.Equal(t, []domain.CommentId{3, 1, 2}, ids(roots))
	for _, root := range roots {
		assert.Empty(t, root.Children)
	}
}

func TestBuild_SingleReply(t *testing.T) {
	flat := []domain.Comment{
		comment(1, nil),
		comment(2, ptr(1)),
	}

	roots := Build(flat)

	require.Len(t, roots, 1)
	assert.Equal(t, domain.CommentId(1), roots[0].Id)
	require.Len(t, roots[0].Children, 1)
	assert.Equal(t, domain.CommentId(2), roots[0].Children[0].Id)
}

func TestBuild_DanglingParentBecomesRoot(t *testing.T) {
	flat := []domain.Comment{
		comment(5, ptr(999)),
	}

	roots := Build(flat)

	require.Len(t, roots, 1)
	assert.Equal(t, domain.CommentId(5), roots[0].Id)
	assert.Empty(t, roots[0].Children)
}

func TestBuild_ChildrenFollowInputOrder(t *testing.T) {
	// Children of 0 arrive as 1 then 3: output order must match input order,
	// regardless of id values.
	flat := []domain.Comment{
		comment(0, nil),
		comment(3, ptr(0)),
		comment(1, ptr(0)),
	}

	roots := Build(flat)

	require.Len(t, roots, 1)
	assert.Equal(t, []domain.CommentId{3, 1}, ids(roots[0].Children))
}

func TestBuild_ReplyBeforeParentInInput(t *testing.T) {
	// The lookup is populated before attachment, so input order between
	// parent and child does not matter.
	flat := []domain.Comment{
		comment(2, ptr(1)),
		comment(1, nil),
	}

	roots := Build(flat)

	require.Len(t, roots, 1)
	assert.Equal(t, domain.CommentId(1), roots[0].Id)
	require.Len(t, roots[0].Children, 1)
	assert.Equal(t, domain.CommentId(2), roots[0].Children[0].Id)
}

func TestBuild_DeepChain(t *testing.T) {
	flat := []domain.Comment{
		comment(1, nil),
		comment(2, ptr(1)),
		comment(3, ptr(2)),
		comment(4, ptr(3)),
	}

	roots := Build(flat)

	require.Len(t, roots, 1)
	node := roots[0]
	for want := domain.CommentId(2); want <= 4; want++ {
		require.Len(t, node.Children, 1)
		node = node.Children[0]
		assert.Equal(t, want, node.Id)
	}
	assert.Empty(t, node.Children)
}

func TestBuild_SelfReferenceBecomesRoot(t *testing.T) {
	flat := []domain.Comment{
		comment(7, ptr(7)),
	}

	roots := Build(flat)

	require.Len(t, roots, 1)
	assert.Equal(t, domain.CommentId(7), roots[0].Id)
	assert.Empty(t, roots[0].Children)
}

func TestBuild_DoesNotMutateInput(t *testing.T) {
	flat := []domain.Comment{
		comment(1, nil),
		comment(2, ptr(1)),
	}
	before := make([]domain.Comment, len(flat))
	copy(before, flat)

	Build(flat)

	assert.Equal(t, before, flat)
}

func TestBuild_Empty(t *testing.T) {
	assert.Empty(t, Build(nil))
	assert.Empty(t, Build([]domain.Comment{}))
}

func TestFlatten_RoundTrip(t *testing.T) {
	flat := []domain.Comment{
		comment(1, nil),
		comment(5, ptr(999)), // dangling, demoted to root
		comment(2, ptr(1)),
		comment(3, ptr(1)),
		comment(4, ptr(2)),
	}

	out := Flatten(Build(flat))

	// Permutation of the input.
	require.Len(t, out, len(flat))
	seen := make(map[domain.CommentId]bool, len(out))
	for _, c := range out {
		seen[c.Id] = true
	}
	for _, c := range flat {
		assert.True(t, seen[c.Id], "comment %d missing after round trip", c.Id)
	}

	// Pre-order: every parent present in the batch appears before its child.
	pos := make(map[domain.CommentId]int, len(out))
	for i, c := range out {
		pos[c.Id] = i
	}
	for _, c := range flat {
		if c.ParentId == nil {
			continue
		}
		if parentPos, ok := pos[*c.ParentId]; ok {
			assert.Less(t, parentPos, pos[c.Id],
				"parent %d must precede child %d", *c.ParentId, c.Id)
		}
	}
}

func TestCount(t *testing.T) {
	flat := []domain.Comment{
		comment(1, nil),
		comment(2, ptr(1)),
		comment(3, ptr(2)),
		comment(4, nil),
	}
	assert.Equal(t, 4, Count(Build(flat)))
	assert.Equal(t, 0, Count(nil))
}
