package commenttree

import (
	"fmt"
	"hash/fnv"
	"strconv"

	"github.com/sechive-dev/sechive-web/internal/domain"
)

// Equal reports whether two flat comment lists are equivalent for display.
//
// Lists are equivalent when they have the same length and every position
// carries the same (id, updated_at) pair. Comparison is positional: the same
// comments in a different order count as a change, which at worst costs one
// harmless rebuild. updated_at changes on every edit, so body edits are
// caught without deep comparison.
func Equal(prev, next []domain.Comment) bool {
	if len(prev) != len(next) {
		return false
	}
	for i := range prev {
		if prev[i].Id != next[i].Id || !prev[i].UpdatedAt.Equal(next[i].UpdatedAt) {
			return false
		}
	}
	return true
}

// Version derives an opaque token from the (id, updated_at) pairs of a flat
// list. Two lists that Equal considers equivalent produce the same token.
// Used as a cheap change marker for the thread fragment endpoint.
func Version(flat []domain.Comment) string {
	h := fnv.New64a()
	for _, c := range flat {
		h.Write([]byte(strconv.FormatInt(c.Id, 10)))
		h.Write([]byte{':'})
		h.Write([]byte(strconv.FormatInt(c.UpdatedAt.UnixNano(), 10)))
		h.Write([]byte{';'})
	}
	return fmt.Sprintf("%d-%x", len(flat), h.Sum64())
}
