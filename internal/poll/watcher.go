// Package poll drives periodic comment refresh for an open post page. A
// watcher fetches the flat comment list on a fixed interval, runs it through
// the refresh gate and rebuilds the reply tree only when the candidate list
// actually differs from the displayed one.
package poll

import (
	"context"
	"sync"
	"time"

	"github.com/sechive-dev/sechive-web/internal/commenttree"
	"github.com/sechive-dev/sechive-web/internal/domain"
	"github.com/sechive-dev/sechive-web/internal/logger"
)

// Fetcher is the fetch collaborator: it returns the current flat comment
// list for a post. Errors must leave previously displayed state untouched.
type Fetcher interface {
	FetchComments(ctx context.Context, postId domain.PostId) ([]domain.Comment, error)
}

// Visibility reports whether the consuming surface is foreground-visible.
// Ticks while hidden skip the fetch entirely.
type Visibility interface {
	Visible() bool
}

// AlwaysVisible is the Visibility used when no foreground signal exists.
type AlwaysVisible struct{}

func (AlwaysVisible) Visible() bool { return true }

// Watcher polls one post's comments. A single onChange callback is shared by
// the whole tree; nodes never get their own.
type Watcher struct {
	fetcher    Fetcher
	visibility Visibility
	postId     domain.PostId
	interval   time.Duration
	onChange   func([]*commenttree.Node)

	mu       sync.Mutex
	stopped  bool
	snapshot []domain.Comment
	tree     []*commenttree.Node

	cancel context.CancelFunc
}

// NewWatcher creates a watcher seeded with the initially displayed list, so
// the first poll does not trigger a rebuild when nothing changed.
func NewWatcher(fetcher Fetcher, visibility Visibility, postId domain.PostId, interval time.Duration,
	initial []domain.Comment, onChange func([]*commenttree.Node)) *Watcher {
	if visibility == nil {
		visibility = AlwaysVisible{}
	}
	return &Watcher{
		fetcher:    fetcher,
		visibility: visibility,
		postId:     postId,
		interval:   interval,
		onChange:   onChange,
		snapshot:   initial,
		tree:       commenttree.Build(initial),
	}
}

// Start begins the polling loop. It returns immediately.
func (w *Watcher) Start(ctx context.Context) {
	ctx, w.cancel = context.WithCancel(ctx)
	go w.loop(ctx)
}

// Stop tears the watcher down. A fetch completing after Stop never reaches
// the callback.
func (w *Watcher) Stop() {
	w.mu.Lock()
	w.stopped = true
	w.mu.Unlock()
	if w.cancel != nil {
		w.cancel()
	}
}

// Snapshot returns the currently displayed flat list.
func (w *Watcher) Snapshot() []domain.Comment {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshot
}

// Tree returns the currently displayed reply tree.
func (w *Watcher) Tree() []*commenttree.Node {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.tree
}

func (w *Watcher) loop(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.poll(ctx)
		}
	}
}

// poll performs one fetch-gate-rebuild cycle.
func (w *Watcher) poll(ctx context.Context) {
	if !w.visibility.Visible() {
		return
	}

	candidate, err := w.fetcher.FetchComments(ctx, w.postId)
	if err != nil {
		// Displayed state stays as it is.
		logger.Log.Warn("comment poll failed", "postId", w.postId, "error", err)
		return
	}

	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	if commenttree.Equal(w.snapshot, candidate) {
		// Equivalent candidate is discarded to keep transient UI state.
		w.mu.Unlock()
		return
	}
	w.snapshot = candidate
	w.tree = commenttree.Build(candidate)
	tree := w.tree
	onChange := w.onChange
	w.mu.Unlock()

	if onChange != nil {
		onChange(tree)
	}
}
