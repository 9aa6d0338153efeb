package flexrect

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/gogpu/flexrect/internal/cache"
	"github.com/gogpu/flexrect/tree"
)

// WindowState is the window geometry reported by the windowing layer.
type WindowState struct {
	Width, Height uint32
}

// layoutKey identifies one layout result. The tree version makes any edit
// to the tree invalidate earlier entries.
type layoutKey struct {
	width, height uint32
	version       uint64
}

// Screen owns a layout tree and turns window states into display lists.
//
// It remembers the last window size and tree version so that callers can
// skip redrawing when nothing changed, and keeps the display lists of a few
// recent window sizes so that toggling between them does not re-run layout.
//
// Screen methods may be called from multiple goroutines. The tree itself is
// not synchronized: do not modify it while a Layout call is running.
type Screen[T any] struct {
	tree *tree.Tree[Constraints[T]]
	root tree.NodeID

	resolve []ResolveOption
	logger  *slog.Logger
	cache   *cache.Cache[layoutKey, DisplayList[T]]

	mu      sync.Mutex
	last    layoutKey
	hasLast bool
	layouts int
}

// NewScreen creates a Screen for the tree rooted at root.
// It fails with ErrNotRoot if root has a parent.
func NewScreen[T any](t *tree.Tree[Constraints[T]], root tree.NodeID, opts ...ScreenOption) (*Screen[T], error) {
	if !t.Valid(root) {
		return nil, fmt.Errorf("flexrect: new screen: %w: %d", tree.ErrInvalidNode, root)
	}
	if p, ok := t.Parent(root); ok {
		return nil, fmt.Errorf("%w: node %d has parent %d", ErrNotRoot, root, p)
	}

	o := defaultScreenOptions()
	for _, opt := range opts {
		opt(&o)
	}
	resolve := o.resolve
	if o.logger != nil {
		resolve = append(resolve[:len(resolve):len(resolve)], WithLogger(o.logger))
	}
	return &Screen[T]{
		tree:    t,
		root:    root,
		resolve: resolve,
		logger:  o.logger,
		cache:   cache.New[layoutKey, DisplayList[T]](o.cacheSize),
	}, nil
}

// Tree returns the tree the screen lays out. Edits made through it are
// picked up by the next Layout call.
func (s *Screen[T]) Tree() *tree.Tree[Constraints[T]] {
	return s.tree
}

// Root returns the root node.
func (s *Screen[T]) Root() tree.NodeID {
	return s.root
}

func (s *Screen[T]) log() *slog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return Logger()
}

// Layout returns the display list for ws.
//
// redraw is true when the window size or the tree changed since the previous
// successful call, and on the first call. The returned list is a copy the
// caller may modify.
func (s *Screen[T]) Layout(ws WindowState) (list DisplayList[T], redraw bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := layoutKey{width: ws.Width, height: ws.Height, version: s.tree.Version()}
	redraw = !s.hasLast || key != s.last
	if s.hasLast && (key.width != s.last.width || key.height != s.last.height) {
		s.log().Info("flexrect: window resized",
			"from", fmt.Sprintf("%dx%d", s.last.width, s.last.height),
			"to", fmt.Sprintf("%dx%d", key.width, key.height))
	}

	if cached, ok := s.cache.Get(key); ok {
		s.last, s.hasLast = key, true
		return cached.Clone(), redraw, nil
	}

	list, err = Resolve(s.tree, s.root, float64(ws.Width), float64(ws.Height), s.resolve...)
	if err != nil {
		return nil, false, err
	}
	s.layouts++
	s.cache.Set(key, list)
	s.last, s.hasLast = key, true
	return list.Clone(), redraw, nil
}

// ScreenStats reports how often a Screen actually ran the resolver.
type ScreenStats struct {
	// Layouts is the number of Resolve passes run.
	Layouts int
	// Cache holds the display-list cache counters.
	Cache cache.Stats
}

// Stats returns layout and cache counters.
func (s *Screen[T]) Stats() ScreenStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ScreenStats{Layouts: s.layouts, Cache: s.cache.Stats()}
}

// Invalidate drops every cached display list and forces the next Layout to
// report a redraw.
func (s *Screen[T]) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Clear()
	s.hasLast = false
}
