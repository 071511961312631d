package route

import "github.com/tidwall/btree"

// frontier is the working set of states not yet expanded.
type frontier interface {
	push(s *state)
	pop() (*state, bool)
	len() int
}

func newFrontier(kind Frontier) frontier {
	if kind == FrontierDepthFirst {
		return &stackFrontier{}
	}

	return &orderedFrontier{
		tree: btree.NewBTreeGOptions[*state](stateLess, btree.Options{NoLocks: true}),
	}
}

// stateLess orders the best-first frontier: higher value first, then higher
// bound, then earlier insertion. seq is unique, so the order is strict.
func stateLess(a, b *state) bool {
	if a.value != b.value {
		return a.value > b.value
	}
	if a.bound != b.bound {
		return a.bound > b.bound
	}

	return a.seq < b.seq
}

// orderedFrontier is a priority queue on a B-tree owned by one search.
type orderedFrontier struct {
	tree *btree.BTreeG[*state]
}

func (f *orderedFrontier) push(s *state) { f.tree.Set(s) }
func (f *orderedFrontier) pop() (*state, bool) { return f.tree.PopMin() }
func (f *orderedFrontier) len() int { return f.tree.Len() }

// stackFrontier is a LIFO stack.
type stackFrontier struct {
	items []*state
}

func (f *stackFrontier) push(s *state) { f.items = append(f.items, s) }

func (f *stackFrontier) pop() (*state, bool) {
	n := len(f.items)
	if n == 0 {
		return nil, false
	}
	s := f.items[n-1]
	f.items[n-1] = nil
	f.items = f.items[:n-1]

	return s, true
}

func (f *stackFrontier) len() int { return len(f.items) }
