package observer

import "sort"

// List is the tracked sequence type. It owns its backing slice and exposes
// only the audited mutating operations, so every structural change runs
// through observation and a single notification; there is no method-chain
// redirection to intercept. Per-index assignment is deliberately absent
// (use Set), and index reads are covered by the recursive structural
// subscription taken when the owning cell is read.
type List struct {
	sys   *System
	items []any
	node  *Node
	skip  bool
}

func NewList(sys *System, items ...any) *List {
	l := &List{sys: sys}
	l.items = append(l.items, items...)
	return l
}

// ListFromSlice converts nested map[string]any and []any values the same
// way RecordFromMap does.
func ListFromSlice(sys *System, items []any) *List {
	l := &List{sys: sys}
	for _, item := range items {
		l.items = append(l.items, convertValue(sys, item))
	}
	return l
}

func (l *List) Len() int {
	return len(l.items)
}

func (l *List) Get(i int) any {
	if i < 0 || i >= len(l.items) {
		return nil
	}
	return l.items[i]
}

// Items returns a copy; mutating it does not touch the list.
func (l *List) Items() []any {
	items := make([]any, len(l.items))
	copy(items, l.items)
	return items
}

// Node returns the list's observed node, or nil before observation.
func (l *List) Node() *Node {
	return l.node
}

func (l *List) MarkRaw() {
	l.skip = true
}

// Push appends items and returns the new length.
func (l *List) Push(items ...any) int {
	l.items = append(l.items, items...)
	l.changed(items)
	return len(l.items)
}

// Pop removes and returns the last item, nil when empty.
func (l *List) Pop() any {
	var removed any
	if n := len(l.items); n > 0 {
		removed = l.items[n-1]
		l.items[n-1] = nil
		l.items = l.items[:n-1]
	}
	l.changed(nil)
	return removed
}

// Shift removes and returns the first item, nil when empty.
func (l *List) Shift() any {
	var removed any
	if n := len(l.items); n > 0 {
		removed = l.items[0]
		copy(l.items, l.items[1:])
		l.items[n-1] = nil
		l.items = l.items[:n-1]
	}
	l.changed(nil)
	return removed
}

// Unshift prepends items and returns the new length.
func (l *List) Unshift(items ...any) int {
	l.items = append(append(make([]any, 0, len(items)+len(l.items)), items...), l.items...)
	l.changed(items)
	return len(l.items)
}

// Splice removes deleteCount items at start, inserts items in their place
// and returns the removed items. Negative start counts from the end; start
// and deleteCount are clamped to the list bounds.
func (l *List) Splice(start, deleteCount int, items ...any) []any {
	n := len(l.items)
	if start < 0 {
		start += n
	}
	if start < 0 {
		start = 0
	}
	if start > n {
		start = n
	}
	if deleteCount < 0 {
		deleteCount = 0
	}
	if deleteCount > n-start {
		deleteCount = n - start
	}

	removed := make([]any, deleteCount)
	copy(removed, l.items[start:start+deleteCount])

	rest := make([]any, n-start-deleteCount)
	copy(rest, l.items[start+deleteCount:])
	l.items = append(append(l.items[:start], items...), rest...)

	l.changed(items)
	return removed
}

// Sort orders the list in place (stable) by less.
func (l *List) Sort(less func(a, b any) bool) {
	sort.SliceStable(l.items, func(i, j int) bool {
		return less(l.items[i], l.items[j])
	})
	l.changed(nil)
}

// Reverse reverses the list in place.
func (l *List) Reverse() {
	for i, j := 0, len(l.items)-1; i < j; i, j = i+1, j-1 {
		l.items[i], l.items[j] = l.items[j], l.items[i]
	}
	l.changed(nil)
}

// changed observes any inserted items and notifies the structural dep
// exactly once. Unobserved lists skip both, like raw sequences.
func (l *List) changed(inserted []any) {
	if l.node == nil {
		return
	}
	for _, item := range inserted {
		Observe(l.sys, item, false)
	}
	l.node.dep.Notify()
}

func (l *List) observeItems() {
	for _, item := range l.items {
		Observe(l.sys, item, false)
	}
}

// dependList registers the active watcher in every nested composite's
// structural dep. Index-level mutation is otherwise unobservable, so a
// cell read over a list subscribes the whole nested structure.
func dependList(l *List) {
	for _, item := range l.items {
		switch v := item.(type) {
		case *Record:
			if v.node != nil {
				v.node.dep.Depend()
			}
		case *List:
			if v.node != nil {
				v.node.dep.Depend()
			}
			dependList(v)
		}
	}
}
