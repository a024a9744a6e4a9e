package observer_test

import (
	"testing"

	"github.com/delaneyj/trackparty/observer"
	"github.com/stretchr/testify/assert"
)

// watchList wires a sync watcher to the list held under key and returns a
// run counter covering the whole nested structure.
func watchList(sys *observer.System, rec *observer.Record, key string) *int {
	runs := new(int)
	observer.NewWatcher(sys, nil, func() (any, error) {
		*runs++
		return rec.Get(key), nil
	}, nil, observer.WatcherOptions{Sync: true})
	return runs
}

// should notify exactly once per mutating call
func TestListNotifiesOncePerMutation(t *testing.T) {
	sys := failingSystem(t)
	rec := observer.RecordFromMap(sys, map[string]any{"items": []any{1, 2, 3}})
	observer.Observe(sys, rec, false)
	list := rec.Get("items").(*observer.List)

	runs := watchList(sys, rec, "items")
	assert.Equal(t, 1, *runs)

	list.Push(4, 5)
	assert.Equal(t, 2, *runs)
	list.Pop()
	assert.Equal(t, 3, *runs)
	list.Splice(0, 2, 9)
	assert.Equal(t, 4, *runs)
}

// should observe composites inserted after observation
func TestListObservesInsertedItems(t *testing.T) {
	sys := failingSystem(t)
	rec := observer.RecordFromMap(sys, map[string]any{"items": []any{}})
	observer.Observe(sys, rec, false)
	list := rec.Get("items").(*observer.List)

	item := observer.RecordFromMap(sys, map[string]any{"x": 1})
	assert.Nil(t, item.Node())
	list.Push(item)
	assert.NotNil(t, item.Node())

	spliced := observer.RecordFromMap(sys, map[string]any{"y": 2})
	list.Splice(0, 0, spliced)
	assert.NotNil(t, spliced.Node())
}

// should implement pop, shift and unshift edge cases
func TestListEnds(t *testing.T) {
	sys := failingSystem(t)
	list := observer.NewList(sys, 1, 2)

	assert.Equal(t, 2, list.Pop())
	assert.Equal(t, 1, list.Shift())
	assert.Nil(t, list.Pop())
	assert.Nil(t, list.Shift())
	assert.Equal(t, 0, list.Len())

	assert.Equal(t, 2, list.Unshift(7, 8))
	assert.Equal(t, []any{7, 8}, list.Items())
	assert.Equal(t, 3, list.Push(9))
	assert.Equal(t, []any{7, 8, 9}, list.Items())
}

// should clamp splice bounds and count negative starts from the end
func TestListSpliceBounds(t *testing.T) {
	sys := failingSystem(t)
	list := observer.NewList(sys, 1, 2, 3, 4)

	removed := list.Splice(-2, 1)
	assert.Equal(t, []any{3}, removed)
	assert.Equal(t, []any{1, 2, 4}, list.Items())

	removed = list.Splice(10, 5, 5)
	assert.Empty(t, removed)
	assert.Equal(t, []any{1, 2, 4, 5}, list.Items())

	removed = list.Splice(-99, 2)
	assert.Equal(t, []any{1, 2}, removed)
	assert.Equal(t, []any{4, 5}, list.Items())
}

// should sort stably and reverse in place, notifying once each
func TestListSortAndReverse(t *testing.T) {
	sys := failingSystem(t)
	rec := observer.RecordFromMap(sys, map[string]any{"items": []any{3, 1, 2}})
	observer.Observe(sys, rec, false)
	list := rec.Get("items").(*observer.List)

	runs := watchList(sys, rec, "items")

	list.Sort(func(a, b any) bool { return a.(int) < b.(int) })
	assert.Equal(t, []any{1, 2, 3}, list.Items())
	assert.Equal(t, 2, *runs)

	list.Reverse()
	assert.Equal(t, []any{3, 2, 1}, list.Items())
	assert.Equal(t, 3, *runs)
}

// should subscribe the reader to nested composites as well
func TestListNestedStructuralSubscription(t *testing.T) {
	sys := failingSystem(t)
	rec := observer.RecordFromMap(sys, map[string]any{
		"items": []any{[]any{1, 2}},
	})
	observer.Observe(sys, rec, false)

	runs := watchList(sys, rec, "items")
	assert.Equal(t, 1, *runs)

	inner := rec.Get("items").(*observer.List).Get(0).(*observer.List)
	inner.Push(3)
	assert.Equal(t, 2, *runs)
}

// should stay inert before observation
func TestListUnobservedIsInert(t *testing.T) {
	sys := failingSystem(t)
	list := observer.NewList(sys, 1)

	list.Push(2)
	assert.Nil(t, list.Node())
	assert.Equal(t, 2, list.Len())

	item := observer.RecordFromMap(sys, map[string]any{"x": 1})
	list.Push(item)
	assert.Nil(t, item.Node())
}

// should bounds-check reads
func TestListGetOutOfRange(t *testing.T) {
	sys := failingSystem(t)
	list := observer.NewList(sys, 1)

	assert.Equal(t, 1, list.Get(0))
	assert.Nil(t, list.Get(-1))
	assert.Nil(t, list.Get(1))
}
