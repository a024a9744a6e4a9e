package observer_test

import (
	"fmt"
	"testing"

	"github.com/delaneyj/trackparty/observer"
	"github.com/stretchr/testify/assert"
)

func captureWarnings(sys *observer.System) *[]string {
	warnings := &[]string{}
	sys.Warn = func(format string, args ...any) {
		*warnings = append(*warnings, fmt.Sprintf(format, args...))
	}
	return warnings
}

// should make an added key reactive and notify the structure once
func TestSetAddsReactiveKey(t *testing.T) {
	sys := failingSystem(t)
	rec := observer.RecordFromMap(sys, map[string]any{"a": 1})
	observer.Observe(sys, rec, false)

	runs := 0
	observer.NewWatcher(sys, nil, func() (any, error) {
		runs++
		rec.Node().Dep().Depend()
		total := 0
		for _, key := range rec.Keys() {
			if n, ok := rec.Get(key).(int); ok {
				total += n
			}
		}
		return total, nil
	}, nil, observer.WatcherOptions{Sync: true})
	assert.Equal(t, 1, runs)

	observer.Set(sys, rec, "b", 2)
	assert.Equal(t, 2, runs)

	rec.Set("b", 3)
	assert.Equal(t, 3, runs)
}

// should route existing keys through their cell without a structural notify
func TestSetExistingKey(t *testing.T) {
	sys := failingSystem(t)
	rec := observer.RecordFromMap(sys, map[string]any{"a": 1})
	observer.Observe(sys, rec, false)

	structuralRuns := 0
	observer.NewWatcher(sys, nil, func() (any, error) {
		structuralRuns++
		rec.Node().Dep().Depend()
		return rec.Keys(), nil
	}, nil, observer.WatcherOptions{Sync: true})

	observer.Set(sys, rec, "a", 2)
	assert.Equal(t, 2, rec.Get("a"))
	assert.Equal(t, 1, structuralRuns)
}

// should refuse new reactive keys on a root state record
func TestSetRejectsRootShapeChange(t *testing.T) {
	sys := failingSystem(t)
	warnings := captureWarnings(sys)
	rec := observer.RecordFromMap(sys, map[string]any{"a": 1})
	observer.Observe(sys, rec, true)

	runs := 0
	observer.NewWatcher(sys, nil, func() (any, error) {
		runs++
		return len(rec.Keys()), nil
	}, nil, observer.WatcherOptions{Sync: true})

	observer.Set(sys, rec, "b", 2)
	assert.Len(t, *warnings, 1)
	assert.Contains(t, (*warnings)[0], `"b"`)
	assert.Equal(t, 1, runs)
	assert.Equal(t, 2, rec.Get("b"))
}

// should store keys plainly on unobserved records
func TestSetOnUnobservedRecord(t *testing.T) {
	sys := failingSystem(t)
	rec := observer.NewRecord(sys)

	observer.Set(sys, rec, "a", 1)
	assert.Equal(t, 1, rec.Get("a"))
	assert.Nil(t, rec.Node())
}

// should grow a list when setting past its end
func TestSetListIndex(t *testing.T) {
	sys := failingSystem(t)
	rec := observer.RecordFromMap(sys, map[string]any{"items": []any{1, 2}})
	observer.Observe(sys, rec, false)
	list := rec.Get("items").(*observer.List)

	runs := watchList(sys, rec, "items")

	observer.Set(sys, list, 0, 9)
	assert.Equal(t, []any{9, 2}, list.Items())
	assert.Equal(t, 2, *runs)

	observer.Set(sys, list, 4, 5)
	assert.Equal(t, []any{9, 2, nil, nil, 5}, list.Items())
	assert.Equal(t, 3, *runs)
}

// should warn on invalid list indices and record keys
func TestSetInvalidKeys(t *testing.T) {
	sys := failingSystem(t)
	warnings := captureWarnings(sys)
	list := observer.NewList(sys, 1)
	rec := observer.NewRecord(sys)

	observer.Set(sys, list, -1, 9)
	observer.Set(sys, list, "0", 9)
	observer.Set(sys, rec, 7, 9)
	observer.Set(sys, nil, "a", 9)
	assert.Len(t, *warnings, 4)
}

// should remove a key and notify the structure once
func TestDelNotifiesOnce(t *testing.T) {
	sys := failingSystem(t)
	rec := observer.RecordFromMap(sys, map[string]any{"a": 1, "b": 2})
	observer.Observe(sys, rec, false)

	runs := 0
	observer.NewWatcher(sys, nil, func() (any, error) {
		runs++
		rec.Node().Dep().Depend()
		return len(rec.Keys()), nil
	}, nil, observer.WatcherOptions{Sync: true})

	observer.Del(sys, rec, "b")
	assert.False(t, rec.Has("b"))
	assert.Equal(t, []string{"a"}, rec.Keys())
	assert.Equal(t, 2, runs)

	observer.Del(sys, rec, "b")
	assert.Equal(t, 2, runs)
}

// should refuse deleting keys on a root state record
func TestDelRejectsRootShapeChange(t *testing.T) {
	sys := failingSystem(t)
	warnings := captureWarnings(sys)
	rec := observer.RecordFromMap(sys, map[string]any{"a": 1})
	observer.Observe(sys, rec, true)

	observer.Del(sys, rec, "a")
	assert.True(t, rec.Has("a"))
	assert.Len(t, *warnings, 1)
}

// should delete list members through splice
func TestDelListIndex(t *testing.T) {
	sys := failingSystem(t)
	rec := observer.RecordFromMap(sys, map[string]any{"items": []any{1, 2, 3}})
	observer.Observe(sys, rec, false)
	list := rec.Get("items").(*observer.List)

	runs := watchList(sys, rec, "items")

	observer.Del(sys, list, 1)
	assert.Equal(t, []any{1, 3}, list.Items())
	assert.Equal(t, 2, *runs)

	observer.Del(sys, list, 9)
	assert.Equal(t, 2, *runs)
}
