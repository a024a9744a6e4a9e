package observer

import "sort"

// Record is a dynamic composite: a set of named keys whose values become
// tracked cells once the record is observed. Keys are backed by a side-map
// of key to cell plus an insertion-ordered key list, so runtime key
// addition and removal (via Set/Del) works without any shape trickery.
type Record struct {
	sys   *System
	node  *Node
	cells map[string]*Cell
	raw   map[string]any
	keys  []string

	sealed bool
	skip   bool
}

func NewRecord(sys *System) *Record {
	return &Record{
		sys:   sys,
		cells: map[string]*Cell{},
		raw:   map[string]any{},
	}
}

// RecordFromMap builds a record from a plain map, converting nested
// map[string]any and []any values into records and lists. Keys are defined
// in sorted order since map iteration order is unspecified.
func RecordFromMap(sys *System, m map[string]any) *Record {
	r := NewRecord(sys)
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		r.putRaw(k, convertValue(sys, m[k]))
	}
	return r
}

func convertValue(sys *System, v any) any {
	switch x := v.(type) {
	case map[string]any:
		return RecordFromMap(sys, x)
	case []any:
		return ListFromSlice(sys, x)
	default:
		return v
	}
}

// Get returns the value under key, registering the active watcher when the
// key is a reactive cell. Unobserved keys read plainly.
func (r *Record) Get(key string) any {
	if c, ok := r.cells[key]; ok {
		return c.get()
	}
	return r.raw[key]
}

// Set writes the value under key through its cell when one exists,
// otherwise stores it raw (non-reactive, like assignment to a key that was
// never observed).
func (r *Record) Set(key string, v any) {
	if c, ok := r.cells[key]; ok {
		c.set(v)
		return
	}
	r.putRaw(key, v)
}

func (r *Record) Has(key string) bool {
	if _, ok := r.cells[key]; ok {
		return true
	}
	_, ok := r.raw[key]
	return ok
}

// Keys returns the record's own keys in definition order.
func (r *Record) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}

func (r *Record) Len() int {
	return len(r.keys)
}

// Node returns the record's observed node, or nil before observation.
func (r *Record) Node() *Node {
	return r.node
}

// Seal marks the record non-extensible; Observe refuses sealed records.
func (r *Record) Seal() {
	r.sealed = true
}

// MarkRaw flags the record as non-observable (render-output nodes, owner
// instances and the like). Observe returns nothing for it.
func (r *Record) MarkRaw() {
	r.skip = true
}

func (r *Record) putRaw(key string, v any) {
	if !r.Has(key) {
		r.keys = append(r.keys, key)
	}
	r.raw[key] = v
}

// attach installs a cell for key, consuming any staged raw value.
func (r *Record) attach(key string, c *Cell) {
	if !r.Has(key) {
		r.keys = append(r.keys, key)
	}
	delete(r.raw, key)
	r.cells[key] = c
}

func (r *Record) deleteKey(key string) {
	delete(r.cells, key)
	delete(r.raw, key)
	for i, k := range r.keys {
		if k == key {
			r.keys = append(r.keys[:i], r.keys[i+1:]...)
			return
		}
	}
}

// walk converts every own key into a reactive cell.
func (r *Record) walk() {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	for _, key := range keys {
		DefineReactive(r, key, nil, nil, false)
	}
}
