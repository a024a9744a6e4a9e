package observer

import (
	"math"
	"reflect"
)

type GetterFunc func() any

type SetterFunc func(v any)

// Cell is the tracked accessor pair for one (record, key). There is exactly
// one per key; it lives as long as the owning record.
type Cell struct {
	owner *Record
	key   string

	dep      *Dep
	value    any
	getter   GetterFunc
	setter   SetterFunc
	onWrite  func()
	shallow  bool
	locked   bool
	reactive bool

	childNode *Node
}

// DefineAccessor installs a delegate getter/setter pair under key, the way a
// plain property with accessors would exist before observation. A later
// DefineReactive preserves the pair and delegates reads and writes to it.
func DefineAccessor(r *Record, key string, get GetterFunc, set SetterFunc) {
	c := r.cells[key]
	if c != nil && c.locked {
		return
	}
	if c == nil {
		c = &Cell{owner: r, key: key}
		r.attach(key, c)
	}
	c.getter = get
	c.setter = set
}

// DefineLocked installs a plain non-configurable value under key;
// DefineReactive skips it silently.
func DefineLocked(r *Record, key string, val any) {
	c := &Cell{owner: r, key: key, value: val, locked: true}
	r.attach(key, c)
}

// DefineReactive converts key into a tracked cell. val may be nil, in which
// case any value already staged under the key is used. onWrite is a
// diagnostics-only hook invoked before every accepted write. shallow skips
// observation of the (current and future) child value.
//
// A key with a delegate getter but no setter is derived: its value is not
// fetched and not deep-observed. With both getter and setter present the
// initial value is still fetched and recursively observed. Deliberate
// asymmetry, keep it as is.
func DefineReactive(r *Record, key string, val any, onWrite func(), shallow bool) {
	c := r.cells[key]
	if c != nil && (c.locked || c.reactive) {
		return
	}
	if c == nil {
		c = &Cell{owner: r, key: key}
	}
	if v, ok := r.raw[key]; ok && val == nil {
		val = v
	}
	r.attach(key, c)

	if c.getter != nil {
		if c.setter == nil {
			val = nil
		} else {
			val = c.getter()
		}
	} else {
		c.value = val
	}

	c.onWrite = onWrite
	c.shallow = shallow
	c.dep = newDep(r.sys)
	c.reactive = true
	if !shallow {
		c.childNode = Observe(r.sys, val, false)
	}
}

func (c *Cell) get() any {
	var value any
	if c.getter != nil {
		value = c.getter()
	} else {
		value = c.value
	}
	if !c.reactive {
		return value
	}
	sys := c.dep.sys
	if sys.target != nil {
		c.dep.Depend()
		if c.childNode != nil {
			c.childNode.dep.Depend()
			if l, ok := value.(*List); ok {
				dependList(l)
			}
		}
	}
	return value
}

func (c *Cell) set(v any) {
	var old any
	if c.getter != nil {
		old = c.getter()
	} else {
		old = c.value
	}
	if !c.reactive {
		if c.setter != nil {
			c.setter(v)
		} else if c.getter == nil {
			c.value = v
		}
		return
	}
	if sameValue(old, v) {
		return
	}
	if c.onWrite != nil {
		c.onWrite()
	}
	if c.getter != nil && c.setter == nil {
		c.dep.sys.warnf("write to derived key %q ignored", c.key)
		return
	}
	if c.setter != nil {
		c.setter(v)
	} else {
		c.value = v
	}
	if !c.shallow {
		c.childNode = Observe(c.dep.sys, v, false)
	}
	c.dep.Notify()
}

// sameValue is the write fast path: reference/value identity, treating two
// NaNs as equal so a NaN write onto a NaN cell never notifies.
func sameValue(a, b any) bool {
	if isNaN(a) && isNaN(b) {
		return true
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}

func isNaN(v any) bool {
	switch f := v.(type) {
	case float64:
		return math.IsNaN(f)
	case float32:
		return math.IsNaN(float64(f))
	}
	return false
}
