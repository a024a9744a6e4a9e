package observer

// Set adds or replaces a member of an observed composite, covering the
// additions accessors cannot intercept. New record keys become reactive
// cells and the structural dep fires once; list indices route through
// Splice. Returns the value either way.
func Set(sys *System, target any, key any, value any) any {
	switch t := target.(type) {
	case *List:
		idx, ok := key.(int)
		if !ok || idx < 0 {
			sys.warnf("cannot set list index %v", key)
			return value
		}
		if idx >= len(t.items) {
			for len(t.items) < idx {
				t.items = append(t.items, nil)
			}
			t.Splice(idx, 0, value)
			return value
		}
		t.Splice(idx, 1, value)
		return value
	case *Record:
		ks, ok := key.(string)
		if !ok {
			sys.warnf("cannot set record key %v: key must be a string", key)
			return value
		}
		if t.Has(ks) {
			t.Set(ks, value)
			return value
		}
		node := t.node
		if node != nil && node.rootCount > 0 {
			sys.warnf("avoid adding reactive key %q to a root state record; declare it up front", ks)
			t.putRaw(ks, value)
			return value
		}
		if node == nil {
			t.putRaw(ks, value)
			return value
		}
		DefineReactive(t, ks, value, nil, false)
		node.dep.Notify()
		return value
	default:
		sys.warnf("cannot set key %v on nil or primitive value %v", key, target)
		return value
	}
}

// Del removes an existing member and notifies the structural dep once.
// Same root-shape rule as Set.
func Del(sys *System, target any, key any) {
	switch t := target.(type) {
	case *List:
		idx, ok := key.(int)
		if !ok || idx < 0 || idx >= len(t.items) {
			return
		}
		t.Splice(idx, 1)
	case *Record:
		ks, ok := key.(string)
		if !ok {
			return
		}
		node := t.node
		if node != nil && node.rootCount > 0 {
			sys.warnf("avoid deleting key %q on a root state record", ks)
			return
		}
		if !t.Has(ks) {
			return
		}
		t.deleteKey(ks)
		if node != nil {
			node.dep.Notify()
		}
	default:
		sys.warnf("cannot delete key %v on nil or primitive value %v", key, target)
	}
}
