package observer

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// traverse touches every nested key and element of value while a watcher is
// the active target, collecting the whole structure as dependencies. The
// seen set is keyed by structural dep ID so cyclic graphs terminate.
func traverse(value any) {
	traverseValue(value, mapset.NewThreadUnsafeSet[uint64]())
}

func traverseValue(value any, seen mapset.Set[uint64]) {
	switch v := value.(type) {
	case *Record:
		if v.node != nil {
			id := v.node.dep.id
			if seen.Contains(id) {
				return
			}
			seen.Add(id)
		}
		for _, key := range v.Keys() {
			traverseValue(v.Get(key), seen)
		}
	case *List:
		if v.node != nil {
			id := v.node.dep.id
			if seen.Contains(id) {
				return
			}
			seen.Add(id)
		}
		for _, item := range v.items {
			traverseValue(item, seen)
		}
	}
}
