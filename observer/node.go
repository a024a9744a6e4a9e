package observer

// Node marks a composite (record or list) as tracked and owns its
// structural dep: the one notified when members are added, removed or
// reordered, as opposed to a single cell's value changing.
type Node struct {
	sys       *System
	value     any
	dep       *Dep
	rootCount int
}

func newNode(sys *System, value any) *Node {
	return &Node{sys: sys, value: value, dep: newDep(sys)}
}

// Dep returns the node's structural dependency set.
func (n *Node) Dep() *Dep {
	return n.dep
}

// RootCount reports how many times the composite was marked as a root
// state container; Set/Del consult it to refuse shape changes on roots.
func (n *Node) RootCount() int {
	return n.rootCount
}

// Observe makes value tracked and returns its node. Non-composites, sealed
// or raw-marked composites, and anything observed while the system switch
// is off return nil. Observing an already-wrapped composite returns the
// cached node; asRootData increments the root-usage counter either way.
func Observe(sys *System, value any, asRootData bool) *Node {
	var node *Node
	switch v := value.(type) {
	case *Record:
		if v.node != nil {
			node = v.node
			break
		}
		if !sys.shouldObserve || v.skip || v.sealed {
			return nil
		}
		node = newNode(sys, v)
		v.node = node
		v.walk()
	case *List:
		if v.node != nil {
			node = v.node
			break
		}
		if !sys.shouldObserve || v.skip {
			return nil
		}
		node = newNode(sys, v)
		v.node = node
		v.observeItems()
	default:
		return nil
	}
	if asRootData {
		node.rootCount++
	}
	return node
}
