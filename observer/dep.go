package observer

// Dep is the subscriber registry for one cell's value or one node's
// structure. Subscribers are kept in insertion order, deduplicated by the
// watcher's own bookkeeping in addDep.
type Dep struct {
	id   uint64
	sys  *System
	subs []*Watcher
}

func newDep(sys *System) *Dep {
	sys.nextDepID++
	return &Dep{id: sys.nextDepID, sys: sys}
}

func (d *Dep) addSub(w *Watcher) {
	d.subs = append(d.subs, w)
}

func (d *Dep) removeSub(w *Watcher) {
	for i, sub := range d.subs {
		if sub == w {
			d.subs = append(d.subs[:i], d.subs[i+1:]...)
			return
		}
	}
}

// Depend registers the system's active watcher, if any, as interested in
// this dep. No-op outside an evaluation pass.
func (d *Dep) Depend() {
	if d.sys.target != nil {
		d.sys.target.addDep(d)
	}
}

// Notify walks a snapshot of the subscriber list, so teardown or
// re-subscription during delivery cannot skip or double-deliver.
func (d *Dep) Notify() {
	subs := make([]*Watcher, len(d.subs))
	copy(subs, d.subs)
	for _, w := range subs {
		w.update()
	}
}
