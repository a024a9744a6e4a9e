package observer

import (
	mapset "github.com/deckarep/golang-set/v2"
)

type EvalFunc func() (any, error)

// CallbackFunc receives (newValue, oldValue); a returned error is routed to
// the system error handler, never up the notification stack.
type CallbackFunc func(newValue, oldValue any) error

type WatcherOptions struct {
	// Lazy defers evaluation until Value is demanded; notification only
	// marks the watcher dirty. Computed semantics.
	Lazy bool
	// Sync re-runs on notify even when a scheduler is installed.
	Sync bool
	// User marks a user-declared watch: evaluator errors are labelled as
	// such instead of as render failures.
	User bool
	// Deep traverses the evaluated value so container-internal mutation
	// also triggers the callback.
	Deep bool
	// Immediate invokes the callback once at setup with the just-computed
	// value (old value nil), under the usual error isolation.
	Immediate bool
}

// Watcher is one tracked computation: a render pass, a computed getter or a
// user watch. Evaluation subscribes it to everything it reads; each pass
// diffs against the previous one so dependencies from branches no longer
// taken are dropped.
type Watcher struct {
	sys    *System
	id     uint64
	owner  any
	getter EvalFunc
	cb     CallbackFunc

	value  any
	active bool
	dirty  bool
	lazy   bool
	sync   bool
	user   bool
	deep   bool

	deps      []*Dep
	newDeps   []*Dep
	depIDs    mapset.Set[uint64]
	newDepIDs mapset.Set[uint64]
}

func NewWatcher(sys *System, owner any, getter EvalFunc, cb CallbackFunc, opts WatcherOptions) *Watcher {
	sys.nextWatcherID++
	w := &Watcher{
		sys:       sys,
		id:        sys.nextWatcherID,
		owner:     owner,
		getter:    getter,
		cb:        cb,
		active:    true,
		lazy:      opts.Lazy,
		dirty:     opts.Lazy,
		sync:      opts.Sync,
		user:      opts.User,
		deep:      opts.Deep,
		depIDs:    mapset.NewThreadUnsafeSet[uint64](),
		newDepIDs: mapset.NewThreadUnsafeSet[uint64](),
	}
	if !w.lazy {
		w.value = w.get()
	}
	if opts.Immediate && cb != nil {
		w.invokeCallback(w.value, nil)
	}
	return w
}

// Computed is the lazy-watcher constructor: evaluated on demand, cached
// until a dependency changes.
func Computed(sys *System, owner any, getter EvalFunc) *Watcher {
	return NewWatcher(sys, owner, getter, nil, WatcherOptions{Lazy: true})
}

// NewPathWatcher watches a dot-delimited path ("a.b.c") from root.
func NewPathWatcher(sys *System, owner any, root *Record, path string, cb CallbackFunc, opts WatcherOptions) *Watcher {
	segments := sys.ParsePath(path)
	if segments == nil {
		sys.warnf("failed watching path %q: only dot-delimited paths are supported", path)
	}
	opts.User = true
	return NewWatcher(sys, owner, func() (any, error) {
		if segments == nil {
			return nil, nil
		}
		return segments(root), nil
	}, cb, opts)
}

// ID is stable for the watcher's lifetime; schedulers coalesce on it.
func (w *Watcher) ID() uint64 {
	return w.id
}

func (w *Watcher) Owner() any {
	return w.owner
}

// get runs one evaluation pass: push as target, evaluate, pop, diff
// subscriptions. An evaluator error is routed to the error handler and the
// previous value is retained. The restore is deferred so a panicking
// evaluator cannot leave the target stack pointing at this watcher.
func (w *Watcher) get() any {
	w.sys.pushTarget(w)
	defer func() {
		w.sys.popTarget()
		w.cleanupDeps()
	}()
	value := w.value
	v, err := w.getter()
	if err != nil {
		phase := PhaseRender
		if w.user {
			phase = PhaseWatcherGetter
		}
		w.sys.handleError(w.owner, phase, err)
	} else {
		value = v
	}
	if w.deep {
		traverse(value)
	}
	return value
}

// addDep accumulates a dep for the current pass, subscribing only if the
// previous pass did not already hold it.
func (w *Watcher) addDep(d *Dep) {
	if w.newDepIDs.Contains(d.id) {
		return
	}
	w.newDepIDs.Add(d.id)
	w.newDeps = append(w.newDeps, d)
	if !w.depIDs.Contains(d.id) {
		d.addSub(w)
	}
}

// cleanupDeps unsubscribes from deps not touched this pass and promotes the
// accumulator to the held set.
func (w *Watcher) cleanupDeps() {
	for _, d := range w.deps {
		if !w.newDepIDs.Contains(d.id) {
			d.removeSub(w)
		}
	}
	w.depIDs, w.newDepIDs = w.newDepIDs, w.depIDs
	w.newDepIDs.Clear()
	w.deps, w.newDeps = w.newDeps, w.deps[:0]
}

// update is the notification entry point.
func (w *Watcher) update() {
	switch {
	case w.lazy:
		w.dirty = true
	case w.sync:
		w.run()
	case w.sys.Scheduler != nil:
		w.sys.Scheduler.Enqueue(w)
	default:
		w.run()
	}
}

// Run re-evaluates and fires the callback when the value changed. Composite
// and deep-watched values always fire: same reference, possibly mutated
// inside.
func (w *Watcher) Run() {
	w.run()
}

func (w *Watcher) run() {
	if !w.active {
		return
	}
	value := w.get()
	if sameValue(value, w.value) && !isComposite(value) && !w.deep {
		return
	}
	oldValue := w.value
	w.value = value
	if w.cb != nil {
		w.invokeCallback(value, oldValue)
	}
}

func (w *Watcher) invokeCallback(newValue, oldValue any) {
	if err := w.cb(newValue, oldValue); err != nil {
		w.sys.handleError(w.owner, PhaseWatcherCallback, err)
	}
}

// Value reads a lazy watcher: evaluates if dirty, then lets any outer
// active watcher inherit this watcher's subscriptions so invalidation
// propagates through computed chains.
func (w *Watcher) Value() any {
	if w.dirty {
		w.Evaluate()
	}
	if w.sys.target != nil {
		w.Depend()
	}
	return w.value
}

// Evaluate forces an evaluation pass and clears the dirty flag.
func (w *Watcher) Evaluate() {
	w.value = w.get()
	w.dirty = false
}

// Depend registers the active watcher in every dep this watcher holds.
func (w *Watcher) Depend() {
	for _, d := range w.deps {
		d.Depend()
	}
}

// Teardown unsubscribes from every held dep. Idempotent.
func (w *Watcher) Teardown() {
	if !w.active {
		return
	}
	w.active = false
	for _, d := range w.deps {
		d.removeSub(w)
	}
	w.deps = nil
	w.newDeps = nil
	w.depIDs.Clear()
	w.newDepIDs.Clear()
}

func isComposite(v any) bool {
	switch v.(type) {
	case *Record, *List:
		return true
	}
	return false
}
