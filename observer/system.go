package observer

import "log"

// Phase labels attached to errors routed through OnErrorFunc.
const (
	PhaseData            = "data"
	PhaseRender          = "render"
	PhaseWatcherGetter   = "watcher getter"
	PhaseWatcherCallback = "watcher callback"
)

type OnErrorFunc func(owner any, phase string, err error)

type WarnFunc func(format string, args ...any)

// Scheduler receives eager watchers whose dependencies changed, instead of
// the system re-running them synchronously. Implementations are expected to
// coalesce by watcher ID and flush later; the core does not flush.
type Scheduler interface {
	Enqueue(w *Watcher)
}

// System owns one reactive graph: the active-watcher stack that wires reads
// to subscriptions, the observation switch, and error routing. It is
// single-threaded and cooperative; sharing a System across goroutines
// requires external serialization.
type System struct {
	target        *Watcher
	targetStack   []*Watcher
	shouldObserve bool

	onError OnErrorFunc
	Warn    WarnFunc

	// Optional; nil means notified eager watchers re-run synchronously.
	Scheduler Scheduler

	nextDepID     uint64
	nextWatcherID uint64

	pathCache map[uint64][]string
}

func NewSystem(onError OnErrorFunc) *System {
	return &System{
		shouldObserve: true,
		onError:       onError,
		Warn:          log.Printf,
		pathCache:     map[uint64][]string{},
	}
}

func (sys *System) pushTarget(w *Watcher) {
	sys.targetStack = append(sys.targetStack, sys.target)
	sys.target = w
}

func (sys *System) popTarget() {
	lastIdx := len(sys.targetStack) - 1
	sys.target = sys.targetStack[lastIdx]
	sys.targetStack = sys.targetStack[:lastIdx]
}

// ToggleObserving turns creation of new observed nodes on or off. Callers
// must restore the previous value before any unrelated observation runs; the
// switch must never be left toggled across a suspension point.
func (sys *System) ToggleObserving(on bool) {
	sys.shouldObserve = on
}

func (sys *System) handleError(owner any, phase string, err error) {
	if sys.onError != nil {
		sys.onError(owner, phase, err)
		return
	}
	sys.warnf("unhandled error in %s: %v", phase, err)
}

func (sys *System) warnf(format string, args ...any) {
	if sys.Warn != nil {
		sys.Warn(format, args...)
	}
}
