package observer

// InitData runs a state-construction function under error isolation and
// observes the result as root data. On failure the error is routed with the
// "data" phase and the fallback is an empty record; there is no prior value
// to retain on the first evaluation.
func InitData(sys *System, owner any, fn func() (*Record, error)) *Record {
	rec, err := fn()
	if err != nil {
		sys.handleError(owner, PhaseData, err)
		rec = nil
	}
	if rec == nil {
		rec = NewRecord(sys)
	}
	Observe(sys, rec, true)
	return rec
}
