package main

const defaultRefreshInterval = 2.0

// Refresher decides when the grid is re-rolled. Times are in seconds as
// returned by GetTime.
type Refresher struct {
	Interval float64
	next     float64
	started  bool
}

func NewRefresher(interval float64) *Refresher {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	return &Refresher{Interval: interval}
}

// Due reports whether a refresh should happen at now. The first call is
// always due.
func (r *Refresher) Due(now float64) bool {
	if !r.started || now >= r.next {
		r.Reset(now)
		return true
	}
	return false
}

func (r *Refresher) Reset(now float64) {
	r.started = true
	r.next = now + r.Interval
}

func (r *Refresher) Force() {
	r.started = false
}
