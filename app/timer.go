package app

// DeltaTimer measures frame time against a host clock in seconds.
type DeltaTimer struct {
	clock    func() float64
	begin    float64
	previous float64
	dt       float64
	elapsed  float64
}

func NewDeltaTimer(clock func() float64) *DeltaTimer {
	now := clock()
	return &DeltaTimer{clock: clock, begin: now, previous: now}
}

// Update samples the clock once per frame.
func (t *DeltaTimer) Update() {
	now := t.clock()
	t.dt = now - t.previous
	t.previous = now
	t.elapsed = now - t.begin
}

// Dt is the time between the last two updates.
func (t *DeltaTimer) Dt() float64 {
	return t.dt
}

// Elapsed is the time from construction to the last update.
func (t *DeltaTimer) Elapsed() float64 {
	return t.elapsed
}
