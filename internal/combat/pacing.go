package combat

// Delay counts simulation ticks. It only stages visible feedback and never
// changes an outcome.
type Delay struct {
	Threshold int
	elapsed   int
}

func NewDelay(ticks int) *Delay {
	if ticks < 0 {
		ticks = 0
	}
	return &Delay{Threshold: ticks}
}

func (d *Delay) Elapsed() bool { return d.elapsed >= d.Threshold }

// Tick advances the counter and reports whether the delay has now elapsed.
func (d *Delay) Tick() bool {
	if d.elapsed < d.Threshold {
		d.elapsed++
	}
	return d.Elapsed()
}

// Reset rearms the delay with a new threshold.
func (d *Delay) Reset(ticks int) {
	if ticks < 0 {
		ticks = 0
	}
	d.Threshold = ticks
	d.elapsed = 0
}
