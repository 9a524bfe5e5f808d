package core

import "time"

// FixedStep helps run simulation updates at a steady ticks-per-second rate.
// Elapsed wall time accumulates and is drained in whole steps, so a tick
// rate above the caller's polling rate still advances the right number of
// steps per poll.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// maxBurst caps how many pending steps a single poll may report after a
// stall, e.g. a dragged window or a suspended process.
const maxBurst = 8

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	fs := &FixedStep{}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Steps reports how many whole ticks elapsed since the previous call,
// capped at maxBurst.
func (f *FixedStep) Steps() int {
	f.advance()
	n := 0
	for f.accumulator >= f.step && n < maxBurst {
		f.accumulator -= f.step
		n++
	}
	if f.accumulator >= f.step {
		f.accumulator = 0
	}
	return n
}

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	f.advance()
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}

func (f *FixedStep) advance() {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
}