package flipper

import "fmt"

// The step schedule follows the Fibonacci sequence on both sides of one
// cell per tick: index 8 is exactly 1, lower indices slow down through
// Fibonacci denominators to 1/30, higher indices speed up to 144 cells per
// tick. Negative indices run the same schedule backwards through time.
var (
	stepNumerators   = [18]int64{1, 1, 1, 1, 1, 1, 1, 1, 2, 3, 5, 8, 13, 21, 34, 55, 89, 144}
	stepDenominators = [18]int64{30, 21, 13, 8, 5, 3, 2, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}
)

// tickScale is divisible by every step denominator, so per-tick budgets
// stay integer-exact.
const tickScale = 10920

// MinSpeed and MaxSpeed bound the signed speed index. Index 0 does not
// exist: the schedule jumps from one cell forward per 30 ticks straight to
// one cell backward per 30 ticks.
const (
	MinSpeed = -18
	MaxSpeed = 18
)

// Speed returns the signed speed index. New traversals start at 1.
func (f *BitFlipper) Speed() int { return f.speed }

// SetSpeed sets the signed speed index. Panics when idx is 0 or outside
// [MinSpeed, MaxSpeed].
func (f *BitFlipper) SetSpeed(idx int) {
	if idx == 0 || idx < MinSpeed || idx > MaxSpeed {
		panic(fmt.Sprintf("flipper: speed index %d out of range", idx))
	}
	f.speed = idx
}

// Faster raises the speed index one notch, skipping 0 and clamping at
// MaxSpeed.
func (f *BitFlipper) Faster() {
	switch {
	case f.speed == -1:
		f.speed = 1
	case f.speed < MaxSpeed:
		f.speed++
	}
}

// Slower lowers the speed index one notch, skipping 0 and clamping at
// MinSpeed.
func (f *BitFlipper) Slower() {
	switch {
	case f.speed == 1:
		f.speed = -1
	case f.speed > MinSpeed:
		f.speed--
	}
}

// stepBudget returns the signed tick-scale budget one tick earns at the
// current speed.
func (f *BitFlipper) stepBudget() int64 {
	i := f.speed
	neg := i < 0
	if neg {
		i = -i
	}
	b := tickScale * stepNumerators[i-1] / stepDenominators[i-1]
	if neg {
		return -b
	}
	return b
}

// Tick accrues one tick's budget and advances by however many whole steps
// it covers, carrying the remainder forward. Returns the signed number of
// steps taken.
func (f *BitFlipper) Tick() int {
	f.tick += f.stepBudget()
	n := f.tick / tickScale
	f.tick -= n * tickScale
	f.Step(int(n))
	return int(n)
}
