package grid

// FlipRecord is one observed Flip call: the coordinates exactly as the
// caller passed them (unwrapped) and the value the cell held before.
type FlipRecord struct {
	X, Y, Z int
	Prev    bool
}

// Recorder wraps a Grid and logs every Flip routed through it while
// delegating all storage to the wrapped grid. It is an inspection harness
// for code that is handed a Grid by reference.
type Recorder struct {
	g     Grid
	flips []FlipRecord
}

// NewRecorder wraps g with an empty log.
func NewRecorder(g Grid) *Recorder {
	return &Recorder{g: g}
}

// Get reads through to the wrapped grid.
func (r *Recorder) Get(x, y, z int) bool { return r.g.Get(x, y, z) }

// Set writes through to the wrapped grid.
func (r *Recorder) Set(x, y, z int, v bool) bool { return r.g.Set(x, y, z, v) }

// Width returns the wrapped grid's extent along x.
func (r *Recorder) Width() int { return r.g.Width() }

// Height returns the wrapped grid's extent along y.
func (r *Recorder) Height() int { return r.g.Height() }

// Depth returns the wrapped grid's extent along z.
func (r *Recorder) Depth() int { return r.g.Depth() }

// Flip toggles through to the wrapped grid and appends one record.
func (r *Recorder) Flip(x, y, z int) bool {
	prev := Flip(r.g, x, y, z)
	r.flips = append(r.flips, FlipRecord{X: x, Y: y, Z: z, Prev: prev})
	return prev
}

// Flips returns the records accumulated so far.
func (r *Recorder) Flips() []FlipRecord { return r.flips }

// Reset discards the accumulated records.
func (r *Recorder) Reset() { r.flips = r.flips[:0] }

// Grid returns the wrapped grid.
func (r *Recorder) Grid() Grid { return r.g }
