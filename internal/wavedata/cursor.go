package wavedata

// DefaultInterpSteps is how many animation frames are rendered between two
// adjacent records. At 30 fps this paces one record transition per 2 s.
const DefaultInterpSteps = 60

// Cursor walks a record sequence one animation frame at a time. Each tick
// maps to a pair of adjacent records and a fraction t = (tick mod steps) /
// steps, so t covers [0,1) and never reaches 1: the moment t would hit 1 is
// the next pair's t=0. In loop mode the last record blends back into the
// first; otherwise the cursor finishes after the final pair.
type Cursor struct {
	records []Record
	steps   int
	loop    bool
	tick    int
	done    bool
}

// NewCursor creates a cursor over records. steps <= 0 falls back to
// DefaultInterpSteps.
func NewCursor(records []Record, steps int, loop bool) *Cursor {
	if steps <= 0 {
		steps = DefaultInterpSteps
	}
	return &Cursor{records: records, steps: steps, loop: loop}
}

// Reset rewinds the cursor to the first frame.
func (c *Cursor) Reset() {
	c.tick = 0
	c.done = false
}

// Tick returns the current frame counter. It doubles as the animation clock:
// motion phases and interpolation advance on the same counter.
func (c *Cursor) Tick() int { return c.tick }

// Steps returns the sub-frame count per record pair.
func (c *Cursor) Steps() int { return c.steps }

// Done reports whether a non-looping cursor has exhausted its records.
func (c *Cursor) Done() bool { return c.done }

// Advance moves to the next frame. Once done it is a no-op.
func (c *Cursor) Advance() {
	if c.done {
		return
	}
	c.tick++
	if !c.loop && c.tick >= c.total() {
		c.done = true
	}
}

// total is the number of frames a non-looping run renders.
func (c *Cursor) total() int {
	n := len(c.records)
	if n <= 1 {
		return c.steps
	}
	return (n - 1) * c.steps
}

// Pos returns the left record index and the blend fraction of the current
// frame. t is always in [0,1).
func (c *Cursor) Pos() (int, float64) {
	n := len(c.records)
	if n == 0 {
		return 0, 0
	}
	pair := c.tick / c.steps
	t := float64(c.tick%c.steps) / float64(c.steps)
	if c.loop {
		return pair % n, t
	}
	if pair > n-2 {
		if n == 1 {
			return 0, t
		}
		return n - 2, t
	}
	return pair, t
}

// Len returns the number of records behind the cursor.
func (c *Cursor) Len() int { return len(c.records) }

// Frame returns the interpolated record for the current tick. A finished
// non-looping cursor holds the final record.
func (c *Cursor) Frame() Record {
	n := len(c.records)
	if n == 0 {
		return Record{}
	}
	if n == 1 {
		return c.records[0]
	}
	if c.done {
		return c.records[n-1]
	}
	i, t := c.Pos()
	j := i + 1
	if j >= n {
		j = 0
	}
	return Lerp(c.records[i], c.records[j], t)
}
