package creature

import (
	"bytes"
	"math"
	"testing"

	"github.com/polyuxixi/wave-data/internal/render"
	"github.com/polyuxixi/wave-data/internal/wavedata"
)

func calmRecord() wavedata.Record {
	return wavedata.Record{Time: "2024-01-01T00:00", Height: 1.2, Direction: 210, Period: 6.5, Current: 0.3}
}

func TestCountHelpersGrowWithHeight(t *testing.T) {
	if got := RingCount(0); got != 48 {
		t.Fatalf("RingCount(0) = %d, want 48", got)
	}
	if got := RingCount(2.5); got != 58 {
		t.Fatalf("RingCount(2.5) = %d, want 58", got)
	}
	if got := EdgeDotBase(2); got != 420 {
		t.Fatalf("EdgeDotBase(2) = %d, want 420", got)
	}
	if got := TentacleCount(1.5); got != 159 {
		t.Fatalf("TentacleCount(1.5) = %d, want 159", got)
	}
	prev := -1
	for _, h := range []float64{0, 0.5, 1, 2, 4, 8, 16, 20} {
		n := TentacleCount(h)
		if n <= prev {
			t.Fatalf("TentacleCount(%v) = %d, not above %d", h, n, prev)
		}
		prev = n
	}
}

func TestCountHelpersClampNegative(t *testing.T) {
	if RingCount(-3) != RingCount(0) {
		t.Fatalf("negative height should count like a flat sea")
	}
	if EdgeDotBase(-3) != EdgeDotBase(0) || TentacleCount(-3) != TentacleCount(0) {
		t.Fatalf("negative height should count like a flat sea")
	}
}

func TestMetricsForIsStatic(t *testing.T) {
	m := MetricsFor(960, 960)
	want := Metrics{CenterX: 480, CenterY: 402, RadiusX: 115, RadiusY: 57}
	if m != want {
		t.Fatalf("MetricsFor(960, 960) = %+v, want %+v", m, want)
	}
}

func TestSegmentCountStableAcrossResets(t *testing.T) {
	a := New(42)
	b := New(42)
	for k := 0; k < 40; k++ {
		na, nb := a.segmentCount(k), b.segmentCount(k)
		if na != nb {
			t.Fatalf("segmentCount(%d) differs across instances: %d vs %d", k, na, nb)
		}
		if na < 12 || na > 21 {
			t.Fatalf("segmentCount(%d) = %d, outside [12, 21]", k, na)
		}
	}
	a.Advance(6)
	a.Reset(42)
	if a.segmentCount(7) != b.segmentCount(7) {
		t.Fatalf("segment counts changed after reset with the same seed")
	}
}

func TestDrawIsDeterministic(t *testing.T) {
	rec := calmRecord()
	b1 := render.NewBuffer(240, 240)
	b2 := render.NewBuffer(240, 240)
	c1 := New(1337).Draw(b1, rec, 30)
	c2 := New(1337).Draw(b2, rec, 30)
	if c1 != c2 {
		t.Fatalf("counts differ for identical seed and clock: %+v vs %+v", c1, c2)
	}
	if !bytes.Equal(b1.Image().Pix, b2.Image().Pix) {
		t.Fatalf("pixels differ for identical seed and clock")
	}
	if c1.BellDots == 0 || c1.TentacleDots == 0 || c1.Trails == 0 {
		t.Fatalf("draw produced an empty body: %+v", c1)
	}
	if c1.TrunkDots != 2*trunkDots {
		t.Fatalf("trunk dots = %d, want %d", c1.TrunkDots, 2*trunkDots)
	}
	if c1.Spokes != spokeLayers*(spokeCount-1) {
		t.Fatalf("spokes = %d, want %d", c1.Spokes, spokeLayers*(spokeCount-1))
	}
}

func TestDrawSeedChangesSparkles(t *testing.T) {
	rec := calmRecord()
	b1 := render.NewBuffer(240, 240)
	b2 := render.NewBuffer(240, 240)
	New(1).Draw(b1, rec, 30)
	New(2).Draw(b2, rec, 30)
	if bytes.Equal(b1.Image().Pix, b2.Image().Pix) {
		t.Fatalf("different seeds rendered identical frames")
	}
}

func TestAdvanceMovesTheBody(t *testing.T) {
	rec := calmRecord()
	j := New(9)
	b1 := render.NewBuffer(240, 240)
	j.Draw(b1, rec, 0)
	j.Advance(rec.Period)
	b2 := render.NewBuffer(240, 240)
	j.Draw(b2, rec, 1)
	if bytes.Equal(b1.Image().Pix, b2.Image().Pix) {
		t.Fatalf("frame did not change after advancing the clock and sway")
	}
}

func TestShortPeriodSwaysFaster(t *testing.T) {
	chop := New(5)
	swell := New(5)
	chop.Advance(1.5)
	swell.Advance(12)
	if chop.sway <= swell.sway {
		t.Fatalf("chop sway %v should outpace swell sway %v", chop.sway, swell.sway)
	}
	short := New(5)
	short.Advance(0.2)
	capped := New(5)
	capped.Advance(0.5)
	if short.sway != capped.sway {
		t.Fatalf("periods under half a second should sway at the capped rate")
	}
}

func TestBodyGrowsWithWaveHeight(t *testing.T) {
	calm := calmRecord()
	calm.Height = 0.4
	rough := calm
	rough.Height = 5.5
	bCalm := render.NewBuffer(240, 240)
	bRough := render.NewBuffer(240, 240)
	cCalm := New(11).Draw(bCalm, calm, 30)
	cRough := New(11).Draw(bRough, rough, 30)
	if cRough.BellDots <= cCalm.BellDots {
		t.Fatalf("bell dots %d should exceed calm count %d", cRough.BellDots, cCalm.BellDots)
	}
	if cRough.TentacleDots <= cCalm.TentacleDots {
		t.Fatalf("tentacle dots %d should exceed calm count %d", cRough.TentacleDots, cCalm.TentacleDots)
	}
}

func TestSwayAmplitudeTracksCurrent(t *testing.T) {
	if got := swayAmplitude(0); got != 0.35 {
		t.Fatalf("still-water amplitude = %v, want 0.35", got)
	}
	if got := swayAmplitude(0.25); math.Abs(got-0.5) > 1e-12 {
		t.Fatalf("amplitude at 0.25 m/s = %v, want 0.5", got)
	}
	if swayAmplitude(0.1) >= swayAmplitude(0.4) {
		t.Fatalf("amplitude should grow with the current")
	}
	if swayAmplitude(0.5) != swayAmplitude(3) {
		t.Fatalf("amplitude should cap above 0.5 m/s")
	}
}

func TestTentaclePoseFollowsSwayAmplitude(t *testing.T) {
	j := New(3)
	tip := func(amp float64) (float64, float64) {
		var x, y float64
		j.tentaclePath(25, 1.3, amp, 120, 90, 30, 18, 2, 9, func(s int, sf, px, py, nx, ny float64) {
			x, y = nx, ny
		})
		return x, y
	}
	x1, y1 := tip(swayAmplitude(0))
	x2, y2 := tip(swayAmplitude(2))
	if x1 == x2 && y1 == y2 {
		t.Fatalf("tentacle tip ignored the sway amplitude")
	}
}

func TestTentacleScaleGrowsTheBudget(t *testing.T) {
	j := New(4)
	base := j.tentacleBudget(1.5)
	if base != TentacleCount(1.5) {
		t.Fatalf("baseline budget %d, want %d", base, TentacleCount(1.5))
	}
	j.TentacleScale = 2
	if got := j.tentacleBudget(1.5); got != 2*base {
		t.Fatalf("doubled scale budget %d, want %d", got, 2*base)
	}
	j.TentacleScale = 0
	if got := j.tentacleBudget(1.5); got != 0 {
		t.Fatalf("zero scale budget %d, want 0", got)
	}
}

func TestTentacleScaleGrowsTheBody(t *testing.T) {
	rec := calmRecord()
	base := New(21)
	dense := New(21)
	dense.TentacleScale = 2
	b1 := render.NewBuffer(240, 240)
	b2 := render.NewBuffer(240, 240)
	cb := base.Draw(b1, rec, 30)
	cd := dense.Draw(b2, rec, 30)
	if cd.TentacleDots <= cb.TentacleDots {
		t.Fatalf("tentacle dots %d at doubled scale should exceed %d", cd.TentacleDots, cb.TentacleDots)
	}
}
