package curve

import (
	"math"
	"testing"
)

func TestWaveAt(t *testing.T) {
	w := Wave{Amp: 3, Freq: 2, Phase: 0}
	if got := w.At(0); got != 0 {
		t.Errorf("At(0) = %v, want 0", got)
	}
	quarter := math.Pi / 4 // freq 2 puts the crest at pi/4
	if got := w.At(quarter); math.Abs(got-3) > 1e-12 {
		t.Errorf("At(crest) = %v, want 3", got)
	}
}

func TestWavePhaseShifts(t *testing.T) {
	a := Wave{Amp: 1, Freq: 1, Phase: 0}
	b := Wave{Amp: 1, Freq: 1, Phase: math.Pi / 2}
	if got := b.At(0); math.Abs(got-a.At(math.Pi/2)) > 1e-12 {
		t.Errorf("phase shift mismatch: %v", got)
	}
}

func TestSumAdds(t *testing.T) {
	s := Sum{
		{Amp: 2, Freq: 1, Phase: 0},
		{Amp: 0.5, Freq: 3, Phase: 1},
	}
	x := 0.37
	want := 2*math.Sin(x) + 0.5*math.Sin(3*x+1)
	if got := s.At(x); math.Abs(got-want) > 1e-12 {
		t.Errorf("Sum.At = %v, want %v", got, want)
	}
}

func TestOscBounds(t *testing.T) {
	for tick := 0; tick < 1000; tick++ {
		v := Osc(float64(tick), 10, 4, 0.13, 0.7)
		if v < 6 || v > 14 {
			t.Fatalf("tick %d: Osc = %v outside [6,14]", tick, v)
		}
	}
}
