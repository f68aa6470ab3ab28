package wavedata

import (
	"errors"
	"math"
	"strings"
	"testing"
)

const sampleCSV = `latitude,longitude,elevation,utc_offset_seconds,timezone,timezone_abbreviation
54.544587,10.227487,0,0,GMT,GMT

time,wave_height (m),wave_direction (°),wave_period (s),ocean_current_velocity (m/s)
2024-01-01T00:00,1.00,180,6.00,0.30
2024-01-01T01:00,3.00,190,6.50,0.35
2024-01-01T02:00,2.50,200,7.00,0.40
`

func TestParseFiltersMetadata(t *testing.T) {
	recs, err := Parse(strings.NewReader(sampleCSV), "sample")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("got %d records, want 3", len(recs))
	}
	first := Record{Time: "2024-01-01T00:00", Height: 1.0, Direction: 180, Period: 6.0, Current: 0.30}
	if recs[0] != first {
		t.Errorf("first record = %+v, want %+v", recs[0], first)
	}
	if recs[2].Height != 2.5 || recs[2].Current != 0.40 {
		t.Errorf("last record = %+v", recs[2])
	}
}

func TestParseSkipsRepeatedHeader(t *testing.T) {
	src := sampleCSV + "time,wave_height (m),wave_direction (°),wave_period (s),ocean_current_velocity (m/s)\n" +
		"2024-01-01T03:00,1.50,210,7.50,0.45\n"
	recs, err := Parse(strings.NewReader(src), "sample")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(recs) != 4 {
		t.Fatalf("got %d records, want 4", len(recs))
	}
	if recs[3].Height != 1.5 {
		t.Errorf("record after repeated header = %+v", recs[3])
	}
}

func TestParseHeaderOnly(t *testing.T) {
	src := "time,wave_height (m),wave_direction (°),wave_period (s),ocean_current_velocity (m/s)\n"
	_, err := Parse(strings.NewReader(src), "empty")
	var dfe *DataFormatError
	if !errors.As(err, &dfe) {
		t.Fatalf("got %v, want DataFormatError", err)
	}
	if !strings.Contains(dfe.Reason, "no usable data rows") {
		t.Errorf("reason = %q", dfe.Reason)
	}
}

func TestParseNoHeader(t *testing.T) {
	src := "2024-01-01T00:00,1.00,180,6.00,0.30\n"
	var dfe *DataFormatError
	if _, err := Parse(strings.NewReader(src), "bare"); !errors.As(err, &dfe) {
		t.Fatalf("got %v, want DataFormatError", err)
	}
}

func TestParseMissingColumn(t *testing.T) {
	src := "time,wave_height (m),wave_direction (°),wave_period (s)\n" +
		"2024-01-01T00:00,1.00,180,6.00\n"
	var dfe *DataFormatError
	if _, err := Parse(strings.NewReader(src), "partial"); !errors.As(err, &dfe) {
		t.Fatalf("got %v, want DataFormatError", err)
	}
	if !strings.Contains(dfe.Reason, "ocean_current_velocity") {
		t.Errorf("reason = %q, want missing column name", dfe.Reason)
	}
}

func TestParseDropsBadRows(t *testing.T) {
	src := "time,wave_height (m),wave_direction (°),wave_period (s),ocean_current_velocity (m/s)\n" +
		"2024-01-01T00:00,NaN,180,6.00,0.30\n" +
		"2024-01-01T01:00,+Inf,180,6.00,0.30\n" +
		"2024-01-01T02:00,oops,180,6.00,0.30\n" +
		"2024-01-01T03:00,1.20\n" +
		"2024-01-01T04:00,1.10,185,6.20,0.32\n"
	recs, err := Parse(strings.NewReader(src), "mixed")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
	if recs[0].Time != "2024-01-01T04:00" {
		t.Errorf("kept record = %+v", recs[0])
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("testdata/definitely-not-here.csv"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLerpEndpointExact(t *testing.T) {
	prev := Record{Time: "a", Height: 1.25, Direction: 180, Period: 6.5, Current: 0.3}
	next := Record{Time: "b", Height: 3.75, Direction: 270, Period: 8.0, Current: 0.9}
	got := Lerp(prev, next, 0)
	if got != prev {
		t.Errorf("Lerp(prev, next, 0) = %+v, want %+v", got, prev)
	}
}

func TestLerpMidpoint(t *testing.T) {
	prev := Record{Height: 1.0}
	next := Record{Height: 3.0}
	if got := Lerp(prev, next, 0.5).Height; got != 2.0 {
		t.Errorf("midpoint height = %v, want exactly 2.0", got)
	}
}

func TestLerpExtremeMagnitudesKeepEndpoint(t *testing.T) {
	prev := Record{Time: "a", Height: -math.MaxFloat64, Direction: 0, Period: 2, Current: 0}
	next := Record{Time: "b", Height: math.MaxFloat64, Direction: 360, Period: 20, Current: 2}
	if got := Lerp(prev, next, 0); got != prev {
		t.Fatalf("Lerp(prev, next, 0) = %+v, want prev exactly", got)
	}
	if mid := Lerp(prev, next, 0.5).Height; math.IsNaN(mid) || math.IsInf(mid, 0) {
		t.Fatalf("midpoint height = %v, want finite", mid)
	}
}

func TestLerpNeverOvershoots(t *testing.T) {
	prev := Record{Height: 1.0, Direction: 350, Period: 5.0, Current: 0.1}
	next := Record{Height: 4.0, Direction: 10, Period: 9.0, Current: 0.8}
	last := prev.Height
	for i := 0; i < 60; i++ {
		f := Lerp(prev, next, float64(i)/60)
		if f.Height < last {
			t.Fatalf("height regressed at step %d: %v -> %v", i, last, f.Height)
		}
		if f.Height < prev.Height || f.Height > next.Height {
			t.Fatalf("height %v outside [%v,%v]", f.Height, prev.Height, next.Height)
		}
		last = f.Height
	}
}

func TestCursorFractionNeverReachesOne(t *testing.T) {
	recs := []Record{{Height: 1}, {Height: 2}}
	c := NewCursor(recs, 60, true)
	for i := 0; i < 600; i++ {
		_, frac := c.Pos()
		if frac < 0 || frac >= 1 {
			t.Fatalf("tick %d: fraction %v outside [0,1)", i, frac)
		}
		if c.Tick()%60 == 0 && frac != 0 {
			t.Fatalf("tick %d: fraction %v at pair boundary, want 0", i, frac)
		}
		c.Advance()
	}
}

func TestCursorTerminates(t *testing.T) {
	recs := []Record{{Height: 1}, {Height: 3}, {Height: 2}}
	c := NewCursor(recs, 4, false)
	frames := 0
	for !c.Done() {
		if c.Tick() == 4 {
			if f := c.Frame(); f.Height != 3 {
				t.Errorf("tick 4 frame height = %v, want exactly 3", f.Height)
			}
		}
		frames++
		c.Advance()
		if frames > 100 {
			t.Fatal("cursor never finished")
		}
	}
	if want := (len(recs) - 1) * 4; frames != want {
		t.Errorf("rendered %d frames, want %d", frames, want)
	}
	if f := c.Frame(); f.Height != 2 {
		t.Errorf("finished cursor frame height = %v, want final record", f.Height)
	}
}

func TestCursorLoopWraps(t *testing.T) {
	recs := []Record{{Height: 1}, {Height: 3}}
	c := NewCursor(recs, 2, true)
	want := []float64{1, 2, 3, 2, 1}
	for i, w := range want {
		if got := c.Frame().Height; got != w {
			t.Errorf("tick %d: height = %v, want %v", i, got, w)
		}
		c.Advance()
	}
	if c.Done() {
		t.Error("looping cursor reported done")
	}
}

func TestCursorSingleRecord(t *testing.T) {
	c := NewCursor([]Record{{Height: 2.5}}, 3, false)
	for i := 0; i < 3; i++ {
		if c.Done() {
			t.Fatalf("done after %d frames, want 3", i)
		}
		if got := c.Frame().Height; got != 2.5 {
			t.Errorf("tick %d: height = %v, want 2.5", i, got)
		}
		c.Advance()
	}
	if !c.Done() {
		t.Error("single-record cursor should finish after one pair")
	}
}

func TestCursorStepsFallback(t *testing.T) {
	c := NewCursor([]Record{{Height: 1}}, 0, true)
	if got := c.Steps(); got != DefaultInterpSteps {
		t.Fatalf("steps = %d, want the %d default", got, DefaultInterpSteps)
	}
	c = NewCursor([]Record{{Height: 1}}, 12, true)
	if got := c.Steps(); got != 12 {
		t.Fatalf("steps = %d, want 12", got)
	}
}

func TestCursorResetRewinds(t *testing.T) {
	recs := []Record{{Height: 1}, {Height: 3}}
	c := NewCursor(recs, 2, false)
	for !c.Done() {
		c.Advance()
	}
	c.Reset()
	if c.Done() || c.Tick() != 0 {
		t.Fatalf("after Reset: tick=%d done=%v", c.Tick(), c.Done())
	}
	if got := c.Frame().Height; got != 1 {
		t.Errorf("frame after Reset = %v, want first record", got)
	}
}
