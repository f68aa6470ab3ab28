// Command waveprobe summarizes a wave record CSV before animating it: field
// ranges, an ASCII plot of the height series, the dominant swell cycle from
// an FFT, and the render budgets the observed heights buy.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/cmplx"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/polyuxixi/wave-data/internal/scene"
	"github.com/polyuxixi/wave-data/internal/wavedata"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

func main() {
	dataPath := flag.String("data", "open-meteo-54.54N10.21E0m.csv", "wave record CSV to probe")
	width := flag.Int("width", 960, "frame width used for the budget table")
	plotWidth := flag.Int("plot-width", 72, "wave height plot width in columns")
	flag.Parse()

	records, err := wavedata.Load(*dataPath)
	if err != nil {
		log.Fatalf("load wave data: %v", err)
	}

	heights := field(records, func(r wavedata.Record) float64 { return r.Height })

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", titleStyle.Render(fmt.Sprintf("%s — %d records", *dataPath, len(records))))
	fmt.Fprintf(&b, "%s%s\n",
		labelStyle.Render("span"),
		valueStyle.Render(records[0].Time+" .. "+records[len(records)-1].Time))
	writeRange(&b, "height", heights, "m")
	writeRange(&b, "direction", field(records, func(r wavedata.Record) float64 { return r.Direction }), "°")
	writeRange(&b, "period", field(records, func(r wavedata.Record) float64 { return r.Period }), "s")
	writeRange(&b, "current", field(records, func(r wavedata.Record) float64 { return r.Current }), "m/s")

	if len(heights) > 1 {
		chart := asciigraph.Plot(heights,
			asciigraph.Height(8),
			asciigraph.Width(*plotWidth),
			asciigraph.Caption("wave height (m)"))
		fmt.Fprintf(&b, "%s\n", graphStyle.Render(chart))
	}

	if cycle, ok := dominantCycle(heights); ok {
		fmt.Fprintf(&b, "%s%s\n",
			labelStyle.Render("swell cycle"),
			valueStyle.Render(fmt.Sprintf("%.1f records per cycle (%.1f h at hourly sampling)", cycle, cycle)))
	}

	min, _, max := rangeOf(heights)
	if min < 0 || max > scene.MaxWaveHeight {
		fmt.Fprintf(&b, "%s\n", warnStyle.Render(fmt.Sprintf(
			"heights outside [0, %.0f] m will be clamped for rendering", scene.MaxWaveHeight)))
	}

	fmt.Fprintf(&b, "\n%s\n", titleStyle.Render("render budget"))
	fmt.Fprintf(&b, "%s\n", valueStyle.Render(fmt.Sprintf("%9s %6s %6s %6s %6s %6s %10s",
		"height", "snow", "vents", "rings", "edge", "tent", "debris")))
	for _, h := range budgetHeights(heights) {
		bud := scene.BudgetFor(*width, h, scene.DefaultDensity())
		fmt.Fprintf(&b, "%s\n", valueStyle.Render(fmt.Sprintf("%7.2f m %6d %6d %6d %6d %6d %10d",
			h, bud.Snow, bud.VentParticles, bud.BellRings, bud.BellEdgeDots, bud.Tentacles, bud.Debris)))
	}

	fmt.Print(b.String())
}

func field(records []wavedata.Record, get func(wavedata.Record) float64) []float64 {
	vals := make([]float64, len(records))
	for i, r := range records {
		vals[i] = get(r)
	}
	return vals
}

func rangeOf(vals []float64) (min, mean, max float64) {
	if len(vals) == 0 {
		return 0, 0, 0
	}
	min, max = vals[0], vals[0]
	sum := 0.0
	for _, v := range vals {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		sum += v
	}
	return min, sum / float64(len(vals)), max
}

func writeRange(b *strings.Builder, name string, vals []float64, unit string) {
	min, mean, max := rangeOf(vals)
	fmt.Fprintf(b, "%s%s\n",
		labelStyle.Render(name),
		valueStyle.Render(fmt.Sprintf("%.2f / %.2f / %.2f %s (min/mean/max)", min, mean, max, unit)))
}

// budgetHeights picks the observed min, mean, and max for the budget table,
// deduplicated so a flat series prints one row.
func budgetHeights(heights []float64) []float64 {
	min, mean, max := rangeOf(heights)
	out := []float64{min}
	if mean > min {
		out = append(out, mean)
	}
	if max > mean {
		out = append(out, max)
	}
	return out
}

// dominantCycle reports the strongest non-constant cycle in the series, in
// records per cycle.
func dominantCycle(seq []float64) (float64, bool) {
	n := len(seq)
	if n < 4 {
		return 0, false
	}
	_, mean, _ := rangeOf(seq)
	centered := make([]float64, n)
	for i, v := range seq {
		centered[i] = v - mean
	}
	fft := fourier.NewFFT(n)
	coeffs := fft.Coefficients(nil, centered)
	best, bestMag := 0, 0.0
	for i := 1; i < len(coeffs); i++ {
		if m := cmplx.Abs(coeffs[i]); m > bestMag {
			best, bestMag = i, m
		}
	}
	if best == 0 || bestMag == 0 {
		return 0, false
	}
	freq := fft.Freq(best)
	if freq <= 0 {
		return 0, false
	}
	return 1 / freq, true
}
