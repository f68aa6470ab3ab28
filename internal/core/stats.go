package core

import (
	"fmt"
	"strconv"
)

// Stat is one labeled read-only value published for display.
type Stat struct {
	Label string
	Value string
}

// StatGroup clusters related stats for presentation purposes.
type StatGroup struct {
	Name  string
	Stats []Stat
}

// StatsSnapshot captures the values an animation exposes to the HUD and to
// reporting tools. It is rebuilt per frame and carries no references back
// into the animation.
type StatsSnapshot struct {
	Groups []StatGroup
}

// Lines flattens the snapshot into "Label: Value" display lines, in group
// order.
func (s StatsSnapshot) Lines() []string {
	var lines []string
	for _, g := range s.Groups {
		for _, st := range g.Stats {
			lines = append(lines, st.Label+": "+st.Value)
		}
	}
	return lines
}

// FloatStat formats a float stat with the given precision and unit suffix.
func FloatStat(label string, v float64, prec int, unit string) Stat {
	return Stat{Label: label, Value: strconv.FormatFloat(v, 'f', prec, 64) + unit}
}

// IntStat formats an integer stat.
func IntStat(label string, v int) Stat {
	return Stat{Label: label, Value: strconv.Itoa(v)}
}

// RatioStat formats a position such as "31/240".
func RatioStat(label string, n, total int) Stat {
	return Stat{Label: label, Value: fmt.Sprintf("%d/%d", n, total)}
}
