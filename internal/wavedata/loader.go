package wavedata

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Column names as they appear in marine-weather CSV exports. Columns are
// matched by name, not position, so extra columns are harmless.
const (
	colTime      = "time"
	colHeight    = "wave_height (m)"
	colDirection = "wave_direction (°)"
	colPeriod    = "wave_period (s)"
	colCurrent   = "ocean_current_velocity (m/s)"
)

// DataFormatError reports a dataset that cannot drive the animation: no
// header, a missing required column, or zero usable data rows.
type DataFormatError struct {
	Name   string
	Reason string
}

func (e *DataFormatError) Error() string {
	return fmt.Sprintf("wave dataset %s: %s", e.Name, e.Reason)
}

// Load reads and parses the CSV dataset at path.
func Load(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open wave dataset: %w", err)
	}
	defer f.Close()
	return Parse(f, path)
}

// Parse reads a marine-weather CSV export. The exports carry a metadata
// preamble (a "latitude,longitude,..." header and its value row) before the
// real column header, so lines are filtered first: blanks and latitude lines
// are dropped, the first line starting with "time" becomes the header, and
// any later "time" line is treated as a repeated header and skipped. Data
// rows with unparsable or non-finite numbers are dropped; that also disposes
// of the metadata value row, which has text in a numeric column.
func Parse(r io.Reader, name string) ([]Record, error) {
	var header string
	var data []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
		case strings.HasPrefix(line, "latitude"):
		case strings.HasPrefix(line, "time"):
			if header == "" {
				header = line
			}
		default:
			data = append(data, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read wave dataset: %w", err)
	}
	if header == "" {
		return nil, &DataFormatError{Name: name, Reason: "no column header found"}
	}

	cols, err := columnIndex(header, name)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(strings.NewReader(strings.Join(data, "\n")))
	cr.FieldsPerRecord = -1
	records := make([]Record, 0, len(data))
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse wave dataset %s: %w", name, err)
		}
		rec, ok := parseRow(fields, cols)
		if ok {
			records = append(records, rec)
		}
	}
	if len(records) == 0 {
		return nil, &DataFormatError{Name: name, Reason: "no usable data rows"}
	}
	return records, nil
}

// columns holds the field index of each required column.
type columns struct {
	time, height, direction, period, current int
}

func columnIndex(header, name string) (columns, error) {
	cr := csv.NewReader(strings.NewReader(header))
	fields, err := cr.Read()
	if err != nil {
		return columns{}, &DataFormatError{Name: name, Reason: "unreadable column header"}
	}
	idx := make(map[string]int, len(fields))
	for i, f := range fields {
		idx[strings.TrimSpace(f)] = i
	}
	var cols columns
	for _, want := range []struct {
		name string
		dst  *int
	}{
		{colTime, &cols.time},
		{colHeight, &cols.height},
		{colDirection, &cols.direction},
		{colPeriod, &cols.period},
		{colCurrent, &cols.current},
	} {
		i, ok := idx[want.name]
		if !ok {
			return columns{}, &DataFormatError{Name: name, Reason: fmt.Sprintf("missing required column %q", want.name)}
		}
		*want.dst = i
	}
	return cols, nil
}

func parseRow(fields []string, cols columns) (Record, bool) {
	max := cols.time
	for _, i := range []int{cols.height, cols.direction, cols.period, cols.current} {
		if i > max {
			max = i
		}
	}
	if len(fields) <= max {
		return Record{}, false
	}
	rec := Record{Time: strings.TrimSpace(fields[cols.time])}
	for _, f := range []struct {
		idx int
		dst *float64
	}{
		{cols.height, &rec.Height},
		{cols.direction, &rec.Direction},
		{cols.period, &rec.Period},
		{cols.current, &rec.Current},
	} {
		v, err := strconv.ParseFloat(strings.TrimSpace(fields[f.idx]), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return Record{}, false
		}
		*f.dst = v
	}
	return rec, true
}
