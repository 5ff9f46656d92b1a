package main

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/rkallio/gridsift/logging"
	"github.com/rkallio/gridsift/regions"
)

// Point is one state-year record of the grid dataset. Metric fields hold
// NaN when the source had no value for that state and year.
type Point struct {
	StateCode string
	State     string
	Region    string
	Year      int
	SAIDI     float64 // outage minutes per customer per year
	VREPct    float64 // wind+solar share of generation, percent
	RateAll   float64 // average retail rate, cents/kWh
}

// loadPointsCSV reads the chart dataset from a CSV export. Expected header:
// stateCode,state,year,saidi,vrePenetration,rateAll (extra columns ignored).
func loadPointsCSV(path string) ([]Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("CSV %q has no data rows", path)
	}

	col := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		name = strings.TrimPrefix(strings.TrimSpace(name), "\uFEFF")
		col[name] = i
	}
	for _, required := range []string{"stateCode", "year"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("CSV %q is missing the %q column", path, required)
		}
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	points := make([]Point, 0, len(records)-1)
	for n, row := range records[1:] {
		code := field(row, "stateCode")
		year, err := strconv.Atoi(field(row, "year"))
		if code == "" || err != nil {
			logging.Warnf("CSV row %d skipped: missing state code or year", n+2)
			continue
		}
		region, ok := regions.GroupOf(code)
		if !ok {
			// US totals and RTO aggregate rows show up in raw exports
			logging.Debugf("CSV row %d skipped: %q is not a state", n+2, code)
			continue
		}
		points = append(points, Point{
			StateCode: code,
			State:     field(row, "state"),
			Region:    region,
			Year:      year,
			SAIDI:     parseMetric(field(row, "saidi")),
			VREPct:    parseMetric(field(row, "vrePenetration")),
			RateAll:   parseMetric(field(row, "rateAll")),
		})
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("CSV %q contained no usable rows", path)
	}
	return points, nil
}

func parseMetric(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
