package main

import (
	"database/sql"
	"fmt"
	"math"

	_ "modernc.org/sqlite"

	"github.com/rkallio/gridsift/logging"
	"github.com/rkallio/gridsift/regions"
)

// loadPointsSQLite reads the dataset from a SQLite export of the fetch
// pipeline. The database is opened read-only; this process never writes it.
func loadPointsSQLite(path string) ([]Point, error) {
	dsn := fmt.Sprintf("file:%s?mode=ro&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("cannot open database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(`
		SELECT state_code, state, year, saidi, vre_penetration, rate_all
		FROM points
		ORDER BY year, state_code
	`)
	if err != nil {
		return nil, fmt.Errorf("query points: %w", err)
	}
	defer rows.Close()

	var points []Point
	for rows.Next() {
		var (
			code  string
			state sql.NullString
			year  int
			saidi sql.NullFloat64
			vre   sql.NullFloat64
			rate  sql.NullFloat64
		)
		if err := rows.Scan(&code, &state, &year, &saidi, &vre, &rate); err != nil {
			return nil, fmt.Errorf("scan point: %w", err)
		}
		region, ok := regions.GroupOf(code)
		if !ok {
			logging.Debugf("DB row skipped: %q is not a state", code)
			continue
		}
		points = append(points, Point{
			StateCode: code,
			State:     state.String,
			Region:    region,
			Year:      year,
			SAIDI:     nullMetric(saidi),
			VREPct:    nullMetric(vre),
			RateAll:   nullMetric(rate),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read points: %w", err)
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("database %q contained no usable rows", path)
	}
	return points, nil
}

func nullMetric(v sql.NullFloat64) float64 {
	if !v.Valid {
		return math.NaN()
	}
	return v.Float64
}
