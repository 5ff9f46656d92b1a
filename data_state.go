package main

type dataState struct {
	points          []Point
	filteredIndices []int // indices into points matching the current filter state
	available       map[string]struct{} // state codes present in the dataset
	yearMin         int
	yearMax         int
}

func newDataState(points []Point) dataState {
	d := dataState{
		points:    points,
		available: make(map[string]struct{}),
	}
	for i, p := range points {
		d.available[p.StateCode] = struct{}{}
		if i == 0 || p.Year < d.yearMin {
			d.yearMin = p.Year
		}
		if i == 0 || p.Year > d.yearMax {
			d.yearMax = p.Year
		}
	}
	return d
}
