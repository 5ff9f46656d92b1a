package main

type ColumnRole int

const (
	RoleNormal ColumnRole = iota
	RolePrimary
	RoleSecondary
)

type ColumnMeta struct {
	Name     string
	Role     ColumnRole
	Visible  bool
	MinWidth int
	Weight   float64
	Width    int
}

// defaultColumns is the fixed table layout of the dataset view. State gets
// the primary share of slack width.
func defaultColumns() []ColumnMeta {
	return []ColumnMeta{
		{Name: "State", Role: RolePrimary, Visible: true, MinWidth: 16, Weight: 4.0},
		{Name: "Yr", Role: RoleSecondary, Visible: true, MinWidth: 5, Weight: 1.0},
		{Name: "Region", Role: RoleNormal, Visible: true, MinWidth: 10, Weight: 1.5},
		{Name: "SAIDI min", Role: RoleNormal, Visible: true, MinWidth: 10, Weight: 1.0},
		{Name: "VRE %", Role: RoleNormal, Visible: true, MinWidth: 8, Weight: 1.0},
		{Name: "¢/kWh", Role: RoleNormal, Visible: true, MinWidth: 8, Weight: 1.0},
	}
}

func layoutColumns(cols []ColumnMeta, totalWidth int) []ColumnMeta {
	if totalWidth <= 0 {
		return cols
	}

	// 1. Sum min widths & weights for visible columns
	minSum := 0
	weightSum := 0.0

	for i := range cols {
		if !cols[i].Visible {
			continue
		}
		minSum += cols[i].MinWidth
		weightSum += cols[i].Weight
	}

	if minSum >= totalWidth {
		// Too tight: just give each visible column its MinWidth clamped
		for i := range cols {
			if !cols[i].Visible {
				continue
			}
			if cols[i].MinWidth > totalWidth {
				cols[i].Width = totalWidth
			} else {
				cols[i].Width = cols[i].MinWidth
			}
		}
		return cols
	}

	remaining := totalWidth - minSum

	// 2. Distribute remaining space by weight
	for i := range cols {
		if !cols[i].Visible {
			cols[i].Width = 0
			continue
		}

		extra := 0
		if weightSum > 0 {
			extra = int(float64(remaining) * (cols[i].Weight / weightSum))
		}
		cols[i].Width = cols[i].MinWidth + extra
	}

	return cols
}
