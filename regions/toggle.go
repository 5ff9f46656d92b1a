package regions

import "slices"

// Status is the derived selection state of a region. It is recomputed from
// the selection on every query; never cache it anywhere, or it will drift
// from the selection it summarizes.
type Status int

const (
	StatusNone Status = iota
	StatusSome
	StatusAll
)

func (s Status) String() string {
	switch s {
	case StatusAll:
		return "all"
	case StatusSome:
		return "some"
	}
	return "none"
}

// availableMembers restricts a region's member list to the availability set.
// A nil set means every member is available.
func availableMembers(region string, available map[string]struct{}) []string {
	members := membersByRegion[region]
	if available == nil {
		return slices.Clone(members)
	}
	out := make([]string, 0, len(members))
	for _, code := range members {
		if _, ok := available[code]; ok {
			out = append(out, code)
		}
	}
	return out
}

// GroupStatus reports whether none, some, or all of a region's available
// members are selected. A region with no available members is StatusNone.
func GroupStatus(selected []string, region string, available map[string]struct{}) Status {
	members := availableMembers(region, available)
	if len(members) == 0 {
		return StatusNone
	}
	picked := 0
	for _, code := range members {
		if slices.Contains(selected, code) {
			picked++
		}
	}
	switch picked {
	case 0:
		return StatusNone
	case len(members):
		return StatusAll
	}
	return StatusSome
}

// ToggleGroup flips a whole region: from StatusAll it removes every member,
// otherwise it appends the missing available members at the end of the
// selection, keeping what was already there in place. Toggling a region with
// no available members returns the selection unchanged.
func ToggleGroup(selected []string, region string, available map[string]struct{}) []string {
	members := availableMembers(region, available)
	if len(members) == 0 {
		return slices.Clone(selected)
	}

	if GroupStatus(selected, region, available) == StatusAll {
		out := make([]string, 0, len(selected))
		for _, code := range selected {
			if !slices.Contains(members, code) {
				out = append(out, code)
			}
		}
		return out
	}

	out := slices.Clone(selected)
	for _, code := range members {
		if !slices.Contains(out, code) {
			out = append(out, code)
		}
	}
	return out
}

// ToggleEntity flips a single state: present gets removed, absent gets
// appended.
func ToggleEntity(selected []string, code string) []string {
	if i := slices.Index(selected, code); i >= 0 {
		out := slices.Clone(selected)
		return append(out[:i], out[i+1:]...)
	}
	out := slices.Clone(selected)
	return append(out, code)
}

// ClearAll empties the selection, returning to "all states".
func ClearAll() []string {
	return nil
}
