// Package regions holds the fixed state-to-census-region index and the
// selection toggles built on top of it. The index is process-wide static
// data: loaded once from the embedded table, never mutated, safe to share.
package regions

import (
	_ "embed"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed regions.yaml
var regionsYAML []byte

type regionDef struct {
	Name   string   `yaml:"name"`
	States []string `yaml:"states"`
}

type indexFile struct {
	Regions []regionDef `yaml:"regions"`
}

var (
	regionOrder     []string
	membersByRegion map[string][]string
	regionByState   map[string]string
)

func init() {
	var idx indexFile
	if err := yaml.Unmarshal(regionsYAML, &idx); err != nil {
		panic(fmt.Sprintf("regions: embedded table is malformed: %v", err))
	}
	membersByRegion = make(map[string][]string, len(idx.Regions))
	regionByState = make(map[string]string)
	for _, def := range idx.Regions {
		regionOrder = append(regionOrder, def.Name)
		membersByRegion[def.Name] = def.States
		for _, code := range def.States {
			if prev, dup := regionByState[code]; dup {
				panic(fmt.Sprintf("regions: %s listed in both %s and %s", code, prev, def.Name))
			}
			regionByState[code] = def.Name
		}
	}
}

// All returns the region names in display order.
func All() []string {
	return slices.Clone(regionOrder)
}

// Members returns the state codes of a region in display order. Unknown
// regions yield nil.
func Members(region string) []string {
	return slices.Clone(membersByRegion[region])
}

// GroupOf maps a state code to its region.
func GroupOf(code string) (string, bool) {
	r, ok := regionByState[code]
	return r, ok
}

// Codes returns every known state code, grouped by region in display order.
func Codes() []string {
	out := make([]string, 0, len(regionByState))
	for _, region := range regionOrder {
		out = append(out, membersByRegion[region]...)
	}
	return out
}
