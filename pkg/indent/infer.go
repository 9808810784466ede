package indent

import "slices"

// Descriptor is the inferred indentation. A zero field means the
// corresponding kind of indentation was not observed; it never means a
// width of zero.
type Descriptor struct {
	TabWidth  uint32
	SpaceUnit uint32
}

// Kind names the indentation style described by d.
type Kind string

const (
	KindTab      Kind = "tab"
	KindSpace    Kind = "space"
	KindTabSpace Kind = "tab+space"
)

// Kind classifies d. It panics if both fields are zero.
func (d Descriptor) Kind() Kind {
	switch {
	case d.TabWidth == 0 && d.SpaceUnit == 0:
		panic("indent: descriptor has neither tab width nor space unit")
	case d.SpaceUnit == 0:
		return KindTab
	case d.TabWidth == 0:
		return KindSpace
	default:
		return KindTabSpace
	}
}

// gcd treats zero as "no value yet", so gcd(0, y) is y and gcd(x, 0) is x.
func gcd(x, y uint32) uint32 {
	for y != 0 {
		x, y = y, x%y
	}
	return x
}

// SpaceUnit returns the greatest common divisor of runs, or 0 when runs is
// empty.
func SpaceUnit(runs []uint32) uint32 {
	var unit uint32
	for _, r := range runs {
		unit = gcd(unit, r)
	}
	return unit
}

// Infer derives a Descriptor from c. When only tabs were seen the tab width
// falls back to defTabWidth. When tabs and spaces are mixed the tab width is
// estimated as the widest space run plus one space unit; this is a
// heuristic and can be wrong for files that never indent past one tab.
//
// c must not be empty.
func Infer(c Collection, defTabWidth uint32) Descriptor {
	unit := SpaceUnit(c.SpaceRuns)

	d := Descriptor{SpaceUnit: unit}
	switch {
	case c.Tabs && unit == 0:
		d.TabWidth = defTabWidth
	case c.Tabs:
		d.TabWidth = slices.Max(c.SpaceRuns) + unit
	}
	return d
}
