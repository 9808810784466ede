package indent

import (
	"fmt"

	"github.com/pkg/errors"
)

// Mode selects the output shape of Format.
type Mode int

const (
	// ModeGeneric prints the kind followed by its widths, e.g. "space 4".
	ModeGeneric Mode = iota
	// ModeVim prints a vim ":set" command line.
	ModeVim
)

var modeNames = map[Mode]string{
	ModeGeneric: "generic",
	ModeVim:     "vim",
}

// ErrInvalidMode is returned by ParseMode for unknown mode names.
var ErrInvalidMode = errors.New("Invalid output format")

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode returns the Mode called name.
func ParseMode(name string) (Mode, error) {
	for m, n := range modeNames {
		if n == name {
			return m, nil
		}
	}
	return 0, ErrInvalidMode
}

// Format renders d in the given mode. It panics if d has neither a tab
// width nor a space unit.
func Format(d Descriptor, m Mode) string {
	kind := d.Kind()

	switch m {
	case ModeVim:
		expandTab, tabStop, shiftWidth := false, d.TabWidth, d.TabWidth
		switch kind {
		case KindSpace:
			expandTab, tabStop, shiftWidth = true, d.SpaceUnit, d.SpaceUnit
		case KindTabSpace:
			shiftWidth = d.SpaceUnit
		}
		prefix := "no"
		if expandTab {
			prefix = ""
		}
		return fmt.Sprintf("set %sexpandtab tabstop=%d shiftwidth=%d", prefix, tabStop, shiftWidth)
	default:
		switch kind {
		case KindTab:
			return fmt.Sprintf("%s %d", kind, d.TabWidth)
		case KindSpace:
			return fmt.Sprintf("%s %d", kind, d.SpaceUnit)
		default:
			return fmt.Sprintf("%s %d %d", kind, d.TabWidth, d.SpaceUnit)
		}
	}
}
