package indent

import "iter"

// SampleCap is the number of indented lines inspected per input.
const SampleCap = 100

// Collection is what Collect gathered from the sampled lines.
type Collection struct {
	// Tabs is set once any sampled line starts with a tab.
	Tabs bool
	// SpaceRuns holds the non-zero space-run lengths in input order.
	SpaceRuns []uint32
	// Sampled is the number of indented lines that were scanned.
	Sampled int
}

// Empty reports whether neither tabs nor space runs were observed.
func (c Collection) Empty() bool {
	return !c.Tabs && len(c.SpaceRuns) == 0
}

// Collect reads lines until SampleCap indented lines have been scanned or
// the sequence ends. Lines that do not start with a tab or a space are
// skipped and do not count towards the cap. The first error yielded by
// lines stops collection and is returned as is.
func Collect(lines iter.Seq2[string, error]) (Collection, error) {
	var c Collection
	for line, err := range lines {
		if err != nil {
			return Collection{}, err
		}
		if !indented(line) {
			continue
		}

		s := Scan(line)
		if s.Tabs > 0 {
			c.Tabs = true
		}
		if s.Spaces > 0 {
			c.SpaceRuns = append(c.SpaceRuns, uint32(s.Spaces))
		}

		c.Sampled++
		if c.Sampled == SampleCap {
			break
		}
	}
	return c, nil
}
