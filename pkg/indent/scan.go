package indent

// Sample is the measured leading whitespace of a single line.
type Sample struct {
	Tabs   int
	Spaces int
}

// Scan measures the leading tab run of line and the space run that
// immediately follows it. Whitespace after those two runs is not
// inspected, so a line such as " \t" reports one space and no tabs.
func Scan(line string) Sample {
	var s Sample
	i := 0
	for i < len(line) && line[i] == '\t' {
		i++
	}
	s.Tabs = i
	for i < len(line) && line[i] == ' ' {
		i++
	}
	s.Spaces = i - s.Tabs
	return s
}

// indented reports whether line starts with a tab or a space.
func indented(line string) bool {
	return len(line) > 0 && (line[0] == '\t' || line[0] == ' ')
}
