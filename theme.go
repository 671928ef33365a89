package pager

// Theme defines semantic color mappings using ANSI color indices (0-15).
// The user's terminal theme determines the actual RGB values, so the app
// automatically matches any color scheme.
type Theme struct {
	Header int // page header and footer
	Muted  int // key hints, placeholders, empty-page text
	Error  int // notices and errors
	Accent int // headings and emphasis within entries
	CodeBg int // code span background
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		Header: 4,
		Muted:  8,
		Error:  1,
		Accent: 5,
		CodeBg: 0,
	}
}
