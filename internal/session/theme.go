package session

import "fmt"

// Theme selects a cosmetic color scheme for the front end. It has no
// effect on the reading engine.
type Theme int

const (
	// ThemeDefault is the standard scheme with a red pivot letter.
	ThemeDefault Theme = iota
	// ThemeCyber is a neon green-on-dark scheme.
	ThemeCyber
	// ThemeMono is a monochrome scheme for minimal distraction.
	ThemeMono
)

// String returns the theme name as used on the command line.
func (t Theme) String() string {
	switch t {
	case ThemeCyber:
		return "cyber"
	case ThemeMono:
		return "mono"
	default:
		return "default"
	}
}

// Next returns the following theme, wrapping around.
func (t Theme) Next() Theme {
	switch t {
	case ThemeDefault:
		return ThemeCyber
	case ThemeCyber:
		return ThemeMono
	default:
		return ThemeDefault
	}
}

// ParseTheme converts a theme name to a Theme.
func ParseTheme(name string) (Theme, error) {
	switch name {
	case "default", "":
		return ThemeDefault, nil
	case "cyber":
		return ThemeCyber, nil
	case "mono":
		return ThemeMono, nil
	default:
		return ThemeDefault, fmt.Errorf("unknown theme %q (want default, cyber, or mono)", name)
	}
}
