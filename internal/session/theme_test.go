package session

import "testing"

func TestParseTheme(t *testing.T) {
	tests := []struct {
		name    string
		want    Theme
		wantErr bool
	}{
		{"default", ThemeDefault, false},
		{"", ThemeDefault, false},
		{"cyber", ThemeCyber, false},
		{"mono", ThemeMono, false},
		{"neon", ThemeDefault, true},
	}

	for _, tt := range tests {
		got, err := ParseTheme(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTheme(%q) err = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseTheme(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestThemeRoundTrip(t *testing.T) {
	for _, theme := range []Theme{ThemeDefault, ThemeCyber, ThemeMono} {
		got, err := ParseTheme(theme.String())
		if err != nil {
			t.Errorf("ParseTheme(%q): %v", theme.String(), err)
		}
		if got != theme {
			t.Errorf("round trip %v -> %q -> %v", theme, theme.String(), got)
		}
	}
}
