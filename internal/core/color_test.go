package core

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		name string
		want Color
		ok   bool
	}{
		{"orange", ColorOrange, true},
		{"bright_white", ColorBrightWhite, true},
		{"skyblue", ColorSkyBlue, true},
		{"chartreuse", ColorDefault, false},
	}

	for _, tc := range tests {
		c, ok := ParseColor(tc.name)
		if ok != tc.ok || (ok && c != tc.want) {
			t.Errorf("ParseColor(%q) = %v, %v, expected %v, %v", tc.name, c, ok, tc.want, tc.ok)
		}
	}
}
