package core

import "testing"

func TestSnakeCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"My Project", "my_project"},
		{"MyProject", "my_project"},
		{"my-project", "my_project"},
		{"  spaced   out  ", "spaced_out"},
		{"Café Icons", "cafe_icons"},
		{"Brand & Marketing", "brand_marketing"},
		{"Icons 2", "icons_2"},
		{"Tom's Icons", "toms_icons"},
		{"Tom’s Icons", "toms_icons"},
		{"Straße Icons", "strasse_icons"},
		{"Æsir Øre", "aesir_ore"},
		{"Łódź Đak", "lodz_dak"},
		{"Über Icons", "uber_icons"},
		{"", ""},
		{"!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := SnakeCase(tt.input); got != tt.expected {
				t.Errorf("SnakeCase(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIconModulePath(t *testing.T) {
	tests := []struct {
		name        string
		defaultDir  string
		projectName string
		fileName    string
		expected    string
	}{
		{"absolute dir", "/d", "My Project", "icon1.tsx", "/d/my_project/icon1.tsx"},
		{"relative dot dir", "./plasmic", "Brand", "Arrow.tsx", "plasmic/brand/Arrow.tsx"},
		{"empty project name", "plasmic", "", "x.tsx", "plasmic/x.tsx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IconModulePath(tt.defaultDir, tt.projectName, tt.fileName); got != tt.expected {
				t.Errorf("IconModulePath() = %q, want %q", got, tt.expected)
			}
		})
	}
}
