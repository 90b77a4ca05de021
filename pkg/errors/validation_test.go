package errors

import (
	"strings"
	"testing"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "ada", false},
		{"valid with dash", "ada-lovelace", false},
		{"valid digits", "user123", false},
		{"valid max length", strings.Repeat("a", 39), false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 40), true},
		{"leading dash", "-ada", true},
		{"trailing dash", "ada-", true},
		{"double dash", "ada--l", true},
		{"path traversal", "../etc", true},
		{"slash", "ada/repos", true},
		{"dot", "ada.l", true},
		{"null byte", "ada\x00", true},
		{"newline", "ada\n", true},
		{"space", "ada l", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateUsername(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidUsername) {
				t.Errorf("ValidateUsername(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidUsername)
			}
		})
	}
}

func TestValidateThemeName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty selects default", "", false},
		{"capitalized", "Gaming", false},
		{"lowercase", "glass", false},
		{"with space", "Solarized Dark", false},
		{"with dash", "high-contrast", false},

		{"leading digit", "1theme", true},
		{"markup", "<script>", true},
		{"too long", "a" + strings.Repeat("b", 40), true},
		{"path", "../default", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateThemeName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateThemeName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
