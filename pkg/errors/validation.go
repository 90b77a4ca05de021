package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// maxUsernameLength is GitHub's limit on login names.
const maxUsernameLength = 39

// usernameRegex matches GitHub logins: alphanumerics and single hyphens,
// not starting or ending with a hyphen.
var usernameRegex = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9]|-[A-Za-z0-9])*$`)

// ValidateUsername validates a profile username before it is used in an
// upstream URL or a cache key.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters or path separators
//   - Maximum length of 39 characters
//   - Only alphanumerics and single inner hyphens
func ValidateUsername(name string) error {
	if name == "" {
		return New(ErrCodeInvalidUsername, "username cannot be empty")
	}

	if len(name) > maxUsernameLength {
		return New(ErrCodeInvalidUsername, "username too long (max %d characters)", maxUsernameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidUsername, "username contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, "/\\.") {
		return New(ErrCodeInvalidUsername, "username contains invalid characters: %q", name)
	}

	if !usernameRegex.MatchString(name) {
		return New(ErrCodeInvalidUsername, "invalid username: %q", name)
	}

	return nil
}

// themeNameRegex matches theme identifiers as written in definition files.
var themeNameRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9 _-]{0,31}$`)

// ValidateThemeName validates a theme name supplied by a request.
// An empty name is valid and selects the default theme.
func ValidateThemeName(name string) error {
	if name == "" {
		return nil
	}
	if !themeNameRegex.MatchString(name) {
		return New(ErrCodeInvalidTheme, "invalid theme name: %q", name)
	}
	return nil
}
