package naming

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var componentNameRegex = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// isComponentName reports whether s can be used as a component key as is.
func isComponentName(s string) bool {
	return componentNameRegex.MatchString(s)
}

// ToPascalCase converts s to PascalCase.
// Every rune that is neither a letter nor a digit separates words and is dropped.
// Example: "get user by id" -> "GetUserById"
// Example: "user_profile" -> "UserProfile"
func ToPascalCase(s string) string {
	if s == "" {
		return ""
	}

	// NoLower keeps inner capitals: "getUser" stays "GetUser".
	titleCaser := cases.Title(language.English, cases.NoLower)

	words := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var result strings.Builder
	result.Grow(len(s))
	for _, w := range words {
		result.WriteString(titleCaser.String(w))
	}
	return result.String()
}

// ComponentName returns s when it is already a valid component key and its
// PascalCase form otherwise.
func ComponentName(s string) string {
	if isComponentName(s) {
		return s
	}
	return ToPascalCase(s)
}
