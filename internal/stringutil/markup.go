// Package stringutil holds text helpers shared by the converter and the CLI.
package stringutil

import "regexp"

var tagRegex = regexp.MustCompile(`<[^>]+>`)

// StripTags removes markup tags such as <p> and </em> from s.
// Text between tags is kept.
func StripTags(s string) string {
	if s == "" {
		return s
	}
	return tagRegex.ReplaceAllString(s, "")
}
