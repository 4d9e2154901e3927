// Package fieldpath splits documented field paths into a container id and a
// property name.
//
// A container id is the path prefix that owns a property: "user.address" for
// "user.address.city", or "items" for "items[id]". The empty string denotes
// the root container.
package fieldpath

import (
	"regexp"
	"strings"
)

// Root is the container id of the root schema.
const Root = ""

var bracketToken = regexp.MustCompile(`\[(\w+)\]`)

// Resolve returns the property name and container id for path.
// Paths without separators belong to defaultContainer.
func Resolve(path, defaultContainer string) (property, container string) {
	path = strings.TrimSuffix(path, "[]")

	if i := strings.LastIndex(path, "."); i >= 0 {
		return path[i+1:], path[:i]
	}

	if strings.Contains(path, "[") {
		if loc := bracketToken.FindStringSubmatchIndex(path); loc != nil {
			return path[loc[2]:loc[3]], path[:loc[0]] + path[loc[1]:]
		}
	}

	return path, defaultContainer
}

// IsNested reports whether path names a property below the root.
func IsNested(path string) bool {
	_, container := Resolve(path, Root)
	return container != Root
}
