// Package options provides shared utilities for option validation across packages.
package options

import (
	"fmt"

	"github.com/erraggy/apidoc2oas/oaserrors"
)

// ValidateSingleInputSource ensures exactly one input source is specified.
// option names the group of options in the returned error (e.g. "apidoc input").
// sources is a variadic list of booleans indicating whether each source is set.
func ValidateSingleInputSource(option string, sources ...bool) error {
	sourceCount := 0
	for _, hasSource := range sources {
		if hasSource {
			sourceCount++
		}
	}

	switch {
	case sourceCount == 0:
		return &oaserrors.ConfigError{Option: option, Message: "no input source specified"}
	case sourceCount > 1:
		return &oaserrors.ConfigError{
			Option:  option,
			Message: fmt.Sprintf("exactly one input source must be specified, got %d", sourceCount),
		}
	}
	return nil
}
