package hostfuncs

import (
	"github.com/geeksperiments/elm-script/domain/entities"
	derrors "github.com/geeksperiments/elm-script/domain/errors"
)

// CheckVersion reports whether a script's declared requirement is
// compatible with the running bridge. Majors must match exactly, in either
// direction; within a matching major, the bridge's minor must be at least
// the required minor. Incompatibility is a VersionMismatchError, which the
// dispatcher treats as fatal.
func CheckVersion(required, running entities.Version) error {
	if required.Major != running.Major || required.Minor > running.Minor {
		return &derrors.VersionMismatchError{Required: required, Running: running}
	}
	return nil
}
