package hostfuncs

import (
	"path/filepath"
	"strings"

	derrors "github.com/geeksperiments/elm-script/domain/errors"
)

// ResolvePath resolves a guest-supplied fragment sequence into an absolute
// path, enforcing containment.
//
// The first fragment is the trusted anchor: the script may pick any root it
// likes, absolute or relative to the bridge's working directory, and no
// containment check applies to it. Every later fragment, typically a name
// the bridge itself enumerated, must resolve to the path accumulated so far
// or a descendant of it. A fragment that climbs upward out of its parent
// fails with InvalidPathError, as does an empty sequence.
func ResolvePath(fragments []string) (string, error) {
	if len(fragments) == 0 {
		return "", &derrors.InvalidPathError{}
	}
	current, err := filepath.Abs(fragments[0])
	if err != nil {
		return "", err
	}
	for _, fragment := range fragments[1:] {
		// An absolute fragment resolves to itself, not to a name under
		// current, and so fails the containment check below unless it
		// already lies inside current.
		candidate := filepath.Join(current, fragment)
		if filepath.IsAbs(fragment) {
			candidate = filepath.Clean(fragment)
		}
		rel, err := filepath.Rel(current, candidate)
		if err != nil || escapesParent(rel) {
			return "", &derrors.InvalidPathError{Fragment: fragment}
		}
		current = candidate
	}
	return current, nil
}

// escapesParent reports whether a relative path starts with an upward
// traversal.
func escapesParent(rel string) bool {
	return rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
