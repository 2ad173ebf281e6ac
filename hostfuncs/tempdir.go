package hostfuncs

import (
	"os"
	"sync"

	"github.com/geeksperiments/elm-script/domain/ports"
)

// Compile-time interface compliance check
var _ ports.TempRegistry = (*TempDirRegistry)(nil)

// TempDirRegistry creates temporary directories and tracks them for
// best-effort removal at controlled exit. Request handling is strictly
// sequential, so Create needs no locking; only cleanup is guarded, against
// a second controlled-exit invocation.
type TempDirRegistry struct {
	dirs    []string
	cleanup sync.Once
}

// NewTempDirRegistry returns an empty registry.
func NewTempDirRegistry() *TempDirRegistry {
	return &TempDirRegistry{}
}

// Create makes a fresh, uniquely named directory under the system temporary
// root and tracks it until cleanup.
func (r *TempDirRegistry) Create() (string, error) {
	dir, err := os.MkdirTemp("", "elm-script-")
	if err != nil {
		return "", err
	}
	r.dirs = append(r.dirs, dir)
	return dir, nil
}

// Tracked returns the directories currently registered for cleanup.
func (r *TempDirRegistry) Tracked() []string {
	tracked := make([]string, len(r.dirs))
	copy(tracked, r.dirs)
	return tracked
}

// CleanupAll removes every tracked directory recursively. Removal failures,
// including directories the script already obliterated itself, are ignored.
// Only the first call does any work; later calls are no-ops.
func (r *TempDirRegistry) CleanupAll() {
	r.cleanup.Do(func() {
		for _, dir := range r.dirs {
			_ = os.RemoveAll(dir)
		}
		r.dirs = nil
	})
}
