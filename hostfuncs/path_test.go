package hostfuncs

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	derrors "github.com/geeksperiments/elm-script/domain/errors"
)

func TestResolvePathSingleAnchor(t *testing.T) {
	// A lone anchor is returned in canonical absolute form with no
	// containment check, absolute or not.
	abs, err := ResolvePath([]string{"/base"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean("/base"), abs)

	abs, err = ResolvePath([]string{"relative/dir"})
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(abs))

	want, err := filepath.Abs("relative/dir")
	require.NoError(t, err)
	assert.Equal(t, want, abs)
}

func TestResolvePathDescendants(t *testing.T) {
	tests := []struct {
		name      string
		fragments []string
		want      string
	}{
		{
			name:      "single descendant",
			fragments: []string{"/base", "sub"},
			want:      filepath.Join("/base", "sub"),
		},
		{
			name:      "chained descendants",
			fragments: []string{"/base", "a", "b", "c.txt"},
			want:      filepath.Join("/base", "a", "b", "c.txt"),
		},
		{
			name:      "internal traversal that stays inside",
			fragments: []string{"/base", "a/../b"},
			want:      filepath.Join("/base", "b"),
		},
		{
			name:      "absolute fragment already inside the anchor",
			fragments: []string{"/base", "/base/sub"},
			want:      filepath.Join("/base", "sub"),
		},
		{
			name:      "empty descendant is a no-op",
			fragments: []string{"/base", ""},
			want:      filepath.Clean("/base"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolvePath(tt.fragments)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolvePathRejectsEscapes(t *testing.T) {
	tests := []struct {
		name      string
		fragments []string
		fragment  string
	}{
		{
			name:      "plain parent traversal",
			fragments: []string{"/base", "../escape"},
			fragment:  "../escape",
		},
		{
			name:      "bare dotdot",
			fragments: []string{"/base", ".."},
			fragment:  "..",
		},
		{
			name:      "traversal hidden behind a descent",
			fragments: []string{"/base", "a/../.."},
			fragment:  "a/../..",
		},
		{
			name:      "escape after a valid descent",
			fragments: []string{"/base", "sub", "../../etc"},
			fragment:  "../../etc",
		},
		{
			name:      "absolute fragment outside the anchor",
			fragments: []string{"/base", "/etc/passwd"},
			fragment:  "/etc/passwd",
		},
		{
			name:      "absolute fragment naming a sibling",
			fragments: []string{"/base", "/base2"},
			fragment:  "/base2",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolvePath(tt.fragments)
			var invalid *derrors.InvalidPathError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.fragment, invalid.Fragment)
		})
	}
}

func TestResolvePathEmptySequence(t *testing.T) {
	_, err := ResolvePath(nil)
	var invalid *derrors.InvalidPathError
	require.True(t, errors.As(err, &invalid))
	assert.Empty(t, invalid.Fragment)
}
