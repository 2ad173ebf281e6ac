package hostfuncs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geeksperiments/elm-script/domain/entities"
	derrors "github.com/geeksperiments/elm-script/domain/errors"
)

func TestWriteThenReadFile(t *testing.T) {
	base := t.TempDir()

	require.NoError(t, PerformWriteFile([]string{base, "note.txt"}, "hello bridge\n"))

	contents, err := PerformReadFile([]string{base, "note.txt"})
	require.NoError(t, err)
	assert.Equal(t, "hello bridge\n", contents)
}

func TestReadFileMissing(t *testing.T) {
	base := t.TempDir()

	_, err := PerformReadFile([]string{base, "absent.txt"})
	assert.Error(t, err)
}

func TestWriteFileRejectsEscape(t *testing.T) {
	base := t.TempDir()

	err := PerformWriteFile([]string{base, "../outside.txt"}, "nope")
	var invalid *derrors.InvalidPathError
	require.ErrorAs(t, err, &invalid)
}

func TestListFilesAndSubdirectories(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(base, "b.txt"), []byte("b"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(base, "a.txt"), []byte("a"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(base, "sub"), 0o755))

	files, err := PerformListFiles([]string{base})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.txt"}, files)

	dirs, err := PerformListSubdirectories([]string{base})
	require.NoError(t, err)
	assert.Equal(t, []string{"sub"}, dirs)
}

func TestListFilesEmptyDirectory(t *testing.T) {
	base := t.TempDir()

	files, err := PerformListFiles([]string{base})
	require.NoError(t, err)
	assert.Empty(t, files)
	assert.NotNil(t, files)
}

func TestCopyFile(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, PerformWriteFile([]string{base, "src.txt"}, "payload"))

	require.NoError(t, PerformCopyFile([]string{base, "src.txt"}, []string{base, "dst.txt"}))

	contents, err := PerformReadFile([]string{base, "dst.txt"})
	require.NoError(t, err)
	assert.Equal(t, "payload", contents)

	// Source is untouched.
	contents, err = PerformReadFile([]string{base, "src.txt"})
	require.NoError(t, err)
	assert.Equal(t, "payload", contents)
}

func TestMoveFile(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, PerformWriteFile([]string{base, "src.txt"}, "payload"))

	require.NoError(t, PerformMoveFile([]string{base, "src.txt"}, []string{base, "dst.txt"}))

	contents, err := PerformReadFile([]string{base, "dst.txt"})
	require.NoError(t, err)
	assert.Equal(t, "payload", contents)

	kind, err := PerformStat([]string{base, "src.txt"})
	require.NoError(t, err)
	assert.Equal(t, entities.FileKindNonexistent, kind)
}

func TestDeleteFile(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, PerformWriteFile([]string{base, "doomed.txt"}, "x"))

	require.NoError(t, PerformDeleteFile([]string{base, "doomed.txt"}))

	kind, err := PerformStat([]string{base, "doomed.txt"})
	require.NoError(t, err)
	assert.Equal(t, entities.FileKindNonexistent, kind)

	assert.Error(t, PerformDeleteFile([]string{base, "doomed.txt"}))
}

func TestStatClassification(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, PerformWriteFile([]string{base, "f.txt"}, "x"))
	require.NoError(t, os.Mkdir(filepath.Join(base, "d"), 0o755))

	tests := []struct {
		name string
		path []string
		want entities.FileKind
	}{
		{name: "regular file", path: []string{base, "f.txt"}, want: entities.FileKindFile},
		{name: "directory", path: []string{base, "d"}, want: entities.FileKindDirectory},
		{name: "missing", path: []string{base, "ghost"}, want: entities.FileKindNonexistent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, err := PerformStat(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, kind)
		})
	}
}

func TestCreateDirectoryRecursive(t *testing.T) {
	base := t.TempDir()

	require.NoError(t, PerformCreateDirectory([]string{base, "a/b/c"}))

	kind, err := PerformStat([]string{base, "a/b/c"})
	require.NoError(t, err)
	assert.Equal(t, entities.FileKindDirectory, kind)

	// Creating it again is not an error.
	require.NoError(t, PerformCreateDirectory([]string{base, "a/b/c"}))
}

func TestRemoveDirectoryNonRecursive(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, PerformCreateDirectory([]string{base, "full"}))
	require.NoError(t, PerformWriteFile([]string{base, "full/keep.txt"}, "x"))
	require.NoError(t, PerformCreateDirectory([]string{base, "empty"}))

	assert.Error(t, PerformRemoveDirectory([]string{base, "full"}))
	require.NoError(t, PerformRemoveDirectory([]string{base, "empty"}))
}

func TestObliterateDirectory(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, PerformCreateDirectory([]string{base, "full/nested"}))
	require.NoError(t, PerformWriteFile([]string{base, "full/nested/keep.txt"}, "x"))

	require.NoError(t, PerformObliterateDirectory([]string{base, "full"}))

	kind, err := PerformStat([]string{base, "full"})
	require.NoError(t, err)
	assert.Equal(t, entities.FileKindNonexistent, kind)

	// Obliterating a missing target is fine.
	require.NoError(t, PerformObliterateDirectory([]string{base, "full"}))
}
