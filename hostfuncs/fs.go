package hostfuncs

import (
	"fmt"
	"io"
	"os"

	"github.com/geeksperiments/elm-script/domain/entities"
)

// PerformReadFile reads the file at the resolved path and returns its
// contents decoded as text.
func PerformReadFile(path []string) (string, error) {
	abs, err := ResolvePath(path)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// PerformWriteFile writes contents to the resolved path, replacing any
// existing file.
func PerformWriteFile(path []string, contents string) error {
	abs, err := ResolvePath(path)
	if err != nil {
		return err
	}
	return os.WriteFile(abs, []byte(contents), 0o644)
}

// PerformListFiles returns the names of the non-directory entries of the
// resolved directory, in lexical order.
func PerformListFiles(path []string) ([]string, error) {
	return listNames(path, false)
}

// PerformListSubdirectories returns the names of the directory entries of
// the resolved directory, in lexical order.
func PerformListSubdirectories(path []string) ([]string, error) {
	return listNames(path, true)
}

func listNames(path []string, wantDirs bool) ([]string, error) {
	abs, err := ResolvePath(path)
	if err != nil {
		return nil, err
	}
	dirEntries, err := os.ReadDir(abs)
	if err != nil {
		return nil, err
	}
	names := []string{}
	for _, entry := range dirEntries {
		if entry.IsDir() == wantDirs {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// PerformCopyFile copies the source file's contents to the destination,
// replacing any existing file there.
func PerformCopyFile(source, destination []string) error {
	srcAbs, err := ResolvePath(source)
	if err != nil {
		return err
	}
	dstAbs, err := ResolvePath(destination)
	if err != nil {
		return err
	}
	src, err := os.Open(srcAbs)
	if err != nil {
		return err
	}
	defer src.Close()
	dst, err := os.Create(dstAbs)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return fmt.Errorf("failed to copy to %s: %w", dstAbs, err)
	}
	return dst.Close()
}

// PerformMoveFile renames the source file to the destination path.
func PerformMoveFile(source, destination []string) error {
	srcAbs, err := ResolvePath(source)
	if err != nil {
		return err
	}
	dstAbs, err := ResolvePath(destination)
	if err != nil {
		return err
	}
	return os.Rename(srcAbs, dstAbs)
}

// PerformDeleteFile removes the file at the resolved path.
func PerformDeleteFile(path []string) error {
	abs, err := ResolvePath(path)
	if err != nil {
		return err
	}
	return os.Remove(abs)
}

// PerformStat classifies what the resolved path points at. A missing target
// is a successful "nonexistent" classification, not an error; only failures
// other than absence are reported as errors.
func PerformStat(path []string) (entities.FileKind, error) {
	abs, err := ResolvePath(path)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	switch {
	case os.IsNotExist(err):
		return entities.FileKindNonexistent, nil
	case err != nil:
		return "", err
	case info.IsDir():
		return entities.FileKindDirectory, nil
	case info.Mode().IsRegular():
		return entities.FileKindFile, nil
	default:
		return entities.FileKindOther, nil
	}
}

// PerformCreateDirectory creates the resolved directory, making parents as
// needed. An already-existing directory is not an error.
func PerformCreateDirectory(path []string) error {
	abs, err := ResolvePath(path)
	if err != nil {
		return err
	}
	return os.MkdirAll(abs, 0o755)
}

// PerformRemoveDirectory removes the resolved directory; it fails when the
// directory is not empty.
func PerformRemoveDirectory(path []string) error {
	abs, err := ResolvePath(path)
	if err != nil {
		return err
	}
	return os.Remove(abs)
}

// PerformObliterateDirectory removes the resolved directory and everything
// beneath it. A missing target is not an error.
func PerformObliterateDirectory(path []string) error {
	abs, err := ResolvePath(path)
	if err != nil {
		return err
	}
	return os.RemoveAll(abs)
}
