// Package filex reads local files for upload and prepares download targets.
package filex

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrNotRegular is returned when a path names a directory or device.
var ErrNotRegular = errors.New("not a regular file")

// LocalFile describes a file picked for upload. Size comes from stat, so it
// can be validated before any bytes are read.
type LocalFile struct {
	Path string
	Name string
	Size int64
}

// Stat describes the regular file at path.
func Stat(path string) (*LocalFile, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: %w", path, ErrNotRegular)
	}
	return &LocalFile{Path: path, Name: filepath.Base(path), Size: fi.Size()}, nil
}

// Open opens the file for reading.
func (f *LocalFile) Open() (*os.File, error) {
	return os.Open(f.Path)
}

// ReadAll reads the file contents. At most limit bytes are accepted; a file
// that grew past limit since Stat yields an error rather than a truncated body.
func (f *LocalFile) ReadAll(limit int64) ([]byte, error) {
	fh, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	data, err := io.ReadAll(io.LimitReader(fh, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%s: file exceeds %d bytes", f.Name, limit)
	}
	return data, nil
}

// EnsureSubdDir creates dirName under the working directory if needed and
// returns its absolute path.
func EnsureSubdDir(dirName string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}

	dir := filepath.Join(cwd, dirName)

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}
