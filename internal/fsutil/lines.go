package fsutil

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// CountLines returns the number of lines in the file at path. A final line
// without a trailing newline counts, so "a\nb\nc" has 3 lines and an empty
// file has none.
func CountLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer func() { _ = f.Close() }()
	return countLines(f)
}

func countLines(r io.Reader) (int, error) {
	buf := make([]byte, 32*1024)
	count := 0
	var last byte
	seen := false

	for {
		n, err := r.Read(buf)
		if n > 0 {
			count += bytes.Count(buf[:n], []byte{'\n'})
			last = buf[n-1]
			seen = true
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, err
		}
	}

	if seen && last != '\n' {
		count++
	}
	return count, nil
}

var errIsDir = errors.New("is a directory")

// Volume is the size and line count of a regular file.
type Volume struct {
	Name  string
	Size  int64
	Lines int
}

// FileVolume stats and counts the file at path.
func FileVolume(path string) (Volume, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Volume{}, err
	}
	if info.IsDir() {
		return Volume{}, &fs.PathError{Op: "volume", Path: path, Err: errIsDir}
	}
	lines, err := CountLines(path)
	if err != nil {
		return Volume{}, err
	}
	return Volume{Name: filepath.Base(path), Size: info.Size(), Lines: lines}, nil
}

// Summary renders "(size, lines)", e.g. "(5, 3)" or "(2KB, 80)".
func (v Volume) Summary() string {
	return fmt.Sprintf("(%s, %d)", HumanBytes(v.Size), v.Lines)
}

// Describe renders "name (size, lines)".
func (v Volume) Describe() string {
	return v.Name + " " + v.Summary()
}
