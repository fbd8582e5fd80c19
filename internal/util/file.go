package util

import (
	"fmt"
	"io"
	"os"
)

// WriteText creates (or truncates) path and writes content in one go.
func WriteText(path, content string) (int64, error) {
	out, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("write %s: %w", path, err)
	}

	return writeClose(out, path, content)
}

type stringWriteCloser interface {
	io.StringWriter
	io.Closer
}

// writeClose reports a failed close unless the write already failed.
func writeClose(out stringWriteCloser, path, content string) (n int64, err error) {
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	w, err := out.WriteString(content)
	if err != nil {
		return int64(w), fmt.Errorf("write %s: %w", path, err)
	}

	return int64(w), nil
}

// EnsureDir creates dir and its parents; an existing directory is fine.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create folder %s: %w", dir, err)
	}
	return nil
}
