// Package fsutil reads documentation sources from disk for gorstlint.
// It reports missing files, permission problems and undecodable content
// through sentinel errors so callers can categorize them with errors.Is.
package fsutil

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// FileInfo captures the state of a file at the time it was read.
type FileInfo struct {
	// Path is the path the file was read from, as given by the caller.
	Path string

	// Mode is the file's permission and mode bits.
	Mode os.FileMode

	// ModTime is the file's modification time.
	ModTime time.Time

	// Size is the file size in bytes.
	Size int64
}

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")

	// ErrInvalidUTF8 indicates the content is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("cannot decode as UTF-8")
)

// ReadFile reads a file and returns its raw content along with metadata.
// Line terminators are returned untouched.
func ReadFile(ctx context.Context, path string) ([]byte, *FileInfo, error) {
	select {
	case <-ctx.Done():
		return nil, nil, fmt.Errorf("read file: %w", ctx.Err())
	default:
	}

	stat, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
		}
		if os.IsPermission(err) {
			return nil, nil, fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
		}
		return nil, nil, fmt.Errorf("stat %s: %w", path, err)
	}

	if stat.IsDir() {
		return nil, nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsPermission(err) {
			return nil, nil, fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
		}
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}

	info := &FileInfo{
		Path:    path,
		Mode:    stat.Mode(),
		ModTime: stat.ModTime(),
		Size:    stat.Size(),
	}

	return content, info, nil
}

// ReadText reads a file and validates that it decodes as UTF-8.
// A leading byte order mark is kept as part of the text.
func ReadText(ctx context.Context, path string) (string, *FileInfo, error) {
	content, info, err := ReadFile(ctx, path)
	if err != nil {
		return "", nil, err
	}

	if err := ValidateUTF8(content); err != nil {
		return "", info, err
	}

	return string(content), info, nil
}

// ValidateUTF8 returns an error wrapping ErrInvalidUTF8 when content holds
// a byte sequence that is not valid UTF-8. The error names the offset of
// the first offending byte.
func ValidateUTF8(content []byte) error {
	_, n, err := transform.Bytes(encoding.UTF8Validator, content)
	if err == nil {
		return nil
	}

	if errors.Is(err, encoding.ErrInvalidUTF8) {
		return fmt.Errorf("%w: invalid byte 0x%02x in position %d", ErrInvalidUTF8, byteAt(content, n), n)
	}

	return fmt.Errorf("validate utf-8: %w", err)
}

func byteAt(content []byte, n int) byte {
	if n < 0 || n >= len(content) {
		return 0
	}
	return content[n]
}
