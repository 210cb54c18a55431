// Package filex contains small filesystem helpers: data-directory creation
// and encoding of image files into inline data-URL handles.
package filex

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// MaxImageSize is the largest image accepted for an item photo.
const MaxImageSize = 5 * 1024 * 1024 // 5MB

var (
	ErrNotAnImage   = errors.New("file is not a valid image")
	ErrImageTooBig  = errors.New("image size should be less than 5MB")
	ErrImageMissing = errors.New("image file does not exist")
)

// EnsureSubDir creates (if needed) and returns a subdirectory of the current
// working directory.
func EnsureSubDir(dirName string) (string, error) {
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

// DataURL reads the file at path and returns it encoded as a
// "data:<mime>;base64,..." handle suitable for storing inline on an item.
//
// The file must sniff as an image type and be at most MaxImageSize bytes;
// otherwise ErrNotAnImage or ErrImageTooBig is returned.
func DataURL(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrImageMissing
		}
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Size() > MaxImageSize {
		return "", ErrImageTooBig
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return "", ErrNotAnImage
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
