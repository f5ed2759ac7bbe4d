package storage

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var allowedExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
}

// DiskSaver stores uploads on the local filesystem
type DiskSaver struct {
	dir      string
	maxBytes int64
}

func NewDiskSaver(dir string, maxBytes int64) (*DiskSaver, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", dir, err)
	}

	return &DiskSaver{
		dir:      dir,
		maxBytes: maxBytes,
	}, nil
}

// GenerateFilename builds "<unix-ms>-<random><ext>" like the upload layer
// the frontend was written against.
func GenerateFilename(originalName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("file type %q not allowed", ext)
	}

	unique := fmt.Sprintf("%d-%d", time.Now().UnixMilli(), rand.Int63n(1_000_000_000))
	return unique + ext, nil
}

func (d *DiskSaver) Save(r io.Reader, originalName string) (string, error) {
	filename, err := GenerateFilename(originalName)
	if err != nil {
		return "", err
	}

	f, err := os.Create(filepath.Join(d.dir, filename))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	written, err := io.Copy(f, io.LimitReader(r, d.maxBytes+1))
	if err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("write upload file: %w", err)
	}

	if written > d.maxBytes {
		os.Remove(f.Name())
		return "", fmt.Errorf("file exceeds %d bytes", d.maxBytes)
	}

	return filename, nil
}
