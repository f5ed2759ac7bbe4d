// Package storage saves uploaded images into the static-served uploads
// directory under generated, collision-free filenames.
package storage

import (
	"io"
)

// Saver writes an upload and returns the stored filename
type Saver interface {
	Save(r io.Reader, originalName string) (string, error)
}
