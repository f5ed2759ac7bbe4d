package storage_test

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/MuruliCGPayroute/superpetzjp/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateFilenamePattern(t *testing.T) {
	name, err := storage.GenerateFilename("shop photo.PNG")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^\d+-\d+\.png$`), name)
	assert.NotContains(t, name, " ", "original name must not leak into the stored name")
}

func TestGenerateFilenameRejectsUnknownExtensions(t *testing.T) {
	for _, bad := range []string{"malware.exe", "page.html", "noext", "script.png.sh"} {
		_, err := storage.GenerateFilename(bad)
		assert.Error(t, err, "extension of %q should be rejected", bad)
	}
	for _, good := range []string{"a.jpg", "b.jpeg", "c.png", "d.gif", "e.JPG"} {
		_, err := storage.GenerateFilename(good)
		assert.NoError(t, err, "extension of %q should be allowed", good)
	}
}

func TestSaveWritesFile(t *testing.T) {
	dir := t.TempDir()
	saver, err := storage.NewDiskSaver(dir, 1<<20)
	require.NoError(t, err)

	filename, err := saver.Save(strings.NewReader("fake image bytes"), "cat.jpg")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, filename))
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))
}

func TestSaveEnforcesSizeLimit(t *testing.T) {
	dir := t.TempDir()
	saver, err := storage.NewDiskSaver(dir, 8)
	require.NoError(t, err)

	_, err = saver.Save(strings.NewReader("way more than eight bytes"), "big.png")
	require.Error(t, err)

	// The oversized upload must not be left behind
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
