package utils

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"pkl/config"
)

func TestGetFileURL(t *testing.T) {
	config.AppConfig = &config.Config{UploadDir: "./uploads"}

	// Documents are stored under a per-program subdirectory; the URL
	// must keep it so the static route resolves.
	path := filepath.Join("uploads", "pkl", "abc.pdf")
	assert.Equal(t, "/uploads/pkl/abc.pdf", GetFileURL(path))

	assert.Equal(t, "", GetFileURL(""))

	// Paths outside the upload directory fall back to the file name.
	assert.Equal(t, "/uploads/x.pdf", GetFileURL("/tmp/x.pdf"))
}
