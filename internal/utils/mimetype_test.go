package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentTypeByName(t *testing.T) {
	cases := map[string]string{
		"photo.png":    "image/png",
		"notes.md":     "text/markdown",
		"archive.tar":  "application/x-tar",
		"mystery.qqq":  "application/octet-stream",
		"no_extension": "application/octet-stream",
	}

	for path, expected := range cases {
		got := ContentTypeByName(path)
		// mime.TypeByExtension may append a charset parameter
		assert.Contains(t, got, expected, "path %q", path)
	}
}

func TestGetFileCategory(t *testing.T) {
	assert.Equal(t, "image", GetFileCategory("image/png"))
	assert.Equal(t, "text", GetFileCategory("text/plain; charset=utf-8"))
	assert.Equal(t, "text", GetFileCategory("application/json"))
	assert.Equal(t, "archive", GetFileCategory("application/gzip"))
	assert.Equal(t, "document", GetFileCategory("application/pdf"))
	assert.Equal(t, "other", GetFileCategory("application/octet-stream"))
}

func TestIsImageType(t *testing.T) {
	assert.True(t, IsImageType("image/jpeg"))
	assert.False(t, IsImageType("text/plain"))
}
