package utils

import (
	"mime"
	"path/filepath"
	"strings"
)

// ContentTypeByName guesses the MIME type of a file from its name alone.
// Used for listing decoration where probing every file would be too slow;
// the previewer does the authoritative probe before showing content.
func ContentTypeByName(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if contentType := mime.TypeByExtension(ext); contentType != "" {
		return contentType
	}

	// Common file type mappings for cases where the system mime table
	// has no entry
	commonTypes := map[string]string{
		".jpg":  "image/jpeg",
		".jpeg": "image/jpeg",
		".png":  "image/png",
		".gif":  "image/gif",
		".webp": "image/webp",
		".bmp":  "image/bmp",
		".svg":  "image/svg+xml",
		".md":   "text/markdown",
		".txt":  "text/plain",
		".go":   "text/x-go",
		".py":   "text/x-python",
		".sh":   "text/x-shellscript",
		".yml":  "text/yaml",
		".yaml": "text/yaml",
		".toml": "text/toml",
		".json": "application/json",
		".xml":  "application/xml",
		".pdf":  "application/pdf",
		".zip":  "application/zip",
		".tar":  "application/x-tar",
		".gz":   "application/gzip",
		".mp4":  "video/mp4",
		".mp3":  "audio/mpeg",
		".wav":  "audio/wav",
	}

	if contentType, ok := commonTypes[ext]; ok {
		return contentType
	}

	// Default fallback
	return "application/octet-stream"
}

// IsImageType checks if the content type represents an image
func IsImageType(contentType string) bool {
	return strings.HasPrefix(contentType, "image/")
}

// GetFileCategory returns a general category for the content type
func GetFileCategory(contentType string) string {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return "image"
	case strings.HasPrefix(contentType, "video/"):
		return "video"
	case strings.HasPrefix(contentType, "audio/"):
		return "audio"
	case strings.HasPrefix(contentType, "text/"), strings.Contains(contentType, "json"), strings.Contains(contentType, "xml"):
		return "text"
	case strings.Contains(contentType, "pdf"):
		return "document"
	case strings.Contains(contentType, "zip"), strings.Contains(contentType, "tar"), strings.Contains(contentType, "gzip"):
		return "archive"
	default:
		return "other"
	}
}
