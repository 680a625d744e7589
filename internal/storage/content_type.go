package storage

import (
	"path/filepath"
	"strings"
)

// contentTypes maps the file extensions this application produces to
// their MIME types.
var contentTypes = map[string]string{
	".pdf":  "application/pdf",
	".json": "application/json",
	".txt":  "text/plain; charset=utf-8",
	".csv":  "text/csv",
	".zip":  "application/zip",
}

// DetectContentType returns the MIME type for a storage key based on
// its extension. Unknown extensions fall back to a generic binary type.
func DetectContentType(key string) string {
	ext := strings.ToLower(filepath.Ext(key))
	if ct, ok := contentTypes[ext]; ok {
		return ct
	}
	return "application/octet-stream"
}
