package handlers

import (
	"path/filepath"
	"strings"
)

// UploadDir is where property images land; the router points it at the
// public static tree so uploaded files are immediately servable.
var UploadDir = filepath.Join("web", "static", "uploads")

// sanitizeFilename strips directory components and anything usable for
// path traversal from a client-supplied filename. An empty result means
// the name was unusable and the upload should be skipped.
func sanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}

	return strings.Trim(b.String(), ".")
}
