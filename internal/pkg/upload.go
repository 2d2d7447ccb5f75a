package pkg

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// Per-surface upload policy: extensions and size ceilings.
var (
	ResourceExts = map[string]bool{".pdf": true, ".docx": true, ".xlsx": true}
	PlaybookExts = map[string]bool{
		".pdf": true, ".xlsx": true, ".xls": true,
		".docx": true, ".doc": true, ".pptx": true,
	}
)

const (
	ResourceMaxBytes = 20 << 20
	PlaybookMaxBytes = 50 << 20
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// AllowedExt checks the file's extension against an allow-list.
func AllowedExt(filename string, allowed map[string]bool) bool {
	return allowed[strings.ToLower(filepath.Ext(filename))]
}

// UploadFilename builds a collision-resistant server-side name:
// millisecond timestamp plus the whitespace-sanitized original base name.
// filepath.Base strips any literal separators a client might smuggle in.
func UploadFilename(original string) string {
	base := filepath.Base(original)
	base = whitespaceRe.ReplaceAllString(base, "-")
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), base)
}

// UploadPath resolves a stored relative path ("/uploads/...") to its
// location under uploadDir.
func UploadPath(uploadDir, stored string) string {
	rel := strings.TrimPrefix(stored, "/uploads/")
	return filepath.Join(uploadDir, filepath.FromSlash(rel))
}

// RemoveUpload deletes the file behind a stored path. A missing file is
// not an error; rows can outlive their binaries.
func RemoveUpload(uploadDir, stored string) error {
	if stored == "" {
		return nil
	}
	err := os.Remove(UploadPath(uploadDir, stored))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// EnsureDir creates the directory if needed.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}
