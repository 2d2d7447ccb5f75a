package pkg

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowedExt(t *testing.T) {
	assert.True(t, AllowedExt("report.pdf", ResourceExts))
	assert.True(t, AllowedExt("REPORT.PDF", ResourceExts))
	assert.False(t, AllowedExt("malware.exe", ResourceExts))
	assert.False(t, AllowedExt("noext", ResourceExts))

	assert.True(t, AllowedExt("deck.pptx", PlaybookExts))
	assert.False(t, AllowedExt("deck.pptx", ResourceExts))
}

func TestUploadFilename(t *testing.T) {
	name := UploadFilename("annual risk  report.pdf")
	assert.Regexp(t, regexp.MustCompile(`^\d+-annual-risk-report\.pdf$`), name)

	// client-supplied directories are stripped
	name = UploadFilename("../../etc/passwd")
	assert.NotContains(t, name, "/")
	assert.NotContains(t, name, "..")
}

func TestUploadPath(t *testing.T) {
	got := UploadPath("/srv/uploads", "/uploads/playbooks/guide.pdf")
	assert.Equal(t, filepath.Join("/srv/uploads", "playbooks", "guide.pdf"), got)

	// stored values without the prefix resolve under the dir as-is
	got = UploadPath("/srv/uploads", "guide.pdf")
	assert.Equal(t, filepath.Join("/srv/uploads", "guide.pdf"), got)
}

func TestRemoveUpload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.pdf")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	require.NoError(t, RemoveUpload(dir, "/uploads/f.pdf"))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// absent files and empty stored paths are not errors
	assert.NoError(t, RemoveUpload(dir, "/uploads/f.pdf"))
	assert.NoError(t, RemoveUpload(dir, ""))
}
