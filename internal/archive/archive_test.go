package archive

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildZip(t *testing.T, entries map[string]string) string {
	t.Helper()
	zipPath := filepath.Join(t.TempDir(), "dump.zip")

	out, err := os.Create(zipPath)
	require.NoError(t, err)
	defer out.Close()

	w := zip.NewWriter(out)
	for name, content := range entries {
		header := &zip.FileHeader{Name: name, Modified: time.Date(2023, 7, 1, 12, 0, 0, 0, time.UTC)}
		if content != "" || name[len(name)-1] != '/' {
			header.Method = zip.Deflate
		}
		f, err := w.CreateHeader(header)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return zipPath
}

// TestScanZip tests header-only scanning of a small archive.
func TestScanZip(t *testing.T) {
	zipPath := buildZip(t, map[string]string{
		"proj/":          "",
		"proj/main.py":   "print('hi')\n",
		"proj/README.md": "# proj\n",
		"../evil.sh":     "rm -rf\n",
	})

	records, err := ScanZip(zipPath)
	require.NoError(t, err)

	byPath := make(map[string]bool, len(records))
	for _, rec := range records {
		byPath[rec.Path] = true
	}

	assert.True(t, byPath["proj/main.py"])
	assert.True(t, byPath["proj/README.md"])
	assert.False(t, byPath["../evil.sh"], "traversal entries must be dropped")

	for _, rec := range records {
		if rec.Path == "proj/main.py" {
			assert.Equal(t, ".py", rec.Extension)
			assert.Equal(t, int64(12), rec.Size)
			assert.False(t, rec.IsDir)
			require.NotNil(t, rec.Modified)
			assert.Equal(t, 2023, rec.Modified.Year())
		}
		if rec.Path == "proj" {
			assert.True(t, rec.IsDir)
		}
	}
}

// TestScanZipRejectsNonZip tests input validation.
func TestScanZipRejectsNonZip(t *testing.T) {
	_, err := ScanZip("/tmp/whatever.tar.gz")
	assert.Error(t, err)

	bogus := filepath.Join(t.TempDir(), "fake.zip")
	require.NoError(t, os.WriteFile(bogus, []byte("not a zip"), 0644))
	_, err = ScanZip(bogus)
	assert.Error(t, err)
}

// TestScanDir tests directory walking with relative slash paths.
func TestScanDir(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "app", "src"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "app", "src", "index.ts"), []byte("export {}\n"), 0644))

	records, err := ScanDir(root)
	require.NoError(t, err)

	var found bool
	for _, rec := range records {
		if rec.Path == "app/src/index.ts" {
			found = true
			assert.Equal(t, ".ts", rec.Extension)
			assert.False(t, rec.IsDir)
			assert.NotNil(t, rec.Modified)
		}
		if rec.Path == "app" {
			assert.True(t, rec.IsDir)
		}
	}
	assert.True(t, found)
}

// TestExtract tests safe extraction for mining.
func TestExtract(t *testing.T) {
	zipPath := buildZip(t, map[string]string{
		"proj/data.txt": "payload\n",
		"../escape.txt": "nope\n",
	})
	dest := t.TempDir()

	require.NoError(t, Extract(zipPath, dest))

	data, err := os.ReadFile(filepath.Join(dest, "proj", "data.txt"))
	require.NoError(t, err)
	assert.Equal(t, "payload\n", string(data))

	_, err = os.Stat(filepath.Join(filepath.Dir(dest), "escape.txt"))
	assert.True(t, os.IsNotExist(err))
}

// TestIsHostilePath tests the traversal guards.
func TestIsHostilePath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{"clean relative", "proj/main.go", false},
		{"empty", "", true},
		{"absolute", "/etc/passwd", true},
		{"upward traversal", "../../secret", true},
		{"hidden traversal", "a/../../secret", true},
		{"encoded dot", "a/%2e%2e/secret", true},
		{"windows drive", "c:/windows/system32", true},
		{"inner dots resolved", "a/b/../c.txt", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsHostilePath(tt.path))
		})
	}
}

// TestExtensionOf tests extension derivation including dotfiles.
func TestExtensionOf(t *testing.T) {
	assert.Equal(t, ".py", ExtensionOf("proj/main.py"))
	assert.Equal(t, ".git", ExtensionOf("proj/.git/"))
	assert.Equal(t, ".gitignore", ExtensionOf("proj/.gitignore"))
	assert.Equal(t, ".gz", ExtensionOf("dump.tar.gz"))
	assert.Equal(t, "", ExtensionOf("Makefile"))
}
