// Package archive turns a zipped project dump or a plain directory tree
// into file records for the engine. Zip scanning reads central-directory
// headers only; extraction to disk happens separately and only when
// repository mining needs real working copies.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/huangsam/skillscope/schema"
)

// ScanZip reads entry metadata from a zip archive without extracting it.
// Entries with hostile paths are silently dropped.
func ScanZip(zipPath string) ([]schema.FileRecord, error) {
	if !strings.HasSuffix(strings.ToLower(zipPath), ".zip") {
		return nil, fmt.Errorf("not a zip archive: %s", zipPath)
	}

	reader, err := zip.OpenReader(zipPath)
	if err != nil {
		return nil, fmt.Errorf("open archive %s: %w", zipPath, err)
	}
	defer reader.Close()

	records := make([]schema.FileRecord, 0, len(reader.File))
	for _, f := range reader.File {
		if IsHostilePath(f.Name) {
			continue
		}

		isDir := f.FileInfo().IsDir()
		rec := schema.FileRecord{
			Path:      path.Clean(strings.TrimSuffix(f.Name, "/")),
			Size:      int64(f.UncompressedSize64),
			Extension: ExtensionOf(f.Name),
			IsDir:     isDir,
		}
		if mod := f.Modified; !mod.IsZero() {
			utc := mod.UTC()
			rec.Modified = &utc
		}
		records = append(records, rec)
	}
	return records, nil
}

// ScanDir walks a directory tree and produces records with paths relative
// to the tree root, slash-separated like zip entries.
func ScanDir(root string) ([]schema.FileRecord, error) {
	var records []schema.FileRecord

	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}

		rec := schema.FileRecord{
			Path:      filepath.ToSlash(rel),
			Extension: ExtensionOf(rel),
			IsDir:     d.IsDir(),
		}
		if info, err := d.Info(); err == nil {
			rec.Size = info.Size()
			if mod := info.ModTime(); !mod.IsZero() {
				utc := mod.UTC()
				rec.Modified = &utc
			}
		}
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return records, nil
}

// Extract unpacks a zip archive under dest so repository mining can open
// the working copies it contains. Hostile entries are skipped, matching
// ScanZip.
func Extract(zipPath, dest string) error {
	reader, err := zip.OpenReader(zipPath)
	if err != nil {
		return fmt.Errorf("open archive %s: %w", zipPath, err)
	}
	defer reader.Close()

	for _, f := range reader.File {
		if IsHostilePath(f.Name) {
			continue
		}
		if err := extractEntry(f, dest); err != nil {
			return fmt.Errorf("extract %s: %w", f.Name, err)
		}
	}
	return nil
}

func extractEntry(f *zip.File, dest string) error {
	target := filepath.Join(dest, filepath.FromSlash(path.Clean(f.Name)))

	if f.FileInfo().IsDir() {
		return os.MkdirAll(target, 0o755)
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	src, err := f.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, f.Mode().Perm()|0o200)
	if err != nil {
		return err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return err
	}

	if mod := f.Modified; !mod.IsZero() {
		_ = os.Chtimes(target, time.Now(), mod)
	}
	return nil
}

// IsHostilePath reports whether a zip entry path could escape the
// extraction root: empty names, absolute paths, upward traversal after
// normalization, and percent-encoded traversal attempts.
func IsHostilePath(name string) bool {
	if name == "" {
		return true
	}
	if path.IsAbs(name) || strings.Contains(name, ":") {
		return true
	}
	normalized := path.Clean(name)
	if normalized == ".." || strings.HasPrefix(normalized, "../") {
		return true
	}
	low := strings.ToLower(name)
	return strings.Contains(low, "%2e") || strings.Contains(low, "%252e")
}

// ExtensionOf derives the lower-cased extension of an entry path.
// Dotfiles like ".gitignore" count as their own extension, and a ".git"
// directory entry keeps the extension that marks a repository root.
func ExtensionOf(name string) string {
	base := path.Base(strings.TrimSuffix(name, "/"))
	return strings.ToLower(path.Ext(base))
}
