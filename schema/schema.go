// Package schema has configs, models and shared helpers for all parts of skillscope.
package schema

import "time"

// FileRecord is one entry from an extracted archive, as produced by the
// archive scanner. It is immutable once produced; later pipeline stages
// build new records instead of mutating it.
type FileRecord struct {
	Path      string     // Forward-slash path inside the archive
	Size      int64      // Size in bytes (0 for directories)
	Modified  *time.Time // Last-modified timestamp, nil when the archive omits it
	Extension string     // Lower-cased extension including the dot, or basename for directories
	IsDir     bool       // Directory placeholder entries carry no content
}

// ClassifiedFile is a FileRecord enriched by the classifier with a category,
// an activity kind, a language and a derived skill label.
type ClassifiedFile struct {
	FileRecord

	Category  Category
	Activity  Activity
	Language  string // UndefinedLanguage when unresolved
	Skill     string // empty when no skill mapping resolves
	Framework string // empty when no manifest file is recognized
}

// ModifiedOrZero returns the record's timestamp, or the zero time when the
// archive carried none.
func (f FileRecord) ModifiedOrZero() time.Time {
	if f.Modified == nil {
		return time.Time{}
	}
	return *f.Modified
}
