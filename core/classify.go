package core

import (
	"path"
	"strings"

	"github.com/huangsam/skillscope/schema"
)

// testSuffixes mark test files whose path lacks a "test" segment.
// Checked after the substring test, so they only matter for exotic
// casing; kept for parity with the substring rule's documented contract.
var testSuffixes = []string{".spec.js", ".test.js", ".test.py", ".spec.ts", ".test.ts", "_test.go"}

// DetectActivity resolves the activity kind for a file. The rules form a
// strict priority cascade, not independent checks: a documentation file
// with "test" in its path is a test file, full stop.
//
//  1. Path contains "test" (case-insensitive) or ends with a test suffix -> test
//  2. Category is documentation -> documentation
//  3. Category is assets -> design
//  4. Everything else -> code
func DetectActivity(category schema.Category, filePath string) schema.Activity {
	low := strings.ToLower(filePath)

	if strings.Contains(low, "test") {
		return schema.TestActivity
	}
	for _, suffix := range testSuffixes {
		if strings.HasSuffix(low, suffix) {
			return schema.TestActivity
		}
	}

	if category == schema.DocumentationCategory {
		return schema.DocumentationActivity
	}
	if category == schema.AssetsCategory {
		return schema.DesignActivity
	}
	return schema.CodeActivity
}

// DetectLanguage resolves a file's language from the extension table.
// Only source and web code carry a language; everything else is
// UndefinedLanguage, which is a normal outcome.
func DetectLanguage(category schema.Category, ext string, filters *schema.Filters) string {
	if category != schema.SourceCodeCategory && category != schema.WebCodeCategory {
		return schema.UndefinedLanguage
	}
	if lang, ok := filters.ExtLanguage[strings.ToLower(ext)]; ok {
		return lang
	}
	return schema.UndefinedLanguage
}

// SkillFor resolves a skill label, preferring the language mapping and
// falling back to the extension mapping. Missing keys yield the empty
// string; absence is not an error.
func SkillFor(language, ext string, filters *schema.Filters) string {
	if language != "" && language != schema.UndefinedLanguage {
		if skill, ok := filters.LangSkill[language]; ok {
			return skill
		}
	}
	if skill, ok := filters.ExtSkill[strings.ToLower(ext)]; ok {
		return skill
	}
	return ""
}

// SkillForExtension resolves a skill for a bare extension, routing through
// the language table first the same way classification does. Used by
// contributor attribution, where only loc-by-extension keys are known.
func SkillForExtension(ext string, filters *schema.Filters) string {
	lang := filters.ExtLanguage[strings.ToLower(ext)]
	return SkillFor(lang, ext, filters)
}

// DetectFramework recognizes well-known build and manifest file names.
// Returns the empty string when nothing matches.
func DetectFramework(filePath string, filters *schema.Filters) string {
	base := strings.ToLower(path.Base(filePath))
	if fw, ok := filters.Frameworks[base]; ok {
		return fw
	}
	return ""
}

// Classify enriches one file record into a classified file. Pure function:
// no I/O, no mutation of the input record.
func Classify(rec schema.FileRecord, filters *schema.Filters) schema.ClassifiedFile {
	category := filters.CategoryFor(rec.Extension)
	language := DetectLanguage(category, rec.Extension, filters)
	return schema.ClassifiedFile{
		FileRecord: rec,
		Category:   category,
		Activity:   DetectActivity(category, rec.Path),
		Language:   language,
		Skill:      SkillFor(language, rec.Extension, filters),
		Framework:  DetectFramework(rec.Path, filters),
	}
}
