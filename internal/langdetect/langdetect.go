// Package langdetect identifies programming languages from content
// snippets. It complements the extension tables: extensions are trusted
// first, content heuristics catch spoofed or extensionless files.
package langdetect

import (
	"regexp"
	"strings"
)

var (
	rePython = regexp.MustCompile(`(?m)^\s*(def|class)\s+\w+\s*[:\(]|^\s*import\s+\w+|^\s*from\s+\w+\s+import`)
	reJava   = regexp.MustCompile(`(?m)^\s*package\s+[\w.]+;|^\s*public\s+class\s+\w+`)
	reHTML   = regexp.MustCompile(`(?im)^\s*<!DOCTYPE\s+html>|^\s*<html`)
	reJS     = regexp.MustCompile(`(?m)^\s*(import\s+.*\s+from\s+['"]|const\s+\w+\s*=|let\s+\w+\s*=|var\s+\w+\s*=|function\s+\w+\s*\(|console\.log\()`)
	reTSHint = regexp.MustCompile(`:\s*(string|number|boolean|any|void)\b|interface\s+\w+`)
	reCInc   = regexp.MustCompile(`(?m)^\s*#include\s+[<"]`)
	reCPP    = regexp.MustCompile(`\b(class|template|namespace|std::|cout|cin)\b`)
	reCSharp = regexp.MustCompile(`(?m)^\s*using\s+System;`)
	reCSS    = regexp.MustCompile(`(?m)^\s*[.#a-zA-Z0-9_-]+\s*\{\s*[\w-]+\s*:`)
	reSQL    = regexp.MustCompile(`(?is)\bSELECT\b.+?\bFROM\b|\bINSERT\s+INTO\b|\bCREATE\s+TABLE\b|\bUPDATE\b.+?\bSET\b`)
	reRuby   = regexp.MustCompile(`(?m)^\s*(?:class|module)\s+[A-Z]\w*(\s*<|\s*$)|^\s*def\s+\w+|^\s*require\s+['"]`)
	reGo     = regexp.MustCompile(`(?m)^\s*package\s+main|^\s*func\s+\w+`)
	rePHP    = regexp.MustCompile(`(?i)<\?(php|=)`)
	rePHPGen = regexp.MustCompile(`<\?php`)
	reXML    = regexp.MustCompile(`^\s*<\?xml`)
)

// Detect sniffs the language of a content snippet. An empty result means
// the content matched nothing; the extension tables remain authoritative
// for classification either way.
//
// The cascade runs in three stages: shebang on the first line, extension
// priority verification (a .py file is checked against Python patterns
// before anything else), then generic fallthrough heuristics.
func Detect(content, ext string) string {
	if lang := fromShebang(content); lang != "" {
		return lang
	}
	if lang := fromExtensionPriority(content, strings.ToLower(ext)); lang != "" {
		return lang
	}
	return fromHeuristics(content)
}

func fromShebang(content string) string {
	firstLine, _, _ := strings.Cut(content, "\n")
	if !strings.HasPrefix(firstLine, "#!") {
		return ""
	}
	switch {
	case strings.Contains(firstLine, "python"):
		return "Python"
	case strings.Contains(firstLine, "node"):
		return "JavaScript"
	case strings.Contains(firstLine, "bash"), strings.Contains(firstLine, "sh"):
		return "Shell"
	case strings.Contains(firstLine, "perl"):
		return "Perl"
	case strings.Contains(firstLine, "ruby"):
		return "Ruby"
	case strings.Contains(firstLine, "php"):
		return "PHP"
	}
	return ""
}

// fromExtensionPriority checks the pattern of the extension's expected
// language first, so polyglot content cannot hijack a well-named file.
func fromExtensionPriority(content, ext string) string {
	switch ext {
	case ".py":
		if rePython.MatchString(content) {
			return "Python"
		}
	case ".java":
		if reJava.MatchString(content) {
			return "Java"
		}
	case ".html", ".htm":
		if reHTML.MatchString(content) {
			return "HTML"
		}
	case ".js", ".jsx", ".mjs", ".cjs", ".ts", ".tsx":
		if reJS.MatchString(content) {
			if ext == ".ts" || ext == ".tsx" {
				return "TypeScript"
			}
			return "JavaScript"
		}
	case ".c", ".cpp", ".h", ".hpp", ".cc", ".cxx":
		if reCInc.MatchString(content) {
			if reCPP.MatchString(content) {
				return "C++"
			}
			if ext == ".cpp" || ext == ".hpp" || ext == ".cc" || ext == ".cxx" {
				return "C++"
			}
			return "C"
		}
	case ".cs":
		if reCSharp.MatchString(content) {
			return "C#"
		}
	case ".css":
		if reCSS.MatchString(content) {
			return "CSS"
		}
	case ".sql":
		if reSQL.MatchString(content) {
			return "SQL"
		}
	case ".rb":
		if reRuby.MatchString(content) {
			return "Ruby"
		}
	case ".go":
		if reGo.MatchString(content) {
			return "Go"
		}
	case ".php":
		if rePHP.MatchString(content) {
			return "PHP"
		}
	case ".xml":
		if reXML.MatchString(content) {
			return "XML"
		}
	}
	return ""
}

// fromHeuristics scans every pattern in a fixed order. JS runs before
// Python so ES import statements are not mistaken for Python imports.
func fromHeuristics(content string) string {
	switch {
	case reXML.MatchString(content):
		return "XML"
	case reCInc.MatchString(content):
		if reCPP.MatchString(content) {
			return "C++"
		}
		return "C"
	case reCSharp.MatchString(content):
		return "C#"
	case reJS.MatchString(content):
		if reTSHint.MatchString(content) {
			return "TypeScript"
		}
		return "JavaScript"
	case rePython.MatchString(content):
		return "Python"
	case reJava.MatchString(content):
		return "Java"
	case reGo.MatchString(content):
		return "Go"
	case reRuby.MatchString(content):
		return "Ruby"
	case rePHPGen.MatchString(content):
		return "PHP"
	}
	return ""
}
