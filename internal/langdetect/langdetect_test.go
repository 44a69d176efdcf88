package langdetect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDetect tests the three-stage sniffing cascade.
func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		ext      string
		expected string
	}{
		{
			name:     "python shebang beats extension",
			content:  "#!/usr/bin/env python3\nimport sys\n",
			ext:      ".txt",
			expected: "Python",
		},
		{
			name:     "bash shebang",
			content:  "#!/bin/bash\necho hi\n",
			ext:      "",
			expected: "Shell",
		},
		{
			name:     "python by extension priority",
			content:  "import os\n\ndef main():\n    pass\n",
			ext:      ".py",
			expected: "Python",
		},
		{
			name:     "typescript by extension",
			content:  "import { x } from 'y'\nconst a = 1\n",
			ext:      ".ts",
			expected: "TypeScript",
		},
		{
			name:     "javascript fallthrough without extension",
			content:  "const greet = function greet() { console.log('hi') }\n",
			ext:      "",
			expected: "JavaScript",
		},
		{
			name:     "typescript hint in fallthrough",
			content:  "const n = 1\ninterface Shape { area(): number }\n",
			ext:      "",
			expected: "TypeScript",
		},
		{
			name:     "cpp by namespace",
			content:  "#include <iostream>\nint main() { std::cout << 1; }\n",
			ext:      ".cpp",
			expected: "C++",
		},
		{
			name:     "plain c",
			content:  "#include <stdio.h>\nint main(void) { return 0; }\n",
			ext:      ".c",
			expected: "C",
		},
		{
			name:     "go package",
			content:  "package main\n\nfunc main() {}\n",
			ext:      ".go",
			expected: "Go",
		},
		{
			name:     "sql statement",
			content:  "SELECT id, name FROM users WHERE id = 1;\n",
			ext:      ".sql",
			expected: "SQL",
		},
		{
			name:     "html doctype",
			content:  "<!DOCTYPE html>\n<html></html>\n",
			ext:      ".html",
			expected: "HTML",
		},
		{
			name:     "xml declaration in fallthrough",
			content:  "<?xml version=\"1.0\"?>\n<root/>\n",
			ext:      "",
			expected: "XML",
		},
		{
			name:     "spoofed extension falls through",
			content:  "import os\nfrom os import path\n",
			ext:      ".js",
			expected: "Python",
		},
		{
			name:     "nothing matches",
			content:  "just some prose with no code at all",
			ext:      ".xyz",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Detect(tt.content, tt.ext))
		})
	}
}
