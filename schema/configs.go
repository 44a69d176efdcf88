package schema

// Filters bundles the externally configured lookup tables the classifier
// works from. All keys are lower-cased; extensions include the leading dot.
type Filters struct {
	ExtCategory map[string]Category `mapstructure:"ext_category"` // ".py" -> source_code
	ExtLanguage map[string]string   `mapstructure:"ext_language"` // ".py" -> "Python"
	LangSkill   map[string]string   `mapstructure:"lang_skill"`   // "Python" -> skill label
	ExtSkill    map[string]string   `mapstructure:"ext_skill"`    // fallback ".py" -> skill label
	Frameworks  map[string]string   `mapstructure:"frameworks"`   // manifest basename -> framework label
}

// CategoryFor resolves the category for an extension. Unknown extensions
// are uncategorized, which is a normal outcome.
func (f *Filters) CategoryFor(ext string) Category {
	if cat, ok := f.ExtCategory[ext]; ok {
		return cat
	}
	return UncategorizedCategory
}

// DefaultFilters returns the built-in lookup tables. A viper config file
// can override any of the maps wholesale.
func DefaultFilters() *Filters {
	return &Filters{
		ExtCategory: map[string]Category{
			".py":   SourceCodeCategory,
			".go":   SourceCodeCategory,
			".java": SourceCodeCategory,
			".c":    SourceCodeCategory,
			".cpp":  SourceCodeCategory,
			".h":    SourceCodeCategory,
			".cs":   SourceCodeCategory,
			".rb":   SourceCodeCategory,
			".rs":   SourceCodeCategory,
			".php":  SourceCodeCategory,
			".sql":  SourceCodeCategory,
			".sh":   SourceCodeCategory,

			".js":   WebCodeCategory,
			".jsx":  WebCodeCategory,
			".ts":   WebCodeCategory,
			".tsx":  WebCodeCategory,
			".html": WebCodeCategory,
			".htm":  WebCodeCategory,
			".css":  WebCodeCategory,
			".vue":  WebCodeCategory,

			".md":   DocumentationCategory,
			".rst":  DocumentationCategory,
			".txt":  DocumentationCategory,
			".pdf":  DocumentationCategory,
			".docx": DocumentationCategory,

			".png":  AssetsCategory,
			".jpg":  AssetsCategory,
			".jpeg": AssetsCategory,
			".gif":  AssetsCategory,
			".svg":  AssetsCategory,
			".fig":  AssetsCategory,
			".psd":  AssetsCategory,

			".yaml": ConfigurationCategory,
			".yml":  ConfigurationCategory,
			".toml": ConfigurationCategory,
			".ini":  ConfigurationCategory,
			".json": ConfigurationCategory,
			".env":  ConfigurationCategory,

			".csv":     DatasetsCategory,
			".tsv":     DatasetsCategory,
			".parquet": DatasetsCategory,
			".xlsx":    DatasetsCategory,

			".exe": BinariesCategory,
			".dll": BinariesCategory,
			".so":  BinariesCategory,
			".bin": BinariesCategory,

			".ipynb": NotebooksCategory,

			".gradle": BuildScriptsCategory,
			".mk":     BuildScriptsCategory,
			".cmake":  BuildScriptsCategory,

			".dockerfile": DockerFilesCategory,

			".gitignore":     GitMetadataCategory,
			".gitattributes": GitMetadataCategory,

			".git": RepositoryCategory,
		},
		ExtLanguage: map[string]string{
			".py":   "Python",
			".go":   "Go",
			".java": "Java",
			".c":    "C",
			".cpp":  "C++",
			".h":    "C",
			".cs":   "C#",
			".rb":   "Ruby",
			".rs":   "Rust",
			".php":  "PHP",
			".sql":  "SQL",
			".sh":   "Shell",
			".js":   "JavaScript",
			".jsx":  "JavaScript",
			".ts":   "TypeScript",
			".tsx":  "TypeScript",
			".html": "HTML",
			".htm":  "HTML",
			".css":  "CSS",
			".vue":  "Vue",
		},
		LangSkill: map[string]string{
			"Python":     "Python Programming",
			"Go":         "Go Programming",
			"Java":       "Java Development",
			"C":          "Systems Programming",
			"C++":        "Systems Programming",
			"C#":         ".NET Development",
			"Ruby":       "Ruby Development",
			"Rust":       "Systems Programming",
			"PHP":        "Web Backend",
			"SQL":        "Databases",
			"Shell":      "Shell Scripting",
			"JavaScript": "JavaScript / Frontend",
			"TypeScript": "JavaScript / Frontend",
			"HTML":       "Web Dev",
			"CSS":        "Web Dev",
			"Vue":        "JavaScript / Frontend",
		},
		ExtSkill: map[string]string{
			".py":   "Python Programming",
			".go":   "Go Programming",
			".js":   "JavaScript / Frontend",
			".jsx":  "JavaScript / Frontend",
			".ts":   "JavaScript / Frontend",
			".tsx":  "JavaScript / Frontend",
			".html": "Web Dev",
			".css":  "Web Dev",
			".java": "Java Development",
			".sql":  "Databases",
			".md":   "Docs / Writing",
			".rst":  "Docs / Writing",
			".txt":  "Docs / Writing",
			".pdf":  "Docs / Writing",
			".docx": "Docs / Writing",

			".ipynb": "Data Analysis",
			".csv":   "Data Analysis",
		},
		Frameworks: map[string]string{
			"package.json":     "Node / React",
			"requirements.txt": "Python (requirements)",
			"pyproject.toml":   "Python (pyproject)",
			"pom.xml":          "Java (Maven)",
			"build.gradle":     "Java/Kotlin (Gradle)",
			"cargo.toml":       "Rust (Cargo)",
			"go.mod":           "Go (modules)",
			"gemfile":          "Ruby (Bundler)",
			"composer.json":    "PHP (Composer)",
			"dockerfile":       "Docker",
		},
	}
}
