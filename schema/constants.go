package schema

// Custom string types for type safety.
type (
	// Category represents the coarse file category derived from an extension.
	Category string

	// Activity represents the kind of work a file evidences.
	Activity string

	// ProjectType represents whether a repository was worked on alone or in a team.
	ProjectType string

	// OutputMode represents the format of the output.
	OutputMode string

	// StorageBackend represents the database backend for scan storage.
	StorageBackend string

	// ReportView selects which slice of a scan report gets rendered.
	ReportView string
)

// All file categories supported.
const (
	SourceCodeCategory    Category = "source_code"
	WebCodeCategory       Category = "web_code"
	DocumentationCategory Category = "documentation"
	AssetsCategory        Category = "assets"
	ConfigurationCategory Category = "configuration"
	DatasetsCategory      Category = "datasets"
	BinariesCategory      Category = "binaries"
	NotebooksCategory     Category = "notebooks"
	BuildScriptsCategory  Category = "build_scripts"
	DockerFilesCategory   Category = "docker_files"
	GitMetadataCategory   Category = "git_metadata"
	RepositoryCategory    Category = "repository"
	UncategorizedCategory Category = "uncategorized"
)

// All activity kinds supported. The order of evaluation is fixed: test
// markers win over documentation, documentation over design, and code is
// the fallback. See core.DetectActivity.
const (
	CodeActivity          Activity = "code"
	TestActivity          Activity = "test"
	DocumentationActivity Activity = "documentation"
	DesignActivity        Activity = "design"
)

// All project types supported.
const (
	IndividualProject    ProjectType = "individual"
	CollaborativeProject ProjectType = "collaborative"
)

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	CSVOut  OutputMode = "csv"
	JSONOut OutputMode = "json"
)

// All storage backends supported.
const (
	SQLiteBackend     StorageBackend = "sqlite" // default
	MySQLBackend      StorageBackend = "mysql"
	PostgreSQLBackend StorageBackend = "postgresql"
	NoneBackend       StorageBackend = "none"
)

// UndefinedLanguage is the sentinel for files whose language cannot be
// resolved. It is a normal outcome, not an error.
const UndefinedLanguage = "undefined"

// DefaultProjectName buckets files that carry no path segment at all.
const DefaultProjectName = "project"

// All report views supported.
const (
	RankingsView    ReportView = "rankings" // default for analyze
	ChronologyView  ReportView = "chronology"
	LeaderboardView ReportView = "leaderboard"
	FullView        ReportView = "full"
)

// ValidReportViews lists all valid report views.
var ValidReportViews = map[ReportView]struct{}{
	RankingsView:    {},
	ChronologyView:  {},
	LeaderboardView: {},
	FullView:        {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	CSVOut:  {},
	JSONOut: {},
}

// ValidStorageBackends lists all valid storage backends.
var ValidStorageBackends = map[StorageBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
