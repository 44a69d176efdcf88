// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/huangsam/skillscope/schema"
)

// RepoMiner defines read-only access to version-control history. The core
// engine depends on this interface so mining can be mocked in tests and so
// a missing git history degrades the run instead of failing it.
type RepoMiner interface {
	// Mine extracts repository facts for a single working-copy root.
	// A failure applies to that root only.
	Mine(ctx context.Context, root string) (*schema.RepositoryFacts, error)

	// MineAll mines every root, isolating failures per root. The
	// returned map holds only the roots that mined cleanly; everything
	// else is reported in the failure list.
	MineAll(ctx context.Context, roots []string) (map[string]*schema.RepositoryFacts, []schema.MiningFailure)
}

// ScanStore defines durable storage for scan reports. Implementations
// treat the report as an opaque serialized document plus lightweight
// metadata for listing.
type ScanStore interface {
	// SaveScan persists a report and returns its assigned ID.
	SaveScan(report *schema.ScanReport) (int64, error)

	// ListScans returns lightweight metadata for all stored scans,
	// newest first.
	ListScans() ([]ScanMeta, error)

	// GetScan loads one stored report by ID.
	GetScan(id int64) (*schema.ScanReport, error)

	// DeleteScan removes one stored report by ID.
	DeleteScan(id int64) error

	// GetStatus returns status information about the store.
	GetStatus() (StoreStatus, error)

	// Close releases the underlying database handle.
	Close() error
}

// ScanMeta is the lightweight listing view of a stored scan.
type ScanMeta struct {
	ID           int64  `json:"id"`
	Timestamp    string `json:"timestamp"`
	AnalysisMode string `json:"analysis_mode"`
	ProjectCount int    `json:"project_count"`
}

// StoreStatus describes a scan store for diagnostics.
type StoreStatus struct {
	Backend   schema.StorageBackend `json:"backend"`
	Location  string                `json:"location"`
	ScanCount int                   `json:"scan_count"`
}
