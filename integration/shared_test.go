//go:build basic || database

package integration

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/huangsam/skillscope/internal/contract"
	"github.com/huangsam/skillscope/schema"
)

// sampleReport builds a small but fully populated report for round trips.
func sampleReport() *schema.ScanReport {
	return &schema.ScanReport{
		GeneratedAt:  "2023-07-01T12:00:00Z",
		AnalysisMode: "detailed",
		ProjectSummaries: []schema.ProjectSummary{
			{
				Project:         "webapp",
				TotalFiles:      10,
				CodeFiles:       6,
				TestFiles:       2,
				DocFiles:        1,
				DesignFiles:     1,
				Languages:       []string{"JavaScript", "TypeScript"},
				Skills:          []string{"Frontend Development", "Web Development"},
				DurationDays:    30,
				IsCollaborative: true,
				Score:           76.0,
				ContributorPct: map[string]float64{
					"alice@example.com": 60.0,
					"bob@example.com":   40.0,
				},
			},
		},
		ProjectsChronological: []schema.ProjectSpan{
			{Name: "webapp", FirstUsed: "2023-01-01T00:00:00Z", LastUsed: "2023-01-31T00:00:00Z"},
		},
		Leaderboard: []schema.LeaderboardEntry{
			{Identity: "alice@example.com", ProjectCount: 1, TotalScore: 45.6, TotalPct: 60.0},
			{Identity: "bob@example.com", ProjectCount: 1, TotalScore: 30.4, TotalPct: 40.0},
		},
	}
}

// roundTrip exercises the full store contract against one backend.
func roundTrip(t *testing.T, store contract.ScanStore) {
	t.Helper()

	id1, err := store.SaveScan(sampleReport())
	require.NoError(t, err)
	id2, err := store.SaveScan(sampleReport())
	require.NoError(t, err)
	require.Greater(t, id2, id1)

	metas, err := store.ListScans()
	require.NoError(t, err)
	require.Len(t, metas, 2)
	require.Equal(t, id2, metas[0].ID, "listing is newest first")
	require.Equal(t, "detailed", metas[0].AnalysisMode)
	require.Equal(t, 1, metas[0].ProjectCount)

	report, err := store.GetScan(id1)
	require.NoError(t, err)
	require.Equal(t, "webapp", report.ProjectSummaries[0].Project)
	require.InDelta(t, 60.0, report.ProjectSummaries[0].ContributorPct["alice@example.com"], 0.001)
	require.Len(t, report.Leaderboard, 2)

	status, err := store.GetStatus()
	require.NoError(t, err)
	require.Equal(t, 2, status.ScanCount)

	require.NoError(t, store.DeleteScan(id1))
	_, err = store.GetScan(id1)
	require.Error(t, err)

	metas, err = store.ListScans()
	require.NoError(t, err)
	require.Len(t, metas, 1)
}
