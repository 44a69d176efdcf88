package contract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  string
	}{
		{"standout at threshold", 150.0, StandoutValue},
		{"strong at threshold", 80.0, StrongValue},
		{"strong below standout", 149.9, StrongValue},
		{"moderate at threshold", 40.0, ModerateValue},
		{"minor below moderate", 39.9, MinorValue},
		{"minor at zero", 0.0, MinorValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetPlainLabel(tt.score))
		})
	}
}

func TestGetColorLabelKeepsText(t *testing.T) {
	// The colored variant always contains the plain text.
	for _, score := range []float64{200, 100, 50, 10} {
		assert.Contains(t, GetColorLabel(score), GetPlainLabel(score))
	}
}

func TestTruncatePath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		maxWidth int
		want     string
	}{
		{"short path untouched", "a/b.go", 20, "a/b.go"},
		{"long path keeps suffix", "internal/deeply/nested/file.go", 10, "...file.go"},
		{"width too small for ellipsis", "abcdefgh", 3, "abcdefgh"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncatePath(tt.path, tt.maxWidth))
		})
	}
}

func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "YES", "true", "1"} {
		got, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.True(t, got, s)
	}
	for _, s := range []string{"no", "False", "0"} {
		got, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.False(t, got, s)
	}
	_, err := ParseBoolString("maybe")
	assert.Error(t, err)
}

func TestSelectOutputFile(t *testing.T) {
	file, err := SelectOutputFile("")
	require.NoError(t, err)
	assert.Equal(t, os.Stdout, file)

	path := filepath.Join(t.TempDir(), "out.txt")
	file, err = SelectOutputFile(path)
	require.NoError(t, err)
	require.NotEqual(t, os.Stdout, file)
	require.NoError(t, file.Close())
}
