package contract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huangsam/skillscope/schema"
)

func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		OutputStr:    "text",
		PrecisionInt: 1,
		ResultLimit:  20,
		BackendStr:   "sqlite",
		ColorStr:     "yes",
	}
}

func TestProcessAndValidateDefaults(t *testing.T) {
	cfg := &Config{}
	input := validInput()
	input.ArchivePathStr = "dump.zip"

	require.NoError(t, ProcessAndValidate(cfg, input))

	assert.Equal(t, "dump.zip", cfg.ArchivePath)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.Equal(t, schema.SQLiteBackend, cfg.Backend)
	assert.Equal(t, 20, cfg.ResultLimit)
	assert.True(t, cfg.Color)
	assert.Equal(t, DefaultMineTimeout, cfg.MineTimeout)
	require.NotNil(t, cfg.Filters)
	assert.Equal(t, schema.SourceCodeCategory, cfg.Filters.ExtCategory[".py"])
}

func TestProcessAndValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ConfigRawInput)
		errSub string
	}{
		{"zero limit", func(in *ConfigRawInput) { in.ResultLimit = 0 }, "limit must be greater than 0"},
		{"excessive limit", func(in *ConfigRawInput) { in.ResultLimit = MaxResultLimit + 1 }, "cannot exceed"},
		{"bad precision", func(in *ConfigRawInput) { in.PrecisionInt = 3 }, "precision must be 1 or 2"},
		{"bad output", func(in *ConfigRawInput) { in.OutputStr = "yaml" }, "invalid output format"},
		{"bad backend", func(in *ConfigRawInput) { in.BackendStr = "oracle" }, "invalid storage backend"},
		{"save without backend", func(in *ConfigRawInput) { in.BackendStr = "none"; in.Save = true }, "cannot save scans"},
		{"bad color", func(in *ConfigRawInput) { in.ColorStr = "maybe" }, "invalid color value"},
		{"negative width", func(in *ConfigRawInput) { in.Width = -1 }, "width cannot be negative"},
		{"bad timeout", func(in *ConfigRawInput) { in.MineTimeoutStr = "soon" }, "invalid mine timeout"},
		{"negative timeout", func(in *ConfigRawInput) { in.MineTimeoutStr = "-5s" }, "must be positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)
			err := ProcessAndValidate(&Config{}, input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSub)
		})
	}
}

func TestProcessAndValidateMineTimeout(t *testing.T) {
	cfg := &Config{}
	input := validInput()
	input.MineTimeoutStr = "30s"

	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, 30*time.Second, cfg.MineTimeout)
}

func TestProcessAndValidateFilterOverrides(t *testing.T) {
	cfg := &Config{}
	input := validInput()
	input.Filters = &schema.Filters{
		ExtCategory: map[string]schema.Category{".XYZ": schema.SourceCodeCategory},
		ExtLanguage: map[string]string{".xyz": "Xyz"},
		LangSkill:   map[string]string{"Xyz": "Xyz Programming"},
	}

	require.NoError(t, ProcessAndValidate(cfg, input))

	// Overrides merge on top of defaults with lowercased keys.
	assert.Equal(t, schema.SourceCodeCategory, cfg.Filters.ExtCategory[".xyz"])
	assert.Equal(t, "Xyz", cfg.Filters.ExtLanguage[".xyz"])
	assert.Equal(t, "Xyz Programming", cfg.Filters.LangSkill["Xyz"])
	assert.Equal(t, schema.SourceCodeCategory, cfg.Filters.ExtCategory[".py"], "defaults survive the merge")
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{
		Detailed:    true,
		ResultLimit: 5,
		Filters:     schema.DefaultFilters(),
	}

	clone := cfg.Clone()
	clone.ResultLimit = 99

	assert.Equal(t, 5, cfg.ResultLimit)
	assert.True(t, clone.Detailed)
	assert.Same(t, cfg.Filters, clone.Filters, "filter tables are shared")
}
