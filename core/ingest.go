package core

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/huangsam/skillscope/internal/archive"
	"github.com/huangsam/skillscope/internal/contract"
	"github.com/huangsam/skillscope/internal/gitminer"
	"github.com/huangsam/skillscope/schema"
)

// AnalyzeArtifact runs the full pipeline against a path on disk: a zip
// archive or a directory tree. In detailed mode a zip is unpacked to a
// temporary directory so version-control history can be mined from the
// extracted working copies.
func AnalyzeArtifact(ctx context.Context, artifactPath string, cfg *contract.Config) (*AnalysisOutput, error) {
	if artifactPath == "" {
		return nil, fmt.Errorf("no archive path given")
	}

	info, err := os.Stat(artifactPath)
	if err != nil {
		return nil, fmt.Errorf("cannot access %s: %w", artifactPath, err)
	}

	var records []schema.FileRecord
	mineBase := artifactPath

	switch {
	case info.IsDir():
		records, err = archive.ScanDir(artifactPath)
		if err != nil {
			return nil, err
		}
	case strings.HasSuffix(strings.ToLower(artifactPath), ".zip"):
		records, err = archive.ScanZip(artifactPath)
		if err != nil {
			return nil, err
		}
		if cfg.Detailed {
			tmpDir, err := os.MkdirTemp("", "skillscope-*")
			if err != nil {
				return nil, fmt.Errorf("cannot create extraction directory: %w", err)
			}
			defer os.RemoveAll(tmpDir)
			if err := archive.Extract(artifactPath, tmpDir); err != nil {
				return nil, fmt.Errorf("cannot extract %s: %w", artifactPath, err)
			}
			mineBase = tmpDir
			return runWithMiner(ctx, records, cfg, mineBase)
		}
	default:
		return nil, fmt.Errorf("unsupported input %s: expected a .zip archive or a directory", artifactPath)
	}

	return runWithMiner(ctx, records, cfg, mineBase)
}

func runWithMiner(ctx context.Context, records []schema.FileRecord, cfg *contract.Config, mineBase string) (*AnalysisOutput, error) {
	var miner contract.RepoMiner
	if cfg.Detailed {
		miner = gitminer.New(mineBase, cfg.MineTimeout)
	}
	return Run(ctx, records, cfg, miner)
}
