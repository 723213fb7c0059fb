package scaler

import (
	"context"
	"fmt"
	"os"

	"github.com/backmassage/vidscale/internal/naming"
	"github.com/backmassage/vidscale/internal/resolution"
)

// BatchRequest asks for several resolutions of one input.
type BatchRequest struct {
	InputPath   string
	OutputDir   string   // Empty means the input's directory.
	Resolutions []string // Processed in order; duplicates are kept.
	Preset      string
	CRF         int
}

// ScaleMany runs Scale once per resolution, in order, writing
// {stem}_{res}{ext} into the output directory. The first failure aborts the
// rest of the batch; the returned count is the number of versions generated
// before it.
func (s *Scaler) ScaleMany(ctx context.Context, req BatchRequest) (int, error) {
	dir := naming.OutputDir(req.InputPath, req.OutputDir)
	if !s.DryRun {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			s.Log.Error("Cannot create output directory: %s", dir)
			return 0, fmt.Errorf("create output directory: %w", err)
		}
	}

	done := 0
	for _, res := range req.Resolutions {
		s.Log.Info("")
		s.Log.Info("Scaling to %s...", res)

		target, err := resolution.Parse(res)
		if err != nil {
			return done, fmt.Errorf("%s: %w", res, err)
		}

		err = s.Scale(ctx, Request{
			InputPath:  req.InputPath,
			OutputPath: naming.OutputPath(req.InputPath, target.Label(), dir),
			Target:     target,
			Preset:     req.Preset,
			CRF:        req.CRF,
		})
		if err != nil {
			return done, fmt.Errorf("%s: %w", res, err)
		}
		done++
	}

	s.Log.Info("")
	s.Log.Success("Batch scaling complete! Generated %d versions.", done)
	return done, nil
}
