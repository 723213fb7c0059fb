// Package scaler runs ffmpeg to resize one video (Scale) or to produce
// several resolutions of the same input in order (ScaleMany).
package scaler

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/backmassage/vidscale/internal/config"
	"github.com/backmassage/vidscale/internal/display"
	"github.com/backmassage/vidscale/internal/ffmpeg"
	"github.com/backmassage/vidscale/internal/resolution"
)

// Logger is the logging surface the scaler needs. *logging.Logger
// satisfies it.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// Request is a single scaling job.
type Request struct {
	InputPath  string
	OutputPath string
	Target     resolution.Target
	Preset     string
	CRF        int
}

// Scaler turns requests into ffmpeg runs. Runs are strictly sequential and
// never retried.
type Scaler struct {
	Runner  ffmpeg.Runner
	Log     Logger
	Binary  string
	DryRun  bool
	Verbose bool
}

// New returns a Scaler backed by a real ffmpeg executor.
func New(cfg *config.Config, log Logger) *Scaler {
	return &Scaler{
		Runner:  ffmpeg.NewExecutor(cfg.Verbose),
		Log:     log,
		Binary:  cfg.FFmpegBin,
		DryRun:  cfg.DryRun,
		Verbose: cfg.Verbose,
	}
}

// Scale resizes req.InputPath into req.OutputPath. The input is not checked;
// a missing or unreadable input surfaces as a transcode failure. The output's
// parent directory is created if needed.
func (s *Scaler) Scale(ctx context.Context, req Request) error {
	dims, err := req.Target.Resolve()
	if err != nil {
		return err
	}

	args := ffmpeg.Build(s.binary(), req.InputPath, req.OutputPath, dims, req.Preset, req.CRF)

	if s.DryRun {
		s.Log.Success("[DRY] Would scale to %s: %s", dims, strings.Join(args, " "))
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(req.OutputPath), 0o755); err != nil {
		s.Log.Error("Cannot create output directory: %v", err)
		return fmt.Errorf("create output directory: %w", err)
	}

	s.Log.Debug(s.Verbose, "Running: %s", strings.Join(args, " "))
	err = ffmpeg.Classify(s.Runner.Run(ctx, args))

	var te *ffmpeg.TranscodeError
	switch {
	case err == nil:
		s.reportSuccess(dims, req)
		return nil
	case errors.Is(err, ffmpeg.ErrToolNotFound):
		s.Log.Error("%s command not found. Please install FFmpeg.", args[0])
		for _, h := range ffmpeg.InstallHints() {
			s.Log.Error("  %s", h)
		}
	case errors.As(err, &te):
		s.Log.Error("FFmpeg error occurred:")
		logStderr(s.Log, te.Stderr)
	}
	return err
}

func (s *Scaler) binary() string {
	if s.Binary == "" {
		return "ffmpeg"
	}
	return s.Binary
}

func (s *Scaler) reportSuccess(dims resolution.Dimensions, req Request) {
	s.Log.Success("Successfully scaled video to %s", dims)
	s.Log.Info("  Input:  %s", req.InputPath)
	if fi, err := os.Stat(req.OutputPath); err == nil {
		s.Log.Info("  Output: %s (%s)", req.OutputPath, display.FormatBytes(fi.Size()))
	} else {
		s.Log.Info("  Output: %s", req.OutputPath)
	}
}

// logStderr echoes ffmpeg's captured stderr line by line.
func logStderr(log Logger, stderr string) {
	stderr = strings.TrimSpace(stderr)
	if stderr == "" {
		return
	}
	for _, l := range strings.Split(stderr, "\n") {
		log.Error("  %s", l)
	}
}
