// Package config holds runtime configuration: defaults, CLI flag wiring, and
// validation. Defaults match the original scale_video script.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Quality bounds for libx264 CRF.
const (
	CRFMin = 0
	CRFMax = 51
)

// EncodingPresets lists the x264 speed presets, fastest first.
var EncodingPresets = []string{
	"ultrafast", "superfast", "veryfast", "faster", "fast",
	"medium", "slow", "slower", "veryslow",
}

// DefaultBatchResolutions is used by the batch command when no resolutions
// are given.
var DefaultBatchResolutions = []string{"720p", "480p"}

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by flag parsing and [ApplyScaleArgs] / [ApplyBatchArgs]
// before being passed (by pointer) to packages that need it.
type Config struct {
	// Input and targets (set from positional args).
	InputPath   string
	Target      string   // Single mode: preset name or WxH.
	OutputPath  string   // Single mode: empty means {stem}_{target}{ext}.
	OutputDir   string   // Batch mode: empty means the input's directory.
	Resolutions []string // Batch mode.

	// Encoder settings.
	Preset string // Default: "medium".
	CRF    int    // Default: 23.

	// External tool.
	FFmpegBin string // Default: "ffmpeg" (looked up on PATH).

	// Behavior and display.
	DryRun    bool
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run diagnostics and exit.
}

// DefaultConfig returns a Config with all defaults applied.
func DefaultConfig() Config {
	return Config{
		Preset:      "medium",
		CRF:         23,
		FFmpegBin:   "ffmpeg",
		Resolutions: slices.Clone(DefaultBatchResolutions),
		ColorMode:   ColorAuto,
	}
}

// Validate checks enum and range fields. When not in CheckOnly mode it also
// requires an input path and at least one target.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if strings.TrimSpace(c.FFmpegBin) == "" {
		return errors.New("ffmpeg binary must not be empty")
	}

	if c.CheckOnly {
		return nil
	}

	if !slices.Contains(EncodingPresets, c.Preset) {
		return fmt.Errorf("invalid preset %q (use one of %s)", c.Preset, strings.Join(EncodingPresets, ", "))
	}
	if c.CRF < CRFMin || c.CRF > CRFMax {
		return fmt.Errorf("crf %d out of range (%d-%d)", c.CRF, CRFMin, CRFMax)
	}

	if c.InputPath == "" {
		return errors.New("need an input video")
	}
	if c.Target == "" && len(c.Resolutions) == 0 {
		return errors.New("need at least one target resolution")
	}
	return nil
}
