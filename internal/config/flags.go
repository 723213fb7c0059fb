package config

// This file implements CLI flag registration, positional argument handling
// and help text. Flags are grouped into global (display/utility) and batch
// (output dir, encoder). Negated flags are applied after parsing so Config
// defaults hold unless set.

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/backmassage/vidscale/internal/resolution"
)

// ErrUsage is returned when required positional arguments are missing. The
// caller prints the help text and exits non-zero.
var ErrUsage = errors.New("missing required arguments")

// GlobalFlags holds boolean flags that are applied to Config after parsing.
type GlobalFlags struct {
	forceColor bool
	noColor    bool
}

// BindGlobalFlags registers the flags shared by every command.
func BindGlobalFlags(fs *pflag.FlagSet, cfg *Config) *GlobalFlags {
	g := &GlobalFlags{}
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Stream ffmpeg output while it runs")
	fs.BoolVarP(&cfg.DryRun, "dry-run", "d", false, "Print the ffmpeg command without running it")
	fs.StringVarP(&cfg.LogFile, "log", "l", "", "Append JSON log lines to file")
	fs.StringVar(&cfg.FFmpegBin, "ffmpeg", cfg.FFmpegBin, "ffmpeg binary name or path")
	fs.BoolVar(&g.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&g.noColor, "no-color", false, "Disable colored logs")
	return g
}

// Apply copies negated and override values into cfg. --no-color wins over
// --color when both are given.
func (g *GlobalFlags) Apply(cfg *Config) {
	if g.noColor {
		cfg.ColorMode = ColorNever
	} else if g.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// BindBatchFlags registers -o/--out-dir, -p/--preset and -q/--crf.
func BindBatchFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVarP(&cfg.OutputDir, "out-dir", "o", "", "Output directory (default: input's directory)")
	fs.VarP(&presetValue{&cfg.Preset}, "preset", "p", "x264 preset (default: medium)")
	fs.IntVarP(&cfg.CRF, "crf", "q", cfg.CRF, "Constant rate factor 0-51")
}

// ApplyScaleArgs fills cfg from the single-scale positional arguments:
// <input_video> <target_resolution> [output_path] [preset] [crf].
func ApplyScaleArgs(cfg *Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	if len(args) > 5 {
		return fmt.Errorf("too many arguments (got %d, want at most 5)", len(args))
	}
	cfg.InputPath = args[0]
	cfg.Target = args[1]
	if len(args) > 2 {
		cfg.OutputPath = args[2]
	}
	if len(args) > 3 {
		cfg.Preset = strings.ToLower(args[3])
	}
	if len(args) > 4 {
		crf, err := parseInt(args[4], "crf")
		if err != nil {
			return err
		}
		cfg.CRF = crf
	}
	return nil
}

// ApplyBatchArgs fills cfg from <input_video> [resolution...]. With no
// resolutions the defaults are kept.
func ApplyBatchArgs(cfg *Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	cfg.InputPath = args[0]
	if len(args) > 1 {
		cfg.Resolutions = slices.Clone(args[1:])
	}
	return nil
}

// parseInt parses a string as an integer; returns a clear error on failure.
func parseInt(s, name string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number (got %q)", name, s)
	}
	return n, nil
}

// PrintUsage writes the help text to w. Column-aligned for readability.
func PrintUsage(w io.Writer, version string) {
	const col1 = 30
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "vidscale v" + version + " - resize videos to standard resolutions with ffmpeg"},
		{"", ""},
		{"  vidscale [OPTIONS] <input_video> <target_resolution> [output_path] [preset] [crf]", ""},
		{"  vidscale batch [OPTIONS] <input_video> [resolution...]", ""},
		{"  vidscale check", ""},
		{"", ""},
		{"Examples", ""},
		{"  vidscale input.mp4 720p", ""},
		{"  vidscale input.mp4 720p output_720p.mp4", ""},
		{"  vidscale input.mp4 720p output.mp4 fast 20", ""},
		{"  vidscale batch -o out/ input.mp4 720p 480p 360p", ""},
		{"", ""},
		{"Batch", ""},
		{"  -o, --out-dir <dir>", "Output directory (default: input's directory)"},
		{"  -p, --preset <name>", "x264 preset (default: medium)"},
		{"  -q, --crf <value>", "Constant rate factor (default: 23)"},
		{"", ""},
		{"Global", ""},
		{"  -v, --verbose", "Stream ffmpeg output while it runs"},
		{"  -d, --dry-run", "Print the ffmpeg command without running it"},
		{"  -l, --log <path>", "Append JSON log lines to file"},
		{"  --ffmpeg <path>", "ffmpeg binary (default: ffmpeg on PATH)"},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
		{"", ""},
		{"", "Available resolutions: " + strings.Join(resolution.Names(), ", ") + " (or WxH, e.g. 1280x720)"},
		{"", "Presets: " + presetList()},
		{"", fmt.Sprintf("CRF: %d-%d (lower = better quality, 23 = default)", CRFMin, CRFMax)},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(w)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(w, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(w, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(w, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}

func presetList() string {
	names := make([]string, len(EncodingPresets))
	for i, p := range EncodingPresets {
		if p == "medium" {
			p += " (default)"
		}
		names[i] = p
	}
	return strings.Join(names, ", ")
}

// pflag.Value adapter so --preset is checked while parsing.

type presetValue struct{ p *string }

func (v *presetValue) String() string { return *v.p }
func (v *presetValue) Type() string   { return "preset" }
func (v *presetValue) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	if !slices.Contains(EncodingPresets, s) {
		return fmt.Errorf("invalid preset %q (use one of %s)", s, strings.Join(EncodingPresets, ", "))
	}
	*v.p = s
	return nil
}
