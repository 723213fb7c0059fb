// Command vidscale resizes videos to standard resolutions by running ffmpeg.
//
// The root command scales one input to one target. The batch subcommand
// produces several resolutions of the same input, and check reports whether
// ffmpeg and the required encoders are available.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/backmassage/vidscale/internal/check"
	"github.com/backmassage/vidscale/internal/config"
	"github.com/backmassage/vidscale/internal/logging"
	"github.com/backmassage/vidscale/internal/naming"
	"github.com/backmassage/vidscale/internal/resolution"
	"github.com/backmassage/vidscale/internal/scaler"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

// errReported marks failures that have already been logged.
var errReported = errors.New("reported")

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg := config.DefaultConfig()
	root := newRootCmd(&cfg)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	switch {
	case err == nil:
		return 0
	case errors.Is(err, config.ErrUsage):
		config.PrintUsage(os.Stderr, version)
		return 1
	case errors.Is(err, errReported):
		return 1
	default:
		fmt.Fprintf(os.Stderr, "vidscale: %v\n", err)
		return 1
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "vidscale <input_video> <target_resolution> [output_path] [preset] [crf]",
		Short:         "Resize videos to standard resolutions with ffmpeg",
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.ApplyScaleArgs(cfg, args); err != nil {
				return err
			}
			return withLogger(cfg, func(log *logging.Logger) error {
				return runScale(cmd.Context(), cfg, log)
			})
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetHelpFunc(func(c *cobra.Command, _ []string) {
		config.PrintUsage(c.OutOrStdout(), version)
	})

	g := config.BindGlobalFlags(root.PersistentFlags(), cfg)
	root.PersistentPreRun = func(*cobra.Command, []string) { g.Apply(cfg) }

	root.AddCommand(newBatchCmd(cfg), newCheckCmd(cfg))
	return root
}

func newBatchCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <input_video> [resolution...]",
		Short: "Scale one input to several resolutions",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.ApplyBatchArgs(cfg, args); err != nil {
				return err
			}
			return withLogger(cfg, func(log *logging.Logger) error {
				return runBatch(cmd.Context(), cfg, log)
			})
		},
	}
	config.BindBatchFlags(cmd.Flags(), cfg)
	return cmd
}

func newCheckCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check that ffmpeg, libx264 and aac are available",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg.CheckOnly = true
			return withLogger(cfg, func(log *logging.Logger) error {
				if !check.RunCheck(cmd.Context(), cfg, log) {
					return errReported
				}
				return nil
			})
		},
	}
}

// withLogger validates cfg, opens the logger and runs fn with it. Errors
// from fn are logged once and returned as errReported.
func withLogger(cfg *config.Config, fn func(*logging.Logger) error) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	log, err := logging.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	if err := fn(log); err != nil {
		if !errors.Is(err, errReported) {
			log.Error("%v", err)
		}
		return errReported
	}
	return nil
}

func runScale(ctx context.Context, cfg *config.Config, log *logging.Logger) error {
	target, err := resolution.Parse(cfg.Target)
	if err != nil {
		return err
	}
	output := cfg.OutputPath
	if output == "" {
		output = naming.OutputPath(cfg.InputPath, target.Label(), "")
	}
	return scaler.New(cfg, log).Scale(ctx, scaler.Request{
		InputPath:  cfg.InputPath,
		OutputPath: output,
		Target:     target,
		Preset:     cfg.Preset,
		CRF:        cfg.CRF,
	})
}

func runBatch(ctx context.Context, cfg *config.Config, log *logging.Logger) error {
	_, err := scaler.New(cfg, log).ScaleMany(ctx, scaler.BatchRequest{
		InputPath:   cfg.InputPath,
		OutputDir:   cfg.OutputDir,
		Resolutions: cfg.Resolutions,
		Preset:      cfg.Preset,
		CRF:         cfg.CRF,
	})
	return err
}
