// Package check provides system diagnostics (the check command) and the
// dependency check for the ffmpeg binary and the encoders vidscale uses.
package check

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/backmassage/vidscale/internal/config"
	"github.com/backmassage/vidscale/internal/ffmpeg"
)

// Logger is the minimal logging interface needed by RunCheck.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// CheckDeps verifies the configured ffmpeg binary can be found. It returns
// an error wrapping ffmpeg.ErrToolNotFound otherwise.
func CheckDeps(cfg *config.Config) error {
	if _, err := exec.LookPath(cfg.FFmpegBin); err != nil {
		return fmt.Errorf("%w: %v", ffmpeg.ErrToolNotFound, err)
	}
	return nil
}

// RunCheck logs the ffmpeg version and whether the video and audio encoders
// used for scaling are available. It returns false if anything required is
// missing.
func RunCheck(ctx context.Context, cfg *config.Config, log Logger) bool {
	log.Info("=== System Check ===")

	if err := CheckDeps(cfg); err != nil {
		log.Error("%s not found. Please install FFmpeg.", cfg.FFmpegBin)
		for _, h := range ffmpeg.InstallHints() {
			log.Error("  %s", h)
		}
		return false
	}

	version, err := output(ctx, cfg.FFmpegBin, "-version")
	if err != nil {
		log.Warn("%s found but -version failed: %v", cfg.FFmpegBin, err)
		return false
	}
	log.Success("ffmpeg: %s", firstLine(version))

	encoders, err := output(ctx, cfg.FFmpegBin, "-hide_banner", "-encoders")
	if err != nil {
		log.Warn("Could not list encoders: %v", err)
		return false
	}

	ok := true
	for _, enc := range []string{ffmpeg.VideoCodec, ffmpeg.AudioCodec} {
		if HasEncoder(encoders, enc) {
			log.Success("Encoder %s available", enc)
		} else {
			log.Error("Encoder %s missing from this ffmpeg build", enc)
			ok = false
		}
	}
	return ok
}

// HasEncoder reports whether `ffmpeg -encoders` output lists name. Each
// encoder line is "<flags> <name> <description>".
func HasEncoder(encodersOutput, name string) bool {
	for _, line := range strings.Split(encodersOutput, "\n") {
		fields := strings.Fields(line)
		if len(fields) >= 2 && fields[1] == name {
			return true
		}
	}
	return false
}

// --- internal helpers ---

func output(ctx context.Context, name string, args ...string) (string, error) {
	var buf bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &buf
	if err := cmd.Run(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.Index(s, "\n"); idx > 0 {
		return s[:idx]
	}
	return s
}
