package ffmpeg

import (
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
)

// Sentinel errors for the two ways a run can fail.
var (
	ErrToolNotFound    = errors.New("ffmpeg command not found")
	ErrTranscodeFailed = errors.New("ffmpeg transcode failed")
)

// TranscodeError carries ffmpeg's captured stderr for a failed run.
type TranscodeError struct {
	Stderr string
	Err    error // Underlying *exec.ExitError or start failure.
}

func (e *TranscodeError) Error() string {
	if code := e.ExitCode(); code >= 0 {
		return fmt.Sprintf("%v (exit status %d)", ErrTranscodeFailed, code)
	}
	return fmt.Sprintf("%v: %v", ErrTranscodeFailed, e.Err)
}

// Unwrap returns the underlying process error.
func (e *TranscodeError) Unwrap() error { return e.Err }

// Is lets callers match with errors.Is(err, ErrTranscodeFailed).
func (e *TranscodeError) Is(target error) bool { return target == ErrTranscodeFailed }

// ExitCode returns the process exit status, or -1 if ffmpeg never exited
// normally.
func (e *TranscodeError) ExitCode() int {
	var exitErr *exec.ExitError
	if errors.As(e.Err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// Classify maps a finished run onto nil, ErrToolNotFound or a
// *TranscodeError.
func Classify(res ExecResult) error {
	if res.Err == nil {
		return nil
	}
	if errors.Is(res.Err, exec.ErrNotFound) || errors.Is(res.Err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %v", ErrToolNotFound, res.Err)
	}
	return &TranscodeError{Stderr: res.Stderr, Err: res.Err}
}

// InstallHints returns per-platform install instructions for ffmpeg.
func InstallHints() []string {
	return []string{
		"Ubuntu/Debian: sudo apt install ffmpeg",
		"Fedora:        sudo dnf install ffmpeg",
		"macOS:         brew install ffmpeg",
		"Windows:       winget install ffmpeg",
	}
}
