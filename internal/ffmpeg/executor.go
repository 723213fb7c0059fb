package ffmpeg

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
)

// ExecResult holds the outcome of a single ffmpeg invocation.
type ExecResult struct {
	Stderr string
	Err    error
}

// Runner runs one fully built argument vector (binary first) to completion.
type Runner interface {
	Run(ctx context.Context, args []string) ExecResult
}

// Executor runs ffmpeg as a child process. When Tee is set, stderr is copied
// to it in real time as well as captured.
type Executor struct {
	Tee io.Writer
}

// NewExecutor returns an Executor that tees stderr to os.Stderr when verbose.
func NewExecutor(verbose bool) *Executor {
	if verbose {
		return &Executor{Tee: os.Stderr}
	}
	return &Executor{}
}

// Run blocks until the child exits. Stdout is discarded.
func (e *Executor) Run(ctx context.Context, args []string) ExecResult {
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)

	var stderrBuf bytes.Buffer
	if e.Tee != nil {
		cmd.Stderr = io.MultiWriter(&stderrBuf, e.Tee)
	} else {
		cmd.Stderr = &stderrBuf
	}

	err := cmd.Run()
	return ExecResult{
		Stderr: stderrBuf.String(),
		Err:    err,
	}
}
