// Package ffmpeg builds and executes the ffmpeg scaling command.
//
// The argument vector produced by [Build] is a compatibility contract with
// the wrapped tool: flag names and ordering must stay byte-identical.
//
// Execution goes through the [Runner] interface so callers can substitute a
// fake in tests. [Executor] is the real implementation; it captures stderr
// and optionally tees it to the terminal. [Classify] maps an [ExecResult]
// onto the package's error kinds.
package ffmpeg
