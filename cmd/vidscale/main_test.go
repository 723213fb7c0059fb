package main

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFFmpeg writes a shell script that records each output path to a log
// and fails when the output path contains failOn.
func fakeFFmpeg(t *testing.T, failOn string) (bin, callLog string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fake requires a POSIX shell")
	}
	dir := t.TempDir()
	callLog = filepath.Join(dir, "calls.txt")
	script := `#!/bin/sh
for last; do :; done
echo "$last" >> "` + callLog + `"
case "$last" in
  *` + failOn + `*) echo "simulated encoder failure" >&2; exit 1;;
esac
: > "$last"
`
	bin = filepath.Join(dir, "ffmpeg")
	require.NoError(t, os.WriteFile(bin, []byte(script), 0o755))
	return bin, callLog
}

func readCalls(t *testing.T, path string) []string {
	t.Helper()
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	return strings.Split(strings.TrimSpace(string(b)), "\n")
}

func TestRun_TooFewArgs(t *testing.T) {
	assert.Equal(t, 1, run([]string{"--no-color"}))
	assert.Equal(t, 1, run([]string{"--no-color", "in.mp4"}))
	assert.Equal(t, 1, run([]string{"--no-color", "batch"}))
}

func TestRun_InvalidCRF(t *testing.T) {
	assert.Equal(t, 1, run([]string{"--no-color", "--dry-run", "in.mp4", "720p", "out.mp4", "medium", "60"}))
}

func TestRun_UnknownResolution(t *testing.T) {
	testChdir(t, t.TempDir())
	assert.Equal(t, 1, run([]string{"--no-color", "in.mp4", "9999p"}))
}

func TestRun_DryRun(t *testing.T) {
	dir := t.TempDir()
	testChdir(t, dir)
	assert.Equal(t, 0, run([]string{"--no-color", "--dry-run", "movie.mp4", "720p"}))
	assert.NoFileExists(t, filepath.Join(dir, "movie_720p.mp4"))
}

func TestRun_ScaleDefaultOutput(t *testing.T) {
	dir := t.TempDir()
	testChdir(t, dir)
	bin, calls := fakeFFmpeg(t, "never-matches")

	require.Equal(t, 0, run([]string{"--no-color", "--ffmpeg", bin, filepath.Join("videos", "movie.mp4"), "720p"}))
	assert.Equal(t, []string{"movie_720p.mp4"}, readCalls(t, calls))
	assert.FileExists(t, filepath.Join(dir, "movie_720p.mp4"))
}

func TestRun_ScaleMissingTool(t *testing.T) {
	testChdir(t, t.TempDir())
	assert.Equal(t, 1, run([]string{"--no-color", "--ffmpeg", "vidscale-no-such-ffmpeg-binary", "in.mp4", "720p"}))
}

func TestRun_Batch(t *testing.T) {
	dir := t.TempDir()
	bin, calls := fakeFFmpeg(t, "never-matches")
	out := filepath.Join(dir, "out")

	require.Equal(t, 0, run([]string{"--no-color", "--ffmpeg", bin, "batch", "-o", out, "clip.mov", "720p", "480p"}))
	assert.Equal(t, []string{
		filepath.Join(out, "clip_720p.mov"),
		filepath.Join(out, "clip_480p.mov"),
	}, readCalls(t, calls))
}

func TestRun_BatchFailFast(t *testing.T) {
	dir := t.TempDir()
	bin, calls := fakeFFmpeg(t, "_480p")
	out := filepath.Join(dir, "out")

	assert.Equal(t, 1, run([]string{"--no-color", "--ffmpeg", bin, "batch", "-o", out, "clip.mov", "720p", "480p", "360p"}))
	assert.Equal(t, []string{
		filepath.Join(out, "clip_720p.mov"),
		filepath.Join(out, "clip_480p.mov"),
	}, readCalls(t, calls))
}

func TestRun_CheckMissingTool(t *testing.T) {
	assert.Equal(t, 1, run([]string{"--no-color", "--ffmpeg", "vidscale-no-such-ffmpeg-binary", "check"}))
}
