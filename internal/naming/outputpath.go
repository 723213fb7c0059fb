package naming

import (
	"path/filepath"
	"strings"
)

// OutputPath builds the derived output file path for one resolution label.
// The input's extension is kept and the label is appended to its stem:
//
//	movie.mp4 + 720p        -> <dir>/movie_720p.mp4
//	clip.tar.mov + 480p     -> <dir>/clip.tar_480p.mov
//
// An empty dir yields only the file name, so the path is relative to the
// working directory.
func OutputPath(inputPath, label, dir string) string {
	base := filepath.Base(inputPath)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	name := stem + "_" + label + ext
	if dir == "" {
		return name
	}
	return filepath.Join(dir, name)
}

// OutputDir returns dir, or the directory holding inputPath when dir is empty.
func OutputDir(inputPath, dir string) string {
	if dir != "" {
		return dir
	}
	return filepath.Dir(inputPath)
}
