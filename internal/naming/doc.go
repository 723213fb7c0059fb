// Package naming derives output file names for scaled videos.
//
// Every output is named {stem}_{label}{ext}, where stem and ext come from the
// input file and label is the resolution as the user wrote it ("720p",
// "1280x720"). Single runs place the file in the working directory unless an
// explicit output path is given; batches default to the input's directory.
package naming
