package ffmpeg

import (
	"fmt"
	"strconv"

	"github.com/backmassage/vidscale/internal/resolution"
)

// Fixed codec settings. Only the scale filter, preset and CRF vary per run.
const (
	VideoCodec   = "libx264"
	AudioCodec   = "aac"
	AudioBitrate = "128k"
)

// Build constructs the complete ffmpeg argument slice, binary first:
//
//	ffmpeg -i <in> -vf scale=W:H -c:v libx264 -preset P -crf C -c:a aac -b:a 128k -y <out>
//
// preset and crf are forwarded as given; ffmpeg rejects anything it does not
// understand.
func Build(binary, input, output string, dims resolution.Dimensions, preset string, crf int) []string {
	args := make([]string, 0, 18)

	// --- Input ---
	args = append(args, binary, "-i", input)

	// --- Scale filter ---
	args = append(args, "-vf", fmt.Sprintf("scale=%d:%d", dims.Width, dims.Height))

	// --- Video codec ---
	args = append(args,
		"-c:v", VideoCodec,
		"-preset", preset,
		"-crf", strconv.Itoa(crf),
	)

	// --- Audio codec ---
	args = append(args, "-c:a", AudioCodec, "-b:a", AudioBitrate)

	// --- Output (overwrite without prompting) ---
	args = append(args, "-y", output)

	return args
}
