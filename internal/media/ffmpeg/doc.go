// Package ffmpeg wraps the ffmpeg and ffprobe binaries.
//
// It probes container streams, extracts embedded subtitle tracks as ASS
// text, and renders clip plans by trimming each segment and concatenating
// the pieces. The core engine never shells out; everything process-shaped
// lives here.
package ffmpeg
