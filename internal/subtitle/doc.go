// Package subtitle extracts speaker-tagged, time-coded cues from subtitle
// tracks.
//
// It normalizes ASS, SRT, and WebVTT input into the fixed Cue shape at the
// parsing boundary so the selection engine never sees format-specific
// records. Extraction goes through embedded container tracks (via the ffmpeg
// wrapper) or sidecar files, optionally consulting a get-or-compute cache
// keyed by the source file's identity and modification signature.
package subtitle
