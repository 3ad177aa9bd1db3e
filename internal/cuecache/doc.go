// Package cuecache persists parsed cue tracks between runs.
//
// Extraction of embedded subtitle tracks shells out to ffmpeg, which
// dominates runtime on repeated queries against the same files. The cache
// keys each track by the source file's path, size, and mtime, so any rewrite
// of the source invalidates its entry without explicit eviction. Storage is
// a single SQLite database in the configured cache directory.
package cuecache
