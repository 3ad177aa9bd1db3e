package config

const (
	defaultFFmpegBinary     = "ffmpeg"
	defaultFFprobeBinary    = "ffprobe"
	defaultVLCBinary        = "vlc"
	defaultSubtitleLanguage = "eng"
	defaultSidecarDir       = "Subs"
	defaultParallelism      = 4
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
)

// Default returns a Config populated with repository defaults. The cache
// directory is intentionally empty: caching is opt-in.
func Default() Config {
	return Config{
		Tools: Tools{
			FFmpeg:  defaultFFmpegBinary,
			FFprobe: defaultFFprobeBinary,
			VLC:     defaultVLCBinary,
		},
		Subtitles: Subtitles{
			Language:   defaultSubtitleLanguage,
			SidecarDir: defaultSidecarDir,
		},
		Extraction: Extraction{
			Parallelism: defaultParallelism,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
