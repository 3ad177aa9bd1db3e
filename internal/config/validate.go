package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.Tools.FFmpeg == "" {
		return errors.New("tools.ffmpeg must be set")
	}
	if c.Tools.FFprobe == "" {
		return errors.New("tools.ffprobe must be set")
	}
	if c.Tools.VLC == "" {
		return errors.New("tools.vlc must be set")
	}
	if len(c.Subtitles.Language) != 3 {
		return fmt.Errorf("subtitles.language must be a three-letter tag, got %q", c.Subtitles.Language)
	}
	if c.Extraction.Parallelism < 1 {
		return fmt.Errorf("extraction.parallelism must be at least 1, got %d", c.Extraction.Parallelism)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}
