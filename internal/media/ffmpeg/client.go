package ffmpeg

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"supercut/internal/logging"
	"supercut/internal/subtitle"
)

// Client wraps the ffmpeg and ffprobe binaries for subtitle extraction and
// plan rendering.
type Client struct {
	ffmpegBin  string
	ffprobeBin string
	logger     *slog.Logger
}

// NewClient builds a Client around the configured binaries.
func NewClient(ffmpegBin, ffprobeBin string, logger *slog.Logger) *Client {
	if strings.TrimSpace(ffmpegBin) == "" {
		ffmpegBin = "ffmpeg"
	}
	if strings.TrimSpace(ffprobeBin) == "" {
		ffprobeBin = "ffprobe"
	}
	return &Client{
		ffmpegBin:  ffmpegBin,
		ffprobeBin: ffprobeBin,
		logger:     logging.NewComponentLogger(logger, "ffmpeg"),
	}
}

// ExtractSubtitles pulls the embedded subtitle stream for the given language
// out of a video container as ASS bytes. Returns
// subtitle.ErrNoSubtitleStream when the container has no matching stream.
func (c *Client) ExtractSubtitles(ctx context.Context, videoPath, language string) ([]byte, error) {
	probe, err := Inspect(ctx, c.ffprobeBin, videoPath)
	if err != nil {
		return nil, err
	}
	streamIdx, found := probe.SubtitleStreamIndex(language)
	if !found {
		return nil, fmt.Errorf("%w: %s (%d subtitle streams probed)",
			subtitle.ErrNoSubtitleStream, videoPath, probe.SubtitleStreamCount())
	}

	c.logger.Debug("extracting embedded subtitles",
		logging.String("video", videoPath),
		logging.String("language", language),
		logging.Int("stream", streamIdx))

	cmd := exec.CommandContext(ctx, c.ffmpegBin,
		"-v", "quiet",
		"-i", videoPath,
		"-map", fmt.Sprintf("0:s:%d", streamIdx),
		"-f", "ass",
		"-",
	)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffmpeg subtitle extraction for %s: %w: %s",
			videoPath, err, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}

// Available reports whether both wrapped binaries can be located.
func (c *Client) Available() error {
	if _, err := exec.LookPath(c.ffmpegBin); err != nil {
		return fmt.Errorf("ffmpeg binary %q not found: %w", c.ffmpegBin, err)
	}
	if _, err := exec.LookPath(c.ffprobeBin); err != nil {
		return fmt.Errorf("ffprobe binary %q not found: %w", c.ffprobeBin, err)
	}
	return nil
}
