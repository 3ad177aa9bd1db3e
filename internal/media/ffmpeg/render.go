package ffmpeg

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"supercut/internal/engine"
	"supercut/internal/logging"
)

// RenderPlan cuts every segment of the plan out of its source and
// concatenates the pieces into the output file. Segments are processed in
// plan order and never merged, so each one becomes its own cut in the
// result. Intermediate files live in a temp directory named after jobID and
// are removed on return, leaving no partial output behind on failure.
func (c *Client) RenderPlan(ctx context.Context, plan engine.Plan, output, jobID string) error {
	if len(plan.Segments) == 0 {
		return fmt.Errorf("%w: nothing to render", engine.ErrEmptyPlan)
	}

	workDir, err := os.MkdirTemp("", "supercut-"+jobID+"-")
	if err != nil {
		return fmt.Errorf("create work dir: %w", err)
	}
	defer os.RemoveAll(workDir)

	logger := c.logger.With(logging.String("job", jobID))
	logger.Info("rendering clip plan",
		logging.Int("segments", len(plan.Segments)),
		logging.Duration("total", plan.Duration()))

	suffix := filepath.Ext(output)
	if suffix == "" {
		suffix = ".mkv"
	}

	parts := make([]string, 0, len(plan.Segments))
	for i, segment := range plan.Segments {
		part := filepath.Join(workDir, fmt.Sprintf("part%04d%s", i, suffix))
		if err := c.trimSegment(ctx, segment, part); err != nil {
			return fmt.Errorf("segment %d (%s): %w", i, segment.Source, err)
		}
		parts = append(parts, part)
		logger.Debug("trimmed segment",
			logging.Int("segment", i),
			logging.String("source", segment.Source),
			logging.Duration("start", segment.Start),
			logging.Duration("end", segment.End))
	}

	if err := c.concatParts(ctx, parts, workDir, output); err != nil {
		return err
	}

	logger.Info("render complete", logging.String("output", output))
	return nil
}

// trimSegment re-encodes one time range into its own file. Re-encoding
// instead of stream-copying keeps cut points frame-accurate.
func (c *Client) trimSegment(ctx context.Context, segment engine.Segment, output string) error {
	cmd := exec.CommandContext(ctx, c.ffmpegBin,
		"-v", "error",
		"-ss", formatSeconds(segment.Start),
		"-i", segment.Source,
		"-t", formatSeconds(segment.Duration()),
		"-map", "0:v:0?",
		"-map", "0:a:0?",
		"-sn",
		output,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ffmpeg trim: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

func (c *Client) concatParts(ctx context.Context, parts []string, workDir, output string) error {
	var list strings.Builder
	for _, part := range parts {
		fmt.Fprintf(&list, "file '%s'\n", part)
	}
	listPath := filepath.Join(workDir, "concat.txt")
	if err := os.WriteFile(listPath, []byte(list.String()), 0o644); err != nil {
		return fmt.Errorf("write concat list: %w", err)
	}

	cmd := exec.CommandContext(ctx, c.ffmpegBin,
		"-v", "error",
		"-y",
		"-safe", "0",
		"-f", "concat",
		"-i", listPath,
		"-c", "copy",
		output,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ffmpeg concat: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

func formatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.3f", d.Seconds())
}
