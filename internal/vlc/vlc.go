package vlc

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"supercut/internal/engine"
	"supercut/internal/logging"
)

// Player launches VLC for supercut previews.
type Player struct {
	binary string
	logger *slog.Logger
}

// NewPlayer builds a Player around the configured VLC binary.
func NewPlayer(binary string, logger *slog.Logger) *Player {
	if strings.TrimSpace(binary) == "" {
		binary = "vlc"
	}
	return &Player{
		binary: binary,
		logger: logging.NewComponentLogger(logger, "vlc"),
	}
}

// Playlist renders a clip plan as an m3u8 playlist using VLC's per-item
// start/stop options. Each segment becomes its own playlist entry, so the
// preview plays the clips in plan order with clean jumps between them.
func Playlist(plan engine.Plan, language string) string {
	var b strings.Builder
	for _, segment := range plan.Segments {
		fmt.Fprintf(&b, "#EXTVLCOPT:start-time=%.3f\n", segment.Start.Seconds())
		fmt.Fprintf(&b, "#EXTVLCOPT:stop-time=%.3f\n", segment.End.Seconds())
		if language != "" {
			fmt.Fprintf(&b, "#EXTVLCOPT:sub-language=%s\n", language)
		}
		b.WriteString(segment.Source)
		b.WriteByte('\n')
	}
	return b.String()
}

// Preview writes the plan's playlist to a temp file and plays it
// fullscreen, blocking until VLC exits.
func (p *Player) Preview(ctx context.Context, plan engine.Plan, language string) error {
	dir, err := os.MkdirTemp("", "supercut-preview-")
	if err != nil {
		return fmt.Errorf("create playlist dir: %w", err)
	}
	defer os.RemoveAll(dir)

	playlistPath := filepath.Join(dir, "playlist.m3u8")
	if err := os.WriteFile(playlistPath, []byte(Playlist(plan, language)), 0o644); err != nil {
		return fmt.Errorf("write playlist: %w", err)
	}

	p.logger.Info("launching preview",
		logging.Int("segments", len(plan.Segments)),
		logging.Duration("total", plan.Duration()))

	cmd := exec.CommandContext(ctx, p.binary, "--fullscreen", "--no-osd", playlistPath, "vlc://quit")
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("vlc preview: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// Available reports whether the VLC binary can be located.
func (p *Player) Available() error {
	if _, err := exec.LookPath(p.binary); err != nil {
		return fmt.Errorf("vlc binary %q not found: %w", p.binary, err)
	}
	return nil
}
