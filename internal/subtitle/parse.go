package subtitle

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"supercut/internal/logging"
)

// Format identifies a subtitle file format.
type Format string

const (
	FormatASS Format = "ass"
	FormatSRT Format = "srt"
	FormatVTT Format = "vtt"
)

// DetectFormat maps a file name to a subtitle format.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ass", ".ssa":
		return FormatASS, nil
	case ".srt":
		return FormatSRT, nil
	case ".vtt":
		return FormatVTT, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Parse decodes one subtitle track. Malformed individual cues are skipped
// with a warning; only an unreadable container fails the whole track. Cues
// come back in non-decreasing start order with normalized speaker names.
func Parse(data []byte, format Format, source string, logger *slog.Logger) (Track, error) {
	logger = logging.NewComponentLogger(logger, "subtitle")

	var (
		cues []Cue
		err  error
	)
	switch format {
	case FormatASS:
		cues, err = parseASS(data, source, logger)
	case FormatSRT:
		cues, err = parseSRT(data, source, logger)
	case FormatVTT:
		cues, err = parseVTT(data, source, logger)
	default:
		return Track{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return Track{}, err
	}

	sort.SliceStable(cues, func(i, j int) bool { return cues[i].Start < cues[j].Start })
	normalizeSpeakers(cues)

	return Track{Source: source, Cues: cues}, nil
}

func normalizeNewlines(data []byte) string {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	return strings.TrimPrefix(text, "\ufeff")
}
