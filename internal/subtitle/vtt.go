package subtitle

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"supercut/internal/logging"
)

// parseVTT decodes WebVTT tracks. Voice spans (<v Speaker>) provide speaker
// attribution; NOTE/STYLE/REGION blocks are skipped.
func parseVTT(data []byte, source string, logger *slog.Logger) ([]Cue, error) {
	content := strings.TrimSpace(normalizeNewlines(data))
	if !strings.HasPrefix(content, "WEBVTT") {
		return nil, fmt.Errorf("%w: missing WEBVTT header", ErrUnsupportedFormat)
	}

	blocks := strings.Split(content, "\n\n")
	var cues []Cue
	for _, block := range blocks[1:] {
		lines := strings.Split(strings.TrimSpace(block), "\n")
		if len(lines) == 0 || lines[0] == "" {
			continue
		}
		if isVTTMetaBlock(lines[0]) {
			continue
		}
		cue, err := parseVTTBlock(lines, source)
		if err != nil {
			logger.Warn("skipping malformed cue",
				logging.String("source", source),
				logging.Error(err))
			continue
		}
		cues = append(cues, cue)
	}
	return cues, nil
}

func isVTTMetaBlock(firstLine string) bool {
	switch {
	case strings.HasPrefix(firstLine, "NOTE"),
		strings.HasPrefix(firstLine, "STYLE"),
		strings.HasPrefix(firstLine, "REGION"):
		return true
	}
	return false
}

func parseVTTBlock(lines []string, source string) (Cue, error) {
	timingIdx := -1
	for i, line := range lines {
		if strings.Contains(line, "-->") {
			timingIdx = i
			break
		}
	}
	if timingIdx < 0 {
		return Cue{}, fmt.Errorf("block without timing line: %q", strings.Join(lines, " "))
	}

	parts := strings.Split(lines[timingIdx], "-->")
	if len(parts) != 2 {
		return Cue{}, fmt.Errorf("invalid timing line %q", lines[timingIdx])
	}
	start, err := parseVTTTimestamp(parts[0])
	if err != nil {
		return Cue{}, err
	}
	// Cue settings (position, align) may follow the end timestamp.
	endFields := strings.Fields(strings.TrimSpace(parts[1]))
	if len(endFields) == 0 {
		return Cue{}, fmt.Errorf("invalid timing line %q", lines[timingIdx])
	}
	end, err := parseVTTTimestamp(endFields[0])
	if err != nil {
		return Cue{}, err
	}
	if end <= start {
		return Cue{}, fmt.Errorf("cue end %v not after start %v", end, start)
	}

	speaker, text := splitVTTVoice(strings.Join(lines[timingIdx+1:], "\n"))
	if strings.TrimSpace(text) == "" {
		return Cue{}, fmt.Errorf("cue at %v has no text", start)
	}

	return Cue{
		Speaker: speaker,
		Text:    strings.TrimSpace(text),
		Start:   start,
		End:     end,
		Source:  source,
	}, nil
}

// parseVTTTimestamp accepts both HH:MM:SS.mmm and the short MM:SS.mmm form.
func parseVTTTimestamp(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if strings.Count(value, ":") == 1 {
		value = "00:" + value
	}
	// WebVTT uses a period before milliseconds; reuse the SRT decoder which
	// normalizes the separator.
	return parseSRTTimestamp(value)
}

// splitVTTVoice extracts the speaker from a leading voice span, when present.
func splitVTTVoice(text string) (speaker, remainder string) {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "<v") {
		return "", stripMarkup(trimmed)
	}
	closeIdx := strings.IndexByte(trimmed, '>')
	if closeIdx < 0 {
		return "", stripMarkup(trimmed)
	}
	tag := trimmed[2:closeIdx]
	body := trimmed[closeIdx+1:]
	// Tag shape is "<v Speaker Name>" or "<v.class Speaker Name>".
	tag = strings.TrimPrefix(tag, ".")
	if spaceIdx := strings.IndexByte(tag, ' '); spaceIdx >= 0 {
		speaker = strings.TrimSpace(tag[spaceIdx+1:])
	}
	body = strings.ReplaceAll(body, "</v>", "")
	return speaker, stripMarkup(strings.TrimSpace(body))
}
