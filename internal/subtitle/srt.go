package subtitle

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"supercut/internal/logging"
)

// parseSRT decodes SubRip tracks. SRT carries no speaker attribution, so
// cues come back with an empty Speaker; speaker filters only apply to
// formats that name their speakers.
func parseSRT(data []byte, source string, logger *slog.Logger) ([]Cue, error) {
	content := strings.TrimSpace(normalizeNewlines(data))
	if content == "" {
		return nil, nil
	}

	var cues []Cue
	for _, block := range strings.Split(content, "\n\n") {
		lines := strings.Split(strings.TrimSpace(block), "\n")
		if len(lines) == 0 || (len(lines) == 1 && lines[0] == "") {
			continue
		}
		cue, err := parseSRTBlock(lines, source)
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

func parseSRTBlock(lines []string, source string) (Cue, error) {
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
	start, err := parseSRTTimestamp(parts[0])
	if err != nil {
		return Cue{}, err
	}
	end, err := parseSRTTimestamp(parts[1])
	if err != nil {
		return Cue{}, err
	}
	if end <= start {
		return Cue{}, fmt.Errorf("cue end %v not after start %v", end, start)
	}

	text := strings.TrimSpace(strings.Join(lines[timingIdx+1:], "\n"))
	if text == "" {
		return Cue{}, fmt.Errorf("cue at %v has no text", start)
	}

	return Cue{
		Text:   stripMarkup(text),
		Start:  start,
		End:    end,
		Source: source,
	}, nil
}

// parseSRTTimestamp decodes HH:MM:SS,mmm timestamps. A period is accepted in
// place of the comma since tools disagree on the separator.
func parseSRTTimestamp(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty timestamp")
	}
	value = strings.ReplaceAll(value, ".", ",")
	timeParts := strings.Split(value, ",")
	if len(timeParts) != 2 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hms := strings.Split(timeParts[0], ":")
	if len(hms) != 3 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hours, errH := strconv.Atoi(hms[0])
	minutes, errM := strconv.Atoi(hms[1])
	seconds, errS := strconv.Atoi(hms[2])
	millis, errMS := strconv.Atoi(timeParts[1])
	if errH != nil || errM != nil || errS != nil || errMS != nil {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	total := time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second +
		time.Duration(millis)*time.Millisecond
	return total, nil
}

// stripMarkup removes the basic <i>/<b>/<font> style tags found in SRT text.
func stripMarkup(text string) string {
	var b strings.Builder
	inTag := false
	for _, r := range text {
		switch {
		case r == '<':
			inTag = true
		case r == '>' && inTag:
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return b.String()
}
