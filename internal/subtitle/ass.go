package subtitle

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"supercut/internal/logging"
)

// parseASS decodes Advanced SubStation Alpha (and legacy SSA) tracks. Only
// the [Events] section matters here; styling sections are skipped. The
// Format: line determines field order, so tracks written by different muxers
// parse identically.
func parseASS(data []byte, source string, logger *slog.Logger) ([]Cue, error) {
	content := normalizeNewlines(data)

	var (
		inEvents   bool
		fieldNames []string
		cues       []Cue
	)
	lineNo := 0
	for _, line := range strings.Split(content, "\n") {
		lineNo++
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
			inEvents = strings.EqualFold(trimmed, "[Events]")
		case !inEvents:
			continue
		case strings.HasPrefix(trimmed, "Format:"):
			fieldNames = splitASSFields(strings.TrimPrefix(trimmed, "Format:"), 0)
			for i := range fieldNames {
				fieldNames[i] = strings.TrimSpace(fieldNames[i])
			}
		case strings.HasPrefix(trimmed, "Dialogue:"):
			if len(fieldNames) == 0 {
				return nil, fmt.Errorf("%w: ASS events without Format line", ErrUnsupportedFormat)
			}
			cue, err := parseASSDialogue(strings.TrimPrefix(trimmed, "Dialogue:"), fieldNames, source)
			if err != nil {
				logger.Warn("skipping malformed cue",
					logging.String("source", source),
					logging.Int("line", lineNo),
					logging.Error(err))
				continue
			}
			cues = append(cues, cue)
		}
	}
	if !inEvents && len(cues) == 0 && fieldNames == nil {
		return nil, fmt.Errorf("%w: no [Events] section in ASS input", ErrUnsupportedFormat)
	}
	return cues, nil
}

func parseASSDialogue(line string, fieldNames []string, source string) (Cue, error) {
	values := splitASSFields(line, len(fieldNames))
	if len(values) != len(fieldNames) {
		return Cue{}, fmt.Errorf("expected %d fields, got %d", len(fieldNames), len(values))
	}

	cue := Cue{Source: source}
	for i, name := range fieldNames {
		value := values[i]
		switch name {
		case "Start":
			start, err := parseASSTimestamp(value)
			if err != nil {
				return Cue{}, err
			}
			cue.Start = start
		case "End":
			end, err := parseASSTimestamp(value)
			if err != nil {
				return Cue{}, err
			}
			cue.End = end
		case "Name", "Actor":
			cue.Speaker = strings.TrimSpace(value)
		case "Text":
			cue.Text = assPlainText(value)
		}
	}
	if cue.End <= cue.Start {
		return Cue{}, fmt.Errorf("cue end %v not after start %v", cue.End, cue.Start)
	}
	return cue, nil
}

// splitASSFields splits a comma-separated field list. When max is positive
// the last field absorbs any remaining commas, which is how the Text field
// keeps embedded punctuation intact.
func splitASSFields(line string, max int) []string {
	line = strings.TrimSpace(line)
	if max > 0 {
		parts := strings.SplitN(line, ",", max)
		for i := 0; i < len(parts)-1; i++ {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return strings.Split(line, ",")
}

// parseASSTimestamp decodes the H:MM:SS.CC timestamps used by dialogue events.
func parseASSTimestamp(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	parts := strings.Split(value, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	secParts := strings.Split(parts[2], ".")
	if len(secParts) != 2 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hours, errH := strconv.Atoi(parts[0])
	minutes, errM := strconv.Atoi(parts[1])
	seconds, errS := strconv.Atoi(secParts[0])
	centis, errC := strconv.Atoi(secParts[1])
	if errH != nil || errM != nil || errS != nil || errC != nil {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	if hours < 0 || minutes < 0 || seconds < 0 || centis < 0 {
		return 0, fmt.Errorf("negative timestamp %q", value)
	}
	total := time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second +
		time.Duration(centis)*10*time.Millisecond
	return total, nil
}

// assPlainText strips override tags and resolves line-break escapes.
func assPlainText(text string) string {
	var b strings.Builder
	depth := 0
	for _, r := range text {
		switch {
		case r == '{':
			depth++
		case r == '}' && depth > 0:
			depth--
		case depth == 0:
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	cleaned = strings.ReplaceAll(cleaned, `\N`, "\n")
	cleaned = strings.ReplaceAll(cleaned, `\n`, "\n")
	cleaned = strings.ReplaceAll(cleaned, `\h`, " ")
	return strings.TrimSpace(cleaned)
}
