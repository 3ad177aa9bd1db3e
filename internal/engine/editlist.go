package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// CommentMarker disables an edit list line. The marker round-trips: ParseEditList
// skips marked lines, and RenderEditList emits it for inactive entries.
const CommentMarker = "#"

// RenderListing renders one line per clip reference in selection order,
// in the form used both for plain listings and for editable lists:
//
//	   0 | SPEAKER: text
//
// Everything after the index is advisory; only the index is read back.
func RenderListing(refs []ClipReference) string {
	return RenderEditList(refs, nil)
}

// RenderEditList renders a listing where references rejected by keep are
// commented out. A nil keep leaves every line active.
func RenderEditList(refs []ClipReference, keep func(ClipReference) bool) string {
	var b strings.Builder
	for _, ref := range refs {
		if keep != nil && !keep(ref) {
			b.WriteString(CommentMarker)
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%4d | %s: %s\n", ref.Index, ref.Cue.Speaker, flattenText(ref.Cue.Text))
	}
	return b.String()
}

// ParseEditList reads a user-edited listing back into an ordered reference
// sequence. Blank lines are ignored and commented lines are skipped. Every
// remaining line must start with an index assigned in originals; repeated
// indices repeat the clip. The output order is exactly the line order. On
// any error nothing is returned, so a failed parse never partially applies.
func ParseEditList(text string, originals []ClipReference) ([]ClipReference, error) {
	byIndex := make(map[int]ClipReference, len(originals))
	for _, ref := range originals {
		byIndex[ref.Index] = ref
	}

	var result []ClipReference
	for lineNo, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, CommentMarker) {
			continue
		}
		token := trimmed
		if cut := strings.IndexAny(trimmed, " \t|"); cut >= 0 {
			token = trimmed[:cut]
		}
		index, err := strconv.Atoi(token)
		if err != nil {
			return nil, fmt.Errorf("edit list line %d: expected a clip index, got %q", lineNo+1, token)
		}
		ref, ok := byIndex[index]
		if !ok {
			return nil, fmt.Errorf("%w: line %d references index %d", ErrUnknownReference, lineNo+1, index)
		}
		result = append(result, ref)
	}
	return result, nil
}

// flattenText collapses newlines and runs of whitespace so each listing
// entry stays on one line.
func flattenText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
