package engine

import (
	"strings"

	"supercut/internal/subtitle"
)

// ClipReference is one selected line, addressable by the stable index
// assigned at selection time. The index is the join key for edit lists, so
// it must be reproducible across invocations with identical inputs.
type ClipReference struct {
	Index int
	Cue   subtitle.Cue
}

// Filter narrows a selection. Zero values mean "no constraint".
type Filter struct {
	// Query is matched case-insensitively as a substring of cue text.
	Query string
	// Names restricts cues to speakers whose folded name equals one of the
	// entries.
	Names []string
}

// Select walks the supplied tracks in order and returns the matching cues as
// clip references with globally sequential indices. Track order and per-track
// cue order fully determine the result; nothing here depends on timing or
// completion order, which keeps index assignment deterministic.
func Select(tracks []subtitle.Track, filter Filter) []ClipReference {
	loweredQuery := strings.ToLower(filter.Query)
	foldedNames := make([]string, 0, len(filter.Names))
	for _, name := range filter.Names {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			foldedNames = append(foldedNames, subtitle.FoldName(trimmed))
		}
	}

	var refs []ClipReference
	index := 0
	for _, track := range tracks {
		for _, cue := range track.Cues {
			if !matchesQuery(cue, loweredQuery) || !matchesName(cue, foldedNames) {
				continue
			}
			refs = append(refs, ClipReference{Index: index, Cue: cue})
			index++
		}
	}
	return refs
}

func matchesQuery(cue subtitle.Cue, loweredQuery string) bool {
	if loweredQuery == "" {
		return true
	}
	return strings.Contains(strings.ToLower(cue.Text), loweredQuery)
}

func matchesName(cue subtitle.Cue, foldedNames []string) bool {
	if len(foldedNames) == 0 {
		return true
	}
	folded := subtitle.FoldName(cue.Speaker)
	for _, name := range foldedNames {
		if folded == name {
			return true
		}
	}
	return false
}
