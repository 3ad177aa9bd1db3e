package subtitle

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// Cue is one timed subtitle line with speaker attribution.
type Cue struct {
	// Speaker is the normalized display name. Empty when the track carries
	// no attribution.
	Speaker string `json:"speaker"`
	// Text is the spoken line content. May contain newlines.
	Text string `json:"text"`
	// Start and End are offsets within the source track. End > Start.
	Start time.Duration `json:"start"`
	End   time.Duration `json:"end"`
	// Source identifies the originating video file.
	Source string `json:"source"`
}

// TrackOrigin records where a track's cues came from.
type TrackOrigin string

const (
	OriginEmbedded TrackOrigin = "embedded"
	OriginExternal TrackOrigin = "external"
)

// Track holds the extracted cues of one source, in non-decreasing start order.
type Track struct {
	Source string      `json:"source"`
	Origin TrackOrigin `json:"origin"`
	Cues   []Cue       `json:"cues"`
}

// normalizeSpeakers trims speaker names and unifies case-insensitive
// duplicates within a track. The first-seen casing is canonical, so identical
// input always produces identical output.
func normalizeSpeakers(cues []Cue) {
	folder := cases.Fold()
	canonical := make(map[string]string)
	for i := range cues {
		name := strings.TrimSpace(cues[i].Speaker)
		if name == "" {
			cues[i].Speaker = ""
			continue
		}
		key := folder.String(name)
		if seen, ok := canonical[key]; ok {
			cues[i].Speaker = seen
			continue
		}
		canonical[key] = name
		cues[i].Speaker = name
	}
}

// FoldName returns the case-folded form of a speaker name, used for
// case-insensitive comparisons.
func FoldName(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}
