package engine

import (
	"sort"
	"strings"

	"supercut/internal/subtitle"
)

// SpeakerCount is the aggregation result for one speaker across all sources.
type SpeakerCount struct {
	Name  string
	Count int
}

// CountSpeakers tallies cue counts per speaker across the supplied tracks,
// optionally restricted to cues whose text matches the query. Results come
// back sorted by count descending; ties keep the order speakers were first
// seen across sources in the order supplied. The counts always sum to the
// number of cues that passed the query filter.
func CountSpeakers(tracks []subtitle.Track, query string) []SpeakerCount {
	loweredQuery := strings.ToLower(query)

	type tally struct {
		name      string
		count     int
		firstSeen int
	}
	byName := make(map[string]*tally)
	var order []*tally
	for _, track := range tracks {
		for _, cue := range track.Cues {
			if !matchesQuery(cue, loweredQuery) {
				continue
			}
			key := subtitle.FoldName(cue.Speaker)
			entry, ok := byName[key]
			if !ok {
				entry = &tally{name: cue.Speaker, firstSeen: len(order)}
				byName[key] = entry
				order = append(order, entry)
			}
			entry.count++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		if order[i].count != order[j].count {
			return order[i].count > order[j].count
		}
		return order[i].firstSeen < order[j].firstSeen
	})

	counts := make([]SpeakerCount, 0, len(order))
	for _, entry := range order {
		counts = append(counts, SpeakerCount{Name: entry.name, Count: entry.count})
	}
	return counts
}
