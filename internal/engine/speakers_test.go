package engine

import (
	"testing"

	"supercut/internal/subtitle"
)

func TestCountSpeakers(t *testing.T) {
	counts := CountSpeakers(testTracks(), "")
	if len(counts) != 3 {
		t.Fatalf("got %d speakers, want 3", len(counts))
	}
	// Alice and Bob both have 2; Alice was seen first.
	if counts[0].Name != "Alice" || counts[0].Count != 2 {
		t.Errorf("counts[0] = %+v", counts[0])
	}
	if counts[1].Name != "Bob" || counts[1].Count != 2 {
		t.Errorf("counts[1] = %+v", counts[1])
	}
	if counts[2].Name != "Carol" || counts[2].Count != 1 {
		t.Errorf("counts[2] = %+v", counts[2])
	}
}

func TestCountSpeakersSumsToFilteredCues(t *testing.T) {
	tracks := testTracks()
	for _, query := range []string{"", "hello", "goodbye", "no match"} {
		t.Run("query "+query, func(t *testing.T) {
			total := 0
			for _, entry := range CountSpeakers(tracks, query) {
				total += entry.Count
			}
			want := len(Select(tracks, Filter{Query: query}))
			if total != want {
				t.Errorf("counts sum to %d, want %d matching cues", total, want)
			}
		})
	}
}

func TestCountSpeakersSortedNonIncreasing(t *testing.T) {
	counts := CountSpeakers(testTracks(), "")
	for i := 1; i < len(counts); i++ {
		if counts[i].Count > counts[i-1].Count {
			t.Fatalf("counts not non-increasing: %+v", counts)
		}
	}
}

func TestCountSpeakersCaseFoldsNames(t *testing.T) {
	tracks := []subtitle.Track{{
		Source: "A.mkv",
		Cues: []subtitle.Cue{
			cue("NARRATOR", "one", "A.mkv", 1),
			cue("narrator", "two", "A.mkv", 3),
		},
	}}
	counts := CountSpeakers(tracks, "")
	if len(counts) != 1 || counts[0].Count != 2 {
		t.Fatalf("counts = %+v, want single folded speaker", counts)
	}
	if counts[0].Name != "NARRATOR" {
		t.Errorf("name = %q, want first-seen casing", counts[0].Name)
	}
}

func TestCountSpeakersEmptyResult(t *testing.T) {
	counts := CountSpeakers(testTracks(), "zzz")
	if len(counts) != 0 {
		t.Errorf("counts = %+v, want empty", counts)
	}
}
