package engine

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestBuildPlanPreservesOrder(t *testing.T) {
	refs := Select(testTracks(), Filter{})
	plan, err := BuildPlan(refs)
	if err != nil {
		t.Fatal(err)
	}
	if len(plan.Segments) != len(refs) {
		t.Fatalf("got %d segments, want %d", len(plan.Segments), len(refs))
	}
	for i, segment := range plan.Segments {
		want := Segment{
			Source: refs[i].Cue.Source,
			Start:  refs[i].Cue.Start,
			End:    refs[i].Cue.End,
		}
		if segment != want {
			t.Errorf("segment[%d] = %+v, want %+v", i, segment, want)
		}
	}
}

func TestBuildPlanAfterEditListExample(t *testing.T) {
	// Sources A (indices 0,1,2) and B (indices 3,4); the edit text picks
	// 2, then 0 twice.
	refs := Select(testTracks(), Filter{})
	parsed, err := ParseEditList("2\n0\n0\n", refs)
	if err != nil {
		t.Fatal(err)
	}
	plan, err := BuildPlan(parsed)
	if err != nil {
		t.Fatal(err)
	}
	if len(plan.Segments) != 3 {
		t.Fatalf("got %d segments, want 3", len(plan.Segments))
	}
	if plan.Segments[1] != plan.Segments[2] {
		t.Errorf("repeated entries must yield identical segments: %+v vs %+v",
			plan.Segments[1], plan.Segments[2])
	}
	if plan.Segments[0] == plan.Segments[1] {
		t.Errorf("first segment must differ from the repeated one")
	}
}

func TestBuildPlanDoesNotCoalesceAdjacentSegments(t *testing.T) {
	refs := []ClipReference{
		{Index: 0, Cue: cue("A", "one", "A.mkv", 1)},
		{Index: 1, Cue: cue("A", "two", "A.mkv", 3)},
	}
	// cue() makes each range two seconds long, so these are contiguous.
	plan, err := BuildPlan(refs)
	if err != nil {
		t.Fatal(err)
	}
	if len(plan.Segments) != 2 {
		t.Fatalf("adjacent segments were merged: %+v", plan.Segments)
	}
}

func TestBuildPlanEmpty(t *testing.T) {
	_, err := BuildPlan(nil)
	if !errors.Is(err, ErrEmptyPlan) {
		t.Fatalf("err = %v, want ErrEmptyPlan", err)
	}
}

func TestPlanDuration(t *testing.T) {
	plan := Plan{Segments: []Segment{
		{Source: "A.mkv", Start: time.Second, End: 3 * time.Second},
		{Source: "B.mkv", Start: 10 * time.Second, End: 14 * time.Second},
	}}
	if got := plan.Duration(); got != 6*time.Second {
		t.Errorf("duration = %v, want 6s", got)
	}
}

func TestPlanDeterminism(t *testing.T) {
	refs := Select(testTracks(), Filter{Query: "hello"})
	first, err := BuildPlan(refs)
	if err != nil {
		t.Fatal(err)
	}
	second, err := BuildPlan(Select(testTracks(), Filter{Query: "hello"}))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("plans differ for identical inputs")
	}
}
