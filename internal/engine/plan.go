package engine

import (
	"fmt"
	"time"
)

// Segment is one render instruction: a time range within a source file.
type Segment struct {
	Source string
	Start  time.Duration
	End    time.Duration
}

// Duration returns the length of the segment.
func (s Segment) Duration() time.Duration {
	return s.End - s.Start
}

// Plan is the ordered render instruction set handed to the renderer.
// Segments are never merged: adjacent ranges from the same source stay
// separate so the renderer keeps its cut points.
type Plan struct {
	Segments []Segment
}

// Duration returns the total runtime of the rendered supercut.
func (p Plan) Duration() time.Duration {
	var total time.Duration
	for _, segment := range p.Segments {
		total += segment.Duration()
	}
	return total
}

// BuildPlan maps each clip reference to a segment, in input order.
func BuildPlan(refs []ClipReference) (Plan, error) {
	if len(refs) == 0 {
		return Plan{}, fmt.Errorf("%w: no clips selected", ErrEmptyPlan)
	}
	segments := make([]Segment, 0, len(refs))
	for _, ref := range refs {
		segments = append(segments, Segment{
			Source: ref.Cue.Source,
			Start:  ref.Cue.Start,
			End:    ref.Cue.End,
		})
	}
	return Plan{Segments: segments}, nil
}
