// Package engine implements the line-selection core: speaker aggregation,
// filtered clip selection with stable indices, the editable list round trip,
// and clip plan building.
//
// Everything here is pure in-memory transformation. Selection indices are a
// function of (ordered track list, extracted cues, filters) and nothing
// else; they are the join key that lets an edit list written by one
// invocation be applied by a later one.
package engine
