package export

import (
	"strings"
	"testing"
	"time"

	"supercut/internal/engine"
)

func testPlan() engine.Plan {
	return engine.Plan{Segments: []engine.Segment{
		{Source: "/videos/a.mkv", Start: 1500 * time.Millisecond, End: 3 * time.Second},
		{Source: "/videos/b.mkv", Start: time.Hour + 30*time.Second, End: time.Hour + 32*time.Second},
		{Source: "/videos/a.mkv", Start: 1500 * time.Millisecond, End: 3 * time.Second},
	}}
}

func TestEDL(t *testing.T) {
	got := EDL("My Cut", testPlan())
	want := `TITLE: My Cut

000 BL V C 00:00:01:50 00:00:03:00 00:00:00:00 00:00:01:50
000 AX A C 00:00:01:50 00:00:03:00 00:00:00:00 00:00:01:50
* FROM CLIP NAME: /videos/a.mkv

001 BL V C 01:00:30:00 01:00:32:00 00:00:01:50 00:00:03:50
001 AX A C 01:00:30:00 01:00:32:00 00:00:01:50 00:00:03:50
* FROM CLIP NAME: /videos/b.mkv

002 BL V C 00:00:01:50 00:00:03:00 00:00:03:50 00:00:05:00
002 AX A C 00:00:01:50 00:00:03:00 00:00:03:50 00:00:05:00
* FROM CLIP NAME: /videos/a.mkv
`
	if got != want {
		t.Errorf("edl:\n%s\nwant:\n%s", got, want)
	}
}

func TestEDLRecordTimesAccumulate(t *testing.T) {
	got := EDL("t", engine.Plan{Segments: []engine.Segment{
		{Source: "a", Start: 0, End: 10 * time.Second},
		{Source: "b", Start: 0, End: 5 * time.Second},
	}})
	if !strings.Contains(got, "00:00:00:00 00:00:05:00 00:00:10:00 00:00:15:00") {
		t.Errorf("second event record window wrong:\n%s", got)
	}
}
