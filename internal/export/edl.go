package export

import (
	"fmt"
	"strings"
	"time"

	"supercut/internal/engine"
)

// EDL renders a clip plan as a CMX 3600 style edit decision list. Record
// times accumulate across segments so the cut lands on a continuous
// timeline; source times address the original files.
func EDL(title string, plan engine.Plan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "TITLE: %s\n", title)

	var recordIn time.Duration
	for i, segment := range plan.Segments {
		b.WriteByte('\n')

		timing := fmt.Sprintf("%s %s %s %s",
			edlTimecode(segment.Start),
			edlTimecode(segment.End),
			edlTimecode(recordIn),
			edlTimecode(recordIn+segment.Duration()),
		)
		fmt.Fprintf(&b, "%03d BL V C %s\n", i, timing)
		fmt.Fprintf(&b, "%03d AX A C %s\n", i, timing)
		fmt.Fprintf(&b, "* FROM CLIP NAME: %s\n", segment.Source)

		recordIn += segment.Duration()
	}
	return b.String()
}

// edlTimecode renders hh:mm:ss:cc with a centisecond frame field.
func edlTimecode(d time.Duration) string {
	millis := d.Milliseconds()
	subsecond := (millis % 1000) / 10
	totalSeconds := millis / 1000
	seconds := totalSeconds % 60
	minutes := (totalSeconds / 60) % 60
	hours := totalSeconds / 3600
	return fmt.Sprintf("%02d:%02d:%02d:%02d", hours, minutes, seconds, subsecond)
}
