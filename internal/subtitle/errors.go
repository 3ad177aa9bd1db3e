package subtitle

import "errors"

var (
	// ErrSourceNotFound indicates a missing video file, sidecar file, or
	// embedded subtitle stream.
	ErrSourceNotFound = errors.New("subtitle source not found")
	// ErrUnsupportedFormat indicates a subtitle container or encoding the
	// parsers cannot handle.
	ErrUnsupportedFormat = errors.New("unsupported subtitle format")
)
