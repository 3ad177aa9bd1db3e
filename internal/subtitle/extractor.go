package subtitle

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"supercut/internal/logging"
)

// EmbeddedReader extracts an embedded subtitle track from a video container
// and returns it as ASS bytes. Implemented by the ffmpeg wrapper.
type EmbeddedReader interface {
	ExtractSubtitles(ctx context.Context, videoPath, language string) ([]byte, error)
}

// ErrNoSubtitleStream is returned by EmbeddedReader implementations when the
// container has no subtitle stream for the requested language.
var ErrNoSubtitleStream = errors.New("no matching subtitle stream")

// CacheKey identifies one parsed track. The file signature fields make stale
// cache entries impossible: any rewrite of the source changes the key.
type CacheKey struct {
	Path      string
	Size      int64
	ModTimeNS int64
	Language  string
	Origin    TrackOrigin
}

// String renders the key in the stable form used for cache storage.
func (k CacheKey) String() string {
	return fmt.Sprintf("%s|%d|%d|%s|%s", k.Path, k.Size, k.ModTimeNS, k.Language, k.Origin)
}

// TrackCache is a narrow get-or-compute interface. A miss must reproduce a
// hit exactly; implementations never affect extraction results.
type TrackCache interface {
	GetOrCompute(ctx context.Context, key CacheKey, compute func() (Track, error)) (Track, error)
}

// Extractor turns one video source into a cue track, going through the
// embedded container or a sidecar file.
type Extractor struct {
	media      EmbeddedReader
	cache      TrackCache
	sidecarDir string
	logger     *slog.Logger
}

// NewExtractor builds an Extractor. cache may be nil to disable caching.
func NewExtractor(media EmbeddedReader, cache TrackCache, sidecarDir string, logger *slog.Logger) *Extractor {
	return &Extractor{
		media:      media,
		cache:      cache,
		sidecarDir: sidecarDir,
		logger:     logging.NewComponentLogger(logger, "extractor"),
	}
}

// Extract produces the cue track for one video. When external is true a
// sidecar subtitle file is used instead of the embedded track.
func (e *Extractor) Extract(ctx context.Context, videoPath, language string, external bool) (Track, error) {
	info, err := os.Stat(videoPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Track{}, fmt.Errorf("%w: %s", ErrSourceNotFound, videoPath)
		}
		return Track{}, fmt.Errorf("stat %s: %w", videoPath, err)
	}

	origin := OriginEmbedded
	if external {
		origin = OriginExternal
	}
	key := CacheKey{
		Path:      videoPath,
		Size:      info.Size(),
		ModTimeNS: info.ModTime().UnixNano(),
		Language:  language,
		Origin:    origin,
	}

	compute := func() (Track, error) {
		if external {
			return e.extractExternal(videoPath, language)
		}
		return e.extractEmbedded(ctx, videoPath, language)
	}

	if e.cache == nil {
		return compute()
	}
	return e.cache.GetOrCompute(ctx, key, compute)
}

func (e *Extractor) extractExternal(videoPath, language string) (Track, error) {
	sidecarPath, err := FindSidecar(videoPath, language, e.sidecarDir)
	if err != nil {
		return Track{}, err
	}
	data, err := os.ReadFile(sidecarPath)
	if err != nil {
		return Track{}, fmt.Errorf("read sidecar %s: %w", sidecarPath, err)
	}
	format, err := DetectFormat(sidecarPath)
	if err != nil {
		return Track{}, err
	}
	track, err := Parse(data, format, videoPath, e.logger)
	if err != nil {
		return Track{}, err
	}
	track.Origin = OriginExternal
	e.logger.Debug("parsed sidecar track",
		logging.String("video", filepath.Base(videoPath)),
		logging.String("sidecar", filepath.Base(sidecarPath)),
		logging.Int("cues", len(track.Cues)))
	return track, nil
}

func (e *Extractor) extractEmbedded(ctx context.Context, videoPath, language string) (Track, error) {
	data, err := e.media.ExtractSubtitles(ctx, videoPath, language)
	if err != nil {
		if errors.Is(err, ErrNoSubtitleStream) {
			return Track{}, fmt.Errorf("%w: %s has no %s subtitle stream", ErrSourceNotFound, videoPath, language)
		}
		return Track{}, err
	}
	track, err := Parse(data, FormatASS, videoPath, e.logger)
	if err != nil {
		return Track{}, err
	}
	track.Origin = OriginEmbedded
	e.logger.Debug("parsed embedded track",
		logging.String("video", filepath.Base(videoPath)),
		logging.Int("cues", len(track.Cues)))
	return track, nil
}
