package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"supercut/internal/config"
	"supercut/internal/cuecache"
	"supercut/internal/engine"
	"supercut/internal/logging"
	"supercut/internal/media/ffmpeg"
	"supercut/internal/subtitle"
	"supercut/internal/vlc"
)

// pipeline bundles the collaborators a subtitle-driven command needs:
// configuration, extraction, caching, and the external tool wrappers.
type pipeline struct {
	cfg       *config.Config
	logger    *slog.Logger
	media     *ffmpeg.Client
	player    *vlc.Player
	extractor *subtitle.Extractor
	cache     *cuecache.Store
}

func (c *commandContext) withPipeline(fn func(*pipeline) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	logger := c.ensureLogger()

	p := &pipeline{
		cfg:    cfg,
		logger: logger,
		media:  ffmpeg.NewClient(cfg.Tools.FFmpeg, cfg.Tools.FFprobe, logger),
		player: vlc.NewPlayer(cfg.Tools.VLC, logger),
	}
	if cfg.Paths.CacheDir != "" {
		store, err := cuecache.Open(cfg.Paths.CacheDir, logger)
		if err != nil {
			// Caching is an accelerator, never a requirement.
			logger.Warn("cue cache unavailable", logging.Error(err))
		} else {
			p.cache = store
		}
	}
	p.extractor = subtitle.NewExtractor(p.media, trackCacheOrNil(p.cache), cfg.Subtitles.SidecarDir, logger)

	defer p.close()
	return fn(p)
}

// trackCacheOrNil avoids handing the extractor a non-nil interface wrapping
// a nil store.
func trackCacheOrNil(store *cuecache.Store) subtitle.TrackCache {
	if store == nil {
		return nil
	}
	return store
}

func (p *pipeline) close() {
	if p.cache != nil {
		if err := p.cache.Close(); err != nil {
			p.logger.Warn("close cue cache", logging.Error(err))
		}
	}
}

// resolveVideos turns positional video arguments into absolute paths,
// preserving the order given on the command line. That order drives index
// assignment, so it must never be reshuffled here.
func resolveVideos(args []string) ([]string, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("at least one video file is required")
	}
	videos := make([]string, 0, len(args))
	for _, arg := range args {
		absolute, err := filepath.Abs(arg)
		if err != nil {
			return nil, fmt.Errorf("resolve %q: %w", arg, err)
		}
		videos = append(videos, absolute)
	}
	return videos, nil
}

// extractTracks parses the subtitle track of every video, at most
// cfg.Extraction.Parallelism at a time. Results land in a slice indexed by
// argument position, so the returned order matches the input order no matter
// which extraction finishes first.
func (p *pipeline) extractTracks(ctx context.Context, videos []string) ([]subtitle.Track, error) {
	tracks := make([]subtitle.Track, len(videos))
	errs := make([]error, len(videos))

	limit := p.cfg.Extraction.Parallelism
	if limit < 1 {
		limit = 1
	}
	semaphore := make(chan struct{}, limit)

	var wg sync.WaitGroup
	for i, video := range videos {
		wg.Add(1)
		go func(i int, video string) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			track, err := p.extractor.Extract(ctx, video, p.cfg.Subtitles.Language, p.cfg.Subtitles.External)
			if err != nil {
				errs[i] = err
				return
			}
			tracks[i] = track
		}(i, video)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return tracks, nil
}

func (p *pipeline) selectLines(ctx context.Context, args []string, query string, names []string) ([]engine.ClipReference, error) {
	videos, err := resolveVideos(args)
	if err != nil {
		return nil, err
	}
	tracks, err := p.extractTracks(ctx, videos)
	if err != nil {
		return nil, err
	}
	return engine.Select(tracks, engine.Filter{Query: query, Names: names}), nil
}
