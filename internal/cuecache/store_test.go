package cuecache

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"supercut/internal/logging"
	"supercut/internal/subtitle"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "cache"), logging.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testTrack(source string) subtitle.Track {
	return subtitle.Track{
		Source: source,
		Origin: subtitle.OriginEmbedded,
		Cues: []subtitle.Cue{
			{Speaker: "Alice", Text: "Hello there.", Start: time.Second, End: 3 * time.Second, Source: source},
			{Speaker: "Bob", Text: "General Kenobi!", Start: 5 * time.Second, End: 7 * time.Second, Source: source},
		},
	}
}

func testKey(path string) subtitle.CacheKey {
	return subtitle.CacheKey{
		Path:      path,
		Size:      1234,
		ModTimeNS: 567890,
		Language:  "eng",
		Origin:    subtitle.OriginEmbedded,
	}
}

func TestGetOrComputeMissThenHit(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	want := testTrack("/videos/a.mkv")

	computes := 0
	compute := func() (subtitle.Track, error) {
		computes++
		return want, nil
	}

	got, err := store.GetOrCompute(ctx, testKey("/videos/a.mkv"), compute)
	if err != nil {
		t.Fatal(err)
	}
	if computes != 1 {
		t.Fatalf("computes = %d, want 1", computes)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("miss result = %+v", got)
	}

	// Second call must hit without recomputing, and must reproduce the
	// computed track exactly.
	got, err = store.GetOrCompute(ctx, testKey("/videos/a.mkv"), compute)
	if err != nil {
		t.Fatal(err)
	}
	if computes != 1 {
		t.Errorf("computes = %d after hit, want 1", computes)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("hit result differs from miss result:\n%+v\n%+v", got, want)
	}
}

func TestGetOrComputeDistinctKeys(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	keyA := testKey("/videos/a.mkv")
	keyB := keyA
	keyB.ModTimeNS++

	if _, err := store.GetOrCompute(ctx, keyA, func() (subtitle.Track, error) {
		return testTrack("old"), nil
	}); err != nil {
		t.Fatal(err)
	}

	got, err := store.GetOrCompute(ctx, keyB, func() (subtitle.Track, error) {
		return testTrack("new"), nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if got.Source != "new" {
		t.Errorf("changed mtime must miss; got cached %q", got.Source)
	}
}

func TestGetOrComputePropagatesComputeError(t *testing.T) {
	store := openTestStore(t)
	wantErr := errors.New("extraction failed")

	_, err := store.GetOrCompute(context.Background(), testKey("/videos/a.mkv"), func() (subtitle.Track, error) {
		return subtitle.Track{}, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want compute error", err)
	}

	// A failed compute must not poison the cache.
	got, err := store.GetOrCompute(context.Background(), testKey("/videos/a.mkv"), func() (subtitle.Track, error) {
		return testTrack("/videos/a.mkv"), nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if got.Source != "/videos/a.mkv" {
		t.Errorf("got %+v", got)
	}
}

func TestOpenRejectsEmptyDir(t *testing.T) {
	if _, err := Open("", logging.NewNop()); err == nil {
		t.Fatal("expected error for empty dir")
	}
}

func TestPruneRemovesMissingSources(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	dir := t.TempDir()
	existing := filepath.Join(dir, "keep.mkv")
	if err := os.WriteFile(existing, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	missing := filepath.Join(dir, "gone.mkv")

	for _, path := range []string{existing, missing} {
		if _, err := store.GetOrCompute(ctx, testKey(path), func() (subtitle.Track, error) {
			return testTrack(path), nil
		}); err != nil {
			t.Fatal(err)
		}
	}

	removed, err := store.Prune(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}

	// The surviving entry still hits.
	computes := 0
	if _, err := store.GetOrCompute(ctx, testKey(existing), func() (subtitle.Track, error) {
		computes++
		return testTrack(existing), nil
	}); err != nil {
		t.Fatal(err)
	}
	if computes != 0 {
		t.Errorf("existing entry was pruned")
	}
}
