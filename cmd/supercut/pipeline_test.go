package main

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveVideosPreservesOrder(t *testing.T) {
	videos, err := resolveVideos([]string{"b.mkv", "a.mkv"})
	if err != nil {
		t.Fatal(err)
	}
	if len(videos) != 2 {
		t.Fatalf("got %d videos", len(videos))
	}
	if filepath.Base(videos[0]) != "b.mkv" || filepath.Base(videos[1]) != "a.mkv" {
		t.Errorf("order changed: %v", videos)
	}
	for _, video := range videos {
		if !filepath.IsAbs(video) {
			t.Errorf("%q is not absolute", video)
		}
	}
}

func TestResolveVideosRequiresArgs(t *testing.T) {
	if _, err := resolveVideos(nil); err == nil {
		t.Fatal("expected error for empty arguments")
	}
}

func TestRenderTable(t *testing.T) {
	out := renderTable(
		[]string{"Speaker", "Lines"},
		[][]string{{"Alice", "3"}, {"Bob", "1"}},
		[]columnAlignment{alignLeft, alignRight},
	)
	for _, want := range []string{"Speaker", "Lines", "Alice", "Bob"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}
