package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, _, exists, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if exists {
		t.Fatal("expected exists=false for absent file")
	}
	if cfg.Tools.FFmpeg != "ffmpeg" || cfg.Tools.VLC != "vlc" {
		t.Errorf("tools = %+v, want defaults", cfg.Tools)
	}
	if cfg.Subtitles.Language != "eng" {
		t.Errorf("language = %q, want eng", cfg.Subtitles.Language)
	}
	if cfg.Extraction.Parallelism != 4 {
		t.Errorf("parallelism = %d, want 4", cfg.Extraction.Parallelism)
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
cache_dir = "` + filepath.Join(dir, "cache") + `"

[subtitles]
language = "GER"

[logging]
level = "DEBUG"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !exists || resolved != path {
		t.Fatalf("resolved = %q exists = %v", resolved, exists)
	}
	if cfg.Subtitles.Language != "GER" {
		t.Errorf("language = %q", cfg.Subtitles.Language)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("level = %q, want lowered", cfg.Logging.Level)
	}
	if !filepath.IsAbs(cfg.Paths.CacheDir) {
		t.Errorf("cache dir %q not absolute", cfg.Paths.CacheDir)
	}
}

func TestLoadRejectsBadLanguage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[subtitles]\nlanguage = \"en\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, _, err := Load(path); err == nil || !strings.Contains(err.Error(), "subtitles.language") {
		t.Fatalf("err = %v, want language validation failure", err)
	}
}

func TestVLCEnvOverride(t *testing.T) {
	t.Setenv(VLCPathEnvVar, "/opt/vlc/bin/vlc")

	cfg, _, _, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Tools.VLC != "/opt/vlc/bin/vlc" {
		t.Errorf("vlc = %q, want env override", cfg.Tools.VLC)
	}
}

func TestExpandPathTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home dir")
	}
	got, err := ExpandPath("~/videos")
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(home, "videos") {
		t.Errorf("got %q", got)
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatal(err)
	}
	if _, _, _, err := Load(path); err != nil {
		t.Fatalf("sample config does not load: %v", err)
	}
}
