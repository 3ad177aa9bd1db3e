package subtitle

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FindSidecar locates an external subtitle file for a video. Release-style
// layouts keep per-language files in a sidecar directory next to the video
// (for example Subs/English.eng.srt); a plain "video.srt" next to the video
// is the fallback. Files marked SDH are demoted so dialogue-only subtitles
// win when both exist.
func FindSidecar(videoPath, language, sidecarDir string) (string, error) {
	if fromDir, err := findInSidecarDir(videoPath, language, sidecarDir); err != nil {
		return "", err
	} else if fromDir != "" {
		return fromDir, nil
	}

	sameName := strings.TrimSuffix(videoPath, filepath.Ext(videoPath)) + ".srt"
	if info, err := os.Stat(sameName); err == nil && !info.IsDir() {
		return sameName, nil
	}

	return "", fmt.Errorf("%w: no sidecar subtitles for %s (language %s)", ErrSourceNotFound, videoPath, language)
}

func findInSidecarDir(videoPath, language, sidecarDir string) (string, error) {
	dir := filepath.Join(filepath.Dir(videoPath), sidecarDir)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return "", nil
	}

	pattern := filepath.Join(dir, "*."+language+".srt")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return "", fmt.Errorf("scan sidecar dir %q: %w", dir, err)
	}
	if len(matches) == 0 {
		return "", nil
	}

	// Plain name order breaks ties so repeated runs pick the same file.
	sort.SliceStable(matches, func(i, j int) bool {
		si, sj := isSDH(matches[i]), isSDH(matches[j])
		if si != sj {
			return !si
		}
		return matches[i] < matches[j]
	})
	return matches[0], nil
}

func isSDH(path string) bool {
	return strings.Contains(strings.ToUpper(filepath.Base(path)), "SDH")
}
