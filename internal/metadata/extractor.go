// Package metadata fills track titles from audio file tags, so a host can
// point the editor at the evening's playlist folder instead of typing 50
// titles by hand.
package metadata

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dhowden/tag"
)

// Audio file extensions the importer picks up.
var audioExtensions = []string{".mp3", ".flac", ".m4a", ".ogg", ".wav"}

// Extractor reads track titles from audio files.
type Extractor struct{}

// NewExtractor creates a new metadata extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// IsAudioFile reports whether the path has a recognized audio extension.
func (e *Extractor) IsAudioFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, known := range audioExtensions {
		if ext == known {
			return true
		}
	}
	return false
}

// TitleFromFile returns a display title for the audio file: "Artist - Title"
// from its tags when present, otherwise parsed from the file name, otherwise
// the bare file name.
func (e *Extractor) TitleFromFile(path string) string {
	file, err := os.Open(path)
	if err != nil {
		return titleFromFileName(path)
	}
	defer file.Close()

	meta, err := tag.ReadFrom(file)
	if err != nil || strings.TrimSpace(meta.Title()) == "" {
		return titleFromFileName(path)
	}

	artist := strings.TrimSpace(meta.Artist())
	title := strings.TrimSpace(meta.Title())
	if artist != "" {
		return artist + " - " + title
	}
	return title
}

// ImportTitles scans dir for audio files, sorted by name, and returns up to
// limit titles. An empty result with a nil error means the folder simply had
// no audio files.
func (e *Extractor) ImportTitles(dir string, limit int) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read folder: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if e.IsAudioFile(name) {
			files = append(files, filepath.Join(dir, name))
		}
	}
	sort.Strings(files)

	if limit > 0 && len(files) > limit {
		files = files[:limit]
	}

	titles := make([]string, 0, len(files))
	for _, file := range files {
		titles = append(titles, e.TitleFromFile(file))
	}
	return titles, nil
}

// titleFromFileName derives a title from the file name, honoring the common
// "Artist - Title" naming convention.
func titleFromFileName(path string) string {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	parts := strings.Split(name, " - ")
	if len(parts) >= 2 {
		artist := strings.TrimSpace(parts[0])
		title := strings.TrimSpace(strings.Join(parts[1:], " - "))
		if artist != "" && title != "" {
			return artist + " - " + title
		}
	}
	return name
}
