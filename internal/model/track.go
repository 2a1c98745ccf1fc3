package model

import (
	"fmt"
	"strings"
)

// Grid dimensions
const (
	// NumTiles is the fixed number of barrels on the board.
	NumTiles = 50

	// GridCols is the number of tiles per grid row.
	GridCols = 10
)

// Track represents a single track bound to a barrel tile. Identity is
// positional (index 0..NumTiles-1), not stored on the record.
type Track struct {
	Title     string `json:"title"`
	URL       string `json:"url"`
	ImagePath string `json:"image_path"`
}

// DefaultTitle returns the placeholder title for the tile at index (1-indexed
// in the label, e.g. "Track 7" for index 6).
func DefaultTitle(index int) string {
	return fmt.Sprintf("Track %d", index+1)
}

// DefaultTracks returns a fresh collection of NumTiles placeholder tracks.
func DefaultTracks() []Track {
	tracks := make([]Track, NumTiles)
	for i := range tracks {
		tracks[i] = Track{Title: DefaultTitle(i)}
	}
	return tracks
}

// Normalize forces the collection to exactly NumTiles entries: shorter lists
// are padded with placeholders, longer lists are truncated. The input slice
// is not modified.
func Normalize(tracks []Track) []Track {
	normalized := make([]Track, NumTiles)
	copy(normalized, tracks)
	for i := len(tracks); i < NumTiles; i++ {
		normalized[i] = Track{Title: DefaultTitle(i)}
	}
	return normalized
}

// DisplayTitle returns the track title, or the placeholder for index when the
// title is empty or whitespace.
func (t Track) DisplayTitle(index int) string {
	if strings.TrimSpace(t.Title) == "" {
		return DefaultTitle(index)
	}
	return t.Title
}

// HasImage reports whether the track has a cover image path set.
func (t Track) HasImage() bool {
	return strings.TrimSpace(t.ImagePath) != ""
}
