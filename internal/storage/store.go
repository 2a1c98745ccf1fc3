package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/shishloto/shish-loto/internal/model"
	"github.com/shishloto/shish-loto/internal/platform"
)

// TracksFileName is the persisted track list inside the app data dir.
const TracksFileName = "tracks.json"

// Store is a thin load/normalize/save layer over tracks.json.
type Store struct {
	dir    string
	path   string
	logger zerolog.Logger

	// selfWrites counts saves whose filesystem events the watcher must
	// swallow, so the app's own writes do not trigger a reload.
	selfWrites atomic.Int64
}

// NewStore creates a store rooted at dir. The directory must exist.
func NewStore(dir string, logger zerolog.Logger) *Store {
	return &Store{
		dir:    dir,
		path:   filepath.Join(dir, TracksFileName),
		logger: logger.With().Str("component", "storage").Logger(),
	}
}

// Dir returns the app data directory the store writes into.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the tracks.json location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the track collection, normalized to exactly model.NumTiles
// entries. A missing file synthesizes placeholder tracks and persists them
// immediately. An unreadable or malformed file also falls back to
// placeholders; the returned tracks stay usable either way and the error only
// reports what went wrong for a dismissible warning.
func (s *Store) Load() ([]model.Track, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		tracks := model.DefaultTracks()
		if saveErr := s.Save(tracks); saveErr != nil {
			return tracks, fmt.Errorf("failed to persist default tracks: %w", saveErr)
		}
		s.logger.Info().Str("path", s.path).Msg("created default track list")
		return tracks, nil
	}
	if err != nil {
		s.logger.Warn().Err(err).Str("path", s.path).Msg("track list unreadable, using defaults")
		return model.DefaultTracks(), fmt.Errorf("failed to read track list: %w", err)
	}

	var tracks []model.Track
	if err := json.Unmarshal(data, &tracks); err != nil {
		s.logger.Warn().Err(err).Str("path", s.path).Msg("track list malformed, using defaults")
		return model.DefaultTracks(), fmt.Errorf("failed to parse track list: %w", err)
	}

	if len(tracks) != model.NumTiles {
		s.logger.Info().Int("entries", len(tracks)).Msg("normalizing track list length")
	}
	return model.Normalize(tracks), nil
}

// Save serializes the collection to tracks.json, overwriting it. The write
// goes through a temp file and rename so a failure cannot leave a torn file.
func (s *Store) Save(tracks []model.Track) error {
	normalized := model.Normalize(tracks)

	data, err := json.MarshalIndent(normalized, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize track list: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, TracksFileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp track list: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write track list: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write track list: %w", err)
	}
	s.selfWrites.Add(1)
	if err := os.Rename(tmpPath, s.path); err != nil {
		s.selfWrites.Add(-1)
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace track list: %w", err)
	}

	s.logger.Debug().Str("path", s.path).Msg("track list saved")
	return nil
}

// ImportCover copies the chosen image into the app data dir under a name
// derived from the tile index, so the stored reference stays valid if the
// original file moves. Returns the new path.
func (s *Store) ImportCover(index int, srcPath string) (string, error) {
	if index < 0 || index >= model.NumTiles {
		return "", fmt.Errorf("cover index out of range: %d", index)
	}

	ext := strings.ToLower(filepath.Ext(srcPath))
	dst := filepath.Join(s.dir, fmt.Sprintf("track_%02d%s", index, ext))

	if err := platform.CopyFile(srcPath, dst); err != nil {
		return "", fmt.Errorf("failed to import cover: %w", err)
	}

	s.logger.Info().Int("tile", index).Str("cover", dst).Msg("cover imported")
	return dst, nil
}
