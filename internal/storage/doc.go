package storage

// Package storage persists the track collection to tracks.json in the app
// data directory, copies cover images in next to it, and watches the file
// for external edits. Load always yields exactly model.NumTiles entries.
