package metadata

import (
	"os"
	"path/filepath"
	"testing"
)

// writeID3v1File creates an mp3-like file whose last 128 bytes are a valid
// ID3v1 tag with the given title and artist.
func writeID3v1File(t *testing.T, path, title, artist string) {
	t.Helper()

	field := func(s string, n int) []byte {
		b := make([]byte, n)
		copy(b, s)
		return b
	}

	data := make([]byte, 0, 256)
	data = append(data, make([]byte, 128)...) // fake audio payload
	data = append(data, []byte("TAG")...)
	data = append(data, field(title, 30)...)
	data = append(data, field(artist, 30)...)
	data = append(data, field("", 30)...) // album
	data = append(data, field("", 4)...)  // year
	data = append(data, field("", 30)...) // comment
	data = append(data, 255)              // genre

	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write test audio file: %v", err)
	}
}

func TestTitleFromFile_ReadsTags(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "01.mp3")
	writeID3v1File(t, path, "Seven Nation Army", "The White Stripes")

	extractor := NewExtractor()
	title := extractor.TitleFromFile(path)

	expected := "The White Stripes - Seven Nation Army"
	if title != expected {
		t.Errorf("TitleFromFile() = '%s', expected '%s'", title, expected)
	}
}

func TestTitleFromFile_FallsBackToFileName(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "Queen - Bohemian Rhapsody.mp3")
	if err := os.WriteFile(path, []byte("not a real mp3"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	extractor := NewExtractor()
	title := extractor.TitleFromFile(path)

	expected := "Queen - Bohemian Rhapsody"
	if title != expected {
		t.Errorf("TitleFromFile() = '%s', expected '%s'", title, expected)
	}
}

func TestTitleFromFile_PlainFileName(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "intro.mp3")
	if err := os.WriteFile(path, []byte("no tags here"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	extractor := NewExtractor()
	title := extractor.TitleFromFile(path)

	if title != "intro" {
		t.Errorf("TitleFromFile() = '%s', expected 'intro'", title)
	}
}

func TestIsAudioFile(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"song.mp3", true},
		{"song.MP3", true},
		{"song.flac", true},
		{"song.m4a", true},
		{"song.ogg", true},
		{"song.wav", true},
		{"cover.png", false},
		{"notes.txt", false},
		{"song", false},
	}

	extractor := NewExtractor()
	for _, test := range tests {
		result := extractor.IsAudioFile(test.path)
		if result != test.expected {
			t.Errorf("IsAudioFile(%s) = %v, expected %v", test.path, result, test.expected)
		}
	}
}

func TestImportTitles(t *testing.T) {
	tempDir := t.TempDir()

	writeID3v1File(t, filepath.Join(tempDir, "01.mp3"), "First Song", "A")
	writeID3v1File(t, filepath.Join(tempDir, "02.mp3"), "Second Song", "B")
	if err := os.WriteFile(filepath.Join(tempDir, "cover.png"), []byte("img"), 0644); err != nil {
		t.Fatalf("Failed to write non-audio file: %v", err)
	}
	if err := os.WriteFile(filepath.Join(tempDir, ".hidden.mp3"), []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write hidden file: %v", err)
	}

	extractor := NewExtractor()
	titles, err := extractor.ImportTitles(tempDir, 50)
	if err != nil {
		t.Fatalf("ImportTitles failed: %v", err)
	}

	expected := []string{"A - First Song", "B - Second Song"}
	if len(titles) != len(expected) {
		t.Fatalf("ImportTitles returned %d titles, expected %d: %v", len(titles), len(expected), titles)
	}
	for i, want := range expected {
		if titles[i] != want {
			t.Errorf("Title %d = '%s', expected '%s'", i, titles[i], want)
		}
	}
}

func TestImportTitles_Limit(t *testing.T) {
	tempDir := t.TempDir()
	writeID3v1File(t, filepath.Join(tempDir, "01.mp3"), "One", "")
	writeID3v1File(t, filepath.Join(tempDir, "02.mp3"), "Two", "")
	writeID3v1File(t, filepath.Join(tempDir, "03.mp3"), "Three", "")

	extractor := NewExtractor()
	titles, err := extractor.ImportTitles(tempDir, 2)
	if err != nil {
		t.Fatalf("ImportTitles failed: %v", err)
	}

	if len(titles) != 2 {
		t.Errorf("ImportTitles with limit 2 returned %d titles", len(titles))
	}
}

func TestImportTitles_MissingFolder(t *testing.T) {
	extractor := NewExtractor()

	_, err := extractor.ImportTitles(filepath.Join(t.TempDir(), "missing"), 50)
	if err == nil {
		t.Error("Expected error for missing folder")
	}
}
