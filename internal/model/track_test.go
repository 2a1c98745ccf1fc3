package model

import "testing"

func TestDefaultTitle(t *testing.T) {
	tests := []struct {
		index    int
		expected string
	}{
		{0, "Track 1"},
		{9, "Track 10"},
		{49, "Track 50"},
	}

	for _, test := range tests {
		result := DefaultTitle(test.index)
		if result != test.expected {
			t.Errorf("DefaultTitle(%d) = %s, expected %s", test.index, result, test.expected)
		}
	}
}

func TestDefaultTracks(t *testing.T) {
	tracks := DefaultTracks()

	if len(tracks) != NumTiles {
		t.Fatalf("Expected %d default tracks, got %d", NumTiles, len(tracks))
	}

	if tracks[0].Title != "Track 1" {
		t.Errorf("Expected first track title 'Track 1', got '%s'", tracks[0].Title)
	}

	if tracks[NumTiles-1].Title != "Track 50" {
		t.Errorf("Expected last track title 'Track 50', got '%s'", tracks[NumTiles-1].Title)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		length int
	}{
		{"empty", 0},
		{"one short", NumTiles - 1},
		{"exact", NumTiles},
		{"oversized", 200},
	}

	for _, test := range tests {
		input := make([]Track, test.length)
		for i := range input {
			input[i] = Track{Title: "Custom"}
		}

		result := Normalize(input)
		if len(result) != NumTiles {
			t.Errorf("%s: Normalize() returned %d entries, expected %d", test.name, len(result), NumTiles)
		}
	}
}

func TestNormalize_PadsWithPlaceholders(t *testing.T) {
	input := []Track{{Title: "Opening Song", URL: "https://example.com/1"}}

	result := Normalize(input)

	if result[0].Title != "Opening Song" {
		t.Errorf("Expected existing entry preserved, got '%s'", result[0].Title)
	}
	if result[0].URL != "https://example.com/1" {
		t.Errorf("Expected existing URL preserved, got '%s'", result[0].URL)
	}
	if result[1].Title != "Track 2" {
		t.Errorf("Expected padded entry 'Track 2', got '%s'", result[1].Title)
	}
	if result[NumTiles-1].Title != "Track 50" {
		t.Errorf("Expected padded entry 'Track 50', got '%s'", result[NumTiles-1].Title)
	}
}

func TestNormalize_Truncates(t *testing.T) {
	input := make([]Track, 80)
	for i := range input {
		input[i] = Track{Title: "Extra"}
	}

	result := Normalize(input)

	if len(result) != NumTiles {
		t.Fatalf("Expected truncation to %d, got %d", NumTiles, len(result))
	}
	for i, track := range result {
		if track.Title != "Extra" {
			t.Errorf("Entry %d: expected 'Extra', got '%s'", i, track.Title)
		}
	}
}

func TestTrack_DisplayTitle(t *testing.T) {
	tests := []struct {
		title    string
		index    int
		expected string
	}{
		{"Bohemian Rhapsody", 0, "Bohemian Rhapsody"},
		{"", 4, "Track 5"},
		{"   ", 7, "Track 8"},
	}

	for _, test := range tests {
		track := Track{Title: test.title}
		result := track.DisplayTitle(test.index)
		if result != test.expected {
			t.Errorf("DisplayTitle with title='%s', index=%d = '%s', expected '%s'",
				test.title, test.index, result, test.expected)
		}
	}
}

func TestTrack_HasImage(t *testing.T) {
	if (Track{}).HasImage() {
		t.Error("Empty track should not report an image")
	}
	if (Track{ImagePath: "  "}).HasImage() {
		t.Error("Whitespace image path should not report an image")
	}
	if !(Track{ImagePath: "/data/track_03.png"}).HasImage() {
		t.Error("Track with image path should report an image")
	}
}
