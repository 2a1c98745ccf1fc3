// Package palette extracts a dominant color from a background image so the
// control buttons can be restyled to match the host's chosen artwork.
package palette

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/lucasb-eyer/go-colorful"
)

// Sampling constants
const (
	// SampleGrid bounds how many pixels per axis are inspected.
	SampleGrid = 80

	// QuantBits is the per-channel quantization used to bucket similar colors.
	QuantBits = 4

	// DarkLuminanceThreshold splits dark from light primaries.
	DarkLuminanceThreshold = 0.5
)

// Palette is the extraction result.
type Palette struct {
	Primary color.Color
	IsDark  bool
}

// Extract decodes the image at path and returns its dominant color together
// with a dark/light classification for choosing readable text color.
func Extract(path string) (Palette, error) {
	file, err := os.Open(path)
	if err != nil {
		return Palette{}, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return Palette{}, fmt.Errorf("failed to decode image: %w", err)
	}

	primary, err := dominantColor(img)
	if err != nil {
		return Palette{}, err
	}

	return Palette{
		Primary: primary,
		IsDark:  Luminance(primary) < DarkLuminanceThreshold,
	}, nil
}

// dominantColor buckets sampled pixels by quantized RGB and averages the most
// common bucket.
func dominantColor(img image.Image) (color.Color, error) {
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("image has no pixels")
	}

	stepX := bounds.Dx() / SampleGrid
	if stepX < 1 {
		stepX = 1
	}
	stepY := bounds.Dy() / SampleGrid
	if stepY < 1 {
		stepY = 1
	}

	type bucket struct {
		r, g, b float64
		count   int
	}
	buckets := make(map[uint32]*bucket)

	for y := bounds.Min.Y; y < bounds.Max.Y; y += stepY {
		for x := bounds.Min.X; x < bounds.Max.X; x += stepX {
			r, g, b, a := img.At(x, y).RGBA()
			if a == 0 {
				continue
			}
			key := (r >> (16 - QuantBits) << (2 * QuantBits)) |
				(g >> (16 - QuantBits) << QuantBits) |
				(b >> (16 - QuantBits))
			bk := buckets[key]
			if bk == nil {
				bk = &bucket{}
				buckets[key] = bk
			}
			bk.r += float64(r) / 65535
			bk.g += float64(g) / 65535
			bk.b += float64(b) / 65535
			bk.count++
		}
	}

	var best *bucket
	for _, bk := range buckets {
		if best == nil || bk.count > best.count {
			best = bk
		}
	}
	if best == nil {
		return nil, fmt.Errorf("image has no opaque pixels")
	}

	n := float64(best.count)
	return colorful.Color{R: best.r / n, G: best.g / n, B: best.b / n}.Clamped(), nil
}

// Luminance returns the perceived brightness of c in 0..1.
func Luminance(c color.Color) float64 {
	col, _ := colorful.MakeColor(c)
	return 0.299*col.R + 0.587*col.G + 0.114*col.B
}

// Lighten raises the HSL lightness of c by amount (0..1).
func Lighten(c color.Color, amount float64) color.Color {
	col, _ := colorful.MakeColor(c)
	h, s, l := col.Hsl()
	return colorful.Hsl(h, s, clamp01(l+amount)).Clamped()
}

// Darken lowers the HSL lightness of c by amount (0..1).
func Darken(c color.Color, amount float64) color.Color {
	col, _ := colorful.MakeColor(c)
	h, s, l := col.Hsl()
	return colorful.Hsl(h, s, clamp01(l-amount)).Clamped()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
