package report

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sort"
)

// Pixels are sampled on a grid of roughly this many points per axis,
// so large logos stay cheap to scan
const paletteSampleSize = 150

// Pixels whose RGB sum falls outside this range are treated as
// background (near black or near white) and ignored
const (
	minBrightness = 50
	maxBrightness = 700
)

// DefaultColors is the fallback brand palette
func DefaultColors() map[string]string {
	return map[string]string{
		"primary":     "FF6B35",
		"secondary":   "004E89",
		"accent1":     "F7B801",
		"accent2":     "1B998B",
		"light_gray":  "F4F4F4",
		"medium_gray": "E0E0E0",
		"dark_gray":   "666666",
		"white":       "FFFFFF",
		"text_dark":   "2C2C2C",
	}
}

// ExtractPalette returns up to numColors dominant hex colors from an
// image, most frequent first. Near-white and near-black pixels are
// filtered out so backgrounds don't dominate.
func ExtractPalette(path string, numColors int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	stepX := max(bounds.Dx()/paletteSampleSize, 1)
	stepY := max(bounds.Dy()/paletteSampleSize, 1)

	counts := make(map[string]int)
	for y := bounds.Min.Y; y < bounds.Max.Y; y += stepY {
		for x := bounds.Min.X; x < bounds.Max.X; x += stepX {
			r, g, b, _ := img.At(x, y).RGBA()
			r8, g8, b8 := int(r>>8), int(g>>8), int(b>>8)

			sum := r8 + g8 + b8
			if sum <= minBrightness || sum >= maxBrightness {
				continue
			}

			counts[fmt.Sprintf("%02X%02X%02X", r8, g8, b8)]++
		}
	}

	if len(counts) == 0 {
		return nil, fmt.Errorf("no usable colors in image %s", path)
	}

	colors := make([]string, 0, len(counts))
	for color := range counts {
		colors = append(colors, color)
	}
	// Most frequent first; ties broken by hex value for determinism
	sort.Slice(colors, func(i, j int) bool {
		if counts[colors[i]] != counts[colors[j]] {
			return counts[colors[i]] > counts[colors[j]]
		}
		return colors[i] < colors[j]
	})

	if len(colors) > numColors {
		colors = colors[:numColors]
	}

	return colors, nil
}
