// Package vision turns raw classifier outputs, a pixel buffer and optional recognized text
// into a single deterministic natural-language description.
package vision

import (
	"image"
	"math"
	"sort"
)

// The closed palette of color names the sampler can produce. Callers may rely on this set
// being stable, e.g. to map names to UI colors.
var paletteNames = []string{
	"black", "gray", "silver", "white",
	"red", "green", "blue", "yellow", "purple", "cyan", "orange", "pink",
}

type colorRule struct {
	name       string
	minR, maxR float64
	minG, maxG float64
	minB, maxB float64
}

// Chromatic classification rules, evaluated in a fixed priority order: the first match wins.
// Kept as data rather than branching so the thresholds can be read (and tested) in one place.
var colorRules = []colorRule{
	{"red", 0.55, 1.0, 0.0, 0.35, 0.0, 0.35},
	{"green", 0.0, 0.35, 0.55, 1.0, 0.0, 0.35},
	{"blue", 0.0, 0.35, 0.0, 0.45, 0.55, 1.0},
	{"yellow", 0.6, 1.0, 0.6, 1.0, 0.0, 0.35},
	{"purple", 0.35, 0.8, 0.0, 0.35, 0.45, 1.0},
	{"cyan", 0.0, 0.35, 0.55, 1.0, 0.55, 1.0},
	{"orange", 0.6, 1.0, 0.35, 0.65, 0.0, 0.35},
	{"pink", 0.7, 1.0, 0.35, 0.75, 0.35, 0.8},
}

// classifyColor buckets a single pixel, with channels normalized to [0, 1], into a palette
// name. Deterministic for a given (r, g, b).
func classifyColor(r, g, b float64) string {
	// Achromatic pixels first: all channels close together, bucketed by luminance.
	if math.Abs(r-g) < 0.1 && math.Abs(g-b) < 0.1 && math.Abs(r-b) < 0.1 {
		luminance := (r + g + b) / 3
		switch {
		case luminance < 0.2:
			return "black"
		case luminance < 0.5:
			return "gray"
		case luminance < 0.9:
			return "silver"
		default:
			return "white"
		}
	}
	for _, rule := range colorRules {
		if r >= rule.minR && r <= rule.maxR &&
			g >= rule.minG && g <= rule.maxG &&
			b >= rule.minB && b <= rule.maxB {
			return rule.name
		}
	}
	// No rule matched: fall back to the strongest channel.
	if r >= g && r >= b {
		return "red"
	}
	if g >= b {
		return "green"
	}
	return "blue"
}

// SampleColors reduces an image to a small ranked list of dominant palette colors.
// The image is sampled on a fixed ~100x100 grid (step never below one pixel), every sampled
// pixel is classified, and the names are ranked by occurrence, ties broken by the order in
// which a color was first encountered. At most 3 names are returned.
func SampleColors(img image.Image) []string {
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil
	}
	xStep := bounds.Dx() / 100
	if xStep < 1 {
		xStep = 1
	}
	yStep := bounds.Dy() / 100
	if yStep < 1 {
		yStep = 1
	}
	counts := make(map[string]int)
	var encountered []string
	for y := bounds.Min.Y; y < bounds.Max.Y; y += yStep {
		for x := bounds.Min.X; x < bounds.Max.X; x += xStep {
			r, g, b, _ := img.At(x, y).RGBA()
			name := classifyColor(float64(r)/65535.0, float64(g)/65535.0, float64(b)/65535.0)
			if counts[name] == 0 {
				encountered = append(encountered, name)
			}
			counts[name]++
		}
	}
	sort.SliceStable(encountered, func(i, j int) bool {
		return counts[encountered[i]] > counts[encountered[j]]
	})
	if len(encountered) > 3 {
		encountered = encountered[:3]
	}
	return encountered
}
