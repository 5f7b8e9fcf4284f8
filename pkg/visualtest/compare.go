package visualtest

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// CompareResult contains the results of an image comparison
type CompareResult struct {
	Match           bool
	DifferentPixels int
	TotalPixels     int
	MaxDifference   int // largest per-channel difference, 0-255
}

// DifferentPercent is the share of pixels outside tolerance.
func (r *CompareResult) DifferentPercent() float64 {
	if r.TotalPixels == 0 {
		return 0
	}
	return float64(r.DifferentPixels) / float64(r.TotalPixels) * 100
}

// CompareOptions configures the image comparison
type CompareOptions struct {
	// Tolerance is the largest per-channel difference (0-255) still
	// counted as equal.
	Tolerance int

	// FuzzyRadius lets a pixel match any reference pixel within this many
	// pixels, absorbing one or two pixel text shifts.
	FuzzyRadius int

	// MaxDifferentPercent passes a comparison whose share of differing
	// pixels is at or below this value.
	MaxDifferentPercent float64

	// DiffImagePath, when set, receives an image of a failed comparison:
	// differing pixels in red over a grey copy of the render.
	DiffImagePath string
}

// DefaultOptions returns the options scene references are checked with.
func DefaultOptions() CompareOptions {
	return CompareOptions{Tolerance: 2}
}

// CompareScene renders a scene script with ReferenceOptions and compares
// the result with the PNG stored next to it.
func CompareScene(scriptPath string, opts CompareOptions) (*CompareResult, error) {
	src, err := os.ReadFile(scriptPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}
	actual, err := RenderScript(scriptPath, string(src), ReferenceOptions())
	if err != nil {
		return nil, err
	}
	expected, err := loadPNG(ReferencePath(scriptPath))
	if err != nil {
		return nil, fmt.Errorf("failed to load reference image: %w", err)
	}
	return CompareImage(actual, expected, opts)
}

// CompareImage compares a render with its reference pixel by pixel.
func CompareImage(actual, expected image.Image, opts CompareOptions) (*CompareResult, error) {
	bounds := actual.Bounds()
	if bounds != expected.Bounds() {
		return &CompareResult{}, fmt.Errorf("image dimensions differ: actual=%v, expected=%v", bounds, expected.Bounds())
	}

	result := &CompareResult{TotalPixels: bounds.Dx() * bounds.Dy()}
	var diff *image.RGBA
	if opts.DiffImagePath != "" {
		diff = image.NewRGBA(bounds)
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			a := actual.At(x, y)
			d := channelDiff(a, expected.At(x, y))
			result.MaxDifference = max(result.MaxDifference, d)

			same := d <= opts.Tolerance ||
				(opts.FuzzyRadius > 0 && nearMatch(a, expected, x, y, opts))
			if !same {
				result.DifferentPixels++
			}
			if diff != nil {
				diff.Set(x, y, diffPixel(a, same))
			}
		}
	}

	result.Match = result.DifferentPixels == 0 ||
		(opts.MaxDifferentPercent > 0 && result.DifferentPercent() <= opts.MaxDifferentPercent)

	if diff != nil && !result.Match {
		if err := savePNG(diff, opts.DiffImagePath); err != nil {
			return result, fmt.Errorf("failed to save diff image: %w", err)
		}
	}
	return result, nil
}

// nearMatch reports whether c matches any expected pixel within the fuzzy
// radius of (x, y).
func nearMatch(c color.Color, expected image.Image, x, y int, opts CompareOptions) bool {
	r := image.Rect(x-opts.FuzzyRadius, y-opts.FuzzyRadius, x+opts.FuzzyRadius+1, y+opts.FuzzyRadius+1).
		Intersect(expected.Bounds())
	for ny := r.Min.Y; ny < r.Max.Y; ny++ {
		for nx := r.Min.X; nx < r.Max.X; nx++ {
			if channelDiff(c, expected.At(nx, ny)) <= opts.Tolerance {
				return true
			}
		}
	}
	return false
}

// channelDiff is the largest 8-bit difference across the four channels.
func channelDiff(a, b color.Color) int {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return max(
		absDiff(ar, br),
		absDiff(ag, bg),
		absDiff(ab, bb),
		absDiff(aa, ba),
	)
}

func absDiff(a, b uint32) int {
	d := int(a>>8) - int(b>>8)
	if d < 0 {
		return -d
	}
	return d
}

func diffPixel(c color.Color, same bool) color.Color {
	if !same {
		return color.RGBA{255, 0, 0, 255}
	}
	g := color.GrayModel.Convert(c).(color.Gray)
	return color.RGBA{g.Y, g.Y, g.Y, 255}
}

func loadPNG(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return png.Decode(file)
}

func savePNG(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}
