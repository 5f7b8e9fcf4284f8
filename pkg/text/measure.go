package text

import (
	"math"
	"os"
	"path/filepath"
	"runtime"

	"github.com/fogleman/gg"
)

// DefaultFontSize is the point size used when a FontConfig leaves Size unset.
const DefaultFontSize = 13

// FontConfig holds the font used to measure and draw label text. When the
// font file cannot be loaded, gg's built-in 7x13 bitmap face is used instead.
type FontConfig struct {
	Regular string
	Bold    string
	Size    float64
}

// defaultFontsDir returns the fonts directory relative to this source file.
func defaultFontsDir() string {
	// Try relative to executable first
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Join(filepath.Dir(exe), "..", "fonts")
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	// Fall back to compile-time source location
	_, thisFile, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(thisFile), "..", "..", "fonts")
}

// DefaultFontConfig returns a FontConfig pointing at Atkinson Hyperlegible
// files in an optional fonts directory next to the binary or the source tree.
// No fonts ship with the module, so measuring and drawing normally fall back
// to gg's built-in face; drop the TTF files into fonts/ to use them.
func DefaultFontConfig() FontConfig {
	dir := defaultFontsDir()
	return FontConfig{
		Regular: filepath.Join(dir, "AtkinsonHyperlegible-Regular.ttf"),
		Bold:    filepath.Join(dir, "AtkinsonHyperlegible-Bold.ttf"),
		Size:    DefaultFontSize,
	}
}

// FontPath returns the font path for the given weight.
func (fc FontConfig) FontPath(bold bool) string {
	if bold && fc.Bold != "" {
		return fc.Bold
	}
	return fc.Regular
}

func (fc FontConfig) size() float64 {
	if fc.Size <= 0 {
		return DefaultFontSize
	}
	return fc.Size
}

// Apply sets the configured face on dc. It reports false when the font could
// not be loaded and dc kept its built-in face.
func (fc FontConfig) Apply(dc *gg.Context, bold bool) bool {
	path := fc.FontPath(bold)
	if path == "" {
		return false
	}
	return dc.LoadFontFace(path, fc.size()) == nil
}

// Measure returns the whole-pixel size of s, rounded up.
func (fc FontConfig) Measure(s string, bold bool) (width, height int) {
	w, h := MeasureText(s, fc.size(), fc.FontPath(bold))
	return int(math.Ceil(w)), int(math.Ceil(h))
}

// MeasureText measures the width and height of text with the given font size.
// If the font cannot be loaded the text is measured with gg's default face.
func MeasureText(text string, fontSize float64, fontPath string) (width, height float64) {
	// Use a temporary context for measurement
	dc := gg.NewContext(1, 1)
	if fontPath != "" {
		// On failure dc keeps its default face.
		_ = dc.LoadFontFace(fontPath, fontSize)
	}
	return dc.MeasureString(text)
}
