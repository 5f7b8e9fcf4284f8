package visualtest

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"rowkit/pkg/layout"
	"rowkit/pkg/render"
	"rowkit/pkg/script"
)

// ReferenceOptions are the settings reference images are rendered with: the
// preferred panel size, an 8px padding and gg's built-in face, so output does
// not depend on installed fonts.
func ReferenceOptions() script.Options {
	return script.Options{
		Padding: layout.Padding{Left: 8, Right: 8, Top: 8, Bottom: 8},
	}
}

// RenderScript evaluates a scene script and renders the laid out panel.
func RenderScript(name, src string, opts script.Options) (image.Image, error) {
	s, err := script.Run(name, src, opts)
	if err != nil {
		return nil, err
	}
	return render.RenderPanel(s.Panel, s.Fonts()).Image(), nil
}

// RenderScriptToFile renders a scene script to a PNG file
func RenderScriptToFile(scriptPath, outputPath string, opts script.Options) error {
	s, err := script.RunFile(scriptPath, opts)
	if err != nil {
		return err
	}

	renderer := render.RenderPanel(s.Panel, s.Fonts())

	// Ensure output directory exists
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	// Save
	if err := renderer.SavePNG(outputPath); err != nil {
		return fmt.Errorf("save error: %w", err)
	}

	return nil
}

// ReferencePath returns the reference image path for a scene script.
func ReferencePath(scriptPath string) string {
	return withExt(scriptPath, ".png")
}

// GeometryPath returns the path of the panel dump a scene script is checked
// against.
func GeometryPath(scriptPath string) string {
	return withExt(scriptPath, ".geom")
}

func withExt(path, ext string) string {
	return path[:len(path)-len(filepath.Ext(path))] + ext
}

// DumpScene lays out a scene script with ReferenceOptions and returns the
// panel dump.
func DumpScene(scriptPath string) ([]byte, error) {
	s, err := script.RunFile(scriptPath, ReferenceOptions())
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := s.Panel.Dump(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UpdateReferenceImage generates a new reference image
// Use this when you've intentionally changed rendering behavior
func UpdateReferenceImage(scriptPath, referencePath string) error {
	fmt.Printf("Updating reference image: %s\n", referencePath)
	return RenderScriptToFile(scriptPath, referencePath, ReferenceOptions())
}

// UpdateReferenceGeometry rewrites the panel dump of a scene script.
func UpdateReferenceGeometry(scriptPath, geometryPath string) error {
	dump, err := DumpScene(scriptPath)
	if err != nil {
		return err
	}
	fmt.Printf("Updating reference geometry: %s\n", geometryPath)
	return os.WriteFile(geometryPath, dump, 0644)
}
