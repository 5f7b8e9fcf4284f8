package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"rowkit/pkg/visualtest"
)

// Simple tool to generate reference images for visual regression tests
func main() {
	dir := flag.String("dir", filepath.Join("pkg", "visualtest", "testdata"), "directory holding *.js scenes")
	geometry := flag.Bool("geom", false, "also rewrite the .geom panel dumps")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Reference Image Generator for rowkit")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  go run ./cmd/update-references [-dir DIR] [-geom] [scene.js ...]")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "With no scenes, every *.js file in DIR is regenerated.")
		flag.PrintDefaults()
	}
	flag.Parse()

	scenes := flag.Args()
	if len(scenes) == 0 {
		var err error
		scenes, err = filepath.Glob(filepath.Join(*dir, "*.js"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	if len(scenes) == 0 {
		fmt.Fprintf(os.Stderr, "No scenes found in %s\n", *dir)
		os.Exit(1)
	}

	for _, scene := range scenes {
		if err := visualtest.UpdateReferenceImage(scene, visualtest.ReferencePath(scene)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to generate %s: %v\n", scene, err)
			os.Exit(1)
		}
		if *geometry {
			if err := visualtest.UpdateReferenceGeometry(scene, visualtest.GeometryPath(scene)); err != nil {
				fmt.Fprintf(os.Stderr, "Error: failed to dump %s: %v\n", scene, err)
				os.Exit(1)
			}
		}
	}
	fmt.Printf("✓ %d reference images generated\n", len(scenes))
}
