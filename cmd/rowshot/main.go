package main

import (
	"flag"
	"fmt"
	"os"

	"rowkit/pkg/layout"
	"rowkit/pkg/render"
	"rowkit/pkg/script"
	"rowkit/pkg/text"
)

func main() {
	width := flag.Int("w", 0, "panel width in pixels (0 uses the preferred width)")
	height := flag.Int("h", 0, "panel height in pixels (0 uses the preferred height)")
	pad := flag.Int("pad", 8, "padding on every side of the panel")
	output := flag.String("o", "output.png", "output PNG file path")
	dump := flag.Bool("dump", false, "print the resolved geometry to stdout")
	font := flag.String("font", "", "TTF font for label text (default: bundled font, else built-in face)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: rowshot [flags] <scene.js>\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}
	input := flag.Arg(0)

	fonts := text.DefaultFontConfig()
	if *font != "" {
		fonts.Regular = *font
		fonts.Bold = ""
	}

	opts := script.Options{
		Width:   *width,
		Height:  *height,
		Padding: layout.Padding{Left: *pad, Right: *pad, Top: *pad, Bottom: *pad},
		Fonts:   fonts,
	}
	scene, err := script.RunFile(input, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *dump {
		if err := scene.Panel.Dump(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing geometry: %v\n", err)
			os.Exit(1)
		}
	}

	if scene.Panel.Width <= 0 || scene.Panel.Height <= 0 {
		fmt.Fprintf(os.Stderr, "Error: scene %s is empty (%dx%d)\n", input, scene.Panel.Width, scene.Panel.Height)
		os.Exit(1)
	}

	renderer := render.RenderPanel(scene.Panel, scene.Fonts())
	if err := renderer.SavePNG(*output); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving PNG: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Rendered %s to %s (%dx%d, %d rows, %d components)\n",
		input, *output, scene.Panel.Width, scene.Panel.Height,
		scene.Engine.RowCount(), scene.Engine.ComponentCount())
}
