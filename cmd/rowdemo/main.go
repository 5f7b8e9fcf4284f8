package main

import (
	"flag"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"rowkit/pkg/fynerow"
	"rowkit/pkg/layout"
	"rowkit/pkg/render"
	"rowkit/pkg/script"
	"rowkit/pkg/text"
)

func main() {
	scene := flag.String("scene", "", "scene script to show in a preview tab")
	flag.Parse()

	a := app.New()
	w := a.NewWindow("rowkit demo")

	status := widget.NewLabel("Fill in the form")
	tabs := container.NewAppTabs(container.NewTabItem("Form", form(status)))

	if *scene != "" {
		preview, err := previewScene(*scene)
		if err != nil {
			log.Printf("scene: %v", err)
		} else {
			tabs.Append(container.NewTabItem("Scene", preview))
		}
	}

	w.SetContent(container.NewBorder(nil, status, nil, nil, tabs))
	w.Resize(fyne.NewSize(480, 320))
	w.ShowAndRun()
}

// Size group ids. Label and component groups share one id space.
const (
	labelGroup  = 1
	buttonGroup = 2
)

// form builds a labelled form whose notes field takes the spare height and
// whose buttons sit against the right edge.
func form(status *widget.Label) fyne.CanvasObject {
	pad := layout.Padding{Left: 8, Right: 8, Top: 8, Bottom: 8}
	rows := fynerow.New(pad)

	field := layout.DefaultConstraints()
	field.LabelSizeGroup = labelGroup
	field.LabelAlignment = layout.AlignMiddle
	field.GrowX = true

	name := widget.NewEntry()
	rows.AddLabeled(widget.NewLabel("Name:"), name, field)

	rows.AddRow()
	email := widget.NewEntry()
	rows.AddLabeled(widget.NewLabel("E-mail:"), email, field)

	rows.AddRow()
	notes := widget.NewMultiLineEntry()
	notesCons := field
	notesCons.LabelAlignment = layout.AlignTop
	notesCons.GrowY = true
	rows.AddLabeled(widget.NewLabel("Notes:"), notes, notesCons)

	rows.AddRow().SetOrientation(layout.RowRight)
	buttons := layout.DefaultConstraints()
	buttons.SizeGroup = buttonGroup
	rows.Add(widget.NewButton("OK", func() {
		status.SetText(fmt.Sprintf("Saved %s <%s>", name.Text, email.Text))
	}), buttons)
	rows.Add(widget.NewButton("Cancel", func() {
		name.SetText("")
		email.SetText("")
		notes.SetText("")
		status.SetText("Cleared")
	}), buttons)

	return rows.Container()
}

// previewScene lays out a scene script and shows it as an image.
func previewScene(path string) (fyne.CanvasObject, error) {
	fonts := text.DefaultFontConfig()
	s, err := script.RunFile(path, script.Options{
		Padding: layout.Padding{Left: 8, Right: 8, Top: 8, Bottom: 8},
		Fonts:   fonts,
	})
	if err != nil {
		return nil, err
	}
	img := canvas.NewImageFromImage(render.RenderPanel(s.Panel, s.Fonts()).Image())
	img.FillMode = canvas.ImageFillOriginal
	return container.NewScroll(img), nil
}
