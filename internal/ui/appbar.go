package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// AppBar is the title row above every screen with an optional back button
type AppBar struct {
	title     *widget.Label
	back      *widget.Button
	container *fyne.Container
}

// NewAppBar creates an app bar whose back button calls onBack
func NewAppBar(onBack func()) *AppBar {
	bar := &AppBar{
		title: widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		back:  widget.NewButtonWithIcon("", theme.NavigateBackIcon(), onBack),
	}
	bar.back.Importance = widget.LowImportance
	bar.back.Hide()

	bar.container = container.NewBorder(nil, widget.NewSeparator(), bar.back, nil, bar.title)
	return bar
}

// Container returns the bar's canvas object
func (b *AppBar) Container() fyne.CanvasObject {
	return b.container
}

// Update shows title and toggles the back button
func (b *AppBar) Update(title string, showBack bool) {
	b.title.SetText(title)
	if showBack {
		b.back.Show()
	} else {
		b.back.Hide()
	}
}

// Title returns the displayed title
func (b *AppBar) Title() string {
	return b.title.Text
}

// BackVisible reports whether the back button is shown
func (b *AppBar) BackVisible() bool {
	return b.back.Visible()
}

// newErrorLabel creates a hidden label for inline validation messages
func newErrorLabel() *widget.Label {
	label := widget.NewLabel("")
	label.Importance = widget.DangerImportance
	label.Wrapping = fyne.TextWrapWord
	label.Hide()
	return label
}

// setErrorText shows text in label, or hides the label when text is empty
func setErrorText(label *widget.Label, text string) {
	label.SetText(text)
	if text == "" {
		label.Hide()
		return
	}
	label.Show()
}
