package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/navdemo/internal/model"
	"github.com/ytget/navdemo/internal/router"
	"github.com/ytget/navdemo/internal/session"
)

// detailRow is one label/value line of the details card
type detailRow struct {
	Label string
	Value string
}

// detailsCard renders a submitted form snapshot
type detailsCard struct {
	title    *widget.Label
	subtitle *widget.Label
	rows     []detailRow
	card     *widget.Card
}

func detailRows(loc *Localization, data model.FormData) []detailRow {
	return []detailRow{
		{Label: loc.GetText(KeyDateOfBirth), Value: model.ValueOrPlaceholder(data.DOB)},
		{Label: loc.GetText(KeyGender), Value: model.ValueOrPlaceholder(data.Gender.String())},
		{Label: loc.GetText(KeyAddress), Value: model.ValueOrPlaceholder(data.Address)},
		{Label: loc.GetText(KeyCountry), Value: model.ValueOrPlaceholder(data.Country.String())},
	}
}

func newDetailsCard(loc *Localization, data model.FormData) *detailsCard {
	c := &detailsCard{
		title:    widget.NewLabelWithStyle(data.DisplayTitle(loc.GetText(KeyDetailsTitle)), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		subtitle: widget.NewLabel(loc.GetText(KeySubmittedDetails)),
		rows:     detailRows(loc, data),
	}
	c.title.Wrapping = fyne.TextWrapWord

	header := container.NewBorder(nil, nil, widget.NewIcon(theme.AccountIcon()), nil,
		container.NewVBox(c.title, c.subtitle))

	lines := container.NewVBox(header, widget.NewSeparator())
	for _, row := range c.rows {
		value := widget.NewLabel(row.Value)
		value.Wrapping = fyne.TextWrapWord
		lines.Add(container.NewBorder(nil, nil,
			widget.NewLabelWithStyle(row.Label+":", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}), nil,
			value))
	}

	c.card = widget.NewCard("", "", lines)
	return c
}

func (ui *RootUI) buildDetailsView(_ router.Navigator, store *session.Store) router.View {
	data, _ := session.GetAs[model.FormData](store, session.KeyFormData)
	card := newDetailsCard(ui.localization, data)

	return router.View{
		Title:    ui.localization.GetText(KeyDetailsTitle),
		ShowBack: true,
		Content:  container.NewVScroll(container.NewPadded(card.card)),
	}
}
