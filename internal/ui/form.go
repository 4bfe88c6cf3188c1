package ui

import (
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/navdemo/internal/model"
	"github.com/ytget/navdemo/internal/router"
	"github.com/ytget/navdemo/internal/session"
	"github.com/ytget/navdemo/internal/validation"
)

// entryForm holds the form screen's editable state
type entryForm struct {
	name         *widget.Entry
	nameError    *widget.Label
	dob          *widget.Entry
	pickDateBtn  *widget.Button
	gender       *widget.RadioGroup
	address      *widget.Entry
	country      *widget.Select
	countryError *widget.Label
	submitBtn    *widget.Button

	localization *Localization
	validator    *validation.Validator
	nav          router.Navigator
	store        *session.Store
	window       fyne.Window
	logger       *slog.Logger
}

func newEntryForm(ui *RootUI, nav router.Navigator, store *session.Store) *entryForm {
	loc := ui.localization
	f := &entryForm{
		name:         widget.NewEntry(),
		nameError:    newErrorLabel(),
		dob:          widget.NewEntry(),
		address:      widget.NewMultiLineEntry(),
		countryError: newErrorLabel(),
		localization: loc,
		validator:    ui.validator,
		nav:          nav,
		store:        store,
		window:       ui.window,
		logger:       ui.logger,
	}

	f.name.SetPlaceHolder(loc.GetText(KeyFullName))

	f.dob.SetPlaceHolder(loc.GetText(KeyDateOfBirth))
	f.dob.Disable() // filled only by the date picker
	f.pickDateBtn = widget.NewButtonWithIcon("", theme.HistoryIcon(), f.showDatePicker)

	genders := make([]string, 0, len(model.Genders()))
	for _, g := range model.Genders() {
		genders = append(genders, g.String())
	}
	f.gender = widget.NewRadioGroup(genders, nil)
	f.gender.Horizontal = true

	f.address.SetPlaceHolder(loc.GetText(KeyAddress))
	f.address.SetMinRowsVisible(AddressLines)
	f.address.Wrapping = fyne.TextWrapWord

	countries := make([]string, 0, len(model.Countries()))
	for _, c := range model.Countries() {
		countries = append(countries, c.String())
	}
	f.country = widget.NewSelect(countries, nil)
	f.country.PlaceHolder = loc.GetText(KeyCountry)

	f.submitBtn = widget.NewButtonWithIcon(loc.GetText(KeySubmit), theme.ConfirmIcon(), f.submit)
	f.submitBtn.Importance = widget.HighImportance
	return f
}

// snapshot returns the current field values
func (f *entryForm) snapshot() model.FormData {
	return model.FormData{
		Name:    f.name.Text,
		DOB:     f.dob.Text,
		Gender:  model.Gender(f.gender.Selected),
		Address: f.address.Text,
		Country: model.Country(f.country.Selected),
	}
}

// submit requires a name and a country, then stores the snapshot and shows details
func (f *entryForm) submit() {
	setErrorText(f.nameError, "")
	setErrorText(f.countryError, "")

	data := f.snapshot()
	err := f.validator.Struct(data)
	if err != nil {
		verr, ok := validation.AsError(err)
		if !ok {
			f.logger.Error("form validation failed", "error", err)
			return
		}
		if verr.Has("name") {
			setErrorText(f.nameError, f.localization.GetText(KeyNameRequired))
		}
		if verr.Has("country") {
			setErrorText(f.countryError, f.localization.GetText(KeySelectCountry))
		}
		f.logger.Info("form rejected", "missing", verr.FieldNames())
		return
	}

	f.store.Set(session.KeyFormData, data)
	f.logger.Info("form submitted", "session", f.store.ID())
	f.nav.Navigate(router.RouteDetails)
}

// setDOB fills the date of birth field. Dates outside the accepted range are
// ignored and false is returned.
func (f *entryForm) setDOB(t time.Time) bool {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	if day.Before(MinDateOfBirth) || day.After(MaxDateOfBirth) {
		return false
	}
	f.dob.SetText(day.Format(DateFormat))
	return true
}

func (f *entryForm) showDatePicker() {
	if f.window == nil {
		return
	}

	initial := time.Now()
	if picked, err := time.Parse(DateFormat, f.dob.Text); err == nil {
		initial = picked
	}

	var picker dialog.Dialog
	calendar := widget.NewCalendar(initial, func(t time.Time) {
		if f.setDOB(t) {
			picker.Hide()
		}
	})
	picker = dialog.NewCustom(f.localization.GetText(KeyPickDate), f.localization.GetText(KeyClose), calendar, f.window)
	picker.Show()
}

func (f *entryForm) content() fyne.CanvasObject {
	genderRow := container.NewHBox(widget.NewLabel(f.localization.GetText(KeyGender)+":"), f.gender)

	return container.NewVScroll(container.NewPadded(container.NewVBox(
		f.name,
		f.nameError,
		container.NewBorder(nil, nil, nil, f.pickDateBtn, f.dob),
		genderRow,
		f.address,
		f.country,
		f.countryError,
		f.submitBtn,
	)))
}

func (ui *RootUI) buildFormView(nav router.Navigator, store *session.Store) router.View {
	form := newEntryForm(ui, nav, store)
	return router.View{
		Title:    ui.localization.GetText(KeyFormTitle),
		ShowBack: true,
		Content:  form.content(),
	}
}
