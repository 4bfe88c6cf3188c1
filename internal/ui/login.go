package ui

import (
	"log/slog"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/navdemo/internal/model"
	"github.com/ytget/navdemo/internal/router"
	"github.com/ytget/navdemo/internal/session"
	"github.com/ytget/navdemo/internal/validation"
)

// loginForm holds the login screen's editable state
type loginForm struct {
	email         *widget.Entry
	password      *widget.Entry
	emailError    *widget.Label
	passwordError *widget.Label
	summary       *widget.Label
	submitBtn     *widget.Button

	localization *Localization
	validator    *validation.Validator
	nav          router.Navigator
	logger       *slog.Logger
}

func newLoginForm(loc *Localization, v *validation.Validator, nav router.Navigator, logger *slog.Logger) *loginForm {
	f := &loginForm{
		email:         widget.NewEntry(),
		password:      widget.NewPasswordEntry(),
		emailError:    newErrorLabel(),
		passwordError: newErrorLabel(),
		summary:       newErrorLabel(),
		localization:  loc,
		validator:     v,
		nav:           nav,
		logger:        logger,
	}

	f.email.SetPlaceHolder(loc.GetText(KeyEmail))
	f.password.SetPlaceHolder(loc.GetText(KeyPassword))
	f.email.OnSubmitted = func(string) { f.submit() }
	f.password.OnSubmitted = func(string) { f.submit() }

	f.submitBtn = widget.NewButton(loc.GetText(KeyLogin), f.submit)
	f.submitBtn.Importance = widget.HighImportance
	return f
}

func (f *loginForm) credentials() model.Credentials {
	return model.Credentials{
		Email:    f.email.Text,
		Password: f.password.Text,
	}
}

func (f *loginForm) clearErrors() {
	setErrorText(f.emailError, "")
	setErrorText(f.passwordError, "")
	setErrorText(f.summary, "")
}

// submit validates presence of both fields and moves to the home screen
func (f *loginForm) submit() {
	f.clearErrors()

	err := f.validator.Struct(f.credentials())
	if err == nil {
		f.logger.Info("login accepted")
		f.nav.Navigate(router.RouteHome)
		return
	}

	verr, ok := validation.AsError(err)
	if !ok {
		f.logger.Error("login validation failed", "error", err)
		return
	}

	var missing []string
	if verr.Has("email") {
		setErrorText(f.emailError, f.localization.GetText(KeyEmailRequired))
		missing = append(missing, f.localization.GetText(KeyFieldEmail))
	}
	if verr.Has("password") {
		setErrorText(f.passwordError, f.localization.GetText(KeyPasswordRequired))
		missing = append(missing, f.localization.GetText(KeyFieldPassword))
	}

	conjunction := " " + f.localization.GetText(KeyConjunctionAnd) + " "
	setErrorText(f.summary, f.localization.Format(KeyPleaseEnter, map[string]any{
		"Fields": strings.Join(missing, conjunction),
	}))
	f.logger.Info("login rejected", "missing", verr.FieldNames())
}

func (f *loginForm) content() fyne.CanvasObject {
	return container.NewPadded(container.NewVBox(
		f.email,
		f.emailError,
		f.password,
		f.passwordError,
		container.NewCenter(f.submitBtn),
		f.summary,
	))
}

func (ui *RootUI) buildLoginView(nav router.Navigator, _ *session.Store) router.View {
	form := newLoginForm(ui.localization, ui.validator, nav, ui.logger)
	return router.View{
		Title:    ui.localization.GetText(KeyLoginTitle),
		ShowBack: false,
		Content:  form.content(),
	}
}
