package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// RootUI owns the window, the app bar and the router; each screen is built by a
// builder in its own file and keeps its editable widgets in a form record.
// All UI strings are localized via Localization.
