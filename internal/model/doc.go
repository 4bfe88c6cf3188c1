package model

// Package model defines the data captured by the screens: login credentials,
// the submitted form snapshot and the closed option sets used by its
// selectors. Structures carry validation tags consumed by the validation package.
