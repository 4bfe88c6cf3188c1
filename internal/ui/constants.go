package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Application identity
const (
	AppID   = "com.ytget.navdemo"
	AppName = "Navigation Demo"
)

// Layout sizing
const (
	AddressLines = 2
)

// Date of birth picker
const (
	DateFormat = "2006-01-02"
)

// Accepted date of birth range
var (
	MinDateOfBirth = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)
	MaxDateOfBirth = time.Date(2100, time.December, 31, 0, 0, 0, 0, time.UTC)
)
