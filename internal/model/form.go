package model

// Placeholder is shown in place of an empty value
const Placeholder = "-"

// Country is one of the selectable countries
type Country string

const (
	CountryFinland Country = "Finland"
	CountrySweden  Country = "Sweden"
	CountryNorway  Country = "Norway"
	CountryEstonia Country = "Estonia"
	CountryOther   Country = "Other"
)

// Countries returns the selectable countries in display order
func Countries() []Country {
	return []Country{CountryFinland, CountrySweden, CountryNorway, CountryEstonia, CountryOther}
}

// String returns the string representation of Country
func (c Country) String() string {
	return string(c)
}

// IsValid returns true if c is one of Countries
func (c Country) IsValid() bool {
	for _, known := range Countries() {
		if c == known {
			return true
		}
	}
	return false
}

// Gender is the optional gender choice. The zero value means no selection.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Genders returns the selectable genders in display order
func Genders() []Gender {
	return []Gender{GenderMale, GenderFemale, GenderOther}
}

// String returns the string representation of Gender
func (g Gender) String() string {
	return string(g)
}

// Credentials is what the login screen collects. Only presence is checked.
type Credentials struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// FormData is the snapshot written to the session on a successful form submit
type FormData struct {
	Name    string  `json:"name" validate:"required"`
	DOB     string  `json:"dob"`
	Gender  Gender  `json:"gender"`
	Address string  `json:"address"`
	Country Country `json:"country" validate:"required,country"`
}

// IsZero returns true if nothing has been submitted yet
func (f FormData) IsZero() bool {
	return f == FormData{}
}

// DisplayTitle returns the name, or fallback when the name is empty
func (f FormData) DisplayTitle(fallback string) string {
	if f.Name != "" {
		return f.Name
	}
	return fallback
}

// ValueOrPlaceholder returns value, or Placeholder when value is empty
func ValueOrPlaceholder(value string) string {
	if value == "" {
		return Placeholder
	}
	return value
}
