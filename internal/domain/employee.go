package domain

import "time"

// DateLayout is the calendar date format used for dates of birth.
const DateLayout = "2006-01-02"

// Gender enumerates the selectable genders.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Genders lists genders in the order the form offers them.
var Genders = []Gender{GenderMale, GenderFemale, GenderOther}

// Valid reports whether g is one of the enumerated genders.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// Employee is a persisted directory record.
type Employee struct {
	ID           int64  `json:"id"`
	FullName     string `json:"fullName"`
	Gender       Gender `json:"gender"`
	DateOfBirth  string `json:"dateOfBirth"`
	State        string `json:"state"`
	ProfileImage string `json:"profileImage,omitempty"`
	Active       bool   `json:"active"`
}

// Draft is unsaved record data prior to validation and persistence.
type Draft struct {
	FullName     string
	Gender       Gender
	DateOfBirth  string
	State        string
	ProfileImage string
	Active       bool
}

// Draft returns the employee's fields without the id.
func (e Employee) Draft() Draft {
	return Draft{
		FullName:     e.FullName,
		Gender:       e.Gender,
		DateOfBirth:  e.DateOfBirth,
		State:        e.State,
		ProfileImage: e.ProfileImage,
		Active:       e.Active,
	}
}

// WithID builds a record from the draft under the given id.
func (d Draft) WithID(id int64) Employee {
	return Employee{
		ID:           id,
		FullName:     d.FullName,
		Gender:       d.Gender,
		DateOfBirth:  d.DateOfBirth,
		State:        d.State,
		ProfileImage: d.ProfileImage,
		Active:       d.Active,
	}
}

// BirthDate parses the date of birth.
func (e Employee) BirthDate() (time.Time, error) {
	return time.Parse(DateLayout, e.DateOfBirth)
}
