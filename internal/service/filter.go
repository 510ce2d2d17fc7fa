package service

import (
	"strings"

	"github.com/spec-kit/employee-directory/internal/domain"
)

// Selector values accepted by Criteria.
const (
	SelectorAll    = "all"
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Criteria holds the three independent list predicates. Empty selectors
// behave like SelectorAll.
type Criteria struct {
	Search string
	Gender string
	Status string
}

// Validate reports unknown selector values.
func (c Criteria) Validate() FieldErrors {
	errs := FieldErrors{}
	if c.Gender != "" && c.Gender != SelectorAll && !domain.Gender(c.Gender).Valid() {
		errs["gender"] = "gender must be all, Male, Female or Other"
	}
	switch c.Status {
	case "", SelectorAll, StatusActive, StatusInactive:
	default:
		errs["status"] = "status must be all, active or inactive"
	}
	return errs
}

// Match reports whether e satisfies every predicate.
func (c Criteria) Match(e domain.Employee) bool {
	if c.Search != "" && !strings.Contains(strings.ToLower(e.FullName), strings.ToLower(c.Search)) {
		return false
	}
	if c.Gender != "" && c.Gender != SelectorAll && string(e.Gender) != c.Gender {
		return false
	}
	switch c.Status {
	case StatusActive:
		return e.Active
	case StatusInactive:
		return !e.Active
	}
	return true
}

// FilterEmployees returns the records matching c in their original order.
// The input is not modified.
func FilterEmployees(records []domain.Employee, c Criteria) []domain.Employee {
	out := make([]domain.Employee, 0, len(records))
	for _, e := range records {
		if c.Match(e) {
			out = append(out, e)
		}
	}
	return out
}

// Summary carries the dashboard counters.
type Summary struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

// Summarize counts records by status.
func Summarize(records []domain.Employee) Summary {
	s := Summary{Total: len(records)}
	for _, e := range records {
		if e.Active {
			s.Active++
		}
	}
	s.Inactive = s.Total - s.Active
	return s
}
