package dto

import (
	"github.com/spec-kit/employee-directory/internal/domain"
	"github.com/spec-kit/employee-directory/internal/service"
)

// EmployeeRequest is the add/edit form payload.
type EmployeeRequest struct {
	FullName     string `json:"fullName"`
	Gender       string `json:"gender"`
	DateOfBirth  string `json:"dateOfBirth"`
	State        string `json:"state"`
	ProfileImage string `json:"profileImage"`
	Active       *bool  `json:"active"`
}

// Input converts the payload to a service draft.
func (r EmployeeRequest) Input() service.DraftInput {
	return service.DraftInput{
		FullName:     r.FullName,
		Gender:       r.Gender,
		DateOfBirth:  r.DateOfBirth,
		State:        r.State,
		ProfileImage: r.ProfileImage,
		Active:       r.Active,
	}
}

// EmployeeResponse is one row of the employee list.
type EmployeeResponse struct {
	ID           int64         `json:"id"`
	FullName     string        `json:"fullName"`
	Gender       domain.Gender `json:"gender"`
	DateOfBirth  string        `json:"dateOfBirth"`
	State        string        `json:"state"`
	ProfileImage string        `json:"profileImage"`
	Active       bool          `json:"active"`
}

// EmployeeListResponse carries the filtered rows and the filters applied.
type EmployeeListResponse struct {
	Items   []EmployeeResponse `json:"items"`
	Count   int                `json:"count"`
	Filters EmployeeListQuery  `json:"filters"`
}

// EmployeeListQuery captures the list filters.
type EmployeeListQuery struct {
	Search string `json:"search" query:"search"`
	Gender string `json:"gender" query:"gender"`
	Status string `json:"status" query:"status"`
}

// Criteria converts the query to service criteria.
func (q EmployeeListQuery) Criteria() service.Criteria {
	return service.Criteria{Search: q.Search, Gender: q.Gender, Status: q.Status}
}

// ImageUploadResponse returns an encoded profile image.
type ImageUploadResponse struct {
	ProfileImage string `json:"profileImage"`
}

// NewEmployeeResponse maps a record to its response shape.
func NewEmployeeResponse(e domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID,
		FullName:     e.FullName,
		Gender:       e.Gender,
		DateOfBirth:  e.DateOfBirth,
		State:        e.State,
		ProfileImage: e.ProfileImage,
		Active:       e.Active,
	}
}

// NewEmployeeResponses maps records preserving order.
func NewEmployeeResponses(employees []domain.Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, NewEmployeeResponse(e))
	}
	return out
}
