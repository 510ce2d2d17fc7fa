package events

import (
	"time"

	"github.com/spec-kit/employee-directory/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventEmployeeCreated       EventType = "employee_created"
	EventEmployeeUpdated       EventType = "employee_updated"
	EventEmployeeDeleted       EventType = "employee_deleted"
	EventEmployeeStatusToggled EventType = "employee_status_toggled"
)

// AllEmployeeEvents lists every event the directory publishes.
var AllEmployeeEvents = []EventType{
	EventEmployeeCreated,
	EventEmployeeUpdated,
	EventEmployeeDeleted,
	EventEmployeeStatusToggled,
}

// Event represents a change to the employee collection.
type Event struct {
	ID         string          `json:"id"`
	Type       EventType       `json:"type"`
	EmployeeID int64           `json:"employee_id"`
	Actor      string          `json:"actor,omitempty"`
	Timestamp  time.Time       `json:"timestamp"`
	Employee   domain.Employee `json:"employee"`
}
