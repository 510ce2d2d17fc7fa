package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/employee-directory/internal/domain"
	"github.com/spec-kit/employee-directory/internal/events"
	"github.com/spec-kit/employee-directory/internal/repository"
	apperrors "github.com/spec-kit/employee-directory/pkg/util/errorutil"
)

// EmployeeService coordinates validation, storage and change events.
type EmployeeService struct {
	employees     repository.EmployeeRepository
	dispatcher    events.Dispatcher
	logger        *zap.Logger
	now           func() time.Time
	imageMaxBytes int64
}

// EmployeeDependencies bundles collaborators for the employee service.
type EmployeeDependencies struct {
	EmployeeRepo  repository.EmployeeRepository
	Dispatcher    events.Dispatcher
	Logger        *zap.Logger
	Clock         func() time.Time
	ImageMaxBytes int64
}

// DraftInput is a draft as submitted by a client. Nil fields take the form
// defaults.
type DraftInput struct {
	FullName     string
	Gender       string
	DateOfBirth  string
	State        string
	ProfileImage string
	Active       *bool
}

// FormDefaults describes the add form's initial values and choices.
type FormDefaults struct {
	Draft   domain.Employee `json:"draft"`
	Genders []domain.Gender `json:"genders"`
	States  []string        `json:"states"`
}

// NewEmployeeService constructs the service.
func NewEmployeeService(deps EmployeeDependencies) *EmployeeService {
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	maxBytes := deps.ImageMaxBytes
	if maxBytes <= 0 {
		maxBytes = 2 << 20
	}
	return &EmployeeService{
		employees:     deps.EmployeeRepo,
		dispatcher:    deps.Dispatcher,
		logger:        logger,
		now:           clock,
		imageMaxBytes: maxBytes,
	}
}

// List returns the employees matching criteria.
func (s *EmployeeService) List(ctx context.Context, criteria Criteria) ([]domain.Employee, error) {
	if errs := criteria.Validate(); len(errs) > 0 {
		return nil, apperrors.NewFieldErrors(errs)
	}
	return FilterEmployees(s.employees.List(ctx), criteria), nil
}

// Summary returns total/active/inactive counts over the whole collection.
func (s *EmployeeService) Summary(ctx context.Context) Summary {
	return Summarize(s.employees.List(ctx))
}

// Get fetches one employee.
func (s *EmployeeService) Get(ctx context.Context, id int64) (domain.Employee, error) {
	employee, ok := s.employees.Get(ctx, id)
	if !ok {
		return domain.Employee{}, notFound(id)
	}
	return employee, nil
}

// Create validates input and appends a new employee.
func (s *EmployeeService) Create(ctx context.Context, actor string, input DraftInput) (domain.Employee, error) {
	draft, err := s.validated(input)
	if err != nil {
		return domain.Employee{}, err
	}
	employee, err := s.employees.Add(ctx, draft)
	if err != nil {
		return domain.Employee{}, apperrors.NewInternalError(err)
	}
	s.publishEvent(ctx, events.EventEmployeeCreated, actor, employee)
	return employee, nil
}

// Update validates input and replaces every field of employee id.
func (s *EmployeeService) Update(ctx context.Context, actor string, id int64, input DraftInput) (domain.Employee, error) {
	draft, err := s.validated(input)
	if err != nil {
		return domain.Employee{}, err
	}
	employee, found, err := s.employees.Update(ctx, id, draft)
	if err != nil {
		return domain.Employee{}, apperrors.NewInternalError(err)
	}
	if !found {
		return domain.Employee{}, notFound(id)
	}
	s.publishEvent(ctx, events.EventEmployeeUpdated, actor, employee)
	return employee, nil
}

// Delete removes employee id.
func (s *EmployeeService) Delete(ctx context.Context, actor string, id int64) error {
	employee, found, err := s.employees.Delete(ctx, id)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	if !found {
		return notFound(id)
	}
	s.publishEvent(ctx, events.EventEmployeeDeleted, actor, employee)
	return nil
}

// ToggleStatus flips the active flag of employee id.
func (s *EmployeeService) ToggleStatus(ctx context.Context, actor string, id int64) (domain.Employee, error) {
	employee, found, err := s.employees.ToggleStatus(ctx, id)
	if err != nil {
		return domain.Employee{}, apperrors.NewInternalError(err)
	}
	if !found {
		return domain.Employee{}, notFound(id)
	}
	s.publishEvent(ctx, events.EventEmployeeStatusToggled, actor, employee)
	return employee, nil
}

// EncodeImage turns an uploaded file into a data URI usable as profileImage.
func (s *EmployeeService) EncodeImage(r io.Reader, contentType string) (string, error) {
	uri, err := EncodeImage(r, contentType, s.imageMaxBytes)
	switch {
	case errors.Is(err, ErrNotAnImage):
		return "", apperrors.NewFieldErrors(map[string]string{FieldProfileImage: MsgImageInvalid})
	case errors.Is(err, ErrImageTooLarge):
		return "", apperrors.NewPayloadTooLarge(err.Error())
	case err != nil:
		return "", apperrors.NewInternalError(err)
	}
	return uri, nil
}

// FormDefaults returns the values a blank add form starts with.
func (s *EmployeeService) FormDefaults() FormDefaults {
	return FormDefaults{
		Draft: domain.Employee{
			Gender: domain.GenderMale,
			State:  domain.DefaultState,
			Active: true,
		},
		Genders: domain.Genders,
		States:  domain.States,
	}
}

func (s *EmployeeService) validated(input DraftInput) (domain.Draft, error) {
	draft := input.Draft()
	if errs := ValidateDraft(draft, s.now()); len(errs) > 0 {
		return domain.Draft{}, apperrors.NewFieldErrors(errs)
	}
	return draft, nil
}

// Draft applies the form defaults and trims free-text fields.
func (in DraftInput) Draft() domain.Draft {
	gender := domain.Gender(strings.TrimSpace(in.Gender))
	if gender == "" {
		gender = domain.GenderMale
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	return domain.Draft{
		FullName:     strings.TrimSpace(in.FullName),
		Gender:       gender,
		DateOfBirth:  strings.TrimSpace(in.DateOfBirth),
		State:        strings.TrimSpace(in.State),
		ProfileImage: strings.TrimSpace(in.ProfileImage),
		Active:       active,
	}
}

func (s *EmployeeService) publishEvent(ctx context.Context, eventType events.EventType, actor string, employee domain.Employee) {
	if s.dispatcher == nil {
		return
	}
	event := events.Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		EmployeeID: employee.ID,
		Actor:      actor,
		Timestamp:  s.now(),
		Employee:   employee,
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event handler failed",
			zap.String("event_type", string(eventType)),
			zap.Int64("employee_id", employee.ID),
			zap.Error(err))
	}
}

func notFound(id int64) error {
	return apperrors.NewNotFound("employee", map[string]any{"id": id})
}
