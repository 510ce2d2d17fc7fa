package handlers

import (
	"bytes"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-directory/internal/api/dto"
	"github.com/spec-kit/employee-directory/internal/auth"
	"github.com/spec-kit/employee-directory/internal/service"
	apperrors "github.com/spec-kit/employee-directory/pkg/util/errorutil"
)

// EmployeesHandler serves the directory endpoints.
type EmployeesHandler struct {
	service *service.EmployeeService
}

// NewEmployeesHandler constructs handler.
func NewEmployeesHandler(employeeService *service.EmployeeService) *EmployeesHandler {
	return &EmployeesHandler{service: employeeService}
}

// ListEmployees GET /employees.
func (h *EmployeesHandler) ListEmployees(c *fiber.Ctx) error {
	query, err := parseListQuery(c)
	if err != nil {
		return err
	}
	employees, err := h.service.List(c.UserContext(), query.Criteria())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.EmployeeListResponse{
		Items:   dto.NewEmployeeResponses(employees),
		Count:   len(employees),
		Filters: query,
	}})
}

// Summary GET /employees/summary.
func (h *EmployeesHandler) Summary(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.service.Summary(c.UserContext())})
}

// PrintEmployees GET /employees/print renders the filtered list as text.
func (h *EmployeesHandler) PrintEmployees(c *fiber.Ctx) error {
	query, err := parseListQuery(c)
	if err != nil {
		return err
	}
	employees, err := h.service.List(c.UserContext(), query.Criteria())
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := service.RenderTable(&buf, employees); err != nil {
		return apperrors.NewInternalError(err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Send(buf.Bytes())
}

// FormDefaults GET /employees/form-defaults.
func (h *EmployeesHandler) FormDefaults(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.service.FormDefaults()})
}

// GetEmployee GET /employees/:id.
func (h *EmployeesHandler) GetEmployee(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	employee, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewEmployeeResponse(employee)})
}

// CreateEmployee POST /employees.
func (h *EmployeesHandler) CreateEmployee(c *fiber.Ctx) error {
	var req dto.EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	employee, err := h.service.Create(c.UserContext(), actorName(c), req.Input())
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewEmployeeResponse(employee)})
}

// UpdateEmployee PUT /employees/:id.
func (h *EmployeesHandler) UpdateEmployee(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	employee, err := h.service.Update(c.UserContext(), actorName(c), id, req.Input())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewEmployeeResponse(employee)})
}

// DeleteEmployee DELETE /employees/:id.
func (h *EmployeesHandler) DeleteEmployee(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), actorName(c), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// ToggleStatus POST /employees/:id/toggle-status.
func (h *EmployeesHandler) ToggleStatus(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	employee, err := h.service.ToggleStatus(c.UserContext(), actorName(c), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewEmployeeResponse(employee)})
}

// UploadImage POST /employees/images accepts a multipart "image" file.
func (h *EmployeesHandler) UploadImage(c *fiber.Ctx) error {
	header, err := c.FormFile("image")
	if err != nil {
		return apperrors.NewValidationError("image file required", map[string]any{
			service.FieldProfileImage: service.MsgImageInvalid,
		})
	}
	file, err := header.Open()
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	defer file.Close()

	uri, err := h.service.EncodeImage(file, header.Header.Get(fiber.HeaderContentType))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.ImageUploadResponse{ProfileImage: uri}})
}

func parseListQuery(c *fiber.Ctx) (dto.EmployeeListQuery, error) {
	var query dto.EmployeeListQuery
	if err := c.QueryParser(&query); err != nil {
		return dto.EmployeeListQuery{}, apperrors.NewValidationError("invalid query", nil)
	}
	return query, nil
}

func parseID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("id must be a positive integer", map[string]any{"id": c.Params("id")})
	}
	return int64(id), nil
}

func actorName(c *fiber.Ctx) string {
	if principal, ok := auth.PrincipalFromContext(c); ok {
		return principal.Username
	}
	return ""
}
