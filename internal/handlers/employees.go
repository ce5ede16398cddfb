package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/UnknownOlympus/hestia/internal/errs"
	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/UnknownOlympus/hestia/internal/repository"
	"github.com/UnknownOlympus/hestia/internal/validation"
	"github.com/labstack/echo/v4"
)

const (
	MsgEmployeeNotFound = "Employee not found"
	MsgEmployeeUpdated  = "Employee updated successfully"
	MsgEmployeeDeleted  = "Employee deleted successfully"
)

// EmployeeRequest is the EmployeeInput shape as it arrives on the wire.
// Pointers distinguish a missing or null field from an empty string.
type EmployeeRequest struct {
	Name          *string `json:"name"           validate:"required"`
	Position      *string `json:"position"       validate:"required"`
	Department    *string `json:"department"     validate:"required"`
	StoreLocation *string `json:"store_location" validate:"required"` //nolint:tagliatelle // public wire name
}

func (r *EmployeeRequest) Validate() error {
	return validation.Struct(r)
}

func (r *EmployeeRequest) toInput() models.EmployeeInput {
	return models.EmployeeInput{
		Name:          *r.Name,
		Position:      *r.Position,
		Department:    *r.Department,
		StoreLocation: *r.StoreLocation,
	}
}

// Employees translates HTTP requests into employee repository calls.
type Employees struct {
	log  *slog.Logger
	repo repository.EmployeeRepoIface
}

func NewEmployees(log *slog.Logger, repo repository.EmployeeRepoIface) *Employees {
	return &Employees{log: log, repo: repo}
}

func (h *Employees) initLogger(c echo.Context, opn string) *slog.Logger {
	return h.log.With(
		slog.String("op", opn),
		slog.String("division", "employee"),
		slog.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
	)
}

// Create stores a new employee and echoes it back with the assigned id.
func (h *Employees) Create(c echo.Context) error {
	const opn = "Employees.Create"
	log := h.initLogger(c, opn)

	var req EmployeeRequest
	if err := validation.BindAndValidate(c, &req); err != nil {
		return err
	}

	input := req.toInput()

	identifier, err := h.repo.CreateEmployee(c.Request().Context(), input)
	if err != nil {
		return fmt.Errorf("%s: %w", opn, err)
	}

	log.DebugContext(c.Request().Context(), "Employee created", "id", identifier)

	return c.JSON(http.StatusOK, models.NewEmployee(identifier, input))
}

// List returns every stored employee.
func (h *Employees) List(c echo.Context) error {
	const opn = "Employees.List"

	employees, err := h.repo.ListEmployees(c.Request().Context())
	if err != nil {
		return fmt.Errorf("%s: %w", opn, err)
	}

	return c.JSON(http.StatusOK, employees)
}

// Get returns one employee or a 404 when the id is unknown.
func (h *Employees) Get(c echo.Context) error {
	const opn = "Employees.Get"
	log := h.initLogger(c, opn)

	identifier, err := pathID(c)
	if err != nil {
		return err
	}

	employee, err := h.repo.GetEmployeeByID(c.Request().Context(), identifier)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			log.DebugContext(c.Request().Context(), "Employee lookup missed", "id", identifier)
			return errs.NewNotFoundError(MsgEmployeeNotFound)
		}
		return fmt.Errorf("%s: %w", opn, err)
	}

	return c.JSON(http.StatusOK, employee)
}

// Update overwrites an employee. An unknown id is acknowledged like a real update.
func (h *Employees) Update(c echo.Context) error {
	const opn = "Employees.Update"
	log := h.initLogger(c, opn)

	identifier, err := pathID(c)
	if err != nil {
		return err
	}

	var req EmployeeRequest
	if err = validation.BindAndValidate(c, &req); err != nil {
		return err
	}

	matched, err := h.repo.UpdateEmployee(c.Request().Context(), identifier, req.toInput())
	if err != nil {
		return fmt.Errorf("%s: %w", opn, err)
	}

	if !matched {
		log.DebugContext(c.Request().Context(), "Update matched no row", "id", identifier)
	}

	return c.JSON(http.StatusOK, models.Acknowledgment{Message: MsgEmployeeUpdated})
}

// Delete removes an employee. An unknown id is acknowledged like a real delete.
func (h *Employees) Delete(c echo.Context) error {
	const opn = "Employees.Delete"
	log := h.initLogger(c, opn)

	identifier, err := pathID(c)
	if err != nil {
		return err
	}

	deleted, err := h.repo.DeleteEmployee(c.Request().Context(), identifier)
	if err != nil {
		return fmt.Errorf("%s: %w", opn, err)
	}

	if !deleted {
		log.DebugContext(c.Request().Context(), "Delete matched no row", "id", identifier)
	}

	return c.JSON(http.StatusOK, models.Acknowledgment{Message: MsgEmployeeDeleted})
}

func pathID(c echo.Context) (int, error) {
	identifier, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, errs.NewValidationError("Validation failed", []errs.FieldError{{
			Field: "id",
			Error: "must be an integer",
		}})
	}

	return identifier, nil
}
