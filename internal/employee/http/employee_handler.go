// Package http provides HTTP handlers for the employee lifecycle and reports.
package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/xenosis/employees/internal/employee/http/dto"
	employeeUseCase "github.com/xenosis/employees/internal/employee/usecase"
	"github.com/xenosis/employees/internal/httputil"
)

// EmployeeHandler handles HTTP requests for employee lifecycle operations.
// Role checks happen in the use case, so handlers only translate HTTP.
type EmployeeHandler struct {
	employeeUseCase employeeUseCase.EmployeeUseCase
	logger          *slog.Logger
}

// NewEmployeeHandler creates a new employee handler.
func NewEmployeeHandler(employeeUseCase employeeUseCase.EmployeeUseCase, logger *slog.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		employeeUseCase: employeeUseCase,
		logger:          logger,
	}
}

// CreateHandler creates a new employee.
// POST /v1/employees - Returns 201 Created with the stored employee.
func (h *EmployeeHandler) CreateHandler(c *gin.Context) {
	var req dto.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	input, err := req.ToInput()
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	employee, err := h.employeeUseCase.Create(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapEmployeeToResponse(employee))
}

// ListHandler lists every employee.
// GET /v1/employees - Returns 200 OK, or 204 No Content when there are none.
func (h *EmployeeHandler) ListHandler(c *gin.Context) {
	employees, err := h.employeeUseCase.List(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	if len(employees) == 0 {
		c.Status(http.StatusNoContent)
		c.Writer.WriteHeaderNow()
		return
	}

	c.JSON(http.StatusOK, dto.MapEmployeesToResponse(employees))
}

// GetHandler retrieves an employee by id.
// GET /v1/employees/:id - Returns 200 OK.
func (h *EmployeeHandler) GetHandler(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	employee, err := h.employeeUseCase.GetByID(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapEmployeeToResponse(employee))
}

// UpdateHandler replaces every mutable field of an employee.
// PUT /v1/employees/:id - Returns 200 OK with the updated employee.
func (h *EmployeeHandler) UpdateHandler(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req dto.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	input, err := req.ToInput()
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	employee, err := h.employeeUseCase.Update(c.Request.Context(), id, input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapEmployeeToResponse(employee))
}

// DeleteHandler removes an employee.
// DELETE /v1/employees/:id - Returns 200 OK with a confirmation message.
func (h *EmployeeHandler) DeleteHandler(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.employeeUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Employee deleted successfully"})
}

func (h *EmployeeHandler) parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		httputil.HandleBadRequestGin(c, errors.New("invalid employee id: must be a positive integer"), h.logger)
		return 0, false
	}
	return id, true
}
