package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xenosis/employees/internal/employee/http/dto"
	employeeUseCase "github.com/xenosis/employees/internal/employee/usecase"
	"github.com/xenosis/employees/internal/httputil"
)

// ReportHandler serves the read-only employee reports.
type ReportHandler struct {
	reportingUseCase employeeUseCase.ReportingUseCase
	logger           *slog.Logger
}

// NewReportHandler creates a new report handler.
func NewReportHandler(reportingUseCase employeeUseCase.ReportingUseCase, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		reportingUseCase: reportingUseCase,
		logger:           logger,
	}
}

// AttendanceHandler returns employees with recorded attendance.
// GET /v1/reports/attendance
func (h *ReportHandler) AttendanceHandler(c *gin.Context) {
	records, err := h.reportingUseCase.AttendanceReport(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.MapAttendanceReport(records))
}

// SalaryHandler returns employees with a salary on file.
// GET /v1/reports/salary
func (h *ReportHandler) SalaryHandler(c *gin.Context) {
	records, err := h.reportingUseCase.SalaryReport(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.MapSalaryReport(records))
}

// DepartmentHandler returns the headcount per department.
// GET /v1/reports/department
func (h *ReportHandler) DepartmentHandler(c *gin.Context) {
	counts, err := h.reportingUseCase.DepartmentHeadcount(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.MapDepartmentReport(counts))
}
