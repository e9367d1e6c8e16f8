package handler

import (
	"errors"
	"net/http"

	"github.com/dafibh/nivesh/nivesh-backend/internal/middleware"
	"github.com/dafibh/nivesh/nivesh-backend/internal/service"
	"github.com/labstack/echo/v4"
)

// ReportHandler exports projection reports to object storage
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Export renders the current report as a chart, thumbnail and JSON document and returns temporary links
// @Summary Export projection report
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 201 {object} service.ReportExport
// @Failure 401 {object} ProblemDetails
// @Failure 503 {object} ProblemDetails
// @Router /reports [post]
func (h *ReportHandler) Export(c echo.Context) error {
	workspaceID := middleware.GetWorkspaceID(c)
	if workspaceID == 0 {
		return NewUnauthorizedError(c, "Workspace required")
	}

	if !h.reportService.IsEnabled() {
		return NewServiceUnavailableError(c, "Report export is not configured")
	}

	export, err := h.reportService.Export(c.Request().Context(), workspaceID)
	if err != nil {
		if errors.Is(err, service.ErrReportStorageNotConfigured) {
			return NewServiceUnavailableError(c, "Report export is not configured")
		}
		return planError(c, err, workspaceID, "Failed to export report")
	}

	middleware.Logger(c).Info().Str("report_id", export.ID).Msg("Report exported")
	return c.JSON(http.StatusCreated, export)
}
