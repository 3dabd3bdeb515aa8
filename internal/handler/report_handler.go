package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/student-records-api/internal/middleware"
	"github.com/noah-isme/student-records-api/internal/models"
	"github.com/noah-isme/student-records-api/internal/service"
	appErrors "github.com/noah-isme/student-records-api/pkg/errors"
	"github.com/noah-isme/student-records-api/pkg/response"
)

// ReportHandler wires HTTP endpoints to report building and export.
type ReportHandler struct {
	reports  *service.ReportService
	exports  *service.ExportService
	students *service.StudentService
}

// NewReportHandler creates a new handler.
func NewReportHandler(reports *service.ReportService, exports *service.ExportService, students *service.StudentService) *ReportHandler {
	return &ReportHandler{reports: reports, exports: exports, students: students}
}

// authorize resolves which student the caller may see: admins may request
// any student, a student only their own record.
func (h *ReportHandler) authorize(c *gin.Context, studentID string) error {
	claims := middleware.Claims(c)
	if claims == nil {
		return appErrors.ErrUnauthorized
	}
	if claims.Role == models.RoleAdmin {
		return nil
	}
	own, err := h.students.GetByUser(c.Request.Context(), claims.UserID)
	if err != nil || own.ID != studentID {
		return appErrors.Clone(appErrors.ErrForbidden, "students may only view their own report")
	}
	return nil
}

// Get returns the full academic report for a student.
func (h *ReportHandler) Get(c *gin.Context) {
	studentID := c.Param("id")
	if err := h.authorize(c, studentID); err != nil {
		response.Error(c, err)
		return
	}

	report, err := h.reports.Build(c.Request.Context(), studentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, report)
}

// Export streams the report card in the requested format (csv or pdf).
func (h *ReportHandler) Export(c *gin.Context) {
	studentID := c.Param("id")
	if err := h.authorize(c, studentID); err != nil {
		response.Error(c, err)
		return
	}

	format := service.ReportFormat(c.DefaultQuery("format", string(service.ReportFormatPDF)))
	res, err := h.exports.ReportCard(c.Request.Context(), studentID, format)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.Filename))
	c.Data(http.StatusOK, res.ContentType, res.Payload)
}
