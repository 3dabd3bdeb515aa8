package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/student-records-api/internal/service"
	appErrors "github.com/noah-isme/student-records-api/pkg/errors"
	"github.com/noah-isme/student-records-api/pkg/response"
)

// EnrollmentHandler wires HTTP endpoints to the enrollment service. Any
// authenticated user may record marks and attendance, matching the legacy
// system's behavior.
type EnrollmentHandler struct {
	enrollments *service.EnrollmentService
}

// NewEnrollmentHandler creates a new handler.
func NewEnrollmentHandler(enrollments *service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollments: enrollments}
}

// EnterMarks records or updates a mark for a (student, subject) pair.
func (h *EnrollmentHandler) EnterMarks(c *gin.Context) {
	var req service.EnterMarksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid marks payload"))
		return
	}

	if err := h.enrollments.EnterMarks(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// EnterAttendance records or updates attendance for a (student, subject)
// pair.
func (h *EnrollmentHandler) EnterAttendance(c *gin.Context) {
	var req service.EnterAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid attendance payload"))
		return
	}

	if err := h.enrollments.EnterAttendance(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// GetMark reads the recorded mark for a pair.
func (h *EnrollmentHandler) GetMark(c *gin.Context) {
	mark, err := h.enrollments.GetMark(c.Request.Context(), c.Param("id"), c.Param("subjectId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, mark)
}

// GetAttendance reads the recorded attendance for a pair.
func (h *EnrollmentHandler) GetAttendance(c *gin.Context) {
	att, err := h.enrollments.GetAttendance(c.Request.Context(), c.Param("id"), c.Param("subjectId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, att)
}
