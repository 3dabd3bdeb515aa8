package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/student-records-api/internal/models"
	appErrors "github.com/noah-isme/student-records-api/pkg/errors"
)

type ledgerStore interface {
	UpsertMark(mark models.Mark) error
	UpsertAttendance(att models.Attendance) error
	GetMark(key models.EnrollmentKey) (*models.Mark, error)
	GetAttendance(key models.EnrollmentKey) (*models.Attendance, error)
}

// EnterMarksRequest records or updates a score for one (student, subject)
// pair. Score is a pointer so an absent field fails validation instead of
// being coerced to 0.
type EnterMarksRequest struct {
	StudentID string   `json:"student_id" validate:"required"`
	SubjectID string   `json:"subject_id" validate:"required"`
	Score     *float64 `json:"score" validate:"required"`
}

// EnterAttendanceRequest records or updates attendance for one pair.
type EnterAttendanceRequest struct {
	StudentID   string `json:"student_id" validate:"required"`
	SubjectID   string `json:"subject_id" validate:"required"`
	PresentDays *int   `json:"present_days" validate:"required"`
	TotalDays   *int   `json:"total_days" validate:"required"`
}

// EnrollmentService manages per-student marks and attendance.
type EnrollmentService struct {
	ledger    ledgerStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewEnrollmentService constructs an EnrollmentService instance.
func NewEnrollmentService(ledger ledgerStore, validate *validator.Validate, logger *zap.Logger) *EnrollmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &EnrollmentService{ledger: ledger, validator: validate, logger: logger}
}

// EnterMarks validates the payload and writes the mark. Range and
// foreign-key checks happen in the store under its write lock.
func (s *EnrollmentService) EnterMarks(ctx context.Context, req EnterMarksRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid marks payload")
	}

	if err := s.ledger.UpsertMark(models.Mark{
		StudentID: req.StudentID,
		SubjectID: req.SubjectID,
		Score:     *req.Score,
	}); err != nil {
		return err
	}

	s.logger.Info("marks recorded",
		zap.String("student_id", req.StudentID),
		zap.String("subject_id", req.SubjectID),
		zap.Float64("score", *req.Score),
	)
	return nil
}

// EnterAttendance validates the payload and writes the attendance row.
func (s *EnrollmentService) EnterAttendance(ctx context.Context, req EnterAttendanceRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid attendance payload")
	}

	if err := s.ledger.UpsertAttendance(models.Attendance{
		StudentID:   req.StudentID,
		SubjectID:   req.SubjectID,
		PresentDays: *req.PresentDays,
		TotalDays:   *req.TotalDays,
	}); err != nil {
		return err
	}

	s.logger.Info("attendance recorded",
		zap.String("student_id", req.StudentID),
		zap.String("subject_id", req.SubjectID),
		zap.Int("present_days", *req.PresentDays),
		zap.Int("total_days", *req.TotalDays),
	)
	return nil
}

// GetMark reads one recorded mark.
func (s *EnrollmentService) GetMark(ctx context.Context, studentID, subjectID string) (*models.Mark, error) {
	return s.ledger.GetMark(models.EnrollmentKey{StudentID: studentID, SubjectID: subjectID})
}

// GetAttendance reads one recorded attendance row.
func (s *EnrollmentService) GetAttendance(ctx context.Context, studentID, subjectID string) (*models.Attendance, error) {
	return s.ledger.GetAttendance(models.EnrollmentKey{StudentID: studentID, SubjectID: subjectID})
}
