package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/student-records-api/internal/models"
	appErrors "github.com/noah-isme/student-records-api/pkg/errors"
)

type catalogStore interface {
	CreateSubject(subject models.Subject) (*models.Subject, error)
	FindSubjectByID(id string) (*models.Subject, error)
	ListSubjectsBySemester() []models.SemesterGroup
	DeleteSubjectCascade(id string)
}

// CreateSubjectRequest is the payload for adding a catalog entry.
type CreateSubjectRequest struct {
	Code     string `json:"code" validate:"required"`
	Title    string `json:"title" validate:"required"`
	Credits  int    `json:"credits" validate:"required,gt=0"`
	Semester int    `json:"semester" validate:"required,gt=0"`
}

// SubjectService manages the academic catalog.
type SubjectService struct {
	catalog   catalogStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSubjectService constructs a SubjectService instance.
func NewSubjectService(catalog catalogStore, validate *validator.Validate, logger *zap.Logger) *SubjectService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &SubjectService{catalog: catalog, validator: validate, logger: logger}
}

// Create validates and inserts a new subject.
func (s *SubjectService) Create(ctx context.Context, req CreateSubjectRequest) (*models.Subject, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid subject payload")
	}

	subject, err := s.catalog.CreateSubject(models.Subject{
		Code:     req.Code,
		Title:    req.Title,
		Credits:  req.Credits,
		Semester: req.Semester,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("subject created",
		zap.String("subject_id", subject.ID),
		zap.String("code", subject.Code),
		zap.Int("semester", subject.Semester),
	)
	return subject, nil
}

// Get returns one subject.
func (s *SubjectService) Get(ctx context.Context, id string) (*models.Subject, error) {
	return s.catalog.FindSubjectByID(id)
}

// ListBySemester returns the catalog grouped by semester.
func (s *SubjectService) ListBySemester(ctx context.Context) []models.SemesterGroup {
	return s.catalog.ListSubjectsBySemester()
}

// Delete removes a subject and every ledger row referencing it. Deleting an
// unknown id is a successful no-op so repeated calls and racing cascades
// stay safe.
func (s *SubjectService) Delete(ctx context.Context, id string) {
	s.catalog.DeleteSubjectCascade(id)
	s.logger.Info("subject deleted", zap.String("subject_id", id))
}
