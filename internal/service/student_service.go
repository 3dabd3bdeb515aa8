package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/student-records-api/internal/models"
	"github.com/noah-isme/student-records-api/internal/store"
	appErrors "github.com/noah-isme/student-records-api/pkg/errors"
)

type studentStore interface {
	CreateStudentAccount(user models.User, student models.Student) (*models.User, *models.Student, error)
	FindStudentByID(id string) (*models.Student, error)
	FindStudentByUserID(userID string) (*models.Student, error)
	ListStudents() []models.StudentDetail
	DeleteStudentCascade(id string)
}

// StudentService manages student account lifecycle.
type StudentService struct {
	students  studentStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs a StudentService instance.
func NewStudentService(students studentStore, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &StudentService{students: students, validator: validate, logger: logger}
}

// Signup creates the User and Student pair atomically. The password is
// hashed before anything touches the store, so a hashing failure leaves no
// partial state behind.
func (s *StudentService) Signup(ctx context.Context, req models.SignupRequest) (*models.SignupResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid signup payload")
	}

	hash, err := store.HashPassword(req.Password)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}

	user := models.User{
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     req.FullName,
		Phone:        req.Phone,
	}
	student := models.Student{
		Roll:    req.Roll,
		Program: req.Program,
	}

	createdUser, createdStudent, err := s.students.CreateStudentAccount(user, student)
	if err != nil {
		return nil, err
	}

	s.logger.Info("student signed up",
		zap.String("student_id", createdStudent.ID),
		zap.String("roll", createdStudent.Roll),
	)

	return &models.SignupResponse{
		User: models.UserInfo{
			ID:       createdUser.ID,
			Email:    createdUser.Email,
			FullName: createdUser.FullName,
			Role:     createdUser.Role,
		},
		Student: *createdStudent,
	}, nil
}

// Get returns one student profile.
func (s *StudentService) Get(ctx context.Context, id string) (*models.Student, error) {
	return s.students.FindStudentByID(id)
}

// GetByUser resolves the student profile owned by a user account.
func (s *StudentService) GetByUser(ctx context.Context, userID string) (*models.Student, error) {
	return s.students.FindStudentByUserID(userID)
}

// List returns all students with their owning user details.
func (s *StudentService) List(ctx context.Context) []models.StudentDetail {
	return s.students.ListStudents()
}

// Delete removes a student, its ledger rows and its owning user. Unknown ids
// are treated as already deleted.
func (s *StudentService) Delete(ctx context.Context, id string) {
	s.students.DeleteStudentCascade(id)
	s.logger.Info("student deleted", zap.String("student_id", id))
}
