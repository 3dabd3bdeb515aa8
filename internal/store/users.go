package store

import (
	"strings"

	"github.com/noah-isme/student-records-api/internal/models"
	appErrors "github.com/noah-isme/student-records-api/pkg/errors"
)

// FindUserByEmail looks up a user by case-folded email.
func (s *Store) FindUserByEmail(email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.usersByEmail[foldKey(email)]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
	}
	u := s.users[id]
	return &u, nil
}

// FindUserByID looks up a user by id.
func (s *Store) FindUserByID(id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
	}
	return &u, nil
}

// CreateStudentAccount inserts a User(role=student) and its Student profile
// in one step. Either both records are created or neither is: the duplicate
// email check and both inserts share the critical section.
func (s *Store) CreateStudentAccount(user models.User, student models.Student) (*models.User, *models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	emailKey := foldKey(user.Email)
	if emailKey == "" {
		return nil, nil, appErrors.Clone(appErrors.ErrValidation, "email is required")
	}
	if _, exists := s.usersByEmail[emailKey]; exists {
		return nil, nil, appErrors.Clone(appErrors.ErrDuplicate, "an account with this email already exists")
	}

	now := s.now().UTC()
	user.ID = newID()
	user.Email = strings.TrimSpace(user.Email)
	user.Role = models.RoleStudent
	user.CreatedAt = now

	student.ID = newID()
	student.UserID = user.ID
	student.CreatedAt = now

	s.users[user.ID] = user
	s.usersByEmail[emailKey] = user.ID
	s.students[student.ID] = student
	s.studentsByUser[user.ID] = student.ID

	return &user, &student, nil
}
