package store

import (
	"sort"

	"github.com/noah-isme/student-records-api/internal/models"
	appErrors "github.com/noah-isme/student-records-api/pkg/errors"
)

// FindStudentByID looks up a student profile.
func (s *Store) FindStudentByID(id string) (*models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.students[id]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	return &st, nil
}

// FindStudentByUserID resolves the student profile owned by a user.
func (s *Store) FindStudentByUserID(userID string) (*models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.studentsByUser[userID]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	st := s.students[id]
	return &st, nil
}

// ListStudents returns all students joined with their owning user, ordered
// by roll then name for stable output.
func (s *Store) ListStudents() []models.StudentDetail {
	s.mu.RLock()
	defer s.mu.RUnlock()

	details := make([]models.StudentDetail, 0, len(s.students))
	for _, st := range s.students {
		detail := models.StudentDetail{Student: st}
		if u, ok := s.users[st.UserID]; ok {
			detail.FullName = u.FullName
			detail.Email = u.Email
			detail.Phone = u.Phone
		}
		details = append(details, detail)
	}
	sort.Slice(details, func(i, j int) bool {
		if details[i].Roll != details[j].Roll {
			return details[i].Roll < details[j].Roll
		}
		return details[i].FullName < details[j].FullName
	})
	return details
}

// DeleteStudentCascade removes the student's marks and attendance, the
// student profile, and its owning user, all in one critical section.
// Deleting an unknown id is a successful no-op.
func (s *Store) DeleteStudentCascade(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.students[id]
	if !ok {
		return
	}

	for key := range s.marks {
		if key.StudentID == id {
			delete(s.marks, key)
		}
	}
	for key := range s.attendance {
		if key.StudentID == id {
			delete(s.attendance, key)
		}
	}

	delete(s.students, id)
	delete(s.studentsByUser, st.UserID)

	if u, ok := s.users[st.UserID]; ok {
		delete(s.usersByEmail, foldKey(u.Email))
		delete(s.users, st.UserID)
	}
}
