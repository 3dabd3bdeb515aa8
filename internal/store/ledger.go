package store

import (
	"github.com/noah-isme/student-records-api/internal/models"
	appErrors "github.com/noah-isme/student-records-api/pkg/errors"
)

// UpsertMark writes a mark for a (student, subject) key, overwriting any
// existing entry. Both foreign keys are checked under the same lock as the
// write, so a mark can never be committed against an entity a concurrent
// cascade is deleting.
func (s *Store) UpsertMark(mark models.Mark) error {
	if mark.Score < 0 || mark.Score > 100 {
		return appErrors.Clone(appErrors.ErrValidation, "marks must lie between 0 and 100")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.students[mark.StudentID]; !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	if _, ok := s.subjects[mark.SubjectID]; !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "subject not found")
	}

	s.marks[mark.Key()] = mark
	return nil
}

// UpsertAttendance writes an attendance row with the same semantics as
// UpsertMark.
func (s *Store) UpsertAttendance(att models.Attendance) error {
	if att.TotalDays <= 0 {
		return appErrors.Clone(appErrors.ErrValidation, "total days must be positive")
	}
	if att.PresentDays < 0 {
		return appErrors.Clone(appErrors.ErrValidation, "present days must not be negative")
	}
	if att.PresentDays > att.TotalDays {
		return appErrors.Clone(appErrors.ErrValidation, "present days must not exceed total days")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.students[att.StudentID]; !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	if _, ok := s.subjects[att.SubjectID]; !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "subject not found")
	}

	s.attendance[att.Key()] = att
	return nil
}

// GetMark returns the mark for a key, or NotFound when absent.
func (s *Store) GetMark(key models.EnrollmentKey) (*models.Mark, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	mark, ok := s.marks[key]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "no mark recorded")
	}
	return &mark, nil
}

// GetAttendance returns the attendance row for a key, or NotFound when
// absent.
func (s *Store) GetAttendance(key models.EnrollmentKey) (*models.Attendance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	att, ok := s.attendance[key]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "no attendance recorded")
	}
	return &att, nil
}
