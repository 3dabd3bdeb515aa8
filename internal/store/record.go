package store

import (
	"sort"

	"github.com/noah-isme/student-records-api/internal/models"
	appErrors "github.com/noah-isme/student-records-api/pkg/errors"
)

// StudentRecord is a consistent copy of everything needed to derive a
// student's report: profile, owning user, the full catalog and the student's
// ledger rows keyed by subject id. Aggregation reads only this snapshot, so
// it can never observe a half-applied cascade.
type StudentRecord struct {
	Student    models.Student
	User       models.User
	Subjects   []models.Subject
	Marks      map[string]models.Mark
	Attendance map[string]models.Attendance
}

// StudentRecordSnapshot copies the state relevant to one student under a
// single read lock.
func (s *Store) StudentRecordSnapshot(studentID string) (*StudentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	student, ok := s.students[studentID]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}

	record := &StudentRecord{
		Student:    student,
		User:       s.users[student.UserID],
		Subjects:   make([]models.Subject, 0, len(s.subjects)),
		Marks:      make(map[string]models.Mark),
		Attendance: make(map[string]models.Attendance),
	}

	for _, subject := range s.subjects {
		record.Subjects = append(record.Subjects, subject)
	}
	sort.Slice(record.Subjects, func(i, j int) bool {
		if record.Subjects[i].Semester != record.Subjects[j].Semester {
			return record.Subjects[i].Semester < record.Subjects[j].Semester
		}
		return foldKey(record.Subjects[i].Code) < foldKey(record.Subjects[j].Code)
	})

	for key, mark := range s.marks {
		if key.StudentID == studentID {
			record.Marks[key.SubjectID] = mark
		}
	}
	for key, att := range s.attendance {
		if key.StudentID == studentID {
			record.Attendance[key.SubjectID] = att
		}
	}

	return record, nil
}
