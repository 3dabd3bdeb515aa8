package store

import (
	"sort"
	"strings"

	"github.com/noah-isme/student-records-api/internal/models"
	appErrors "github.com/noah-isme/student-records-api/pkg/errors"
)

// CreateSubject inserts a subject after checking the case-insensitive code
// uniqueness. Domain ranges (positive credits/semester, non-empty code and
// title) are enforced here so no invalid row can ever be committed.
func (s *Store) CreateSubject(subject models.Subject) (*models.Subject, error) {
	subject.Code = strings.TrimSpace(subject.Code)
	subject.Title = strings.TrimSpace(subject.Title)

	if subject.Code == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "subject code is required")
	}
	if subject.Title == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "subject title is required")
	}
	if subject.Credits <= 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "credits must be a positive integer")
	}
	if subject.Semester <= 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "semester must be a positive integer")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	codeKey := foldKey(subject.Code)
	if _, exists := s.subjectsByCode[codeKey]; exists {
		return nil, appErrors.Clone(appErrors.ErrDuplicate, "a subject with this code already exists")
	}

	subject.ID = newID()
	subject.CreatedAt = s.now().UTC()
	s.subjects[subject.ID] = subject
	s.subjectsByCode[codeKey] = subject.ID

	return &subject, nil
}

// FindSubjectByID looks up a subject.
func (s *Store) FindSubjectByID(id string) (*models.Subject, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	subject, ok := s.subjects[id]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "subject not found")
	}
	return &subject, nil
}

// ListSubjectsBySemester groups subjects by semester ascending, with codes
// ascending inside each group.
func (s *Store) ListSubjectsBySemester() []models.SemesterGroup {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bySemester := make(map[int][]models.Subject)
	for _, subject := range s.subjects {
		bySemester[subject.Semester] = append(bySemester[subject.Semester], subject)
	}

	semesters := make([]int, 0, len(bySemester))
	for semester := range bySemester {
		semesters = append(semesters, semester)
	}
	sort.Ints(semesters)

	groups := make([]models.SemesterGroup, 0, len(semesters))
	for _, semester := range semesters {
		subjects := bySemester[semester]
		sort.Slice(subjects, func(i, j int) bool {
			return foldKey(subjects[i].Code) < foldKey(subjects[j].Code)
		})
		groups = append(groups, models.SemesterGroup{Semester: semester, Subjects: subjects})
	}
	return groups
}

// DeleteSubjectCascade removes every mark and attendance row keyed by the
// subject before removing the catalog entry, inside one critical section so
// no reader sees an orphaned ledger row. Unknown ids are a no-op.
func (s *Store) DeleteSubjectCascade(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	subject, ok := s.subjects[id]
	if !ok {
		return
	}

	for key := range s.marks {
		if key.SubjectID == id {
			delete(s.marks, key)
		}
	}
	for key := range s.attendance {
		if key.SubjectID == id {
			delete(s.attendance, key)
		}
	}

	delete(s.subjectsByCode, foldKey(subject.Code))
	delete(s.subjects, id)
}
