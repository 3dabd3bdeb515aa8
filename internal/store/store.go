// Package store holds the in-memory academic record state. All entities live
// in process memory behind one RWMutex: compound operations (signup, cascade
// deletes, ledger upserts with foreign-key checks) run inside a single
// critical section, so readers never observe a half-applied cascade.
package store

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/noah-isme/student-records-api/internal/models"
)

// Store owns users, students, subjects, marks and attendance. Construct one
// per process with New and inject it into the services; tests construct
// isolated instances.
type Store struct {
	mu sync.RWMutex

	users        map[string]models.User
	usersByEmail map[string]string // folded email -> user id
	students     map[string]models.Student
	studentsByUser map[string]string // user id -> student id
	subjects     map[string]models.Subject
	subjectsByCode map[string]string // folded code -> subject id
	marks        map[models.EnrollmentKey]models.Mark
	attendance   map[models.EnrollmentKey]models.Attendance

	now func() time.Time
}

// New returns an empty store.
func New() *Store {
	return &Store{
		users:          make(map[string]models.User),
		usersByEmail:   make(map[string]string),
		students:       make(map[string]models.Student),
		studentsByUser: make(map[string]string),
		subjects:       make(map[string]models.Subject),
		subjectsByCode: make(map[string]string),
		marks:          make(map[models.EnrollmentKey]models.Mark),
		attendance:     make(map[models.EnrollmentKey]models.Attendance),
		now:            time.Now,
	}
}

func foldKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func newID() string {
	return uuid.NewString()
}

// EnsureAdmin inserts the bootstrap administrator when no admin account
// exists. Idempotent: repeated calls after the first are no-ops.
func (s *Store) EnsureAdmin(name, email, phone, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Role == models.RoleAdmin {
			return nil
		}
	}

	hash, err := HashPassword(password)
	if err != nil {
		return err
	}

	admin := models.User{
		ID:           newID(),
		Email:        strings.TrimSpace(email),
		PasswordHash: hash,
		FullName:     name,
		Phone:        phone,
		Role:         models.RoleAdmin,
		CreatedAt:    s.now().UTC(),
	}
	s.users[admin.ID] = admin
	s.usersByEmail[foldKey(admin.Email)] = admin.ID
	return nil
}

// SummaryCounts reports entity totals under a consistent read snapshot.
type SummaryCounts struct {
	SubjectCount    int `json:"subject_count"`
	StudentCount    int `json:"student_count"`
	MarkCount       int `json:"mark_count"`
	AttendanceCount int `json:"attendance_count"`
}

// Counts returns current entity totals.
func (s *Store) Counts() SummaryCounts {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return SummaryCounts{
		SubjectCount:    len(s.subjects),
		StudentCount:    len(s.students),
		MarkCount:       len(s.marks),
		AttendanceCount: len(s.attendance),
	}
}
