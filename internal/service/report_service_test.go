package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/student-records-api/internal/models"
	"github.com/noah-isme/student-records-api/internal/store"
	appErrors "github.com/noah-isme/student-records-api/pkg/errors"
)

type fixture struct {
	store   *store.Store
	student *models.Student
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	s := store.New()
	hash, err := store.HashPassword("secret1")
	require.NoError(t, err)
	_, student, err := s.CreateStudentAccount(
		models.User{Email: "alice@example.com", PasswordHash: hash, FullName: "Alice"},
		models.Student{Roll: "R1", Program: "BTech"},
	)
	require.NoError(t, err)
	return &fixture{store: s, student: student}
}

func (f *fixture) addSubject(t *testing.T, code string, credits, semester int) *models.Subject {
	t.Helper()
	subject, err := f.store.CreateSubject(models.Subject{Code: code, Title: "Subject " + code, Credits: credits, Semester: semester})
	require.NoError(t, err)
	return subject
}

func (f *fixture) setMark(t *testing.T, subjectID string, score float64) {
	t.Helper()
	require.NoError(t, f.store.UpsertMark(models.Mark{StudentID: f.student.ID, SubjectID: subjectID, Score: score}))
}

func TestSGPACreditWeighting(t *testing.T) {
	f := newFixture(t)
	a := f.addSubject(t, "CS101", 4, 1)
	b := f.addSubject(t, "CS102", 2, 1)
	f.setMark(t, a.ID, 80)
	f.setMark(t, b.ID, 50)

	svc := NewReportService(f.store, nil)
	sgpa, ok, err := svc.SGPA(context.Background(), f.student.ID, 1)
	require.NoError(t, err)
	require.True(t, ok)
	// ((8.0*4)+(5.0*2))/6 = 7.0
	assert.InDelta(t, 7.0, sgpa, 1e-9)
}

func TestSGPAUnavailableNeverZero(t *testing.T) {
	f := newFixture(t)
	f.addSubject(t, "CS101", 4, 1)

	svc := NewReportService(f.store, nil)
	_, ok, err := svc.SGPA(context.Background(), f.student.ID, 1)
	require.NoError(t, err)
	assert.False(t, ok, "semester without recorded marks must be unavailable, not 0")

	_, ok, err = svc.SGPA(context.Background(), f.student.ID, 99)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCGPARecomputesOverRawMarks(t *testing.T) {
	f := newFixture(t)
	a := f.addSubject(t, "CS101", 4, 1)
	b := f.addSubject(t, "MA201", 2, 2)
	f.setMark(t, a.ID, 80)
	f.setMark(t, b.ID, 50)

	svc := NewReportService(f.store, nil)
	cgpa, ok, err := svc.CGPA(context.Background(), f.student.ID)
	require.NoError(t, err)
	require.True(t, ok)
	// Credit-weighted over the full mark set: ((8.0*4)+(5.0*2))/6, not the
	// mean of the two per-semester SGPAs (which would be 6.5).
	assert.InDelta(t, 7.0, cgpa, 1e-9)
}

func TestReportScenario(t *testing.T) {
	f := newFixture(t)
	cs101 := f.addSubject(t, "CS101", 4, 1)
	f.setMark(t, cs101.ID, 90)

	svc := NewReportService(f.store, nil)

	sgpa, ok, err := svc.SGPA(context.Background(), f.student.ID, 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 9.0, sgpa, 1e-9)

	cgpa, ok, err := svc.CGPA(context.Background(), f.student.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 9.0, cgpa, 1e-9)

	f.store.DeleteSubjectCascade(cs101.ID)

	_, ok, err = svc.SGPA(context.Background(), f.student.ID, 1)
	require.NoError(t, err)
	assert.False(t, ok, "deleting the subject must cascade into the ledger")
}

func TestBuildReport(t *testing.T) {
	f := newFixture(t)
	cs101 := f.addSubject(t, "CS101", 4, 1)
	cs102 := f.addSubject(t, "CS102", 2, 1)
	ma201 := f.addSubject(t, "MA201", 3, 2)
	f.setMark(t, cs101.ID, 80)
	f.setMark(t, cs102.ID, 50)
	require.NoError(t, f.store.UpsertAttendance(models.Attendance{
		StudentID: f.student.ID, SubjectID: cs101.ID, PresentDays: 9, TotalDays: 10,
	}))
	_ = ma201

	svc := NewReportService(f.store, nil)
	report, err := svc.Build(context.Background(), f.student.ID)
	require.NoError(t, err)

	assert.Equal(t, "Alice", report.Student.FullName)
	assert.Equal(t, "R1", report.Student.Roll)
	require.Len(t, report.Semesters, 2)

	sem1 := report.Semesters[0]
	assert.Equal(t, 1, sem1.Semester)
	require.Len(t, sem1.Rows, 2)
	require.NotNil(t, sem1.SGPA)
	assert.InDelta(t, 7.0, *sem1.SGPA, 1e-9)
	assert.Equal(t, "7.000", sem1.SGPADisplay)

	require.NotNil(t, sem1.Rows[0].Attendance)
	assert.InDelta(t, 90.0, sem1.Rows[0].Attendance.Percent, 1e-9)
	assert.Nil(t, sem1.Rows[1].Attendance)

	sem2 := report.Semesters[1]
	assert.Equal(t, 2, sem2.Semester)
	assert.Nil(t, sem2.SGPA)
	assert.Equal(t, "N/A", sem2.SGPADisplay)
	assert.Nil(t, sem2.Rows[0].Mark, "ungraded subject must not show a mark")

	require.NotNil(t, report.CGPA)
	assert.InDelta(t, 7.0, *report.CGPA, 1e-9)
	assert.Equal(t, "7.000", report.CGPADisplay)
}

func TestBuildReportUnknownStudent(t *testing.T) {
	f := newFixture(t)
	svc := NewReportService(f.store, nil)
	_, err := svc.Build(context.Background(), "missing")
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
}

func TestFormatGPA(t *testing.T) {
	assert.Equal(t, "N/A", FormatGPA(nil))
	v := 7.0
	assert.Equal(t, "7.000", FormatGPA(&v))
	v = 9.3333333
	assert.Equal(t, "9.333", FormatGPA(&v))
}
