package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/student-records-api/internal/models"
	appErrors "github.com/noah-isme/student-records-api/pkg/errors"
)

func newExportFixture(t *testing.T) (*fixture, *ExportService) {
	t.Helper()
	f := newFixture(t)
	subject := f.addSubject(t, "CS101", 4, 1)
	f.setMark(t, subject.ID, 90)
	require.NoError(t, f.store.UpsertAttendance(models.Attendance{
		StudentID: f.student.ID, SubjectID: subject.ID, PresentDays: 9, TotalDays: 10,
	}))
	reports := NewReportService(f.store, zap.NewNop())
	return f, NewExportService(reports, nil, nil, zap.NewNop())
}

func TestReportCardCSV(t *testing.T) {
	f, svc := newExportFixture(t)

	res, err := svc.ReportCard(context.Background(), f.student.ID, ReportFormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "text/csv", res.ContentType)
	assert.Equal(t, "report_R1.csv", res.Filename)

	body := string(res.Payload)
	assert.Contains(t, body, "Alice")
	assert.Contains(t, body, "CS101")
	assert.Contains(t, body, "9.000")
	assert.Contains(t, body, "CGPA")
}

func TestReportCardPDF(t *testing.T) {
	f, svc := newExportFixture(t)

	res, err := svc.ReportCard(context.Background(), f.student.ID, ReportFormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", res.ContentType)
	assert.True(t, strings.HasPrefix(string(res.Payload), "%PDF"))
}

func TestReportCardUnsupportedFormat(t *testing.T) {
	f, svc := newExportFixture(t)

	_, err := svc.ReportCard(context.Background(), f.student.ID, ReportFormat("xlsx"))
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))
}

func TestReportCardUnknownStudent(t *testing.T) {
	_, svc := newExportFixture(t)

	_, err := svc.ReportCard(context.Background(), "missing", ReportFormatCSV)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
}
