package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/student-records-api/internal/dto"
	"github.com/noah-isme/student-records-api/pkg/export"
	appErrors "github.com/noah-isme/student-records-api/pkg/errors"
)

// ReportFormat enumerates supported report card renderings.
type ReportFormat string

const (
	ReportFormatCSV ReportFormat = "csv"
	ReportFormatPDF ReportFormat = "pdf"
)

type reportBuilder interface {
	Build(ctx context.Context, studentID string) (*dto.ReportResponse, error)
}

type datasetRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

// ExportResult carries a rendered report card.
type ExportResult struct {
	Payload     []byte
	Filename    string
	ContentType string
}

// ExportService renders student report cards as downloadable files.
type ExportService struct {
	reports reportBuilder
	csv     datasetRenderer
	pdf     datasetRenderer
	logger  *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(reports reportBuilder, csv, pdf datasetRenderer, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{reports: reports, csv: csv, pdf: pdf, logger: logger}
}

// ReportCard builds the student's report and renders it in the requested
// format.
func (s *ExportService) ReportCard(ctx context.Context, studentID string, format ReportFormat) (*ExportResult, error) {
	report, err := s.reports.Build(ctx, studentID)
	if err != nil {
		return nil, err
	}

	dataset := buildReportDataset(report)

	var payload []byte
	var contentType string
	switch format {
	case ReportFormatCSV:
		payload, err = s.csv.Render(dataset)
		contentType = "text/csv"
	case ReportFormatPDF:
		payload, err = s.pdf.Render(dataset)
		contentType = "application/pdf"
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported format %q", format))
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render report")
	}

	s.logger.Info("report card rendered",
		zap.String("student_id", studentID),
		zap.String("format", string(format)),
	)

	return &ExportResult{
		Payload:     payload,
		Filename:    buildReportFilename(report, format),
		ContentType: contentType,
	}, nil
}

func buildReportDataset(report *dto.ReportResponse) export.Dataset {
	dataset := export.Dataset{
		Title:   "Student Report Card",
		Headers: []string{"Semester", "Code", "Title", "Credits", "Marks", "Grade Point", "Attendance"},
		Preamble: [][2]string{
			{"Name", report.Student.FullName},
			{"Email", report.Student.Email},
			{"Roll", report.Student.Roll},
			{"Program", report.Student.Program},
		},
	}

	for _, semester := range report.Semesters {
		for _, row := range semester.Rows {
			record := map[string]string{
				"Semester":    fmt.Sprintf("%d", semester.Semester),
				"Code":        row.Code,
				"Title":       row.Title,
				"Credits":     fmt.Sprintf("%d", row.Credits),
				"Marks":       "N/A",
				"Grade Point": "N/A",
				"Attendance":  "N/A",
			}
			if row.Mark != nil {
				record["Marks"] = fmt.Sprintf("%.2f", *row.Mark)
				record["Grade Point"] = fmt.Sprintf("%.2f", *row.GradePoint)
			}
			if row.Attendance != nil {
				record["Attendance"] = fmt.Sprintf("%d/%d (%.1f%%)", row.Attendance.PresentDays, row.Attendance.TotalDays, row.Attendance.Percent)
			}
			dataset.Rows = append(dataset.Rows, record)
		}
		dataset.Summary = append(dataset.Summary, [2]string{fmt.Sprintf("SGPA (Semester %d)", semester.Semester), semester.SGPADisplay})
	}
	dataset.Summary = append(dataset.Summary, [2]string{"CGPA", report.CGPADisplay})

	return dataset
}

func buildReportFilename(report *dto.ReportResponse, format ReportFormat) string {
	roll := strings.ReplaceAll(strings.TrimSpace(report.Student.Roll), " ", "_")
	if roll == "" {
		roll = report.Student.StudentID
	}
	return fmt.Sprintf("report_%s.%s", roll, format)
}
