package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/noah-isme/student-records-api/internal/dto"
	"github.com/noah-isme/student-records-api/internal/store"
)

type recordSource interface {
	StudentRecordSnapshot(studentID string) (*store.StudentRecord, error)
}

// ReportService derives per-semester reports, SGPA and CGPA from the current
// catalog and ledger state. Nothing is cached: every call recomputes from a
// fresh snapshot.
type ReportService struct {
	records recordSource
	logger  *zap.Logger
}

// NewReportService constructs a ReportService instance.
func NewReportService(records recordSource, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{records: records, logger: logger}
}

// Build assembles the full report for one student.
func (s *ReportService) Build(ctx context.Context, studentID string) (*dto.ReportResponse, error) {
	record, err := s.records.StudentRecordSnapshot(studentID)
	if err != nil {
		return nil, err
	}

	report := &dto.ReportResponse{
		Student: dto.StudentSummary{
			StudentID: record.Student.ID,
			FullName:  record.User.FullName,
			Email:     record.User.Email,
			Phone:     record.User.Phone,
			Roll:      record.Student.Roll,
			Program:   record.Student.Program,
		},
	}

	// Subjects arrive sorted by semester then code, so semesters can be
	// assembled in a single pass.
	var current *dto.SemesterReport
	var semesterGraded []gradedSubject
	var allGraded []gradedSubject

	flush := func() {
		if current == nil {
			return
		}
		sgpa, ok := creditWeightedGPA(semesterGraded)
		if ok {
			v := sgpa
			current.SGPA = &v
		}
		current.SGPADisplay = FormatGPA(current.SGPA)
		report.Semesters = append(report.Semesters, *current)
	}

	for _, subject := range record.Subjects {
		if current == nil || current.Semester != subject.Semester {
			flush()
			current = &dto.SemesterReport{Semester: subject.Semester}
			semesterGraded = nil
		}

		row := dto.SubjectRow{
			SubjectID: subject.ID,
			Code:      subject.Code,
			Title:     subject.Title,
			Credits:   subject.Credits,
		}

		if mark, ok := record.Marks[subject.ID]; ok {
			score := mark.Score
			gp := gradePoint(score)
			row.Mark = &score
			row.GradePoint = &gp
			semesterGraded = append(semesterGraded, gradedSubject{gradePoint: gp, credits: subject.Credits})
			allGraded = append(allGraded, gradedSubject{gradePoint: gp, credits: subject.Credits})
		}

		if att, ok := record.Attendance[subject.ID]; ok {
			row.Attendance = &dto.AttendanceCell{
				PresentDays: att.PresentDays,
				TotalDays:   att.TotalDays,
				Percent:     att.Percent(),
			}
		}

		current.Rows = append(current.Rows, row)
	}
	flush()

	// CGPA reweights over the full mark set, not over the per-semester
	// SGPA values.
	if cgpa, ok := creditWeightedGPA(allGraded); ok {
		v := cgpa
		report.CGPA = &v
	}
	report.CGPADisplay = FormatGPA(report.CGPA)

	return report, nil
}

// SGPA computes the semester grade point average for one student. The bool
// result is false when the student has no recorded mark in that semester.
func (s *ReportService) SGPA(ctx context.Context, studentID string, semester int) (float64, bool, error) {
	record, err := s.records.StudentRecordSnapshot(studentID)
	if err != nil {
		return 0, false, err
	}

	var graded []gradedSubject
	for _, subject := range record.Subjects {
		if subject.Semester != semester {
			continue
		}
		if mark, ok := record.Marks[subject.ID]; ok {
			graded = append(graded, gradedSubject{gradePoint: gradePoint(mark.Score), credits: subject.Credits})
		}
	}

	value, ok := creditWeightedGPA(graded)
	return value, ok, nil
}

// CGPA computes the cumulative grade point average over every subject with a
// recorded mark, regardless of semester.
func (s *ReportService) CGPA(ctx context.Context, studentID string) (float64, bool, error) {
	record, err := s.records.StudentRecordSnapshot(studentID)
	if err != nil {
		return 0, false, err
	}

	var graded []gradedSubject
	for _, subject := range record.Subjects {
		if mark, ok := record.Marks[subject.ID]; ok {
			graded = append(graded, gradedSubject{gradePoint: gradePoint(mark.Score), credits: subject.Credits})
		}
	}

	value, ok := creditWeightedGPA(graded)
	return value, ok, nil
}

// FormatGPA renders a grade point average to three decimals, or "N/A" when
// no value exists. Only display is rounded; stored values never are.
func FormatGPA(value *float64) string {
	if value == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.3f", *value)
}
