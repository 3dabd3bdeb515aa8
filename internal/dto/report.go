package dto

// SubjectRow is one catalog entry in a student's report. Mark and attendance
// are nil when nothing is recorded for the pair; they render as "N/A", never
// as zero.
type SubjectRow struct {
	SubjectID  string          `json:"subject_id"`
	Code       string          `json:"code"`
	Title      string          `json:"title"`
	Credits    int             `json:"credits"`
	Mark       *float64        `json:"mark,omitempty"`
	GradePoint *float64        `json:"grade_point,omitempty"`
	Attendance *AttendanceCell `json:"attendance,omitempty"`
}

// AttendanceCell carries recorded attendance with its derived percentage.
type AttendanceCell struct {
	PresentDays int     `json:"present_days"`
	TotalDays   int     `json:"total_days"`
	Percent     float64 `json:"percent"`
}

// SemesterReport groups a semester's rows with its SGPA. SGPA is nil when
// the student has no recorded mark in the semester; SGPADisplay then reads
// "N/A", otherwise the value formatted to three decimals.
type SemesterReport struct {
	Semester    int          `json:"semester"`
	Rows        []SubjectRow `json:"rows"`
	SGPA        *float64     `json:"sgpa,omitempty"`
	SGPADisplay string       `json:"sgpa_display"`
}

// StudentSummary identifies the report's subject.
type StudentSummary struct {
	StudentID string `json:"student_id"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Roll      string `json:"roll"`
	Program   string `json:"program"`
}

// ReportResponse is the full academic report for one student.
type ReportResponse struct {
	Student     StudentSummary   `json:"student"`
	Semesters   []SemesterReport `json:"semesters"`
	CGPA        *float64         `json:"cgpa,omitempty"`
	CGPADisplay string           `json:"cgpa_display"`
}
