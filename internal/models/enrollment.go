package models

// EnrollmentKey identifies a (student, subject) pair. Marks and attendance
// are keyed by it, at most one entry per key.
type EnrollmentKey struct {
	StudentID string `json:"student_id"`
	SubjectID string `json:"subject_id"`
}

// Mark is a recorded score in [0,100] for one enrollment key.
type Mark struct {
	StudentID string  `json:"student_id"`
	SubjectID string  `json:"subject_id"`
	Score     float64 `json:"score"`
}

// Key returns the composite ledger key for the mark.
func (m Mark) Key() EnrollmentKey {
	return EnrollmentKey{StudentID: m.StudentID, SubjectID: m.SubjectID}
}

// Attendance records present days out of total days for one enrollment key.
// Invariant: TotalDays > 0 and 0 <= PresentDays <= TotalDays.
type Attendance struct {
	StudentID   string `json:"student_id"`
	SubjectID   string `json:"subject_id"`
	PresentDays int    `json:"present_days"`
	TotalDays   int    `json:"total_days"`
}

// Key returns the composite ledger key for the attendance record.
func (a Attendance) Key() EnrollmentKey {
	return EnrollmentKey{StudentID: a.StudentID, SubjectID: a.SubjectID}
}

// Percent reports attendance as a percentage of total days.
func (a Attendance) Percent() float64 {
	if a.TotalDays <= 0 {
		return 0
	}
	return float64(a.PresentDays) * 100 / float64(a.TotalDays)
}
