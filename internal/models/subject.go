package models

import "time"

// Subject represents an academic subject. Codes are unique
// case-insensitively; credits and semester are positive.
type Subject struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Title     string    `json:"title"`
	Credits   int       `json:"credits"`
	Semester  int       `json:"semester"`
	CreatedAt time.Time `json:"created_at"`
}

// SemesterGroup is one semester's worth of subjects, codes ascending.
type SemesterGroup struct {
	Semester int       `json:"semester"`
	Subjects []Subject `json:"subjects"`
}
