package models

import "time"

// Student is the academic profile owned by exactly one User with the
// student role. Roll numbers are display identifiers and not unique.
type Student struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Roll      string    `json:"roll"`
	Program   string    `json:"program"`
	CreatedAt time.Time `json:"created_at"`
}

// StudentDetail joins a student with its owning user for listings.
type StudentDetail struct {
	Student
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}
