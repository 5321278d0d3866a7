package models

import "time"

// Course defines the course model based on the 'courses' table
type Course struct {
	ID          int64   `json:"id" db:"id"`
	Code        string  `json:"code" db:"code"`
	Name        string  `json:"name" db:"name"`
	Credits     int     `json:"credits" db:"credits"`
	Description *string `json:"description" db:"description"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
