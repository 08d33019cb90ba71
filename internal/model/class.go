package model

import "time"

// Class is a scheduled gym class with a fixed number of seats.
// Classes are immutable once created; there is no update or delete path.
type Class struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	Name            string    `json:"name" gorm:"size:255;not null"`
	TrainerID       uint      `json:"trainer_id" gorm:"index;not null"`
	Capacity        int       `json:"capacity" gorm:"not null"`
	DurationMinutes int       `json:"duration_minutes" gorm:"not null"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
