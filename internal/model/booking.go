package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking reserves one seat in a class for a member. Bookings are only
// ever created; they are never updated or cancelled.
type Booking struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Reference uuid.UUID `json:"reference" gorm:"type:char(36);uniqueIndex"`
	ClassID   uint      `json:"class_id" gorm:"index;not null"`
	MemberID  uint      `json:"member_id" gorm:"index;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate assigns a reference code before inserting the record.
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.Reference == uuid.Nil {
		b.Reference = uuid.New()
	}
	return nil
}
