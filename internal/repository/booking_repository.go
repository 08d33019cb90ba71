package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fitbook/internal/errors"
	"fitbook/internal/model"
)

// BookingRepository is the booking ledger. CreateIfCapacityAllows is
// the only write path and the only operation that must be atomic.
type BookingRepository interface {
	CreateIfCapacityAllows(ctx context.Context, booking *model.Booking) error
	ListByMember(ctx context.Context, memberID uint) ([]model.Booking, error)
	CountForClass(ctx context.Context, classID uint) (int64, error)
}

type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new booking repository.
func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

// CreateIfCapacityAllows inserts the booking iff the class still has a
// free seat. The class row is locked FOR UPDATE inside the transaction,
// which serializes the count-then-insert section per class: two racing
// calls on the last seat resolve to one success and one ErrClassFull.
// The whole unit rolls back if the context is cancelled mid-flight.
func (r *bookingRepository) CreateIfCapacityAllows(ctx context.Context, booking *model.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var class model.Class
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", booking.ClassID).First(&class).Error
		if err == gorm.ErrRecordNotFound {
			return errors.ErrClassNotFound
		}
		if err != nil {
			return err
		}

		var member model.User
		err = tx.Where("id = ?", booking.MemberID).First(&member).Error
		if err == gorm.ErrRecordNotFound {
			return errors.ErrUserNotFound
		}
		if err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&model.Booking{}).
			Where("class_id = ?", booking.ClassID).Count(&count).Error; err != nil {
			return err
		}
		if count >= int64(class.Capacity) {
			return errors.ErrClassFull
		}

		return tx.Create(booking).Error
	})
}

// ListByMember returns all bookings held by a member.
func (r *bookingRepository) ListByMember(ctx context.Context, memberID uint) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// CountForClass counts committed bookings for a class.
func (r *bookingRepository) CountForClass(ctx context.Context, classID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Booking{}).
		Where("class_id = ?", classID).Count(&count).Error
	return count, err
}
