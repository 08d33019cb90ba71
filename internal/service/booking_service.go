package service

import (
	"context"
	stderrors "errors"
	"fmt"

	"fitbook/internal/errors"
	"fitbook/internal/metrics"
	"fitbook/internal/model"
	"fitbook/internal/repository"
)

// BookingService exposes the booking ledger operations. The caller of
// BookClass must already have checked that memberID is the
// authenticated caller's own id; that rule lives at the HTTP boundary.
type BookingService interface {
	BookClass(ctx context.Context, classID, memberID uint) (*model.Booking, error)
	ListMemberBookings(ctx context.Context, memberID uint) ([]model.Booking, error)
}

type bookingService struct {
	bookings repository.BookingRepository
	recorder metrics.Recorder
}

// NewBookingService creates a new booking service.
func NewBookingService(bookings repository.BookingRepository, recorder metrics.Recorder) BookingService {
	return &bookingService{bookings: bookings, recorder: recorder}
}

// BookClass reserves one seat in a class for a member. The repository
// runs the capacity check and the insert as one atomic unit, so
// concurrent calls on the same class never overshoot its capacity.
func (s *bookingService) BookClass(ctx context.Context, classID, memberID uint) (*model.Booking, error) {
	booking := &model.Booking{
		ClassID:  classID,
		MemberID: memberID,
	}

	if err := s.bookings.CreateIfCapacityAllows(ctx, booking); err != nil {
		switch {
		case stderrors.Is(err, errors.ErrClassFull):
			s.recorder.RecordBookingRejected(metrics.ReasonClassFull)
		case stderrors.Is(err, errors.ErrClassNotFound):
			s.recorder.RecordBookingRejected(metrics.ReasonClassNotFound)
		case stderrors.Is(err, errors.ErrUserNotFound):
			s.recorder.RecordBookingRejected(metrics.ReasonMemberNotFound)
		default:
			s.recorder.RecordBookingRejected(metrics.ReasonInternal)
			return nil, fmt.Errorf("create booking: %w", err)
		}
		return nil, err
	}

	s.recorder.RecordBookingCreated()
	return booking, nil
}

// ListMemberBookings returns all bookings held by the member.
func (s *bookingService) ListMemberBookings(ctx context.Context, memberID uint) ([]model.Booking, error) {
	bookings, err := s.bookings.ListByMember(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}
