package domain

import "fmt"

type BookingStatus string

const (
	BookingBooked     BookingStatus = "booked"
	BookingOngoing    BookingStatus = "ongoing"
	BookingCompleted  BookingStatus = "completed"
	BookingYetToStart BookingStatus = "yet-to-start"
	BookingCanceled   BookingStatus = "canceled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingBooked, BookingOngoing, BookingCompleted, BookingYetToStart, BookingCanceled:
		return true
	}
	return false
}

func (s BookingStatus) Terminal() bool {
	return s == BookingCompleted || s == BookingCanceled
}

func ParseBookingStatus(raw string) (BookingStatus, error) {
	s := BookingStatus(raw)
	if !s.Valid() {
		return "", NewValidationError("status", fmt.Sprintf("unknown status %q", raw))
	}
	return s, nil
}

// yet-to-start is never a target; the entry only covers bookings that
// already carry it.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingBooked:     {BookingOngoing, BookingCanceled},
	BookingOngoing:    {BookingCompleted, BookingCanceled},
	BookingYetToStart: {BookingOngoing, BookingCanceled},
}

// TransitionPolicy decides whether a booking may move from one status to
// another.
type TransitionPolicy func(from, to BookingStatus) error

// PermissiveTransitions accepts any recognised status after any other.
func PermissiveTransitions(_, _ BookingStatus) error {
	return nil
}

// StrictTransitions enforces the booking lifecycle graph.
func StrictTransitions(from, to BookingStatus) error {
	for _, next := range bookingTransitions[from] {
		if next == to {
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}
