package model

import (
	"time"

	"frontdesk/shared/constant"
	"frontdesk/shared/daterange"
)

const (
	EntityName = "booking"
)

// Booking mirrors the upstream booking-service entity. Instances are
// transient read copies held for a single render pass; the upstream
// service remains the authority and the only writer.
type Booking struct {
	ID           int64     `json:"id"`
	RoomID       int64     `json:"roomId"`
	GuestID      string    `json:"guestId"`
	CheckInDate  time.Time `json:"checkInDate"`
	CheckOutDate time.Time `json:"checkOutDate"`
	Status       string    `json:"status"`
	TotalPrice   float64   `json:"totalPrice"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Nights returns the stay length in nights.
func (b Booking) Nights() int {
	return daterange.DurationDays(b.CheckInDate, b.CheckOutDate)
}

// Occupies reports whether the booking holds the given room on the given
// day, using the half-open stay interval.
func (b Booking) Occupies(roomID int64, day time.Time) bool {
	return b.RoomID == roomID && daterange.Covers(day, b.CheckInDate, b.CheckOutDate)
}

// Active reports whether the booking still blocks its room. Cancelled
// bookings never conflict with a reschedule.
func (b Booking) Active() bool {
	return b.Status != constant.BookingStatusCancelled
}

// Patch is the partial update submitted to the upstream mutator. Nil
// fields are left untouched upstream.
type Patch struct {
	RoomID       *int64  `json:"roomId,omitempty"`
	CheckInDate  *string `json:"checkInDate,omitempty"`
	CheckOutDate *string `json:"checkOutDate,omitempty"`
	Status       *string `json:"status,omitempty"`
}
