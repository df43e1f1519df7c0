package dto

import (
	"time"

	"frontdesk/internal/domains/booking/model"
	"frontdesk/shared/constant"
	"frontdesk/shared/daterange"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"
)

// Payload is the booking wire format of the upstream service, which
// carries calendar dates as YYYY-MM-DD strings and timestamps as RFC3339.
type Payload struct {
	ID           int64   `json:"id"`
	RoomID       int64   `json:"roomId"`
	GuestID      string  `json:"guestId"`
	CheckInDate  string  `json:"checkInDate"`
	CheckOutDate string  `json:"checkOutDate"`
	Status       string  `json:"status"`
	TotalPrice   float64 `json:"totalPrice"`
	CreatedAt    string  `json:"createdAt"`
}

func (p *Payload) ToModel() (model.Booking, error) {
	checkIn, err := parseDate(p.CheckInDate)
	if err != nil {
		return model.Booking{}, err
	}

	checkOut, err := parseDate(p.CheckOutDate)
	if err != nil {
		return model.Booking{}, err
	}

	if !checkIn.Before(checkOut) {
		return model.Booking{}, failure.BadRequestFromString("booking check-in must precede check-out") //nolint:wrapcheck
	}

	createdAt, _ := time.Parse(constant.DateFormat, p.CreatedAt)

	return model.Booking{
		ID:           p.ID,
		RoomID:       p.RoomID,
		GuestID:      p.GuestID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Status:       p.Status,
		TotalPrice:   p.TotalPrice,
		CreatedAt:    createdAt,
	}, nil
}

// parseDate accepts the upstream's plain calendar date and tolerates a
// full timestamp, normalizing either to midnight.
func parseDate(value string) (time.Time, error) {
	if parsed, err := timezone.Parse(constant.DateOnlyFormat, value); err == nil {
		return daterange.Normalize(parsed), nil
	}

	parsed, err := time.Parse(constant.DateFormat, value)
	if err != nil {
		return time.Time{}, failure.BadRequestFromString("invalid calendar date: " + value) //nolint:wrapcheck
	}

	return daterange.Normalize(parsed), nil
}

type CreateBookingRequest struct {
	GuestID      string `json:"guestId"      validate:"required"`
	RoomID       int64  `json:"roomId"       validate:"required,gt=0"`
	CheckInDate  string `json:"checkInDate"  validate:"required,dateonly"`
	CheckOutDate string `json:"checkOutDate" validate:"required,dateonly"`
}

type UpdateBookingRequest struct {
	RoomID       *int64  `json:"roomId"       validate:"omitempty,gt=0"`
	CheckInDate  *string `json:"checkInDate"  validate:"omitempty,dateonly"`
	CheckOutDate *string `json:"checkOutDate" validate:"omitempty,dateonly"`
	Status       *string `json:"status"       validate:"omitempty,oneof=PENDING CONFIRMED CANCELLED COMPLETED CHECKED_IN CHECKED_OUT"`
}

func (u *UpdateBookingRequest) ToPatch() model.Patch {
	return model.Patch{
		RoomID:       u.RoomID,
		CheckInDate:  u.CheckInDate,
		CheckOutDate: u.CheckOutDate,
		Status:       u.Status,
	}
}

type BookingResponse struct {
	ID           int64   `json:"id"`
	RoomID       int64   `json:"room_id"`
	GuestID      string  `json:"guest_id"`
	CheckInDate  string  `json:"check_in_date"`
	CheckOutDate string  `json:"check_out_date"`
	Nights       int     `json:"nights"`
	Status       string  `json:"status"`
	TotalPrice   float64 `json:"total_price"`
	CreatedAt    string  `json:"created_at"`
}

func (r *BookingResponse) FromModel(booking model.Booking) {
	r.ID = booking.ID
	r.RoomID = booking.RoomID
	r.GuestID = booking.GuestID
	r.CheckInDate = timezone.Format(booking.CheckInDate, constant.DateOnlyFormat)
	r.CheckOutDate = timezone.Format(booking.CheckOutDate, constant.DateOnlyFormat)
	r.Nights = booking.Nights()
	r.Status = booking.Status
	r.TotalPrice = booking.TotalPrice

	if !booking.CreatedAt.IsZero() {
		r.CreatedAt = timezone.Format(booking.CreatedAt, constant.DateFormat)
	}
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking) {
	r.TotalData = len(models)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type InvoiceResponse struct {
	ID        int64   `json:"id"`
	BookingID int64   `json:"booking_id"`
	Amount    float64 `json:"amount"`
	IssuedAt  string  `json:"issued_at"`
}

type CreateInvoiceRequest struct {
	BookingID int64 `json:"bookingId" validate:"required,gt=0"`
}
