package dto

import (
	"time"

	"frontdesk/internal/domains/calendar/engine"
	"frontdesk/shared/constant"
	"frontdesk/shared/timezone"
)

// PlacementResponse is one booking rendered into one cell.
type PlacementResponse struct {
	BookingID    int64  `json:"booking_id"`
	GuestID      string `json:"guest_id"`
	Status       string `json:"status"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
	Nights       int    `json:"nights"`
	IsSpanStart  bool   `json:"is_span_start"`
}

func newPlacementResponse(placement engine.Placement) PlacementResponse {
	return PlacementResponse{
		BookingID:    placement.Booking.ID,
		GuestID:      placement.Booking.GuestID,
		Status:       placement.Booking.Status,
		CheckInDate:  formatDay(placement.Booking.CheckInDate),
		CheckOutDate: formatDay(placement.Booking.CheckOutDate),
		Nights:       placement.Nights,
		IsSpanStart:  placement.IsSpanStart,
	}
}

type MonthCellResponse struct {
	Date     string              `json:"date"`
	Bookings []PlacementResponse `json:"bookings"`
}

type MonthViewResponse struct {
	Year          int                 `json:"year"`
	Month         int                 `json:"month"`
	MonthName     string              `json:"month_name"`
	LeadingBlanks int                 `json:"leading_blanks"`
	Cells         []MonthCellResponse `json:"cells"`
}

func (r *MonthViewResponse) FromGrid(grid engine.MonthGrid) {
	r.Year = grid.Year
	r.Month = int(grid.Month)
	r.MonthName = grid.Month.String()
	r.LeadingBlanks = grid.LeadingBlanks

	r.Cells = make([]MonthCellResponse, len(grid.Cells))
	for i, cell := range grid.Cells {
		r.Cells[i] = MonthCellResponse{
			Date:     formatDay(cell.Date),
			Bookings: placements(cell.Placements),
		}
	}
}

type RoomCellResponse struct {
	Date     string              `json:"date"`
	Bookings []PlacementResponse `json:"bookings"`
}

type RoomRowResponse struct {
	RoomID     int64              `json:"room_id"`
	RoomNumber string             `json:"room_number"`
	RoomType   string             `json:"room_type"`
	Cells      []RoomCellResponse `json:"cells"`
}

// WarningResponse flags a room-day cell claimed by more than one booking
// in the upstream data.
type WarningResponse struct {
	RoomID     int64   `json:"room_id"`
	Date       string  `json:"date"`
	BookingIDs []int64 `json:"booking_ids"`
}

type ScheduleViewResponse struct {
	StartDate string            `json:"start_date"`
	EndDate   string            `json:"end_date"`
	Days      []string          `json:"days"`
	Rooms     []RoomRowResponse `json:"rooms"`
	Warnings  []WarningResponse `json:"warnings,omitempty"`
}

func (r *ScheduleViewResponse) FromGrid(grid engine.RoomGrid) {
	r.StartDate = formatDay(grid.Days[0])
	r.EndDate = formatDay(grid.Days[len(grid.Days)-1])

	r.Days = make([]string, len(grid.Days))
	for i, day := range grid.Days {
		r.Days[i] = formatDay(day)
	}

	r.Rooms = make([]RoomRowResponse, len(grid.Rows))
	for i, row := range grid.Rows {
		cells := make([]RoomCellResponse, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = RoomCellResponse{
				Date:     formatDay(cell.Date),
				Bookings: placements(cell.Placements),
			}
		}

		r.Rooms[i] = RoomRowResponse{
			RoomID:     row.Room.ID,
			RoomNumber: row.Room.RoomNumber,
			RoomType:   row.Room.Type,
			Cells:      cells,
		}
	}

	for _, warning := range grid.Warnings {
		r.Warnings = append(r.Warnings, WarningResponse{
			RoomID:     warning.RoomID,
			Date:       formatDay(warning.Date),
			BookingIDs: warning.BookingIDs,
		})
	}
}

// MoveBookingRequest is the drop target of a drag gesture.
type MoveBookingRequest struct {
	RoomID      int64  `json:"roomId"      validate:"required,gt=0"`
	CheckInDate string `json:"checkInDate" validate:"required,dateonly"`
}

type MoveBookingResponse struct {
	BookingID    int64  `json:"booking_id"`
	RoomID       int64  `json:"room_id"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
	Nights       int    `json:"nights"`
	Moved        bool   `json:"moved"`
}

func (r *MoveBookingResponse) FromPlan(plan engine.MovePlan) {
	r.BookingID = plan.BookingID
	r.RoomID = plan.RoomID
	r.CheckInDate = formatDay(plan.CheckInDate)
	r.CheckOutDate = formatDay(plan.CheckOutDate)
	r.Nights = plan.Nights
	r.Moved = !plan.NoChange
}

func placements(in []engine.Placement) []PlacementResponse {
	out := make([]PlacementResponse, len(in))
	for i, placement := range in {
		out[i] = newPlacementResponse(placement)
	}

	return out
}

func formatDay(day time.Time) string {
	return timezone.Format(day, constant.DateOnlyFormat)
}
