// Package engine implements the booking placement core: resolving which
// bookings occupy which calendar cells for a visible window, and planning
// duration-preserving reschedules.
//
// Placement is recomputed from scratch on every call; the engine holds no
// state and never mutates its inputs. The upstream booking service is
// trusted for data consistency on reads, but a reschedule is always
// conflict-checked before a mutation is proposed.
package engine

import (
	"fmt"
	"time"

	bookingModel "frontdesk/internal/domains/booking/model"
	roomModel "frontdesk/internal/domains/room/model"
	"frontdesk/shared/daterange"
)

// StatusFilter decides whether a booking participates in placement. A
// nil filter keeps everything; exclusions (e.g. cancelled stays) are the
// caller's policy, never hard-coded here.
type StatusFilter func(bookingModel.Booking) bool

// Window is a contiguous run of calendar days, ascending, no gaps.
type Window struct {
	Days []time.Time
}

// MonthWindow covers every day of the given month.
func MonthWindow(year int, month time.Month) (Window, error) {
	first, last := daterange.MonthBounds(year, month)

	days, err := daterange.DaysInRange(first, daterange.AddDays(last, 1))
	if err != nil {
		return Window{}, fmt.Errorf("failed to build month window: %w", err)
	}

	return Window{Days: days}, nil
}

// RollingWindow covers n days starting at the Sunday on or before the
// anchor, mirroring the two-week scheduling board.
func RollingWindow(anchor time.Time, n int) (Window, error) {
	start := daterange.StartOfWeek(anchor)

	days, err := daterange.DaysInRange(start, daterange.AddDays(start, n))
	if err != nil {
		return Window{}, fmt.Errorf("failed to build rolling window: %w", err)
	}

	return Window{Days: days}, nil
}

func (w Window) Start() time.Time {
	return w.Days[0]
}

func (w Window) End() time.Time {
	return w.Days[len(w.Days)-1]
}

// Placement is one booking rendered into one cell. IsSpanStart marks the
// first occupied night, where the host anchors the visual span label.
type Placement struct {
	Booking     bookingModel.Booking
	IsSpanStart bool
	Nights      int
}

// MonthCell is one day of the month grid. A cell with no placements is a
// valid, empty cell, not an error.
type MonthCell struct {
	Date       time.Time
	Placements []Placement
}

// MonthGrid is the render-ready month view. LeadingBlanks is the weekday
// index of day one, the number of empty slots before it in a
// Sunday-first grid.
type MonthGrid struct {
	Year          int
	Month         time.Month
	LeadingBlanks int
	Cells         []MonthCell
}

// BuildMonthGrid buckets bookings into month cells. Candidate selection
// uses the inclusive overlap test so a stay merely touching the month
// boundary still shows on its boundary day; per-cell occupancy then uses
// the half-open test, independently for every day.
func BuildMonthGrid(bookings []bookingModel.Booking, year int, month time.Month, keep StatusFilter) (MonthGrid, error) {
	window, err := MonthWindow(year, month)
	if err != nil {
		return MonthGrid{}, err
	}

	monthStart := window.Start()
	monthEnd := window.End()

	candidates := make([]bookingModel.Booking, 0, len(bookings))

	for _, booking := range bookings {
		if keep != nil && !keep(booking) {
			continue
		}

		if daterange.Overlaps(booking.CheckInDate, booking.CheckOutDate, monthStart, monthEnd) {
			candidates = append(candidates, booking)
		}
	}

	grid := MonthGrid{
		Year:          year,
		Month:         month,
		LeadingBlanks: int(monthStart.Weekday()),
		Cells:         make([]MonthCell, len(window.Days)),
	}

	for i, day := range window.Days {
		cell := MonthCell{Date: day}

		for _, candidate := range candidates {
			if daterange.Covers(day, candidate.CheckInDate, candidate.CheckOutDate) {
				cell.Placements = append(cell.Placements, newPlacement(candidate, day))
			}
		}

		grid.Cells[i] = cell
	}

	return grid, nil
}

// RoomCell is one (room, day) slot of the scheduling board. More than
// one placement in a cell means the source data double-booked the room;
// all matches are surfaced so the host can flag the anomaly instead of
// rendering an arbitrary winner.
type RoomCell struct {
	Date       time.Time
	Placements []Placement
}

type RoomRow struct {
	Room  roomModel.Room
	Cells []RoomCell
}

// Warning records a (room, day) cell claimed by multiple bookings.
// Non-fatal: rendering continues with every match visible.
type Warning struct {
	RoomID     int64
	Date       time.Time
	BookingIDs []int64
}

type RoomGrid struct {
	Days     []time.Time
	Rows     []RoomRow
	Warnings []Warning
}

// BuildRoomGrid resolves the room-by-day board used for drag-and-drop
// rescheduling.
func BuildRoomGrid(rooms []roomModel.Room, bookings []bookingModel.Booking, window Window, keep StatusFilter) RoomGrid {
	grid := RoomGrid{
		Days: window.Days,
		Rows: make([]RoomRow, len(rooms)),
	}

	for i, room := range rooms {
		row := RoomRow{
			Room:  room,
			Cells: make([]RoomCell, len(window.Days)),
		}

		for j, day := range window.Days {
			cell := RoomCell{Date: day}

			for _, occupant := range occupants(bookings, room.ID, day, 0, keep) {
				cell.Placements = append(cell.Placements, newPlacement(occupant, day))
			}

			if len(cell.Placements) > 1 {
				ids := make([]int64, len(cell.Placements))
				for k, placement := range cell.Placements {
					ids[k] = placement.Booking.ID
				}

				grid.Warnings = append(grid.Warnings, Warning{
					RoomID:     room.ID,
					Date:       day,
					BookingIDs: ids,
				})
			}

			row.Cells[j] = cell
		}

		grid.Rows[i] = row
	}

	return grid
}

// MovePlan is the mutation proposal for a drag gesture. NoChange marks
// the sentinel result for a drop onto the booking's current slot: the
// caller must not issue a mutation for it.
type MovePlan struct {
	BookingID    int64
	RoomID       int64
	CheckInDate  time.Time
	CheckOutDate time.Time
	Nights       int
	NoChange     bool
}

// ConflictError reports a reschedule destination already held by other
// bookings. Every blocking booking is named so the operator sees exactly
// what is in the way.
type ConflictError struct {
	RoomID      int64
	BlockingIDs []int64
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("room %d is already occupied by booking(s) %v in the requested date range", e.RoomID, e.BlockingIDs)
}

// PlanMove computes the reschedule proposal for moving a booking to a
// destination room and check-in date, preserving the stay duration. The
// booking being moved never conflicts with itself.
func PlanMove(bookings []bookingModel.Booking, target bookingModel.Booking, destRoomID int64, destDate time.Time, keep StatusFilter) (MovePlan, error) {
	nights := target.Nights()
	newCheckIn := daterange.Normalize(destDate)
	newCheckOut := daterange.AddDays(newCheckIn, nights)

	stay, err := daterange.DaysInRange(newCheckIn, newCheckOut)
	if err != nil {
		return MovePlan{}, fmt.Errorf("failed to enumerate proposed stay: %w", err)
	}

	blocking := []int64{}
	seen := map[int64]struct{}{}

	for _, day := range stay {
		for _, occupant := range occupants(bookings, destRoomID, day, target.ID, keep) {
			if _, dup := seen[occupant.ID]; dup {
				continue
			}

			seen[occupant.ID] = struct{}{}
			blocking = append(blocking, occupant.ID)
		}
	}

	if len(blocking) > 0 {
		return MovePlan{}, &ConflictError{RoomID: destRoomID, BlockingIDs: blocking}
	}

	plan := MovePlan{
		BookingID:    target.ID,
		RoomID:       destRoomID,
		CheckInDate:  newCheckIn,
		CheckOutDate: newCheckOut,
		Nights:       nights,
	}

	if destRoomID == target.RoomID && daterange.SameDay(newCheckIn, target.CheckInDate) {
		plan.NoChange = true
	}

	return plan, nil
}

func newPlacement(booking bookingModel.Booking, day time.Time) Placement {
	return Placement{
		Booking:     booking,
		IsSpanStart: daterange.SameDay(day, booking.CheckInDate),
		Nights:      booking.Nights(),
	}
}

// occupants returns every booking holding the room on the day, excluding
// the booking with excludeID (0 excludes nothing).
func occupants(bookings []bookingModel.Booking, roomID int64, day time.Time, excludeID int64, keep StatusFilter) []bookingModel.Booking {
	matches := []bookingModel.Booking{}

	for _, booking := range bookings {
		if excludeID != 0 && booking.ID == excludeID {
			continue
		}

		if keep != nil && !keep(booking) {
			continue
		}

		if booking.Occupies(roomID, day) {
			matches = append(matches, booking)
		}
	}

	return matches
}
