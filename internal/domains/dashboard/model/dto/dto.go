package dto

type ArrivalResponse struct {
	BookingID  int64  `json:"booking_id"`
	GuestID    string `json:"guest_id"`
	GuestName  string `json:"guest_name,omitempty"`
	RoomID     int64  `json:"room_id"`
	RoomNumber string `json:"room_number,omitempty"`
	Nights     int    `json:"nights"`
	Status     string `json:"status"`
}

type ActivityResponse struct {
	BookingID    int64  `json:"booking_id"`
	GuestID      string `json:"guest_id"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
}

// ForecastDayResponse is one day of the week-ahead occupancy outlook.
type ForecastDayResponse struct {
	Date          string  `json:"date"`
	OccupiedRooms int     `json:"occupied_rooms"`
	TotalRooms    int     `json:"total_rooms"`
	OccupancyRate float64 `json:"occupancy_rate"`
}

type SummaryResponse struct {
	TotalGuests           int                   `json:"total_guests"`
	ReservedGuests        int                   `json:"reserved_guests"`
	TotalReservations     int                   `json:"total_reservations"`
	CompletedReservations int                   `json:"completed_reservations"`
	TodaysArrivals        []ArrivalResponse     `json:"todays_arrivals"`
	RecentActivity        []ActivityResponse    `json:"recent_activity"`
	Forecast              []ForecastDayResponse `json:"forecast"`
}
