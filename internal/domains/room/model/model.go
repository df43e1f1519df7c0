package model

const (
	EntityName = "room"
)

type Amenity struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Room mirrors the upstream room-service entity. The calendar only reads
// ID, RoomNumber and Type; the rest is carried through for the room
// management screens.
type Room struct {
	ID            int64     `json:"id"`
	RoomNumber    string    `json:"roomNumber"`
	Type          string    `json:"type"`
	PricePerNight float64   `json:"pricePerNight"`
	Status        string    `json:"status"`
	ViewType      string    `json:"viewType"`
	MaxGuests     int       `json:"maxGuests"`
	BedType       string    `json:"bedType"`
	BedCount      int       `json:"bedCount"`
	Description   string    `json:"description"`
	ImageURL      string    `json:"imageUrl,omitempty"`
	Amenities     []Amenity `json:"amenities"`
}
