package dto

import (
	"frontdesk/internal/domains/room/model"
)

type RoomResponse struct {
	ID            int64           `json:"id"`
	RoomNumber    string          `json:"room_number"`
	Type          string          `json:"type"`
	PricePerNight float64         `json:"price_per_night"`
	Status        string          `json:"status"`
	ViewType      string          `json:"view_type"`
	MaxGuests     int             `json:"max_guests"`
	BedType       string          `json:"bed_type"`
	BedCount      int             `json:"bed_count"`
	Description   string          `json:"description"`
	ImageURL      string          `json:"image_url,omitempty"`
	Amenities     []model.Amenity `json:"amenities"`
}

func (r *RoomResponse) FromModel(room model.Room) {
	r.ID = room.ID
	r.RoomNumber = room.RoomNumber
	r.Type = room.Type
	r.PricePerNight = room.PricePerNight
	r.Status = room.Status
	r.ViewType = room.ViewType
	r.MaxGuests = room.MaxGuests
	r.BedType = room.BedType
	r.BedCount = room.BedCount
	r.Description = room.Description
	r.ImageURL = room.ImageURL
	r.Amenities = room.Amenities
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room) {
	r.TotalData = len(models)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

type UpdateRoomStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=AVAILABLE OCCUPIED MAINTENANCE OUT_OF_ORDER"`
}
