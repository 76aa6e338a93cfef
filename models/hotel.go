package models

import "encoding/json"

type Hotel struct {
	HotelID       string `json:"hotel_id"`
	Name          string `json:"name"`
	Address       string `json:"address"`
	TotalRooms    int    `json:"total_rooms"`
	ReservedRooms int    `json:"reserved_rooms"`
}

// NewHotel returns a hotel with no reserved rooms.
func NewHotel(hotelID, name, address string, totalRooms int) Hotel {
	return Hotel{
		HotelID:    hotelID,
		Name:       name,
		Address:    address,
		TotalRooms: totalRooms,
	}
}

// AvailableRooms may go negative: over-booking through field edits is allowed.
func (h Hotel) AvailableRooms() int {
	return h.TotalRooms - h.ReservedRooms
}

type hotelRecord struct {
	HotelID       *string `json:"hotel_id" validate:"required"`
	Name          *string `json:"name" validate:"required"`
	Address       *string `json:"address" validate:"required"`
	TotalRooms    *int    `json:"total_rooms" validate:"required"`
	ReservedRooms *int    `json:"reserved_rooms"`
}

// UnmarshalJSON rejects records without their required keys and defaults
// reserved_rooms to 0 when it is absent.
func (h *Hotel) UnmarshalJSON(data []byte) error {
	var rec hotelRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	if err := validateRecord("hotel", rec); err != nil {
		return err
	}

	*h = NewHotel(*rec.HotelID, *rec.Name, *rec.Address, *rec.TotalRooms)
	if rec.ReservedRooms != nil {
		h.ReservedRooms = *rec.ReservedRooms
	}
	return nil
}

// HotelUpdate carries a partial edit; nil fields are left untouched.
type HotelUpdate struct {
	Name       *string `json:"name"`
	Address    *string `json:"address"`
	TotalRooms *int    `json:"total_rooms"`
}

func (u HotelUpdate) Apply(h *Hotel) {
	if u.Name != nil {
		h.Name = *u.Name
	}
	if u.Address != nil {
		h.Address = *u.Address
	}
	if u.TotalRooms != nil {
		h.TotalRooms = *u.TotalRooms
	}
}
