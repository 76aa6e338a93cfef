package models

import "encoding/json"

type ReservationStatus string

const (
	StatusActive    ReservationStatus = "active"
	StatusCancelled ReservationStatus = "cancelled"
)

// Reservation points at its customer and hotel by identifier only. Deleting
// either side leaves the reservation as it is.
type Reservation struct {
	ReservationID string            `json:"reservation_id"`
	CustomerID    string            `json:"customer_id"`
	HotelID       string            `json:"hotel_id"`
	RoomNumber    string            `json:"room_number"`
	CheckIn       string            `json:"check_in"`
	CheckOut      string            `json:"check_out"`
	Status        ReservationStatus `json:"status"`
}

// ReservationInput is what a caller supplies to book a room. Dates are kept
// as given; no calendar or overlap checks are made.
type ReservationInput struct {
	ReservationID string `json:"reservation_id" binding:"required"`
	CustomerID    string `json:"customer_id" binding:"required"`
	HotelID       string `json:"hotel_id" binding:"required"`
	RoomNumber    string `json:"room_number"`
	CheckIn       string `json:"check_in"`
	CheckOut      string `json:"check_out"`
}

func NewReservation(in ReservationInput) Reservation {
	return Reservation{
		ReservationID: in.ReservationID,
		CustomerID:    in.CustomerID,
		HotelID:       in.HotelID,
		RoomNumber:    in.RoomNumber,
		CheckIn:       in.CheckIn,
		CheckOut:      in.CheckOut,
		Status:        StatusActive,
	}
}

func (r Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}

type reservationRecord struct {
	ReservationID *string            `json:"reservation_id" validate:"required"`
	CustomerID    *string            `json:"customer_id" validate:"required"`
	HotelID       *string            `json:"hotel_id" validate:"required"`
	RoomNumber    *string            `json:"room_number" validate:"required"`
	CheckIn       *string            `json:"check_in" validate:"required"`
	CheckOut      *string            `json:"check_out" validate:"required"`
	Status        *ReservationStatus `json:"status"`
}

// UnmarshalJSON defaults an absent status to active.
func (r *Reservation) UnmarshalJSON(data []byte) error {
	var rec reservationRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	if err := validateRecord("reservation", rec); err != nil {
		return err
	}

	*r = NewReservation(ReservationInput{
		ReservationID: *rec.ReservationID,
		CustomerID:    *rec.CustomerID,
		HotelID:       *rec.HotelID,
		RoomNumber:    *rec.RoomNumber,
		CheckIn:       *rec.CheckIn,
		CheckOut:      *rec.CheckOut,
	})
	if rec.Status != nil {
		r.Status = *rec.Status
	}
	return nil
}
