package domain

import "time"

// LandStatus is the status code used by the web viewer's local store.
type LandStatus int

const (
	LandStatusAvailable LandStatus = iota
	LandStatusBooked
	LandStatusSold
)

func (s LandStatus) Valid() bool {
	return s >= LandStatusAvailable && s <= LandStatusSold
}

func (s LandStatus) String() string {
	switch s {
	case LandStatusAvailable:
		return "available"
	case LandStatusBooked:
		return "booked"
	case LandStatusSold:
		return "sold"
	default:
		return "unknown"
	}
}

type Land struct {
	LandID      string     `json:"land_id"`
	Cost        float64    `json:"cost"`
	Square      float64    `json:"square"`
	LandDataURL string     `json:"land_data_url"`
	Status      LandStatus `json:"status"`
}

type BookingForm struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
	Phone     string    `json:"phone"`
	LandID    string    `json:"land_id"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateLandInput struct {
	LandID      string
	Cost        float64
	Square      float64
	LandDataURL string
	Status      LandStatus
}

type CreateBookingFormInput struct {
	Name    string
	Surname string
	Phone   string
	LandID  string
}
