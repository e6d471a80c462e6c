package dto

import (
	"time"

	"github.com/stpnv0/LandBooker/internal/domain"
)

type LandResponse struct {
	LandID      string  `json:"land_id"`
	Cost        float64 `json:"cost"`
	Square      float64 `json:"square"`
	LandDataURL string  `json:"land_data_url"`
	Status      int     `json:"status"`
	StatusName  string  `json:"status_name"`
}

type FormResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Surname   string `json:"surname"`
	Phone     string `json:"phone"`
	LandID    string `json:"land_id"`
	CreatedAt string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToLandResponse(l domain.Land) LandResponse {
	return LandResponse{
		LandID:      l.LandID,
		Cost:        l.Cost,
		Square:      l.Square,
		LandDataURL: l.LandDataURL,
		Status:      int(l.Status),
		StatusName:  l.Status.String(),
	}
}

func ToLandResponses(lands []domain.Land) []LandResponse {
	resp := make([]LandResponse, 0, len(lands))
	for _, l := range lands {
		resp = append(resp, ToLandResponse(l))
	}
	return resp
}

func ToFormResponse(f *domain.BookingForm) FormResponse {
	return FormResponse{
		ID:        f.ID,
		Name:      f.Name,
		Surname:   f.Surname,
		Phone:     f.Phone,
		LandID:    f.LandID,
		CreatedAt: f.CreatedAt.Format(time.RFC3339),
	}
}
