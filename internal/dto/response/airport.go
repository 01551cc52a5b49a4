package response

import (
	"time"

	"github.com/Zonda001/AirportAPI/internal/data/entity"
)

type AirportResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	ClosestBigCity string    `json:"closest_big_city"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func AirportToResponse(airport *entity.Airport) AirportResponse {
	return AirportResponse{
		ID:             airport.ID.String(),
		Name:           airport.Name,
		ClosestBigCity: airport.ClosestBigCity,
		CreatedAt:      airport.CreatedAt,
		UpdatedAt:      airport.UpdatedAt,
	}
}
