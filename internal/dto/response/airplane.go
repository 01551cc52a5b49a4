package response

import (
	"time"

	"github.com/Zonda001/AirportAPI/internal/data/entity"
)

type AirplaneTypeResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AirplaneResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Rows         int       `json:"rows"`
	SeatsInRows  int       `json:"seats_in_rows"`
	NumOfSeats   int       `json:"num_of_seats"`
	AirplaneType string    `json:"airplane_type"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type AirplaneDetailResponse struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Rows         int                  `json:"rows"`
	SeatsInRows  int                  `json:"seats_in_rows"`
	NumOfSeats   int                  `json:"num_of_seats"`
	AirplaneType AirplaneTypeResponse `json:"airplane_type"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

func AirplaneTypeToResponse(airplaneType *entity.AirplaneType) AirplaneTypeResponse {
	return AirplaneTypeResponse{
		ID:        airplaneType.ID.String(),
		Name:      airplaneType.Name,
		CreatedAt: airplaneType.CreatedAt,
		UpdatedAt: airplaneType.UpdatedAt,
	}
}

// AirplaneToResponse renders the airplane type by name for listings.
func AirplaneToResponse(airplane *entity.AirplaneListItem) AirplaneResponse {
	return AirplaneResponse{
		ID:           airplane.ID.String(),
		Name:         airplane.Name,
		Rows:         airplane.Rows,
		SeatsInRows:  airplane.SeatsInRows,
		NumOfSeats:   airplane.NumOfSeats(),
		AirplaneType: airplane.AirplaneTypeName,
		CreatedAt:    airplane.CreatedAt,
		UpdatedAt:    airplane.UpdatedAt,
	}
}

func AirplaneToDetailResponse(airplane *entity.Airplane, airplaneType *entity.AirplaneType) AirplaneDetailResponse {
	return AirplaneDetailResponse{
		ID:           airplane.ID.String(),
		Name:         airplane.Name,
		Rows:         airplane.Rows,
		SeatsInRows:  airplane.SeatsInRows,
		NumOfSeats:   airplane.NumOfSeats(),
		AirplaneType: AirplaneTypeToResponse(airplaneType),
		CreatedAt:    airplane.CreatedAt,
		UpdatedAt:    airplane.UpdatedAt,
	}
}
