package response

import (
	"time"

	"github.com/Zonda001/AirportAPI/internal/data/entity"
)

type CrewResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func CrewToResponse(crew *entity.Crew) CrewResponse {
	return CrewResponse{
		ID:        crew.ID.String(),
		FirstName: crew.FirstName,
		LastName:  crew.LastName,
		FullName:  crew.FullName(),
		CreatedAt: crew.CreatedAt,
		UpdatedAt: crew.UpdatedAt,
	}
}
