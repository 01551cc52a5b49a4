package response

import (
	"time"

	"github.com/Zonda001/AirportAPI/internal/data/entity"
)

type RouteResponse struct {
	ID          string    `json:"id"`
	Source      string    `json:"source"`
	Destination string    `json:"destination"`
	Distance    int       `json:"distance"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type RouteDetailResponse struct {
	ID          string          `json:"id"`
	Source      AirportResponse `json:"source"`
	Destination AirportResponse `json:"destination"`
	Distance    int             `json:"distance"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// RouteToResponse renders endpoints by airport name for listings.
func RouteToResponse(route *entity.RouteListItem) RouteResponse {
	return RouteResponse{
		ID:          route.ID.String(),
		Source:      route.SourceName,
		Destination: route.DestinationName,
		Distance:    route.Distance,
		CreatedAt:   route.CreatedAt,
		UpdatedAt:   route.UpdatedAt,
	}
}

func RouteToDetailResponse(route *entity.Route, source, destination *entity.Airport) RouteDetailResponse {
	return RouteDetailResponse{
		ID:          route.ID.String(),
		Source:      AirportToResponse(source),
		Destination: AirportToResponse(destination),
		Distance:    route.Distance,
		CreatedAt:   route.CreatedAt,
		UpdatedAt:   route.UpdatedAt,
	}
}
