package response

import (
	"time"

	"github.com/Zonda001/AirportAPI/internal/data/entity"
)

type FlightResponse struct {
	ID               string    `json:"id"`
	Source           string    `json:"source"`
	Destination      string    `json:"destination"`
	Airplane         string    `json:"airplane"`
	DepartureTime    time.Time `json:"departure_time"`
	ArrivalTime      time.Time `json:"arrival_time"`
	Crew             []string  `json:"crew"`
	AvailableTickets int       `json:"available_tickets"`
}

type TakenPlaceResponse struct {
	Row  int `json:"row"`
	Seat int `json:"seat"`
}

type FlightDetailResponse struct {
	ID            string               `json:"id"`
	Route         RouteResponse        `json:"route"`
	Airplane      AirplaneResponse     `json:"airplane"`
	DepartureTime time.Time            `json:"departure_time"`
	ArrivalTime   time.Time            `json:"arrival_time"`
	Crew          []CrewResponse       `json:"crew"`
	TakenPlaces   []TakenPlaceResponse `json:"taken_places"`
}

func FlightToResponse(flight *entity.FlightListItem, crews []*entity.Crew) FlightResponse {
	crewNames := make([]string, 0, len(crews))
	for _, crew := range crews {
		crewNames = append(crewNames, crew.FullName())
	}

	return FlightResponse{
		ID:               flight.ID.String(),
		Source:           flight.SourceName,
		Destination:      flight.DestinationName,
		Airplane:         flight.AirplaneName,
		DepartureTime:    flight.DepartureTime,
		ArrivalTime:      flight.ArrivalTime,
		Crew:             crewNames,
		AvailableTickets: flight.AvailableTickets,
	}
}

func FlightToDetailResponse(
	flight *entity.Flight,
	route *entity.RouteListItem,
	airplane *entity.AirplaneListItem,
	crews []*entity.Crew,
	takenSeats []entity.TakenSeat,
) FlightDetailResponse {
	crewResponses := make([]CrewResponse, 0, len(crews))
	for _, crew := range crews {
		crewResponses = append(crewResponses, CrewToResponse(crew))
	}

	places := make([]TakenPlaceResponse, 0, len(takenSeats))
	for _, seat := range takenSeats {
		places = append(places, TakenPlaceResponse{Row: seat.Row, Seat: seat.Seat})
	}

	return FlightDetailResponse{
		ID:            flight.ID.String(),
		Route:         RouteToResponse(route),
		Airplane:      AirplaneToResponse(airplane),
		DepartureTime: flight.DepartureTime,
		ArrivalTime:   flight.ArrivalTime,
		Crew:          crewResponses,
		TakenPlaces:   places,
	}
}
