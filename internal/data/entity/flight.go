package entity

import (
	"time"

	"github.com/google/uuid"
)

type Flight struct {
	Base
	RouteID       uuid.UUID `db:"route_id"`
	AirplaneID    uuid.UUID `db:"airplane_id"`
	DepartureTime time.Time `db:"departure_time"`
	ArrivalTime   time.Time `db:"arrival_time"`
}

// FlightListItem is the list projection: route endpoint names and the
// seat availability aggregate are computed by the query, not stored.
type FlightListItem struct {
	Flight
	SourceName       string
	DestinationName  string
	AirplaneName     string
	CrewNames        []string
	AvailableTickets int
}

// ValidateArrival rejects flights that do not move forward in time.
// Equal timestamps and arrivals before departure carry distinct messages.
func ValidateArrival(departureTime, arrivalTime time.Time) map[string]string {
	if arrivalTime.Equal(departureTime) {
		return map[string]string{
			"arrival_time": "Arrival time cannot be the same as departure time",
		}
	}
	if arrivalTime.Before(departureTime) {
		return map[string]string{
			"arrival_time": "The time and date of arrival cannot be earlier than departure",
		}
	}
	return nil
}
