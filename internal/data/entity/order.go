package entity

import (
	"fmt"

	"github.com/google/uuid"
)

// Order groups the tickets purchased together by one user. It is only
// ever created whole: either every ticket is persisted or none are.
type Order struct {
	BaseSimple
	UserID uuid.UUID `db:"user_id"`
}

// Ticket is a claim on one physical seat of one flight. (flight, row,
// seat) is unique across all orders.
type Ticket struct {
	BaseSimple
	Row      int       `db:"row"`
	Seat     int       `db:"seat"`
	FlightID uuid.UUID `db:"flight_id"`
	OrderID  uuid.UUID `db:"order_id"`
}

// TicketListItem carries the route endpoint names of the ticket's
// flight for the list projection.
type TicketListItem struct {
	Ticket
	SourceName      string
	DestinationName string
}

// TakenSeat is a (row, seat) pair already booked on a flight.
type TakenSeat struct {
	Row  int `db:"row"`
	Seat int `db:"seat"`
}

// ValidateSeatAndRow checks a requested seat against the bounds of the
// flight's airplane. Field messages mirror the bounds they enforce.
func ValidateSeatAndRow(seat, row, airplaneSeatsInRow, airplaneRows int) map[string]string {
	if !(1 <= seat && seat <= airplaneSeatsInRow) {
		return map[string]string{
			"seat": fmt.Sprintf("seat must be in range [1, %d]", airplaneSeatsInRow),
		}
	}
	if !(1 <= row && row <= airplaneRows) {
		return map[string]string{
			"row": fmt.Sprintf("row must be in range [1, %d]", airplaneRows),
		}
	}
	return nil
}
