package entity

import "github.com/google/uuid"

type AirplaneType struct {
	Base
	Name string `db:"name"`
}

type Airplane struct {
	Base
	Name           string    `db:"name"`
	Rows           int       `db:"rows"`
	SeatsInRows    int       `db:"seats_in_rows"`
	AirplaneTypeID uuid.UUID `db:"airplane_type_id"`
}

// NumOfSeats is the airplane capacity, never stored.
func (a *Airplane) NumOfSeats() int {
	return a.Rows * a.SeatsInRows
}

// AirplaneListItem carries the type name joined in at query time.
type AirplaneListItem struct {
	Airplane
	AirplaneTypeName string
}
