package request

type FlightRequest struct {
	Route         string   `json:"route" validate:"required,uuid4"`
	Airplane      string   `json:"airplane" validate:"required,uuid4"`
	DepartureTime string   `json:"departure_time" validate:"required"`
	ArrivalTime   string   `json:"arrival_time" validate:"required"`
	Crew          []string `json:"crew,omitempty" validate:"omitempty,dive,uuid4"`
}

type FlightUpdateRequest struct {
	Route         *string  `json:"route,omitempty" validate:"omitempty,uuid4"`
	Airplane      *string  `json:"airplane,omitempty" validate:"omitempty,uuid4"`
	DepartureTime *string  `json:"departure_time,omitempty"`
	ArrivalTime   *string  `json:"arrival_time,omitempty"`
	Crew          []string `json:"crew,omitempty" validate:"omitempty,dive,uuid4"`
}
