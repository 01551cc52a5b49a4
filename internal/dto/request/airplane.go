package request

type AirplaneTypeRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

type AirplaneTypeUpdateRequest struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
}

type AirplaneRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=255"`
	Rows         int    `json:"rows" validate:"required,min=1"`
	SeatsInRows  int    `json:"seats_in_rows" validate:"required,min=1"`
	AirplaneType string `json:"airplane_type" validate:"required,uuid4"`
}

type AirplaneUpdateRequest struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Rows         *int    `json:"rows,omitempty" validate:"omitempty,min=1"`
	SeatsInRows  *int    `json:"seats_in_rows,omitempty" validate:"omitempty,min=1"`
	AirplaneType *string `json:"airplane_type,omitempty" validate:"omitempty,uuid4"`
}
