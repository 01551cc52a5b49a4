package request

type AirportRequest struct {
	Name           string `json:"name" validate:"required,min=1,max=255"`
	ClosestBigCity string `json:"closest_big_city" validate:"required,min=1,max=255"`
}

type AirportUpdateRequest struct {
	Name           *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	ClosestBigCity *string `json:"closest_big_city,omitempty" validate:"omitempty,min=1,max=255"`
}
