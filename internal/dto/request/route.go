package request

type RouteRequest struct {
	Source      string `json:"source" validate:"required,uuid4"`
	Destination string `json:"destination" validate:"required,uuid4"`
	Distance    int    `json:"distance" validate:"required,min=1"`
}

type RouteUpdateRequest struct {
	Source      *string `json:"source,omitempty" validate:"omitempty,uuid4"`
	Destination *string `json:"destination,omitempty" validate:"omitempty,uuid4"`
	Distance    *int    `json:"distance,omitempty" validate:"omitempty,min=1"`
}
