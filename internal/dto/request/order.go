package request

type TicketRequest struct {
	Row    int    `json:"row" validate:"required,min=1"`
	Seat   int    `json:"seat" validate:"required,min=1"`
	Flight string `json:"flight" validate:"required,uuid4"`
}

type CreateOrderRequest struct {
	Tickets []TicketRequest `json:"tickets" validate:"required,min=1,dive"`
}
