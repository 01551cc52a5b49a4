package response

import (
	"time"

	"github.com/Zonda001/AirportAPI/internal/data/entity"
)

type TicketResponse struct {
	ID          string `json:"id"`
	Row         int    `json:"row"`
	Seat        int    `json:"seat"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
}

type OrderResponse struct {
	ID        string           `json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	Tickets   []TicketResponse `json:"tickets"`
}

func TicketToResponse(ticket *entity.TicketListItem) TicketResponse {
	return TicketResponse{
		ID:          ticket.ID.String(),
		Row:         ticket.Row,
		Seat:        ticket.Seat,
		Source:      ticket.SourceName,
		Destination: ticket.DestinationName,
	}
}

func OrderToResponse(order *entity.Order, tickets []*entity.TicketListItem) OrderResponse {
	ticketResponses := make([]TicketResponse, 0, len(tickets))
	for _, ticket := range tickets {
		ticketResponses = append(ticketResponses, TicketToResponse(ticket))
	}

	return OrderResponse{
		ID:        order.ID.String(),
		CreatedAt: order.CreatedAt,
		Tickets:   ticketResponses,
	}
}
