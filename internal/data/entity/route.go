package entity

import "github.com/google/uuid"

// Route is a directed edge between two airports. Duplicate edges are
// allowed; only the self-loop is rejected.
type Route struct {
	Base
	SourceID      uuid.UUID `db:"source_id"`
	DestinationID uuid.UUID `db:"destination_id"`
	Distance      int       `db:"distance"`
}

// RouteListItem carries the airport names joined in at query time for
// the list projection.
type RouteListItem struct {
	Route
	SourceName      string
	DestinationName string
}

// ValidateDestination rejects routes whose destination equals the source.
func ValidateDestination(source, destination uuid.UUID) map[string]string {
	if source == destination {
		return map[string]string{
			"destination": "Destination cannot be the same as source",
		}
	}
	return nil
}
