package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidateSeatAndRow(t *testing.T) {
	testCases := []struct {
		name          string
		seat          int
		row           int
		seatsInRow    int
		rows          int
		expectedField string
		expectedMsg   string
	}{
		{
			name:       "valid seat and row",
			seat:       3,
			row:        5,
			seatsInRow: 6,
			rows:       20,
		},
		{
			name:       "boundary seat and row",
			seat:       6,
			row:        20,
			seatsInRow: 6,
			rows:       20,
		},
		{
			name:          "seat above range",
			seat:          7,
			row:           5,
			seatsInRow:    6,
			rows:          20,
			expectedField: "seat",
			expectedMsg:   "seat must be in range [1, 6]",
		},
		{
			name:          "seat below range",
			seat:          0,
			row:           5,
			seatsInRow:    6,
			rows:          20,
			expectedField: "seat",
			expectedMsg:   "seat must be in range [1, 6]",
		},
		{
			name:          "row above range",
			seat:          3,
			row:           21,
			seatsInRow:    6,
			rows:          20,
			expectedField: "row",
			expectedMsg:   "row must be in range [1, 20]",
		},
		{
			name:          "row below range",
			seat:          3,
			row:           0,
			seatsInRow:    6,
			rows:          20,
			expectedField: "row",
			expectedMsg:   "row must be in range [1, 20]",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			errs := ValidateSeatAndRow(tc.seat, tc.row, tc.seatsInRow, tc.rows)

			if tc.expectedField == "" {
				assert.Nil(t, errs)
				return
			}

			assert.Len(t, errs, 1)
			assert.Equal(t, tc.expectedMsg, errs[tc.expectedField])
		})
	}
}

func TestValidateSeatAndRow_SeatCheckedFirst(t *testing.T) {
	// Both out of range: only the seat message is reported.
	errs := ValidateSeatAndRow(10, 100, 6, 20)

	assert.Len(t, errs, 1)
	assert.Equal(t, "seat must be in range [1, 6]", errs["seat"])
}

func TestValidateArrival(t *testing.T) {
	departure := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name        string
		arrival     time.Time
		expectedMsg string
	}{
		{
			name:    "arrival after departure",
			arrival: departure.Add(2 * time.Hour),
		},
		{
			name:        "arrival equals departure",
			arrival:     departure,
			expectedMsg: "Arrival time cannot be the same as departure time",
		},
		{
			name:        "arrival before departure",
			arrival:     departure.Add(-time.Hour),
			expectedMsg: "The time and date of arrival cannot be earlier than departure",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			errs := ValidateArrival(departure, tc.arrival)

			if tc.expectedMsg == "" {
				assert.Nil(t, errs)
				return
			}

			assert.Equal(t, tc.expectedMsg, errs["arrival_time"])
		})
	}
}

func TestValidateDestination(t *testing.T) {
	source := uuid.New()
	destination := uuid.New()

	assert.Nil(t, ValidateDestination(source, destination))

	errs := ValidateDestination(source, source)
	assert.Equal(t, "Destination cannot be the same as source", errs["destination"])
}

func TestAirplaneNumOfSeats(t *testing.T) {
	airplane := &Airplane{Rows: 20, SeatsInRows: 6}
	assert.Equal(t, 120, airplane.NumOfSeats())
}

func TestCrewFullName(t *testing.T) {
	crew := &Crew{FirstName: "Amelia", LastName: "Earhart"}
	assert.Equal(t, "Amelia Earhart", crew.FullName())
}
