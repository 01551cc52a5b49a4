package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginatedRequest(t *testing.T) {
	testCases := []struct {
		name           string
		req            PaginatedRequest
		expectedLimit  int
		expectedOffset int
	}{
		{
			name:           "defaults",
			req:            PaginatedRequest{},
			expectedLimit:  10,
			expectedOffset: 0,
		},
		{
			name:           "second page",
			req:            PaginatedRequest{Page: 2, PageSize: 25},
			expectedLimit:  25,
			expectedOffset: 25,
		},
		{
			name:           "page size capped",
			req:            PaginatedRequest{Page: 1, PageSize: 5000},
			expectedLimit:  1000,
			expectedOffset: 0,
		},
		{
			name:           "negative page ignored",
			req:            PaginatedRequest{Page: -3, PageSize: 10},
			expectedLimit:  10,
			expectedOffset: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedLimit, tc.req.Limit())
			assert.Equal(t, tc.expectedOffset, tc.req.Offset())
		})
	}
}
