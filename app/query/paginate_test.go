package query

import (
	"math"
	"testing"

	"devclub-portal/app/models"

	"github.com/stretchr/testify/assert"
)

func TestPage(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		query      models.PaginationQuery
		start, end int
		meta       models.PaginationMeta
	}{
		{
			name:  "defaults",
			total: 15,
			start: 0, end: 15,
			meta: models.PaginationMeta{CurrentPage: 1, TotalPage: 1, TotalData: 15, Limit: DefaultPageLimit},
		},
		{
			name:  "second page",
			total: 15,
			query: models.PaginationQuery{Page: 2, Limit: 10},
			start: 10, end: 15,
			meta: models.PaginationMeta{CurrentPage: 2, TotalPage: 2, TotalData: 15, Limit: 10},
		},
		{
			name:  "page past the end is empty",
			total: 15,
			query: models.PaginationQuery{Page: 5, Limit: 10},
			start: 15, end: 15,
			meta: models.PaginationMeta{CurrentPage: 5, TotalPage: 2, TotalData: 15, Limit: 10},
		},
		{
			name:  "huge page does not overflow",
			total: 15,
			query: models.PaginationQuery{Page: math.MaxInt, Limit: MaxPageLimit},
			start: 15, end: 15,
			meta: models.PaginationMeta{CurrentPage: math.MaxInt, TotalPage: 1, TotalData: 15, Limit: MaxPageLimit},
		},
		{
			name:  "limit is capped",
			total: 250,
			query: models.PaginationQuery{Page: 1, Limit: 1000},
			start: 0, end: MaxPageLimit,
			meta: models.PaginationMeta{CurrentPage: 1, TotalPage: 3, TotalData: 250, Limit: MaxPageLimit},
		},
		{
			name:  "empty collection",
			total: 0,
			query: models.PaginationQuery{Page: -1, Limit: -1},
			start: 0, end: 0,
			meta: models.PaginationMeta{CurrentPage: 1, TotalPage: 0, TotalData: 0, Limit: DefaultPageLimit},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, meta := Page(tt.total, tt.query)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
			assert.Equal(t, tt.meta, meta)
		})
	}
}
