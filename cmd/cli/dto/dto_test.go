package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		total      int64
		limit      int
		totalPages int
	}{
		{0, 12, 0},
		{1, 12, 1},
		{12, 12, 1},
		{13, 12, 2},
		{100, 10, 10},
	}
	for _, tt := range tests {
		p := NewPagination(1, tt.limit, tt.total)
		assert.Equal(t, tt.totalPages, p.TotalPages, "total=%d limit=%d", tt.total, tt.limit)
	}

	p := NewPagination(2, 12, 30)
	assert.True(t, p.HasPrev())
	assert.True(t, p.HasNext())
	assert.False(t, NewPagination(3, 12, 30).HasNext())
}

func TestCatalogQuery_FilterChangeResetsPage(t *testing.T) {
	q := NewCatalogQuery().WithPage(4)
	assert.Equal(t, 4, q.Page)

	assert.Equal(t, 1, q.WithGenre("Action").Page)
	assert.Equal(t, 1, q.WithSearch("bebop").Page)
	assert.Equal(t, 1, q.WithSort("rating").Page)
	min := 3.5
	assert.Equal(t, 1, q.WithMinRating(&min).Page)
	assert.Equal(t, 1, q.WithPage(0).Page)
}

func TestCatalogQuery_Values(t *testing.T) {
	assert.Equal(t, "limit=12&page=1", NewCatalogQuery().Values().Encode())

	min := 4.5
	q := NewCatalogQuery().WithGenre(" Action ").WithSearch("space").WithSort("year").WithMinRating(&min).WithPage(2)
	v := q.Values()
	assert.Equal(t, "2", v.Get("page"))
	assert.Equal(t, "Action", v.Get("genre"))
	assert.Equal(t, "space", v.Get("search"))
	assert.Equal(t, "year", v.Get("sort"))
	assert.Equal(t, "4.5", v.Get("minRating"))
}
