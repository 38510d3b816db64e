package dto

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnimeFilter_PastEnd(t *testing.T) {
	tests := []struct {
		name   string
		filter AnimeFilter
		total  int64
		want   bool
	}{
		{"first page of empty result", AnimeFilter{Page: 1, Limit: 12}, 0, true},
		{"first page", AnimeFilter{Page: 1, Limit: 12}, 1, false},
		{"last partial page", AnimeFilter{Page: 3, Limit: 2}, 5, false},
		{"exact last page", AnimeFilter{Page: 2, Limit: 2}, 4, false},
		{"one past the end", AnimeFilter{Page: 3, Limit: 2}, 4, true},
		{"huge page", AnimeFilter{Page: math.MaxInt, Limit: 12}, 50, true},
		{"huge page with max limit", AnimeFilter{Page: math.MaxInt, Limit: MaxLimit}, math.MaxInt32, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.PastEnd(tt.total))
		})
	}
}

func TestAnimeFilter_Offset(t *testing.T) {
	assert.Equal(t, 0, AnimeFilter{Page: 1, Limit: 12}.Offset())
	assert.Equal(t, 24, AnimeFilter{Page: 3, Limit: 12}.Offset())
}
