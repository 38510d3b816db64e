package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenreNames(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"empty", nil, []string{}},
		{"blank entries dropped", []string{" ", "", "Drama"}, []string{"Drama"}},
		{"trimmed and de-duplicated", []string{" Action", "Action ", "Comedy"}, []string{"Action", "Comedy"}},
		{"sorted regardless of input order", []string{"Sci-Fi", "Action", "Mystery"}, []string{"Action", "Mystery", "Sci-Fi"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, genreNames(tt.input))
		})
	}

	// two workers with the same genres in different orders insert them identically
	assert.Equal(t,
		genreNames([]string{"Romance", "Drama", "Action"}),
		genreNames([]string{"Action", "Romance", "Drama"}),
	)
}
