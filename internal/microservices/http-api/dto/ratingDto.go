package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Score accepts a JSON number or a numeric string ("4"), since HTML widgets
// post their data attributes as strings.
type Score int

func (s *Score) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		data = []byte(raw)
	}
	n, err := strconv.Atoi(string(data))
	if err != nil {
		return fmt.Errorf("rating must be an integer: %w", err)
	}
	*s = Score(n)
	return nil
}

// CreateRatingDTO for POST /api/anime/:id/rate.
// UserIP is accepted from older clients and ignored; the visitor id is authoritative.
type CreateRatingDTO struct {
	Rating Score  `json:"rating"`
	UserIP string `json:"userIp,omitempty"`
}

// RateResponse acknowledges a rating and returns the refreshed aggregate
type RateResponse struct {
	Success       bool     `json:"success"`
	AverageRating *float64 `json:"average_rating"`
	RatingCount   int64    `json:"rating_count"`
}
