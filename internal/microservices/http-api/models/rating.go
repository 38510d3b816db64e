package models

import "time"

type Rating struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	AnimeID   int64     `json:"anime_id" gorm:"not null;uniqueIndex:uq_ratings_anime_user"`
	UserIP    string    `json:"-" gorm:"column:user_ip;not null;uniqueIndex:uq_ratings_anime_user"`
	Rating    int       `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Rating) TableName() string {
	return "ratings"
}

// RatingSummary is the aggregate derived from the ratings of one anime.
type RatingSummary struct {
	AverageRating *float64 `json:"average_rating"`
	RatingCount   int64    `json:"rating_count"`
}
