package models

import "time"

type Anime struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"not null;default:''"`
	ImageURL    string    `json:"image_url" gorm:"column:image_url;not null;default:''"`
	VideoURL    string    `json:"video_url" gorm:"column:video_url;not null;default:''"`
	Year        *int      `json:"year,omitempty"`
	Episodes    *int      `json:"episodes,omitempty"`
	AniListID   *int      `json:"anilist_id,omitempty" gorm:"column:anilist_id;uniqueIndex"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`

	// association
	Genres []Genre `json:"genres,omitempty" gorm:"many2many:anime_genres;constraint:OnDelete:CASCADE;"`
}

func (Anime) TableName() string {
	return "anime"
}

// AnimeWithStats is an anime row plus its derived rating aggregate.
// AverageRating is nil when nobody has rated the anime yet.
type AnimeWithStats struct {
	Anime
	AverageRating *float64 `json:"average_rating" gorm:"column:average_rating;->"`
	RatingCount   int64    `json:"rating_count" gorm:"column:rating_count;->"`
}
