package models

type Genre struct {
	ID   int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"unique;not null"`
}

func (Genre) TableName() string {
	return "genres"
}

// AnimeGenre is the join row; the pair is the primary key and both sides cascade.
type AnimeGenre struct {
	AnimeID int64 `json:"anime_id" gorm:"primaryKey"`
	GenreID int64 `json:"genre_id" gorm:"primaryKey"`
}

func (AnimeGenre) TableName() string {
	return "anime_genres"
}
