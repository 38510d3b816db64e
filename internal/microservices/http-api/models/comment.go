package models

import "time"

type Comment struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	AnimeID   int64     `json:"anime_id" gorm:"not null;index"`
	Username  *string   `json:"username"`
	Text      string    `json:"text" gorm:"not null;type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Comment) TableName() string {
	return "comments"
}

// RecentComment is a comment joined with the title of the anime it belongs to.
type RecentComment struct {
	Comment
	AnimeTitle string `json:"anime_title" gorm:"column:anime_title;->"`
}
