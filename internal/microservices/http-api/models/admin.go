package models

import "time"

type Admin struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;not null"` // never serialized
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Admin) TableName() string {
	return "admins"
}
