package model

import "time"

type World struct {
	Id         int       `gorm:"primaryKey;autoIncrement"`
	Name       string    `gorm:"type:text;not null"`
	IsPrivate  bool      `gorm:"not null;default:false"`
	AccessCode *string   `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (World) TableName() string {
	return "worlds"
}
