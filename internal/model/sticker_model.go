package model

import "time"

type Sticker struct {
	Id        int     `gorm:"primaryKey;autoIncrement"`
	WorldId   int     `gorm:"not null;default:1;index"`
	XPosition int     `gorm:"not null"`
	YPosition int     `gorm:"not null"`
	Scale     float64 `gorm:"type:numeric;not null;default:1"`
	ImageUrl  string  `gorm:"type:text;not null"`
	Locked    bool    `gorm:"not null;default:false"`

	Title      *string `gorm:"type:text"`
	Author     *string `gorm:"type:text"`
	ReaderName *string `gorm:"type:text"`
	DateRead   *string `gorm:"type:text"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Sticker) TableName() string {
	return "stickers"
}
