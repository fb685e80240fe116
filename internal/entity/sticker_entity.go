package entity

import "time"

type Sticker struct {
	Id        int
	WorldId   int
	XPosition int
	YPosition int
	Scale     float64
	ImageUrl  string
	Locked    bool

	// book data
	Title      *string
	Author     *string
	ReaderName *string
	DateRead   *string

	CreatedAt time.Time
}
