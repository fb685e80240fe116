package entity

import "time"

type World struct {
	Id         int
	Name       string
	IsPrivate  bool
	AccessCode *string
	CreatedAt  time.Time
}
