package specification

import "gorm.io/gorm"

// ByWorldID scopes stickers to a single world
type ByWorldID struct {
	WorldID int
}

func (s ByWorldID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("world_id = ?", s.WorldID)
}
