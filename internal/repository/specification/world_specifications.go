package specification

import "gorm.io/gorm"

// ByAccessCode matches a world by its stored access code. Callers must
// canonicalize the code (accesscode.Canonicalize) before building this spec;
// stored codes are always uppercase.
type ByAccessCode struct {
	Code string
}

func (s ByAccessCode) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("access_code = ?", s.Code)
}
