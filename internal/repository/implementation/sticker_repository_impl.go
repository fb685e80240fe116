package implementation

import (
	"context"
	"errors"

	"github.com/meeralouise/my-reading-world/internal/entity"
	"github.com/meeralouise/my-reading-world/internal/mapper"
	"github.com/meeralouise/my-reading-world/internal/model"
	"github.com/meeralouise/my-reading-world/internal/repository/contract"
	"github.com/meeralouise/my-reading-world/internal/repository/specification"

	"gorm.io/gorm"
)

type StickerRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.StickerMapper
}

func NewStickerRepository(db *gorm.DB) contract.StickerRepository {
	return &StickerRepositoryImpl{
		db:     db,
		mapper: mapper.NewStickerMapper(),
	}
}

func (r *StickerRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *StickerRepositoryImpl) Create(ctx context.Context, sticker *entity.Sticker) error {
	m := r.mapper.ToModel(sticker)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*sticker = *r.mapper.ToEntity(m)
	return nil
}

func (r *StickerRepositoryImpl) Update(ctx context.Context, sticker *entity.Sticker) error {
	m := r.mapper.ToModel(sticker)
	// Save writes all fields, so zero values (x=0, locked=false) persist too.
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*sticker = *r.mapper.ToEntity(m)
	return nil
}

func (r *StickerRepositoryImpl) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.Sticker{}, id).Error
}

func (r *StickerRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Sticker, error) {
	var m model.Sticker
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *StickerRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Sticker, error) {
	var models []*model.Sticker
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *StickerRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Sticker{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
