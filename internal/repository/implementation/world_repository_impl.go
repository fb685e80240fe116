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

type WorldRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.WorldMapper
}

func NewWorldRepository(db *gorm.DB) contract.WorldRepository {
	return &WorldRepositoryImpl{
		db:     db,
		mapper: mapper.NewWorldMapper(),
	}
}

func (r *WorldRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *WorldRepositoryImpl) Create(ctx context.Context, world *entity.World) error {
	m := r.mapper.ToModel(world)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*world = *r.mapper.ToEntity(m)
	return nil
}

func (r *WorldRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.World, error) {
	var m model.World
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *WorldRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.World, error) {
	var models []*model.World
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *WorldRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.World{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
