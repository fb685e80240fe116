package mapper

import (
	"github.com/meeralouise/my-reading-world/internal/entity"
	"github.com/meeralouise/my-reading-world/internal/model"
)

type WorldMapper struct{}

func NewWorldMapper() *WorldMapper {
	return &WorldMapper{}
}

func (m *WorldMapper) ToEntity(w *model.World) *entity.World {
	if w == nil {
		return nil
	}
	return &entity.World{
		Id:         w.Id,
		Name:       w.Name,
		IsPrivate:  w.IsPrivate,
		AccessCode: w.AccessCode,
		CreatedAt:  w.CreatedAt,
	}
}

func (m *WorldMapper) ToModel(w *entity.World) *model.World {
	if w == nil {
		return nil
	}
	return &model.World{
		Id:         w.Id,
		Name:       w.Name,
		IsPrivate:  w.IsPrivate,
		AccessCode: w.AccessCode,
		CreatedAt:  w.CreatedAt,
	}
}

func (m *WorldMapper) ToEntities(worlds []*model.World) []*entity.World {
	entities := make([]*entity.World, len(worlds))
	for i, w := range worlds {
		entities[i] = m.ToEntity(w)
	}
	return entities
}
