package mapper

import (
	"github.com/meeralouise/my-reading-world/internal/entity"
	"github.com/meeralouise/my-reading-world/internal/model"
)

type StickerMapper struct{}

func NewStickerMapper() *StickerMapper {
	return &StickerMapper{}
}

func (m *StickerMapper) ToEntity(s *model.Sticker) *entity.Sticker {
	if s == nil {
		return nil
	}
	return &entity.Sticker{
		Id:         s.Id,
		WorldId:    s.WorldId,
		XPosition:  s.XPosition,
		YPosition:  s.YPosition,
		Scale:      s.Scale,
		ImageUrl:   s.ImageUrl,
		Locked:     s.Locked,
		Title:      s.Title,
		Author:     s.Author,
		ReaderName: s.ReaderName,
		DateRead:   s.DateRead,
		CreatedAt:  s.CreatedAt,
	}
}

func (m *StickerMapper) ToModel(s *entity.Sticker) *model.Sticker {
	if s == nil {
		return nil
	}
	return &model.Sticker{
		Id:         s.Id,
		WorldId:    s.WorldId,
		XPosition:  s.XPosition,
		YPosition:  s.YPosition,
		Scale:      s.Scale,
		ImageUrl:   s.ImageUrl,
		Locked:     s.Locked,
		Title:      s.Title,
		Author:     s.Author,
		ReaderName: s.ReaderName,
		DateRead:   s.DateRead,
		CreatedAt:  s.CreatedAt,
	}
}

func (m *StickerMapper) ToEntities(stickers []*model.Sticker) []*entity.Sticker {
	entities := make([]*entity.Sticker, len(stickers))
	for i, s := range stickers {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
