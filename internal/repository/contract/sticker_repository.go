package contract

import (
	"context"

	"github.com/meeralouise/my-reading-world/internal/entity"
	"github.com/meeralouise/my-reading-world/internal/repository/specification"
)

type StickerRepository interface {
	Create(ctx context.Context, sticker *entity.Sticker) error
	Update(ctx context.Context, sticker *entity.Sticker) error
	Delete(ctx context.Context, id int) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Sticker, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Sticker, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
