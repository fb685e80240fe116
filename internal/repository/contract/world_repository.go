package contract

import (
	"context"

	"github.com/meeralouise/my-reading-world/internal/entity"
	"github.com/meeralouise/my-reading-world/internal/repository/specification"
)

type WorldRepository interface {
	Create(ctx context.Context, world *entity.World) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.World, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.World, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
