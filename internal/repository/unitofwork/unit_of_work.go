package unitofwork

import (
	"context"

	"github.com/meeralouise/my-reading-world/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	WorldRepository() contract.WorldRepository
	StickerRepository() contract.StickerRepository
}
