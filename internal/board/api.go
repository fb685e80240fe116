package board

import (
	"context"

	"github.com/meeralouise/my-reading-world/internal/dto"
)

// API is the slice of the REST surface the board needs. Controller never
// talks to the store directly; everything durable goes through here.
type API interface {
	GetWorld(ctx context.Context, id int) (*dto.ShowWorldResponse, error)
	JoinWorld(ctx context.Context, code string) (*dto.WorldResponse, error)
	ListStickers(ctx context.Context, worldID int) ([]*dto.StickerResponse, error)
	CreateSticker(ctx context.Context, req *dto.CreateStickerRequest) (*dto.StickerResponse, error)
	UpdateSticker(ctx context.Context, id int, req *dto.UpdateStickerRequest) (*dto.StickerResponse, error)
}
