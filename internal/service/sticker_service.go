package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/meeralouise/my-reading-world/internal/constant"
	"github.com/meeralouise/my-reading-world/internal/dto"
	"github.com/meeralouise/my-reading-world/internal/entity"
	"github.com/meeralouise/my-reading-world/internal/pkg/serverutils"
	"github.com/meeralouise/my-reading-world/internal/repository/specification"
	"github.com/meeralouise/my-reading-world/internal/repository/unitofwork"
)

type IStickerService interface {
	GetAll(ctx context.Context, worldID int) ([]*dto.StickerResponse, error)
	Create(ctx context.Context, req *dto.CreateStickerRequest) (*dto.StickerResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdateStickerRequest) (*dto.StickerResponse, error)
	Delete(ctx context.Context, id int) error
}

type stickerService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewStickerService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
) IStickerService {
	return &stickerService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

// resolveWorldID is the single place the implicit shared-world default lives.
func resolveWorldID(worldID int) int {
	if worldID <= 0 {
		return constant.SharedWorldID
	}
	return worldID
}

func (s *stickerService) GetAll(ctx context.Context, worldID int) ([]*dto.StickerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	stickers, err := uow.StickerRepository().FindAll(ctx, specification.ByWorldID{WorldID: resolveWorldID(worldID)})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.StickerResponse, 0, len(stickers))
	for _, sticker := range stickers {
		result = append(result, toStickerResponse(sticker))
	}
	return result, nil
}

func (s *stickerService) Create(ctx context.Context, req *dto.CreateStickerRequest) (*dto.StickerResponse, error) {
	if req.ImageUrl == "" {
		return nil, serverutils.NewValidationError("image_url is required")
	}

	scale := req.Scale
	if scale == 0 {
		scale = constant.DefaultScale
	}

	sticker := entity.Sticker{
		WorldId:    resolveWorldID(req.WorldId),
		XPosition:  req.XPosition,
		YPosition:  req.YPosition,
		Scale:      scale,
		ImageUrl:   req.ImageUrl,
		Locked:     req.Locked,
		Title:      req.Title,
		Author:     req.Author,
		ReaderName: req.ReaderName,
		DateRead:   req.DateRead,
		CreatedAt:  time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.StickerRepository().Create(ctx, &sticker); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, dto.BoardEventPlaced, &sticker)

	return toStickerResponse(&sticker), nil
}

func (s *stickerService) Update(ctx context.Context, id int, req *dto.UpdateStickerRequest) (*dto.StickerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sticker, err := uow.StickerRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if sticker == nil {
		return nil, serverutils.NewNotFoundError("Sticker")
	}

	// Partial update: only supplied fields are applied. The store does not
	// clamp scale; that convention belongs to the board controller.
	eventType := dto.BoardEventMoved
	if req.XPosition != nil {
		sticker.XPosition = *req.XPosition
	}
	if req.YPosition != nil {
		sticker.YPosition = *req.YPosition
	}
	if req.Scale != nil {
		sticker.Scale = *req.Scale
		eventType = dto.BoardEventScaled
	}
	if req.Locked != nil {
		sticker.Locked = *req.Locked
		eventType = dto.BoardEventLocked
	}

	if err := uow.StickerRepository().Update(ctx, sticker); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, eventType, sticker)

	return toStickerResponse(sticker), nil
}

func (s *stickerService) Delete(ctx context.Context, id int) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sticker, err := uow.StickerRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if sticker == nil {
		return serverutils.NewNotFoundError("Sticker")
	}

	if err := uow.StickerRepository().Delete(ctx, id); err != nil {
		return err
	}

	s.publishEvent(ctx, dto.BoardEventRemoved, sticker)
	return nil
}

func (s *stickerService) publishEvent(ctx context.Context, eventType string, sticker *entity.Sticker) {
	if s.publisherService == nil {
		return
	}

	msg := dto.BoardEventMessage{
		Type:      eventType,
		StickerId: sticker.Id,
		WorldId:   sticker.WorldId,
	}
	payload, _ := json.Marshal(msg)
	// Event delivery is best effort; the mutation has already been persisted.
	_ = s.publisherService.Publish(ctx, payload)
}

func toStickerResponse(sticker *entity.Sticker) *dto.StickerResponse {
	return &dto.StickerResponse{
		Id:         sticker.Id,
		WorldId:    sticker.WorldId,
		XPosition:  sticker.XPosition,
		YPosition:  sticker.YPosition,
		Scale:      sticker.Scale,
		ImageUrl:   sticker.ImageUrl,
		Locked:     sticker.Locked,
		Title:      sticker.Title,
		Author:     sticker.Author,
		ReaderName: sticker.ReaderName,
		DateRead:   sticker.DateRead,
		CreatedAt:  sticker.CreatedAt,
	}
}
