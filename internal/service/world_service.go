package service

import (
	"context"
	"strings"
	"time"

	"github.com/meeralouise/my-reading-world/internal/constant"
	"github.com/meeralouise/my-reading-world/internal/dto"
	"github.com/meeralouise/my-reading-world/internal/entity"
	"github.com/meeralouise/my-reading-world/internal/pkg/serverutils"
	"github.com/meeralouise/my-reading-world/internal/repository/specification"
	"github.com/meeralouise/my-reading-world/internal/repository/unitofwork"
	"github.com/meeralouise/my-reading-world/pkg/accesscode"
)

type IWorldService interface {
	GetAll(ctx context.Context) ([]*dto.WorldResponse, error)
	Create(ctx context.Context, req *dto.CreateWorldRequest) (*dto.CreateWorldResponse, error)
	Show(ctx context.Context, id int) (*dto.WorldResponse, error)
	Join(ctx context.Context, rawCode string) (*dto.WorldResponse, error)
}

type worldService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewWorldService(uowFactory unitofwork.RepositoryFactory) IWorldService {
	return &worldService{
		uowFactory: uowFactory,
	}
}

func (s *worldService) GetAll(ctx context.Context) ([]*dto.WorldResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	worlds, err := uow.WorldRepository().FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.WorldResponse, 0, len(worlds))
	for _, world := range worlds {
		result = append(result, toWorldResponse(world))
	}
	return result, nil
}

func (s *worldService) Create(ctx context.Context, req *dto.CreateWorldRequest) (*dto.CreateWorldResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, serverutils.NewValidationError("World name is required")
	}

	var code *string
	if req.IsPrivate {
		// Collisions across worlds are accepted as negligibly rare.
		generated := accesscode.Generate(constant.AccessCodeLength)
		code = &generated
	}

	world := entity.World{
		Name:       req.Name,
		IsPrivate:  req.IsPrivate,
		AccessCode: code,
		CreatedAt:  time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.WorldRepository().Create(ctx, &world); err != nil {
		return nil, err
	}

	return &dto.CreateWorldResponse{
		Id:         world.Id,
		Name:       world.Name,
		IsPrivate:  world.IsPrivate,
		AccessCode: world.AccessCode,
		CreatedAt:  world.CreatedAt,
	}, nil
}

func (s *worldService) Show(ctx context.Context, id int) (*dto.WorldResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	world, err := uow.WorldRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if world == nil {
		return nil, serverutils.NewNotFoundError("World")
	}

	return toWorldResponse(world), nil
}

func (s *worldService) Join(ctx context.Context, rawCode string) (*dto.WorldResponse, error) {
	code := accesscode.Canonicalize(rawCode)
	if code == "" {
		return nil, serverutils.NewValidationError("Access code is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	world, err := uow.WorldRepository().FindOne(ctx, specification.ByAccessCode{Code: code})
	if err != nil {
		return nil, err
	}
	if world == nil {
		return nil, serverutils.NewNotFoundError("World")
	}

	return toWorldResponse(world), nil
}

func toWorldResponse(world *entity.World) *dto.WorldResponse {
	return &dto.WorldResponse{
		Id:        world.Id,
		Name:      world.Name,
		IsPrivate: world.IsPrivate,
		CreatedAt: world.CreatedAt,
	}
}
