package service

import (
	"context"

	"github.com/meeralouise/my-reading-world/internal/constant"
	"github.com/meeralouise/my-reading-world/internal/pkg/serverutils"
	"github.com/meeralouise/my-reading-world/internal/repository/memory"
	"github.com/meeralouise/my-reading-world/internal/repository/specification"
	"github.com/meeralouise/my-reading-world/internal/repository/unitofwork"
	"github.com/meeralouise/my-reading-world/pkg/accesscode"
)

// IAccessService derives whether a page session may mutate a world.
// The verdict is advisory: mutation endpoints do not re-check it, matching the
// trusted-client model this system was built around.
type IAccessService interface {
	Evaluate(ctx context.Context, sessionID string, worldID int) (bool, error)
	Unlock(ctx context.Context, sessionID string, worldID int, rawCode string) (bool, error)
	Grant(sessionID string, worldID int)
}

type accessService struct {
	uowFactory unitofwork.RepositoryFactory
	unlocks    *memory.UnlockRepository
}

func NewAccessService(uowFactory unitofwork.RepositoryFactory, unlocks *memory.UnlockRepository) IAccessService {
	return &accessService{
		uowFactory: uowFactory,
		unlocks:    unlocks,
	}
}

func (s *accessService) Evaluate(ctx context.Context, sessionID string, worldID int) (bool, error) {
	// The shared world is editable unconditionally, whatever its stored flags.
	if worldID == constant.SharedWorldID {
		return true, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	world, err := uow.WorldRepository().FindOne(ctx, specification.ByID{ID: worldID})
	if err != nil {
		return false, err
	}
	if world == nil {
		return false, serverutils.NewNotFoundError("World")
	}

	if !world.IsPrivate {
		return true, nil
	}

	return sessionID != "" && s.unlocks.Has(sessionID, worldID), nil
}

// Unlock resolves a code against one specific world. A code that exists but
// belongs to a different world is a refusal, not an error; only a matching
// code records the unlock for the session.
func (s *accessService) Unlock(ctx context.Context, sessionID string, worldID int, rawCode string) (bool, error) {
	code := accesscode.Canonicalize(rawCode)
	if code == "" {
		return false, serverutils.NewValidationError("Access code is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	world, err := uow.WorldRepository().FindOne(ctx, specification.ByAccessCode{Code: code})
	if err != nil {
		return false, err
	}
	if world == nil || world.Id != worldID {
		return false, nil
	}

	s.Grant(sessionID, worldID)
	return true, nil
}

func (s *accessService) Grant(sessionID string, worldID int) {
	if sessionID == "" {
		return
	}
	s.unlocks.Grant(sessionID, worldID)
}
