package service

import (
	"context"
	"sort"
	"time"

	"github.com/meeralouise/my-reading-world/internal/entity"
	"github.com/meeralouise/my-reading-world/internal/repository/contract"
	"github.com/meeralouise/my-reading-world/internal/repository/specification"
	"github.com/meeralouise/my-reading-world/internal/repository/unitofwork"
)

// In-memory repositories for unit tests. They interpret the specification
// types the services actually use.

type fakeUowFactory struct {
	uow *fakeUow
}

func newFakeUowFactory() *fakeUowFactory {
	return &fakeUowFactory{
		uow: &fakeUow{
			worlds:   &fakeWorldRepo{},
			stickers: &fakeStickerRepo{},
		},
	}
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type fakeUow struct {
	worlds   *fakeWorldRepo
	stickers *fakeStickerRepo
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }

func (u *fakeUow) WorldRepository() contract.WorldRepository     { return u.worlds }
func (u *fakeUow) StickerRepository() contract.StickerRepository { return u.stickers }

type fakeWorldRepo struct {
	items  []*entity.World
	nextID int
}

func (r *fakeWorldRepo) Create(ctx context.Context, world *entity.World) error {
	r.nextID++
	world.Id = r.nextID
	if world.CreatedAt.IsZero() {
		world.CreatedAt = time.Now()
	}
	stored := *world
	r.items = append(r.items, &stored)
	return nil
}

func (r *fakeWorldRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.World, error) {
	for _, w := range r.items {
		if matchWorld(w, specs) {
			copied := *w
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeWorldRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.World, error) {
	var out []*entity.World
	for _, w := range r.items {
		if matchWorld(w, specs) {
			copied := *w
			out = append(out, &copied)
		}
	}
	for _, spec := range specs {
		if order, ok := spec.(specification.OrderBy); ok && order.Field == "created_at" {
			sort.SliceStable(out, func(i, j int) bool {
				if order.Desc {
					return out[i].CreatedAt.After(out[j].CreatedAt)
				}
				return out[i].CreatedAt.Before(out[j].CreatedAt)
			})
		}
	}
	return out, nil
}

func (r *fakeWorldRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func matchWorld(w *entity.World, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if w.Id != s.ID {
				return false
			}
		case specification.ByAccessCode:
			if w.AccessCode == nil || *w.AccessCode != s.Code {
				return false
			}
		}
	}
	return true
}

type fakeStickerRepo struct {
	items  []*entity.Sticker
	nextID int
}

func (r *fakeStickerRepo) Create(ctx context.Context, sticker *entity.Sticker) error {
	r.nextID++
	sticker.Id = r.nextID
	if sticker.CreatedAt.IsZero() {
		sticker.CreatedAt = time.Now()
	}
	stored := *sticker
	r.items = append(r.items, &stored)
	return nil
}

func (r *fakeStickerRepo) Update(ctx context.Context, sticker *entity.Sticker) error {
	for i, s := range r.items {
		if s.Id == sticker.Id {
			stored := *sticker
			r.items[i] = &stored
			return nil
		}
	}
	return nil
}

func (r *fakeStickerRepo) Delete(ctx context.Context, id int) error {
	for i, s := range r.items {
		if s.Id == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeStickerRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Sticker, error) {
	for _, s := range r.items {
		if matchSticker(s, specs) {
			copied := *s
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeStickerRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Sticker, error) {
	var out []*entity.Sticker
	for _, s := range r.items {
		if matchSticker(s, specs) {
			copied := *s
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeStickerRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func matchSticker(s *entity.Sticker, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch sp := spec.(type) {
		case specification.ByID:
			if s.Id != sp.ID {
				return false
			}
		case specification.ByWorldID:
			if s.WorldId != sp.WorldID {
				return false
			}
		}
	}
	return true
}
