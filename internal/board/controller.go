package board

import (
	"context"
	"errors"
	"math"
	"sync"

	"github.com/meeralouise/my-reading-world/internal/constant"
	"github.com/meeralouise/my-reading-world/internal/dto"
	"github.com/meeralouise/my-reading-world/internal/pkg/logger"
	"github.com/meeralouise/my-reading-world/internal/pkg/serverutils"
)

// Controller owns the transient board state for one world and one page
// session. Every mutation is applied locally first and persisted with a
// fire-and-forget partial update: a failed commit is logged, never rolled
// back and never retried, so the local view stays the truth until the next
// Load pulls authoritative state again.
type Controller struct {
	mu  sync.Mutex
	wg  sync.WaitGroup
	api API
	log logger.ILogger

	worldID   int
	editable  bool
	submitted bool
	stickers  map[int]*stickerState
}

func NewController(api API, log logger.ILogger, worldID int) *Controller {
	if worldID <= 0 {
		worldID = constant.SharedWorldID
	}
	return &Controller{
		api:      api,
		log:      log,
		worldID:  worldID,
		stickers: make(map[int]*stickerState),
	}
}

// Load fetches the world and its stickers, replacing all local state.
// This is the only reconciliation point with the store.
func (c *Controller) Load(ctx context.Context) error {
	world, err := c.api.GetWorld(ctx, c.worldID)
	if err != nil {
		return err
	}

	stickers, err := c.api.ListStickers(ctx, c.worldID)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.editable = world.Id == constant.SharedWorldID || !world.IsPrivate || world.Editable
	c.stickers = make(map[int]*stickerState, len(stickers))
	for _, s := range stickers {
		c.stickers[s.Id] = &stickerState{view: *s}
	}
	return nil
}

func (c *Controller) WorldID() int {
	return c.worldID
}

func (c *Controller) Editable() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.editable
}

func (c *Controller) Submitted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitted
}

// Sticker returns a copy of the local view state for one sticker.
func (c *Controller) Sticker(id int) (dto.StickerResponse, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	st, ok := c.stickers[id]
	if !ok {
		return dto.StickerResponse{}, false
	}
	return st.view, true
}

// Stickers returns a copy of every local sticker view.
func (c *Controller) Stickers() []dto.StickerResponse {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]dto.StickerResponse, 0, len(c.stickers))
	for _, st := range c.stickers {
		out = append(out, st.view)
	}
	return out
}

func (c *Controller) Phase(id int) Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	if st, ok := c.stickers[id]; ok {
		return st.phase
	}
	return PhaseIdle
}

// Unlock submits an access code. Editing unlocks only when the code resolves
// to this exact world; a wrong or unknown code is a refusal, not an error.
func (c *Controller) Unlock(ctx context.Context, code string) (bool, error) {
	world, err := c.api.JoinWorld(ctx, code)
	if err != nil {
		var notFound *serverutils.NotFoundError
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, err
	}
	if world.Id != c.worldID {
		return false, nil
	}

	c.mu.Lock()
	c.editable = true
	c.mu.Unlock()
	return true, nil
}

// StartDrag begins a drag. Locked stickers and read-only boards refuse the
// drag as a no-op.
func (c *Controller) StartDrag(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	st, ok := c.stickers[id]
	if !ok || !c.editable || st.view.Locked || st.phase == PhaseDragging {
		return false
	}
	st.phase = PhaseDragging
	return true
}

// Drag updates the local position on every pointer move. No network traffic.
func (c *Controller) Drag(id, x, y int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	st, ok := c.stickers[id]
	if !ok || st.phase != PhaseDragging {
		return
	}
	st.view.XPosition = x
	st.view.YPosition = y
}

// EndDrag releases the drag: the local position is already final, and the
// commit to the store happens in the background.
func (c *Controller) EndDrag(id int) {
	c.mu.Lock()
	st, ok := c.stickers[id]
	if !ok || st.phase != PhaseDragging {
		c.mu.Unlock()
		return
	}
	st.phase = PhaseCommitting
	x, y := st.view.XPosition, st.view.YPosition
	c.mu.Unlock()

	c.commit(id, &dto.UpdateStickerRequest{XPosition: &x, YPosition: &y})
}

// ScaleStep nudges the scale by one step in the given direction (+1/-1),
// clamped before it is applied locally or sent to the store. Locked stickers
// ignore the press.
func (c *Controller) ScaleStep(id, direction int) {
	c.mu.Lock()
	st, ok := c.stickers[id]
	if !ok || !c.editable || st.view.Locked || st.phase == PhaseDragging {
		c.mu.Unlock()
		return
	}

	scale := clampScale(st.view.Scale + constant.ScaleStep*float64(direction))
	st.view.Scale = scale
	st.phase = PhaseCommitting
	c.mu.Unlock()

	c.commit(id, &dto.UpdateStickerRequest{Scale: &scale})
}

// SetLocked flips the lock flag. Unlocking is always allowed; that is the
// only mutation a locked sticker accepts.
func (c *Controller) SetLocked(id int, locked bool) {
	c.mu.Lock()
	st, ok := c.stickers[id]
	if !ok || !c.editable {
		c.mu.Unlock()
		return
	}
	st.view.Locked = locked
	st.phase = PhaseCommitting
	c.mu.Unlock()

	c.commit(id, &dto.UpdateStickerRequest{Locked: &locked})
}

// Submit sends a completed book-log form. All four book fields and the chosen
// image are required. One submission per page session: after a success the
// form is gone until the page reloads.
func (c *Controller) Submit(ctx context.Context, form BookForm) (*dto.StickerResponse, error) {
	c.mu.Lock()
	if !c.editable || c.submitted {
		c.mu.Unlock()
		return nil, nil
	}
	c.mu.Unlock()

	if form.Title == "" || form.Author == "" || form.ReaderName == "" || form.DateRead == "" {
		return nil, serverutils.NewValidationError("All book fields are required")
	}
	if form.ImageUrl == "" {
		return nil, serverutils.NewValidationError("Please choose a sticker")
	}

	created, err := c.api.CreateSticker(ctx, &dto.CreateStickerRequest{
		WorldId:    c.worldID,
		XPosition:  form.XPosition,
		YPosition:  form.YPosition,
		Scale:      constant.DefaultScale,
		ImageUrl:   form.ImageUrl,
		Title:      &form.Title,
		Author:     &form.Author,
		ReaderName: &form.ReaderName,
		DateRead:   &form.DateRead,
	})
	if err != nil {
		// Creation failures surface to the user; the form state is kept so
		// the submission can be re-triggered.
		return nil, err
	}

	c.mu.Lock()
	c.stickers[created.Id] = &stickerState{view: *created}
	c.submitted = true
	c.mu.Unlock()

	return created, nil
}

// Flush waits for in-flight commits. Meant for shutdown and tests; the
// interaction surface never calls it.
func (c *Controller) Flush() {
	c.wg.Wait()
}

func (c *Controller) commit(id int, patch *dto.UpdateStickerRequest) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		// At-most-once: the outcome never changes local state.
		if _, err := c.api.UpdateSticker(context.Background(), id, patch); err != nil {
			c.log.Error("Board", "Failed to persist sticker update", map[string]interface{}{
				"sticker_id": id,
				"error":      err.Error(),
			})
		}

		c.mu.Lock()
		if st, ok := c.stickers[id]; ok && st.phase == PhaseCommitting {
			st.phase = PhaseIdle
		}
		c.mu.Unlock()
	}()
}

func clampScale(scale float64) float64 {
	return math.Max(constant.ScaleMin, math.Min(scale, constant.ScaleMax))
}
