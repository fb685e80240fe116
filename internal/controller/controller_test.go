package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/meeralouise/my-reading-world/internal/constant"
	"github.com/meeralouise/my-reading-world/internal/dto"
	"github.com/meeralouise/my-reading-world/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubWorldService struct {
	worlds []*dto.WorldResponse
	byCode map[string]*dto.WorldResponse
}

func (s *stubWorldService) GetAll(ctx context.Context) ([]*dto.WorldResponse, error) {
	return s.worlds, nil
}

func (s *stubWorldService) Create(ctx context.Context, req *dto.CreateWorldRequest) (*dto.CreateWorldResponse, error) {
	res := &dto.CreateWorldResponse{Id: 42, Name: req.Name, IsPrivate: req.IsPrivate, CreatedAt: time.Now()}
	if req.IsPrivate {
		code := "ABCDEFGH12"
		res.AccessCode = &code
	}
	return res, nil
}

func (s *stubWorldService) Show(ctx context.Context, id int) (*dto.WorldResponse, error) {
	for _, w := range s.worlds {
		if w.Id == id {
			return w, nil
		}
	}
	return nil, serverutils.NewNotFoundError("World")
}

func (s *stubWorldService) Join(ctx context.Context, rawCode string) (*dto.WorldResponse, error) {
	if w, ok := s.byCode[rawCode]; ok {
		return w, nil
	}
	return nil, serverutils.NewNotFoundError("World")
}

type stubAccessService struct {
	editable bool
	grants   map[string]int
}

func (s *stubAccessService) Evaluate(ctx context.Context, sessionID string, worldID int) (bool, error) {
	return s.editable, nil
}

func (s *stubAccessService) Unlock(ctx context.Context, sessionID string, worldID int, rawCode string) (bool, error) {
	s.Grant(sessionID, worldID)
	return true, nil
}

func (s *stubAccessService) Grant(sessionID string, worldID int) {
	if s.grants == nil {
		s.grants = make(map[string]int)
	}
	s.grants[sessionID] = worldID
}

type stubStickerService struct {
	stickers    map[int]*dto.StickerResponse
	lastWorldID int
}

func (s *stubStickerService) GetAll(ctx context.Context, worldID int) ([]*dto.StickerResponse, error) {
	s.lastWorldID = worldID
	var out []*dto.StickerResponse
	for _, st := range s.stickers {
		out = append(out, st)
	}
	return out, nil
}

func (s *stubStickerService) Create(ctx context.Context, req *dto.CreateStickerRequest) (*dto.StickerResponse, error) {
	return &dto.StickerResponse{Id: 1, WorldId: req.WorldId, ImageUrl: req.ImageUrl, Scale: req.Scale}, nil
}

func (s *stubStickerService) Update(ctx context.Context, id int, req *dto.UpdateStickerRequest) (*dto.StickerResponse, error) {
	st, ok := s.stickers[id]
	if !ok {
		return nil, serverutils.NewNotFoundError("Sticker")
	}
	if req.XPosition != nil {
		st.XPosition = *req.XPosition
	}
	if req.YPosition != nil {
		st.YPosition = *req.YPosition
	}
	if req.Scale != nil {
		st.Scale = *req.Scale
	}
	if req.Locked != nil {
		st.Locked = *req.Locked
	}
	return st, nil
}

func (s *stubStickerService) Delete(ctx context.Context, id int) error {
	if _, ok := s.stickers[id]; !ok {
		return serverutils.NewNotFoundError("Sticker")
	}
	delete(s.stickers, id)
	return nil
}

func newTestApp(worlds *stubWorldService, access *stubAccessService, stickers *stubStickerService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	NewWorldController(worlds, access).RegisterRoutes(app)
	NewStickerController(stickers).RegisterRoutes(app)
	return app
}

func jsonRequest(method, target string, payload interface{}) *http.Request {
	var body bytes.Buffer
	if payload != nil {
		_ = json.NewEncoder(&body).Encode(payload)
	}
	req := httptest.NewRequest(method, target, &body)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, res *http.Response, out interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(res.Body).Decode(out))
}

func seededWorlds() *stubWorldService {
	return &stubWorldService{
		worlds: []*dto.WorldResponse{
			{Id: 1, Name: "Shared World"},
			{Id: 2, Name: "Book Club", IsPrivate: true},
		},
		byCode: map[string]*dto.WorldResponse{
			"BOOKCLUB42": {Id: 2, Name: "Book Club", IsPrivate: true},
		},
	}
}

func TestWorldRoutes(t *testing.T) {
	t.Run("list worlds", func(t *testing.T) {
		app := newTestApp(seededWorlds(), &stubAccessService{}, &stubStickerService{})

		res, err := app.Test(jsonRequest(http.MethodGet, "/worlds", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.StatusCode)

		var worlds []dto.WorldResponse
		decodeBody(t, res, &worlds)
		assert.Len(t, worlds, 2)
	})

	t.Run("create private world returns the code once", func(t *testing.T) {
		app := newTestApp(seededWorlds(), &stubAccessService{}, &stubStickerService{})

		res, err := app.Test(jsonRequest(http.MethodPost, "/worlds", fiber.Map{"name": "Secret Garden", "is_private": true}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.StatusCode)

		var created dto.CreateWorldResponse
		decodeBody(t, res, &created)
		require.NotNil(t, created.AccessCode)
		assert.Equal(t, "ABCDEFGH12", *created.AccessCode)
	})

	t.Run("create without a name is a 400", func(t *testing.T) {
		app := newTestApp(seededWorlds(), &stubAccessService{}, &stubStickerService{})

		res, err := app.Test(jsonRequest(http.MethodPost, "/worlds", fiber.Map{"is_private": true}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)

		var body map[string]interface{}
		decodeBody(t, res, &body)
		assert.EqualValues(t, 400, body["code"])
		assert.NotEmpty(t, body["error"])
	})

	t.Run("unknown world is a 404", func(t *testing.T) {
		app := newTestApp(seededWorlds(), &stubAccessService{}, &stubStickerService{})

		res, err := app.Test(jsonRequest(http.MethodGet, "/worlds/999", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, res.StatusCode)

		var body map[string]interface{}
		decodeBody(t, res, &body)
		assert.Equal(t, "World not found", body["error"])
	})

	t.Run("unsupported method is a 405", func(t *testing.T) {
		app := newTestApp(seededWorlds(), &stubAccessService{}, &stubStickerService{})

		res, err := app.Test(jsonRequest(http.MethodDelete, "/worlds", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusMethodNotAllowed, res.StatusCode)
	})
}

func TestShowSessionHandling(t *testing.T) {
	t.Run("mints a session id on first contact", func(t *testing.T) {
		app := newTestApp(seededWorlds(), &stubAccessService{}, &stubStickerService{})

		res, err := app.Test(jsonRequest(http.MethodGet, "/worlds/1", nil))
		require.NoError(t, err)
		assert.NotEmpty(t, res.Header.Get(constant.HeaderSessionID))
	})

	t.Run("echoes a provided session id", func(t *testing.T) {
		app := newTestApp(seededWorlds(), &stubAccessService{}, &stubStickerService{})

		req := jsonRequest(http.MethodGet, "/worlds/1", nil)
		req.Header.Set(constant.HeaderSessionID, "session-abc")
		res, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, "session-abc", res.Header.Get(constant.HeaderSessionID))
	})

	t.Run("editable reflects the gate verdict", func(t *testing.T) {
		for _, editable := range []bool{true, false} {
			app := newTestApp(seededWorlds(), &stubAccessService{editable: editable}, &stubStickerService{})

			res, err := app.Test(jsonRequest(http.MethodGet, "/worlds/2", nil))
			require.NoError(t, err)

			var shown dto.ShowWorldResponse
			decodeBody(t, res, &shown)
			assert.Equal(t, editable, shown.Editable, "editable=%v", editable)
		}
	})
}

func TestJoinRoute(t *testing.T) {
	// The three field spellings clients have used for the access code.
	for _, field := range []string{"access_code", "code", "accessCode"} {
		t.Run(field, func(t *testing.T) {
			app := newTestApp(seededWorlds(), &stubAccessService{}, &stubStickerService{})

			res, err := app.Test(jsonRequest(http.MethodPost, "/worlds/join", fiber.Map{field: "BOOKCLUB42"}))
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, res.StatusCode)

			var world dto.WorldResponse
			decodeBody(t, res, &world)
			assert.Equal(t, 2, world.Id)
		})
	}

	t.Run("grants the session on success", func(t *testing.T) {
		access := &stubAccessService{}
		app := newTestApp(seededWorlds(), access, &stubStickerService{})

		req := jsonRequest(http.MethodPost, "/worlds/join", fiber.Map{"access_code": "BOOKCLUB42"})
		req.Header.Set(constant.HeaderSessionID, "session-abc")
		_, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 2, access.grants["session-abc"])
	})

	t.Run("wrong code is a 404", func(t *testing.T) {
		access := &stubAccessService{}
		app := newTestApp(seededWorlds(), access, &stubStickerService{})

		res, err := app.Test(jsonRequest(http.MethodPost, "/worlds/join", fiber.Map{"access_code": "NOPE"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
		assert.Empty(t, access.grants)
	})
}

func TestStickerRoutes(t *testing.T) {
	seed := func() *stubStickerService {
		return &stubStickerService{stickers: map[int]*dto.StickerResponse{
			7: {Id: 7, WorldId: 1, XPosition: 10, YPosition: 20, Scale: 1.0, ImageUrl: "/s1.png"},
		}}
	}

	t.Run("list passes the world filter through", func(t *testing.T) {
		stickers := seed()
		app := newTestApp(seededWorlds(), &stubAccessService{}, stickers)

		res, err := app.Test(jsonRequest(http.MethodGet, "/stickers?world_id=2", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Equal(t, 2, stickers.lastWorldID)
	})

	t.Run("list without a filter falls through as zero", func(t *testing.T) {
		stickers := seed()
		app := newTestApp(seededWorlds(), &stubAccessService{}, stickers)

		_, err := app.Test(jsonRequest(http.MethodGet, "/stickers", nil))
		require.NoError(t, err)
		assert.Equal(t, 0, stickers.lastWorldID)
	})

	t.Run("create without an image is a 400", func(t *testing.T) {
		app := newTestApp(seededWorlds(), &stubAccessService{}, seed())

		res, err := app.Test(jsonRequest(http.MethodPost, "/stickers", fiber.Map{"world_id": 1}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("partial update touches only the sent fields", func(t *testing.T) {
		stickers := seed()
		app := newTestApp(seededWorlds(), &stubAccessService{}, stickers)

		res, err := app.Test(jsonRequest(http.MethodPut, "/stickers/7", fiber.Map{"x_position": 111}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.StatusCode)

		var updated dto.StickerResponse
		decodeBody(t, res, &updated)
		assert.Equal(t, 111, updated.XPosition)
		assert.Equal(t, 20, updated.YPosition)
		assert.InDelta(t, 1.0, updated.Scale, 1e-9)
	})

	t.Run("update of an unknown sticker is a 404", func(t *testing.T) {
		app := newTestApp(seededWorlds(), &stubAccessService{}, seed())

		res, err := app.Test(jsonRequest(http.MethodPut, "/stickers/999", fiber.Map{"x_position": 1}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
	})

	t.Run("delete acknowledges with success", func(t *testing.T) {
		stickers := seed()
		app := newTestApp(seededWorlds(), &stubAccessService{}, stickers)

		res, err := app.Test(jsonRequest(http.MethodDelete, fmt.Sprintf("/stickers/%d", 7), nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.StatusCode)

		var body map[string]interface{}
		decodeBody(t, res, &body)
		assert.Equal(t, true, body["success"])
		assert.Empty(t, stickers.stickers)
	})
}
