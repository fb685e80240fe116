package controller

import (
	"github.com/meeralouise/my-reading-world/internal/constant"
	"github.com/meeralouise/my-reading-world/internal/dto"
	"github.com/meeralouise/my-reading-world/internal/pkg/serverutils"
	"github.com/meeralouise/my-reading-world/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IWorldController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Join(ctx *fiber.Ctx) error
}

type worldController struct {
	service       service.IWorldService
	accessService service.IAccessService
}

func NewWorldController(worldService service.IWorldService, accessService service.IAccessService) IWorldController {
	return &worldController{
		service:       worldService,
		accessService: accessService,
	}
}

func (c *worldController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/worlds")
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Post("/join", c.Join)
	h.Get("/:id", c.Show)
}

// sessionID echoes the caller's page-session identifier, minting one on first
// contact so the access gate has a stable key.
func sessionID(ctx *fiber.Ctx) string {
	sid := ctx.Get(constant.HeaderSessionID)
	if sid == "" {
		sid = uuid.NewString()
	}
	ctx.Set(constant.HeaderSessionID, sid)
	return sid
}

func (c *worldController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *worldController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateWorldRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *worldController) Show(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "World ID missing"))
	}

	res, err := c.service.Show(ctx.Context(), id)
	if err != nil {
		return err
	}

	editable, err := c.accessService.Evaluate(ctx.Context(), sessionID(ctx), id)
	if err != nil {
		return err
	}

	return ctx.JSON(dto.ShowWorldResponse{
		Id:        res.Id,
		Name:      res.Name,
		IsPrivate: res.IsPrivate,
		Editable:  editable,
		CreatedAt: res.CreatedAt,
	})
}

func (c *worldController) Join(ctx *fiber.Ctx) error {
	var req dto.JoinWorldRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	res, err := c.service.Join(ctx.Context(), req.RawCode())
	if err != nil {
		return err
	}

	// A successful join unlocks the resolved world for this session.
	c.accessService.Grant(sessionID(ctx), res.Id)

	return ctx.JSON(res)
}
