package controller

import (
	"github.com/meeralouise/my-reading-world/internal/dto"
	"github.com/meeralouise/my-reading-world/internal/pkg/serverutils"
	"github.com/meeralouise/my-reading-world/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IStickerController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type stickerController struct {
	service service.IStickerService
}

func NewStickerController(stickerService service.IStickerService) IStickerController {
	return &stickerController{service: stickerService}
}

func (c *stickerController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/stickers")
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)
}

func (c *stickerController) GetAll(ctx *fiber.Ctx) error {
	// world_id defaults to the shared world when absent; resolution happens
	// once at the service boundary.
	worldID := ctx.QueryInt("world_id", 0)

	res, err := c.service.GetAll(ctx.Context(), worldID)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *stickerController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateStickerRequest
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

func (c *stickerController) Update(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Sticker ID missing"))
	}

	var req dto.UpdateStickerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	res, err := c.service.Update(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *stickerController) Delete(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Sticker ID missing"))
	}

	if err := c.service.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"success": true})
}
