package controller

import (
	"github.com/LuisRodriguez27/notex/internal/dto"
	"github.com/LuisRodriguez27/notex/internal/pkg/apperror"
	"github.com/LuisRodriguez27/notex/internal/pkg/serverutils"
	"github.com/LuisRodriguez27/notex/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAttachmentController interface {
	RegisterRoutes(r fiber.Router)
	Save(ctx *fiber.Ctx) error
	SaveFromBuffer(ctx *fiber.Ctx) error
	GetByNote(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type attachmentController struct {
	service service.IAttachmentService
}

func NewAttachmentController(service service.IAttachmentService) IAttachmentController {
	return &attachmentController{service: service}
}

func (c *attachmentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/attachment/v1")
	h.Post("", c.Save)
	h.Post("buffer", c.SaveFromBuffer)
	h.Get("note/:noteId", c.GetByNote)
	h.Delete(":id", c.Delete)
}

func (c *attachmentController) Save(ctx *fiber.Ctx) error {
	var req dto.SaveAttachmentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Save(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success save attachment", res))
}

func (c *attachmentController) SaveFromBuffer(ctx *fiber.Ctx) error {
	var req dto.SaveAttachmentBufferRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SaveFromBuffer(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success save attachment", res))
}

func (c *attachmentController) GetByNote(ctx *fiber.Ctx) error {
	noteId, err := uuid.Parse(ctx.Params("noteId"))
	if err != nil {
		return apperror.Validation("invalid note id")
	}

	res, err := c.service.GetByNote(ctx.Context(), noteId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get note attachments", res))
}

func (c *attachmentController) Delete(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Delete(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete attachment", res))
}
