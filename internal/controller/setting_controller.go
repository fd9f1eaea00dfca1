package controller

import (
	"github.com/LuisRodriguez27/notex/internal/dto"
	"github.com/LuisRodriguez27/notex/internal/pkg/serverutils"
	"github.com/LuisRodriguez27/notex/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISettingController interface {
	RegisterRoutes(r fiber.Router)
	Get(ctx *fiber.Ctx) error
	Set(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type settingController struct {
	service service.ISettingService
}

func NewSettingController(service service.ISettingService) ISettingController {
	return &settingController{service: service}
}

func (c *settingController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/setting/v1")
	h.Get(":key", c.Get)
	h.Put("", c.Set)
	h.Delete(":key", c.Delete)
}

func (c *settingController) Get(ctx *fiber.Ctx) error {
	res, err := c.service.Get(ctx.Context(), ctx.Params("key"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get setting", res))
}

func (c *settingController) Set(ctx *fiber.Ctx) error {
	var req dto.SetSettingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Set(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success set setting", res))
}

func (c *settingController) Delete(ctx *fiber.Ctx) error {
	if err := c.service.Delete(ctx.Context(), ctx.Params("key")); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete setting", nil))
}
