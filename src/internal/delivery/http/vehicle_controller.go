package http

import (
	"rental-service/src/internal/model"
	"rental-service/src/internal/usecase"
	"rental-service/src/pkg/log"
	"rental-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type VehicleController struct {
	Log     log.Log
	UseCase *usecase.VehicleUseCase
}

func NewVehicleController(useCase *usecase.VehicleUseCase, logger log.Log) *VehicleController {
	return &VehicleController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *VehicleController) List(ctx *fiber.Ctx) error {
	request := &model.ListVehicleRequest{
		Type:          ctx.Query("type"),
		AvailableOnly: ctx.QueryBool("available"),
	}
	result := c.UseCase.List(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "List Vehicles", fiber.StatusOK, ctx)
}

func (c *VehicleController) Detail(ctx *fiber.Ctx) error {
	request := &model.VehicleDetailRequest{VehicleID: ctx.Params("id")}
	result := c.UseCase.Detail(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Vehicle Detail", fiber.StatusOK, ctx)
}

func (c *VehicleController) AdminCreate(ctx *fiber.Ctx) error {
	request := new(model.UpsertVehicleRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("VehicleController.AdminCreate", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.AdminCreate(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Create Vehicle", fiber.StatusCreated, ctx)
}

func (c *VehicleController) AdminUpdate(ctx *fiber.Ctx) error {
	request := new(model.UpsertVehicleRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("VehicleController.AdminUpdate", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.VehicleID = ctx.Params("id")

	result := c.UseCase.AdminUpdate(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Update Vehicle", fiber.StatusOK, ctx)
}

func (c *VehicleController) AdminDelete(ctx *fiber.Ctx) error {
	request := &model.DeleteVehicleRequest{VehicleID: ctx.Params("id")}
	result := c.UseCase.AdminDelete(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Delete Vehicle", fiber.StatusOK, ctx)
}
