package http

import (
	"rental-service/src/internal/delivery/http/middleware"
	"rental-service/src/internal/model"
	"rental-service/src/internal/usecase"
	"rental-service/src/pkg/log"
	"rental-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type BookingController struct {
	Log     log.Log
	UseCase *usecase.BookingUseCase
}

func NewBookingController(useCase *usecase.BookingUseCase, logger log.Log) *BookingController {
	return &BookingController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *BookingController) Create(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.CreateBookingRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("BookingController.Create", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.UserID = auth.Metadata.UserID
	request.UserEmail = auth.Metadata.Email

	result := c.UseCase.Create(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Create Booking", fiber.StatusCreated, ctx)
}

func (c *BookingController) Detail(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := &model.BookingDetailRequest{
		UserID:    auth.Metadata.UserID,
		IsAdmin:   auth.IsAdmin(),
		BookingID: ctx.Params("id"),
	}
	result := c.UseCase.Detail(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Booking Detail", fiber.StatusOK, ctx)
}

func (c *BookingController) ListMine(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := &model.ListBookingRequest{UserID: auth.Metadata.UserID}
	result := c.UseCase.ListMine(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "My Bookings", fiber.StatusOK, ctx)
}

func (c *BookingController) RegeneratePayment(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := &model.RegeneratePaymentRequest{
		UserID:    auth.Metadata.UserID,
		IsAdmin:   auth.IsAdmin(),
		BookingID: ctx.Params("id"),
	}
	result := c.UseCase.RegeneratePayment(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Regenerate Payment", fiber.StatusOK, ctx)
}

func (c *BookingController) AdminList(ctx *fiber.Ctx) error {
	result := c.UseCase.AdminList(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "All Bookings", fiber.StatusOK, ctx)
}

func (c *BookingController) AdminUpdateStatus(ctx *fiber.Ctx) error {
	request := new(model.AdminUpdateBookingRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("BookingController.AdminUpdateStatus", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.BookingID = ctx.Params("id")

	result := c.UseCase.AdminUpdateStatus(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Update Booking", fiber.StatusOK, ctx)
}
