package http

import (
	"encoding/json"

	"rental-service/src/internal/model"
	"rental-service/src/internal/usecase"
	"rental-service/src/pkg/log"
	"rental-service/src/pkg/utils"

	httpError "rental-service/src/pkg/http-error"

	"github.com/gofiber/fiber/v2"
)

type PaymentController struct {
	Log     log.Log
	UseCase *usecase.PaymentUseCase
}

func NewPaymentController(useCase *usecase.PaymentUseCase, logger log.Log) *PaymentController {
	return &PaymentController{
		Log:     logger,
		UseCase: useCase,
	}
}

// Notification handles the Midtrans HTTP notification. Anything other
// than 2xx makes the gateway retry, so rejects map to real error codes.
func (c *PaymentController) Notification(ctx *fiber.Ctx) error {
	raw := make([]byte, len(ctx.Body()))
	copy(raw, ctx.Body())

	request := new(model.PaymentNotification)
	if err := json.Unmarshal(raw, request); err != nil {
		c.Log.Error("PaymentController.Notification", "Failed to parse notification body", "error", err.Error())
		errObj := httpError.NewBadRequest()
		errObj.Message = "malformed notification payload"
		return utils.ResponseError(errObj, ctx)
	}

	result := c.UseCase.Reconcile(ctx.Context(), request, raw)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Payment Notification", fiber.StatusOK, ctx)
}
