package usecase

import (
	"context"
	"fmt"
	"time"

	"rental-service/src/internal/entity"
	"rental-service/src/internal/gateway/messaging"
	"rental-service/src/internal/gateway/midtrans"
	"rental-service/src/internal/model"
	"rental-service/src/internal/model/converter"
	"rental-service/src/internal/repository"
	httpError "rental-service/src/pkg/http-error"
	"rental-service/src/pkg/log"
	"rental-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const transactionTimeLayout = "2006-01-02 15:04:05"

type PaymentUseCase struct {
	Log               log.Log
	Validate          *validator.Validate
	BookingRepository BookingRepository
	Producer          *messaging.BookingProducer
	ServerKey         string
}

func NewPaymentUseCase(
	logger log.Log,
	validate *validator.Validate,
	bookingRepository BookingRepository,
	producer *messaging.BookingProducer,
	cfg *viper.Viper,
) *PaymentUseCase {
	return &PaymentUseCase{
		Log:               logger,
		Validate:          validate,
		BookingRepository: bookingRepository,
		Producer:          producer,
		ServerKey:         cfg.GetString("midtrans.server_key"),
	}
}

// Reconcile applies a gateway payment notification to its booking. The
// signature check and the booking lookup must both pass before anything
// is written; the write itself is a pure function of the notification,
// so duplicate deliveries land on the same final state.
func (c *PaymentUseCase) Reconcile(ctx context.Context, request *model.PaymentNotification, rawPayload []byte) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("payment-usecase", errObj.Message, "Reconcile", utils.ConvertString(request))
		return result
	}

	expected := midtrans.Signature(request.OrderID, request.StatusCode, request.GrossAmount, c.ServerKey)
	if request.SignatureKey != expected {
		errObj := httpError.NewForbidden()
		errObj.Message = "invalid signature"
		result.Error = errObj
		c.Log.Error("payment-usecase", errObj.Message, "Reconcile", request.OrderID)
		return result
	}

	booking, err := c.BookingRepository.FindByOrderID(ctx, request.OrderID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("booking with order id %s not found", request.OrderID)
		result.Error = errObj
		c.Log.Error("payment-usecase", errObj.Message, "Reconcile", utils.ConvertString(err))
		return result
	}

	paymentStatus := midtrans.MapPaymentStatus(request.TransactionStatus, request.FraudStatus)
	bookingStatus := midtrans.BookingStatusFor(paymentStatus)

	transactionTime := time.Now()
	if request.TransactionTime != "" {
		if parsed, parseErr := time.Parse(transactionTimeLayout, request.TransactionTime); parseErr == nil {
			transactionTime = parsed
		}
	}

	paymentResult := &entity.PaymentResult{
		OrderID:         request.OrderID,
		PaymentStatus:   paymentStatus,
		BookingStatus:   bookingStatus,
		TransactionID:   request.TransactionID,
		PaymentMethod:   request.PaymentType,
		TransactionTime: transactionTime,
		RawPayload:      rawPayload,
	}

	if err := c.BookingRepository.ApplyPaymentResult(ctx, booking.ID, paymentResult); err != nil {
		// surface to the gateway so its retry re-delivers the notification
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to apply payment result"
		result.Error = errObj
		c.Log.Error("payment-usecase", err.Error(), "Reconcile", request.OrderID)
		return result
	}

	if c.Producer != nil {
		event := converter.BookingToPaymentStatusEvent(booking, paymentResult)
		if err := c.Producer.SendPaymentStatusChanged(event); err != nil {
			c.Log.Error("payment-usecase", fmt.Sprintf("failed publish payment status event: %v", err), "Reconcile", request.OrderID)
		}
	}

	finalBookingStatus := bookingStatus
	if finalBookingStatus == "" {
		finalBookingStatus = booking.Status
	}

	c.Log.Info("payment-usecase",
		fmt.Sprintf("payment notification processed: %s - %s -> %s", request.OrderID, request.TransactionStatus, paymentStatus),
		"Reconcile", request.TransactionID)

	result.Data = model.ReconcileResponse{
		Accepted:      true,
		OrderID:       request.OrderID,
		PaymentStatus: paymentStatus,
		BookingStatus: finalBookingStatus,
	}
	return result
}

// keeps the compiler honest about the repository satisfying the contract
var _ BookingRepository = (*repository.BookingRepository)(nil)
