package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"rental-service/src/internal/entity"
	"rental-service/src/internal/gateway/messaging"
	"rental-service/src/internal/gateway/midtrans"
	"rental-service/src/internal/model"
	"rental-service/src/internal/model/converter"
	"rental-service/src/internal/pricing"
	httpError "rental-service/src/pkg/http-error"
	"rental-service/src/pkg/log"
	"rental-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/spf13/viper"
)

// TypeBookingCheckExpiry is the asynq task enqueued at booking creation
// and handled by the expiry worker.
const TypeBookingCheckExpiry = "booking:check-expiry"

type BookingRepository interface {
	Insert(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id string) (*entity.Booking, error)
	FindByOrderID(ctx context.Context, orderID string) (*entity.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]entity.Booking, error)
	List(ctx context.Context) ([]entity.Booking, error)
	UpdatePaymentToken(ctx context.Context, id, orderID, token, redirectURL string) error
	ApplyPaymentResult(ctx context.Context, id string, result *entity.PaymentResult) error
	UpdateStatus(ctx context.Context, id, status, paymentStatus string) error
	ExpireIfPending(ctx context.Context, id string) (bool, error)
}

type VehicleReader interface {
	FindByID(ctx context.Context, id string) (*entity.Vehicle, error)
}

type BookingUseCase struct {
	Log               log.Log
	Validate          *validator.Validate
	BookingRepository BookingRepository
	VehicleRepository VehicleReader
	Gateway           midtrans.Gateway
	Producer          *messaging.BookingProducer
	AsynqClient       *asynq.Client
	Config            *viper.Viper
}

func NewBookingUseCase(
	logger log.Log,
	validate *validator.Validate,
	bookingRepository BookingRepository,
	vehicleRepository VehicleReader,
	gateway midtrans.Gateway,
	producer *messaging.BookingProducer,
	asynqClient *asynq.Client,
	cfg *viper.Viper,
) *BookingUseCase {
	return &BookingUseCase{
		Log:               logger,
		Validate:          validate,
		BookingRepository: bookingRepository,
		VehicleRepository: vehicleRepository,
		Gateway:           gateway,
		Producer:          producer,
		AsynqClient:       asynqClient,
		Config:            cfg,
	}
}

func (c *BookingUseCase) Create(ctx context.Context, request *model.CreateBookingRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("booking-usecase", errObj.Message, "Create", utils.ConvertString(request))
		return result
	}

	deliveryRequested := request.DeliveryOption == entity.DeliveryRequested
	if deliveryRequested && strings.TrimSpace(request.DeliveryAddress) == "" {
		errObj := httpError.NewBadRequest()
		errObj.Message = "Alamat pengantaran harus diisi"
		result.Error = errObj
		return result
	}

	vehicle, err := c.VehicleRepository.FindByID(ctx, request.VehicleID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("vehicle with id %s not found", request.VehicleID)
		result.Error = errObj
		c.Log.Error("booking-usecase", errObj.Message, "Create", utils.ConvertString(err))
		return result
	}
	if !vehicle.Available {
		errObj := httpError.NewBadRequest()
		errObj.Message = "vehicle is not available"
		result.Error = errObj
		return result
	}

	quote := pricing.ComputeQuote(
		vehicle.RateCard(),
		pricing.RentalWindow{Start: request.StartDate, End: request.EndDate},
		rentalOptions(vehicle.Type, request.RentalZone),
		deliveryRequested,
	)

	deliveryOption := request.DeliveryOption
	if deliveryOption == "" {
		deliveryOption = entity.DeliverySelfPickup
	}

	booking := &entity.Booking{
		ID:              uuid.NewString(),
		UserID:          request.UserID,
		UserEmail:       request.UserEmail,
		VehicleID:       vehicle.ID,
		VehicleName:     vehicle.Name,
		VehicleType:     vehicle.Type,
		CustomerName:    request.CustomerName,
		CustomerPhone:   request.CustomerPhone,
		CustomerAddress: request.CustomerAddress,
		StartDate:       request.StartDate,
		EndDate:         request.EndDate,
		RentalZone:      request.RentalZone,
		RentalUnits:     quote.UnitCount,
		PriceUnit:       quote.UnitLabel,
		UnitPrice:       quote.UnitPrice,
		RentalPrice:     quote.RentalSubtotal,
		DeliveryOption:  deliveryOption,
		DeliveryCost:    quote.DeliverySurcharge,
		DeliveryAddress: request.DeliveryAddress,
		TotalPrice:      quote.Total,
		Status:          entity.BookingPending,
		OrderID:         newOrderID(),
		PaymentStatus:   entity.PaymentPending,
		Notes:           request.Notes,
	}

	if err := c.BookingRepository.Insert(ctx, booking); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to create booking"
		result.Error = errObj
		c.Log.Error("booking-usecase", err.Error(), "Create", utils.ConvertString(booking))
		return result
	}

	// payment failure is not fatal: the booking stays pending and the
	// token can be regenerated later
	payment := c.requestPayment(ctx, booking)

	if c.Producer != nil {
		event := converter.BookingToCreatedEvent(booking)
		if err := c.Producer.SendBookingCreated(event); err != nil {
			c.Log.Error("booking-usecase", fmt.Sprintf("failed publish booking created event: %v", err), "Create", booking.ID)
		}
	}

	c.scheduleExpiryCheck(booking.ID)

	result.Data = model.CreateBookingResponse{
		Booking: booking,
		Quote:   quote,
		Payment: payment,
	}
	return result
}

func (c *BookingUseCase) Detail(ctx context.Context, request *model.BookingDetailRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	booking, err := c.BookingRepository.FindByID(ctx, request.BookingID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = "booking not found"
		result.Error = errObj
		return result
	}

	if !request.IsAdmin && booking.UserID != request.UserID {
		errObj := httpError.NewForbidden()
		errObj.Message = "you do not own this booking"
		result.Error = errObj
		return result
	}

	result.Data = booking
	return result
}

func (c *BookingUseCase) ListMine(ctx context.Context, request *model.ListBookingRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	bookings, err := c.BookingRepository.ListByUser(ctx, request.UserID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to list bookings"
		result.Error = errObj
		c.Log.Error("booking-usecase", err.Error(), "ListMine", request.UserID)
		return result
	}

	result.Data = bookings
	return result
}

func (c *BookingUseCase) AdminList(ctx context.Context) utils.Result {
	var result utils.Result

	bookings, err := c.BookingRepository.List(ctx)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to list bookings"
		result.Error = errObj
		c.Log.Error("booking-usecase", err.Error(), "AdminList", "")
		return result
	}

	result.Data = bookings
	return result
}

func (c *BookingUseCase) AdminUpdateStatus(ctx context.Context, request *model.AdminUpdateBookingRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	booking, err := c.BookingRepository.FindByID(ctx, request.BookingID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = "booking not found"
		result.Error = errObj
		return result
	}

	if err := c.BookingRepository.UpdateStatus(ctx, booking.ID, request.Status, request.PaymentStatus); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to update booking"
		result.Error = errObj
		c.Log.Error("booking-usecase", err.Error(), "AdminUpdateStatus", booking.ID)
		return result
	}

	result.Data = model.BookingDetailRequest{BookingID: booking.ID}
	return result
}

// RegeneratePayment issues a fresh order id and snap token for a
// still-unpaid booking. The embedded quote is never recomputed.
func (c *BookingUseCase) RegeneratePayment(ctx context.Context, request *model.RegeneratePaymentRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	booking, err := c.BookingRepository.FindByID(ctx, request.BookingID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = "booking not found"
		result.Error = errObj
		return result
	}

	if !request.IsAdmin && booking.UserID != request.UserID {
		errObj := httpError.NewForbidden()
		errObj.Message = "you do not own this booking"
		result.Error = errObj
		return result
	}

	if booking.PaymentStatus != entity.PaymentPending {
		errObj := httpError.NewBadRequest()
		errObj.Message = "cannot regenerate payment for non-pending booking"
		result.Error = errObj
		return result
	}

	booking.OrderID = newOrderID()
	payment := c.requestPayment(ctx, booking)
	if payment == nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to create payment"
		result.Error = errObj
		return result
	}

	result.Data = model.CreateBookingResponse{
		Booking: booking,
		Payment: payment,
	}
	return result
}

// CheckExpiry cancels a booking whose payment hold has elapsed without
// a settlement. Called by the expiry worker; a booking already paid or
// cancelled is left alone.
func (c *BookingUseCase) CheckExpiry(ctx context.Context, bookingID string) error {
	expired, err := c.BookingRepository.ExpireIfPending(ctx, bookingID)
	if err != nil {
		c.Log.Error("booking-usecase", err.Error(), "CheckExpiry", bookingID)
		return err
	}
	if !expired {
		return nil
	}

	c.Log.Info("booking-usecase", "booking expired without payment", "CheckExpiry", bookingID)

	if c.Producer != nil {
		booking, err := c.BookingRepository.FindByID(ctx, bookingID)
		if err != nil {
			return nil
		}
		event := converter.BookingToPaymentStatusEvent(booking, &entity.PaymentResult{
			OrderID:       booking.OrderID,
			PaymentStatus: entity.PaymentExpired,
			BookingStatus: entity.BookingCancelled,
		})
		if err := c.Producer.SendPaymentStatusChanged(event); err != nil {
			c.Log.Error("booking-usecase", fmt.Sprintf("failed publish payment status event: %v", err), "CheckExpiry", bookingID)
		}
	}
	return nil
}

// requestPayment asks the gateway for a snap transaction and persists
// the token against the booking. Returns nil on failure.
func (c *BookingUseCase) requestPayment(ctx context.Context, booking *entity.Booking) *model.PaymentInfo {
	if c.Gateway == nil {
		return nil
	}

	snap, err := c.Gateway.CreateTransaction(ctx, c.buildSnapRequest(booking))
	if err != nil {
		c.Log.Error("booking-usecase", fmt.Sprintf("midtrans error: %v", err), "requestPayment", booking.OrderID)
		return nil
	}

	booking.SnapToken = snap.Token
	booking.SnapRedirectURL = snap.RedirectURL
	if err := c.BookingRepository.UpdatePaymentToken(ctx, booking.ID, booking.OrderID, snap.Token, snap.RedirectURL); err != nil {
		c.Log.Error("booking-usecase", err.Error(), "requestPayment", booking.ID)
		return nil
	}

	return &model.PaymentInfo{Token: snap.Token, RedirectURL: snap.RedirectURL}
}

func (c *BookingUseCase) buildSnapRequest(booking *entity.Booking) *midtrans.SnapRequest {
	itemName := fmt.Sprintf("Sewa %s (%d %s)", booking.VehicleName, booking.RentalUnits, booking.PriceUnit)
	if len(itemName) > 50 {
		itemName = itemName[:50]
	}

	req := &midtrans.SnapRequest{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:     booking.OrderID,
			GrossAmount: booking.TotalPrice,
		},
		CustomerDetails: midtrans.CustomerDetails{
			FirstName: booking.CustomerName,
			Phone:     booking.CustomerPhone,
			Email:     booking.UserEmail,
		},
		ItemDetails: []midtrans.ItemDetail{
			{
				ID:       booking.VehicleID,
				Price:    booking.UnitPrice,
				Quantity: booking.RentalUnits,
				Name:     itemName,
			},
		},
		Expiry: &midtrans.Expiry{Unit: "hour", Duration: c.paymentHoldHours()},
	}

	if booking.DeliveryCost > 0 {
		req.ItemDetails = append(req.ItemDetails, midtrans.ItemDetail{
			ID:       "delivery",
			Price:    booking.DeliveryCost,
			Quantity: 1,
			Name:     "Biaya antar",
		})
	}

	if base := c.Config.GetString("app.base_url"); base != "" {
		req.Callbacks = &midtrans.Callbacks{Finish: fmt.Sprintf("%s/booking/%s", base, booking.ID)}
	}
	return req
}

func (c *BookingUseCase) scheduleExpiryCheck(bookingID string) {
	if c.AsynqClient == nil {
		return
	}

	payload, _ := json.Marshal(map[string]string{"booking_id": bookingID})
	task := asynq.NewTask(TypeBookingCheckExpiry, payload)
	hold := time.Duration(c.paymentHoldHours()) * time.Hour

	if _, err := c.AsynqClient.Enqueue(task, asynq.ProcessIn(hold)); err != nil {
		c.Log.Error("booking-usecase", fmt.Sprintf("failed enqueue expiry check: %v", err), "scheduleExpiryCheck", bookingID)
	}
}

func (c *BookingUseCase) paymentHoldHours() int64 {
	hours := c.Config.GetInt64("booking.payment_hold_hours")
	if hours <= 0 {
		hours = 24
	}
	return hours
}

func rentalOptions(vehicleType, zone string) pricing.Options {
	if vehicleType == entity.VehicleTypeMotorbike {
		if zone == string(pricing.ZoneOutCity) {
			return pricing.MotorbikeOptions{Zone: pricing.ZoneOutCity}
		}
		return pricing.MotorbikeOptions{Zone: pricing.ZoneInCity}
	}
	return pricing.CarOptions{}
}

func newOrderID() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("DMT-%d-%s", time.Now().UnixMilli(), suffix)
}
