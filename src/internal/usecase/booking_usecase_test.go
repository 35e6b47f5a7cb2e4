package usecase_test

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"rental-service/src/internal/entity"
	"rental-service/src/internal/gateway/midtrans"
	"rental-service/src/internal/model"
	"rental-service/src/internal/repository"
	"rental-service/src/internal/usecase"
	httpError "rental-service/src/pkg/http-error"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type vehicleReaderMock struct {
	vehicles map[string]*entity.Vehicle
}

func (m *vehicleReaderMock) FindByID(ctx context.Context, id string) (*entity.Vehicle, error) {
	if v, ok := m.vehicles[id]; ok {
		return v, nil
	}
	return nil, repository.ErrNotFound
}

type gatewayMock struct {
	requests []*midtrans.SnapRequest
	err      error
}

func (m *gatewayMock) CreateTransaction(ctx context.Context, req *midtrans.SnapRequest) (*midtrans.SnapTransaction, error) {
	m.requests = append(m.requests, req)
	if m.err != nil {
		return nil, m.err
	}
	return &midtrans.SnapTransaction{Token: "snap-token", RedirectURL: "https://app.sandbox.midtrans.com/snap/v2/vtweb/snap-token"}, nil
}

func testCar() *entity.Vehicle {
	return &entity.Vehicle{
		ID:        "veh-car",
		Name:      "Avanza",
		Type:      entity.VehicleTypeCar,
		Price12h:  150000,
		Price24h:  250000,
		Available: true,
	}
}

func testMotor() *entity.Vehicle {
	return &entity.Vehicle{
		ID:           "veh-motor",
		Name:         "Vario 160",
		Type:         entity.VehicleTypeMotorbike,
		PriceInCity:  80000,
		PriceOutCity: 120000,
		Available:    true,
	}
}

func newBookingUseCase(repo *bookingRepoMock, vehicles *vehicleReaderMock, gw *gatewayMock) *usecase.BookingUseCase {
	return usecase.NewBookingUseCase(testLogger(), validator.New(), repo, vehicles, gw, nil, nil, viper.New())
}

func carRequest() *model.CreateBookingRequest {
	start := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	return &model.CreateBookingRequest{
		UserID:        "user-1",
		UserEmail:     "user@example.com",
		VehicleID:     "veh-car",
		CustomerName:  "Budi",
		CustomerPhone: "081234567890",
		StartDate:     start,
		EndDate:       start.Add(10 * time.Hour),
	}
}

func TestCreateBooking_CarTenHours(t *testing.T) {
	repo := newBookingRepoMock()
	vehicles := &vehicleReaderMock{vehicles: map[string]*entity.Vehicle{"veh-car": testCar()}}
	gw := &gatewayMock{}
	uc := newBookingUseCase(repo, vehicles, gw)

	result := uc.Create(context.Background(), carRequest())

	require.Nil(t, result.Error)
	resp := result.Data.(model.CreateBookingResponse)

	assert.Equal(t, int64(1), resp.Quote.UnitCount)
	assert.Equal(t, int64(150000), resp.Quote.UnitPrice)
	assert.Equal(t, "12 jam", resp.Quote.UnitLabel)
	assert.Equal(t, int64(150000), resp.Quote.Total)

	booking := resp.Booking.(*entity.Booking)
	assert.True(t, strings.HasPrefix(booking.OrderID, "DMT-"))
	assert.Equal(t, entity.BookingPending, booking.Status)
	assert.Equal(t, entity.PaymentPending, booking.PaymentStatus)
	assert.Equal(t, int64(150000), booking.TotalPrice)
	assert.Equal(t, entity.DeliverySelfPickup, booking.DeliveryOption)

	require.NotNil(t, resp.Payment)
	assert.Equal(t, "snap-token", resp.Payment.Token)

	stored := repo.bookings[booking.ID]
	require.NotNil(t, stored)
	assert.Equal(t, "snap-token", stored.SnapToken)

	require.Len(t, gw.requests, 1)
	assert.Equal(t, booking.OrderID, gw.requests[0].TransactionDetails.OrderID)
	assert.Equal(t, int64(150000), gw.requests[0].TransactionDetails.GrossAmount)
}

func TestCreateBooking_MotorbikeOutCityWithDelivery(t *testing.T) {
	repo := newBookingRepoMock()
	vehicles := &vehicleReaderMock{vehicles: map[string]*entity.Vehicle{"veh-motor": testMotor()}}
	gw := &gatewayMock{}
	uc := newBookingUseCase(repo, vehicles, gw)

	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	request := &model.CreateBookingRequest{
		UserID:          "user-1",
		VehicleID:       "veh-motor",
		CustomerName:    "Sari",
		CustomerPhone:   "081298765432",
		StartDate:       start,
		EndDate:         start.AddDate(0, 0, 3),
		RentalZone:      "outCity",
		DeliveryOption:  entity.DeliveryRequested,
		DeliveryAddress: "Jl. Merdeka No. 1",
	}

	result := uc.Create(context.Background(), request)

	require.Nil(t, result.Error)
	resp := result.Data.(model.CreateBookingResponse)
	assert.Equal(t, int64(3), resp.Quote.UnitCount)
	assert.Equal(t, int64(120000), resp.Quote.UnitPrice)
	assert.Equal(t, int64(50000), resp.Quote.DeliverySurcharge)
	assert.Equal(t, int64(410000), resp.Quote.Total)

	// delivery fee shows up as its own item line
	require.Len(t, gw.requests, 1)
	require.Len(t, gw.requests[0].ItemDetails, 2)
	assert.Equal(t, int64(50000), gw.requests[0].ItemDetails[1].Price)
}

func TestCreateBooking_DeliveryRequiresAddress(t *testing.T) {
	repo := newBookingRepoMock()
	vehicles := &vehicleReaderMock{vehicles: map[string]*entity.Vehicle{"veh-motor": testMotor()}}
	uc := newBookingUseCase(repo, vehicles, &gatewayMock{})

	request := carRequest()
	request.VehicleID = "veh-motor"
	request.DeliveryOption = entity.DeliveryRequested
	request.DeliveryAddress = "   "

	result := uc.Create(context.Background(), request)

	require.NotNil(t, result.Error)
	errObj := result.Error.(httpError.CommonError)
	assert.Equal(t, http.StatusBadRequest, errObj.Code)
	assert.Empty(t, repo.bookings)
}

func TestCreateBooking_UnknownOrUnavailableVehicle(t *testing.T) {
	car := testCar()
	car.Available = false
	repo := newBookingRepoMock()
	vehicles := &vehicleReaderMock{vehicles: map[string]*entity.Vehicle{"veh-car": car}}
	uc := newBookingUseCase(repo, vehicles, &gatewayMock{})

	request := carRequest()
	request.VehicleID = "missing"
	result := uc.Create(context.Background(), request)
	require.NotNil(t, result.Error)
	assert.Equal(t, http.StatusNotFound, result.Error.(httpError.CommonError).Code)

	request = carRequest()
	result = uc.Create(context.Background(), request)
	require.NotNil(t, result.Error)
	assert.Equal(t, http.StatusBadRequest, result.Error.(httpError.CommonError).Code)
}

func TestCreateBooking_GatewayFailureKeepsBooking(t *testing.T) {
	repo := newBookingRepoMock()
	vehicles := &vehicleReaderMock{vehicles: map[string]*entity.Vehicle{"veh-car": testCar()}}
	gw := &gatewayMock{err: context.DeadlineExceeded}
	uc := newBookingUseCase(repo, vehicles, gw)

	result := uc.Create(context.Background(), carRequest())

	require.Nil(t, result.Error)
	resp := result.Data.(model.CreateBookingResponse)
	assert.Nil(t, resp.Payment)

	booking := resp.Booking.(*entity.Booking)
	stored := repo.bookings[booking.ID]
	require.NotNil(t, stored)
	assert.Equal(t, entity.PaymentPending, stored.PaymentStatus)
	assert.Empty(t, stored.SnapToken)
}

func TestRegeneratePayment_PendingOnly(t *testing.T) {
	booking := pendingBooking()
	booking.VehicleID = "veh-car"
	booking.VehicleName = "Avanza"
	booking.RentalUnits = 1
	booking.PriceUnit = "12 jam"
	booking.UnitPrice = 150000

	repo := newBookingRepoMock(booking)
	gw := &gatewayMock{}
	uc := newBookingUseCase(repo, &vehicleReaderMock{}, gw)

	oldOrderID := booking.OrderID
	result := uc.RegeneratePayment(context.Background(), &model.RegeneratePaymentRequest{
		UserID:    booking.UserID,
		BookingID: booking.ID,
	})

	require.Nil(t, result.Error)
	stored := repo.bookings[booking.ID]
	assert.NotEqual(t, oldOrderID, stored.OrderID)
	assert.True(t, strings.HasPrefix(stored.OrderID, "DMT-"))
	assert.Equal(t, "snap-token", stored.SnapToken)
	// the embedded quote is untouched
	assert.Equal(t, int64(150000), stored.UnitPrice)
	assert.Equal(t, int64(1), stored.RentalUnits)

	// once paid, regeneration is refused
	stored.PaymentStatus = entity.PaymentPaid
	result = uc.RegeneratePayment(context.Background(), &model.RegeneratePaymentRequest{
		UserID:    booking.UserID,
		BookingID: booking.ID,
	})
	require.NotNil(t, result.Error)
	assert.Equal(t, http.StatusBadRequest, result.Error.(httpError.CommonError).Code)
}

func TestRegeneratePayment_OwnershipEnforced(t *testing.T) {
	booking := pendingBooking()
	repo := newBookingRepoMock(booking)
	uc := newBookingUseCase(repo, &vehicleReaderMock{}, &gatewayMock{})

	result := uc.RegeneratePayment(context.Background(), &model.RegeneratePaymentRequest{
		UserID:    "someone-else",
		BookingID: booking.ID,
	})
	require.NotNil(t, result.Error)
	assert.Equal(t, http.StatusForbidden, result.Error.(httpError.CommonError).Code)

	// admins may regenerate on behalf of the owner
	result = uc.RegeneratePayment(context.Background(), &model.RegeneratePaymentRequest{
		UserID:    "someone-else",
		IsAdmin:   true,
		BookingID: booking.ID,
	})
	assert.Nil(t, result.Error)
}

func TestBookingDetail_OwnershipEnforced(t *testing.T) {
	booking := pendingBooking()
	repo := newBookingRepoMock(booking)
	uc := newBookingUseCase(repo, &vehicleReaderMock{}, &gatewayMock{})

	result := uc.Detail(context.Background(), &model.BookingDetailRequest{
		UserID:    "someone-else",
		BookingID: booking.ID,
	})
	require.NotNil(t, result.Error)
	assert.Equal(t, http.StatusForbidden, result.Error.(httpError.CommonError).Code)

	result = uc.Detail(context.Background(), &model.BookingDetailRequest{
		UserID:    booking.UserID,
		BookingID: booking.ID,
	})
	assert.Nil(t, result.Error)
}
