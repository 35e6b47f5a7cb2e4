package usecase_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"rental-service/src/internal/entity"
	"rental-service/src/internal/gateway/midtrans"
	"rental-service/src/internal/model"
	"rental-service/src/internal/repository"
	"rental-service/src/internal/usecase"
	httpError "rental-service/src/pkg/http-error"
	"rental-service/src/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testServerKey = "test-server-key"

func testLogger() log.Log {
	v := viper.New()
	v.Set("log.level", "ERROR")
	log.InitLogger(v)
	return log.GetLogger()
}

// bookingRepoMock implements usecase.BookingRepository in memory.
type bookingRepoMock struct {
	bookings map[string]*entity.Booking
	applied  []entity.PaymentResult
	applyErr error
}

func newBookingRepoMock(bookings ...*entity.Booking) *bookingRepoMock {
	m := &bookingRepoMock{bookings: map[string]*entity.Booking{}}
	for _, b := range bookings {
		m.bookings[b.ID] = b
	}
	return m
}

func (m *bookingRepoMock) Insert(ctx context.Context, booking *entity.Booking) error {
	m.bookings[booking.ID] = booking
	return nil
}

func (m *bookingRepoMock) FindByID(ctx context.Context, id string) (*entity.Booking, error) {
	if b, ok := m.bookings[id]; ok {
		copied := *b
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

func (m *bookingRepoMock) FindByOrderID(ctx context.Context, orderID string) (*entity.Booking, error) {
	for _, b := range m.bookings {
		if b.OrderID == orderID {
			copied := *b
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *bookingRepoMock) ListByUser(ctx context.Context, userID string) ([]entity.Booking, error) {
	var out []entity.Booking
	for _, b := range m.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (m *bookingRepoMock) List(ctx context.Context) ([]entity.Booking, error) {
	var out []entity.Booking
	for _, b := range m.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (m *bookingRepoMock) UpdatePaymentToken(ctx context.Context, id, orderID, token, redirectURL string) error {
	b, ok := m.bookings[id]
	if !ok {
		return repository.ErrNotFound
	}
	b.OrderID = orderID
	b.SnapToken = token
	b.SnapRedirectURL = redirectURL
	return nil
}

func (m *bookingRepoMock) ApplyPaymentResult(ctx context.Context, id string, result *entity.PaymentResult) error {
	if m.applyErr != nil {
		return m.applyErr
	}
	b, ok := m.bookings[id]
	if !ok {
		return repository.ErrNotFound
	}
	m.applied = append(m.applied, *result)
	b.PaymentStatus = result.PaymentStatus
	if result.BookingStatus != "" {
		b.Status = result.BookingStatus
	}
	b.TransactionID = result.TransactionID
	b.PaymentMethod = result.PaymentMethod
	t := result.TransactionTime
	b.TransactionTime = &t
	b.PaymentDetails = result.RawPayload
	return nil
}

func (m *bookingRepoMock) UpdateStatus(ctx context.Context, id, status, paymentStatus string) error {
	b, ok := m.bookings[id]
	if !ok {
		return repository.ErrNotFound
	}
	if status != "" {
		b.Status = status
	}
	if paymentStatus != "" {
		b.PaymentStatus = paymentStatus
	}
	return nil
}

func (m *bookingRepoMock) ExpireIfPending(ctx context.Context, id string) (bool, error) {
	b, ok := m.bookings[id]
	if !ok {
		return false, repository.ErrNotFound
	}
	if b.PaymentStatus != entity.PaymentPending || b.Status != entity.BookingPending {
		return false, nil
	}
	b.PaymentStatus = entity.PaymentExpired
	b.Status = entity.BookingCancelled
	return true, nil
}

func pendingBooking() *entity.Booking {
	return &entity.Booking{
		ID:            "bk-1",
		UserID:        "user-1",
		OrderID:       "DMT-1700000000000-AB12CD",
		Status:        entity.BookingPending,
		PaymentStatus: entity.PaymentPending,
		TotalPrice:    150000,
	}
}

func signedNotification(orderID, transactionStatus, fraudStatus string) *model.PaymentNotification {
	n := &model.PaymentNotification{
		OrderID:           orderID,
		StatusCode:        "200",
		GrossAmount:       "150000.00",
		TransactionStatus: transactionStatus,
		FraudStatus:       fraudStatus,
		TransactionID:     "txn-123",
		TransactionTime:   "2025-03-10 12:30:45",
		PaymentType:       "qris",
	}
	n.SignatureKey = midtrans.Signature(n.OrderID, n.StatusCode, n.GrossAmount, testServerKey)
	return n
}

func newPaymentUseCase(repo *bookingRepoMock) *usecase.PaymentUseCase {
	cfg := viper.New()
	cfg.Set("midtrans.server_key", testServerKey)
	return usecase.NewPaymentUseCase(testLogger(), validator.New(), repo, nil, cfg)
}

func TestReconcile_SettlementConfirmsBooking(t *testing.T) {
	booking := pendingBooking()
	repo := newBookingRepoMock(booking)
	uc := newPaymentUseCase(repo)

	result := uc.Reconcile(context.Background(), signedNotification(booking.OrderID, "settlement", ""), []byte(`{"raw":"payload"}`))

	require.Nil(t, result.Error)
	resp := result.Data.(model.ReconcileResponse)
	assert.True(t, resp.Accepted)
	assert.Equal(t, entity.PaymentPaid, resp.PaymentStatus)
	assert.Equal(t, entity.BookingConfirmed, resp.BookingStatus)

	stored := repo.bookings[booking.ID]
	assert.Equal(t, entity.PaymentPaid, stored.PaymentStatus)
	assert.Equal(t, entity.BookingConfirmed, stored.Status)
	assert.Equal(t, "txn-123", stored.TransactionID)
	assert.Equal(t, "qris", stored.PaymentMethod)
	assert.Equal(t, []byte(`{"raw":"payload"}`), stored.PaymentDetails)

	require.Len(t, repo.applied, 1)
	wantTime := time.Date(2025, 3, 10, 12, 30, 45, 0, time.UTC)
	assert.Equal(t, wantTime, repo.applied[0].TransactionTime)
}

func TestReconcile_ExpireCancelsBooking(t *testing.T) {
	booking := pendingBooking()
	repo := newBookingRepoMock(booking)
	uc := newPaymentUseCase(repo)

	result := uc.Reconcile(context.Background(), signedNotification(booking.OrderID, "expire", ""), nil)

	require.Nil(t, result.Error)
	resp := result.Data.(model.ReconcileResponse)
	assert.Equal(t, entity.PaymentExpired, resp.PaymentStatus)
	assert.Equal(t, entity.BookingCancelled, resp.BookingStatus)
	assert.Equal(t, entity.BookingCancelled, repo.bookings[booking.ID].Status)
}

func TestReconcile_CaptureFraudStatuses(t *testing.T) {
	booking := pendingBooking()
	repo := newBookingRepoMock(booking)
	uc := newPaymentUseCase(repo)

	result := uc.Reconcile(context.Background(), signedNotification(booking.OrderID, "capture", "challenge"), nil)

	require.Nil(t, result.Error)
	resp := result.Data.(model.ReconcileResponse)
	assert.Equal(t, entity.PaymentPending, resp.PaymentStatus)
	// challenged capture leaves the lifecycle status alone
	assert.Equal(t, entity.BookingPending, resp.BookingStatus)
	assert.Equal(t, entity.BookingPending, repo.bookings[booking.ID].Status)

	result = uc.Reconcile(context.Background(), signedNotification(booking.OrderID, "capture", "accept"), nil)
	require.Nil(t, result.Error)
	assert.Equal(t, entity.PaymentPaid, result.Data.(model.ReconcileResponse).PaymentStatus)
	assert.Equal(t, entity.BookingConfirmed, repo.bookings[booking.ID].Status)
}

func TestReconcile_TamperedSignatureRejectedWithoutMutation(t *testing.T) {
	booking := pendingBooking()
	repo := newBookingRepoMock(booking)
	uc := newPaymentUseCase(repo)

	n := signedNotification(booking.OrderID, "settlement", "")
	// flip one byte of the signature
	tampered := []byte(n.SignatureKey)
	if tampered[0] == 'a' {
		tampered[0] = 'b'
	} else {
		tampered[0] = 'a'
	}
	n.SignatureKey = string(tampered)

	result := uc.Reconcile(context.Background(), n, nil)

	require.NotNil(t, result.Error)
	errObj := result.Error.(httpError.CommonError)
	assert.Equal(t, http.StatusForbidden, errObj.Code)

	assert.Empty(t, repo.applied)
	assert.Equal(t, entity.PaymentPending, repo.bookings[booking.ID].PaymentStatus)
	assert.Equal(t, entity.BookingPending, repo.bookings[booking.ID].Status)
}

func TestReconcile_UnknownOrderRejectedWithoutMutation(t *testing.T) {
	repo := newBookingRepoMock(pendingBooking())
	uc := newPaymentUseCase(repo)

	result := uc.Reconcile(context.Background(), signedNotification("DMT-999-NOPE", "settlement", ""), nil)

	require.NotNil(t, result.Error)
	errObj := result.Error.(httpError.CommonError)
	assert.Equal(t, http.StatusNotFound, errObj.Code)
	assert.Empty(t, repo.applied)
}

func TestReconcile_DuplicateDeliveryIsIdempotent(t *testing.T) {
	booking := pendingBooking()
	repo := newBookingRepoMock(booking)
	uc := newPaymentUseCase(repo)

	n := signedNotification(booking.OrderID, "settlement", "")
	raw := []byte(`{"transaction_status":"settlement"}`)

	first := uc.Reconcile(context.Background(), n, raw)
	require.Nil(t, first.Error)
	afterFirst := *repo.bookings[booking.ID]

	second := uc.Reconcile(context.Background(), n, raw)
	require.Nil(t, second.Error)
	afterSecond := *repo.bookings[booking.ID]

	assert.Equal(t, afterFirst, afterSecond)
	assert.Equal(t, first.Data, second.Data)

	require.Len(t, repo.applied, 2)
	assert.Equal(t, repo.applied[0], repo.applied[1])
}

func TestReconcile_PersistenceFailureSurfacesToGateway(t *testing.T) {
	booking := pendingBooking()
	repo := newBookingRepoMock(booking)
	repo.applyErr = context.DeadlineExceeded
	uc := newPaymentUseCase(repo)

	result := uc.Reconcile(context.Background(), signedNotification(booking.OrderID, "settlement", ""), nil)

	require.NotNil(t, result.Error)
	errObj := result.Error.(httpError.CommonError)
	assert.Equal(t, http.StatusInternalServerError, errObj.Code)
}

func TestReconcile_MissingFieldsRejected(t *testing.T) {
	repo := newBookingRepoMock()
	uc := newPaymentUseCase(repo)

	result := uc.Reconcile(context.Background(), &model.PaymentNotification{OrderID: "x"}, nil)

	require.NotNil(t, result.Error)
	errObj := result.Error.(httpError.CommonError)
	assert.Equal(t, http.StatusBadRequest, errObj.Code)
	assert.Empty(t, repo.applied)
}
