package repository

import (
	"context"
	"database/sql"
	"errors"

	"rental-service/src/internal/entity"
	"rental-service/src/pkg/databases/mysql"
)

var ErrNotFound = errors.New("record not found")

type BookingRepository struct {
	DB mysql.DBInterface
}

func NewBookingRepository(db mysql.DBInterface) *BookingRepository {
	return &BookingRepository{
		DB: db,
	}
}

const bookingColumns = `
	id, user_id, user_email,
	vehicle_id, vehicle_name, vehicle_type,
	customer_name, customer_phone, customer_address,
	start_date, end_date, rental_zone,
	rental_units, price_unit, unit_price, rental_price,
	delivery_option, delivery_cost, delivery_address, total_price,
	status, order_id, payment_status, payment_method,
	transaction_id, transaction_time, payment_details,
	snap_token, snap_redirect_url, notes, created_at, updated_at`

func (r *BookingRepository) Insert(ctx context.Context, booking *entity.Booking) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		INSERT INTO bookings (
			id, user_id, user_email,
			vehicle_id, vehicle_name, vehicle_type,
			customer_name, customer_phone, customer_address,
			start_date, end_date, rental_zone,
			rental_units, price_unit, unit_price, rental_price,
			delivery_option, delivery_cost, delivery_address, total_price,
			status, order_id, payment_status, notes
		) VALUES (
			:id, :user_id, :user_email,
			:vehicle_id, :vehicle_name, :vehicle_type,
			:customer_name, :customer_phone, :customer_address,
			:start_date, :end_date, :rental_zone,
			:rental_units, :price_unit, :unit_price, :rental_price,
			:delivery_option, :delivery_cost, :delivery_address, :total_price,
			:status, :order_id, :payment_status, :notes
		)`

	_, err = db.NamedExecContext(ctx, query, booking)
	return err
}

func (r *BookingRepository) FindByID(ctx context.Context, id string) (*entity.Booking, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var booking entity.Booking
	err = db.GetContext(ctx, &booking, `SELECT`+bookingColumns+` FROM bookings WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepository) FindByOrderID(ctx context.Context, orderID string) (*entity.Booking, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var booking entity.Booking
	err = db.GetContext(ctx, &booking, `SELECT`+bookingColumns+` FROM bookings WHERE order_id = ?`, orderID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]entity.Booking, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var bookings []entity.Booking
	err = db.SelectContext(ctx, &bookings,
		`SELECT`+bookingColumns+` FROM bookings WHERE user_id = ? ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingRepository) List(ctx context.Context) ([]entity.Booking, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var bookings []entity.Booking
	err = db.SelectContext(ctx, &bookings, `SELECT`+bookingColumns+` FROM bookings ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// UpdatePaymentToken stores a fresh order id and snap token; the quote
// columns are deliberately untouched.
func (r *BookingRepository) UpdatePaymentToken(ctx context.Context, id, orderID, token, redirectURL string) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		UPDATE bookings
		SET order_id = ?, snap_token = ?, snap_redirect_url = ?, updated_at = NOW()
		WHERE id = ?`,
		orderID, token, redirectURL, id)
	return err
}

// ApplyPaymentResult writes the reconciler's outcome in one statement.
// All values derive from the notification, so a replay overwrites the
// row with identical data. An empty BookingStatus leaves status as is.
func (r *BookingRepository) ApplyPaymentResult(ctx context.Context, id string, result *entity.PaymentResult) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		UPDATE bookings
		SET payment_status = ?,
			status = COALESCE(NULLIF(?, ''), status),
			transaction_id = ?,
			payment_method = ?,
			transaction_time = ?,
			payment_details = ?,
			updated_at = NOW()
		WHERE id = ?`,
		result.PaymentStatus,
		result.BookingStatus,
		result.TransactionID,
		result.PaymentMethod,
		result.TransactionTime,
		result.RawPayload,
		id)
	return err
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id, status, paymentStatus string) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		UPDATE bookings
		SET status = COALESCE(NULLIF(?, ''), status),
			payment_status = COALESCE(NULLIF(?, ''), payment_status),
			updated_at = NOW()
		WHERE id = ?`,
		status, paymentStatus, id)
	return err
}

// ExpireIfPending cancels a booking whose payment never arrived. The
// WHERE clause keeps it a no-op once the gateway has settled the order.
func (r *BookingRepository) ExpireIfPending(ctx context.Context, id string) (bool, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return false, err
	}

	res, err := db.ExecContext(ctx, `
		UPDATE bookings
		SET payment_status = ?, status = ?, updated_at = NOW()
		WHERE id = ? AND payment_status = ? AND status = ?`,
		entity.PaymentExpired, entity.BookingCancelled,
		id, entity.PaymentPending, entity.BookingPending)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
