package entity

import "time"

// Booking lifecycle status.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingOngoing   = "ongoing"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

// Payment status as mapped from gateway notifications.
const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentFailed   = "failed"
	PaymentExpired  = "expired"
	PaymentRefunded = "refunded"
)

const (
	DeliverySelfPickup = "self_pickup"
	DeliveryRequested  = "delivery"
)

type Booking struct {
	ID        string `json:"id" db:"id"`
	UserID    string `json:"user_id" db:"user_id"`
	UserEmail string `json:"user_email" db:"user_email"`

	VehicleID   string `json:"vehicle_id" db:"vehicle_id"`
	VehicleName string `json:"vehicle_name" db:"vehicle_name"`
	VehicleType string `json:"vehicle_type" db:"vehicle_type"`

	CustomerName    string `json:"customer_name" db:"customer_name"`
	CustomerPhone   string `json:"customer_phone" db:"customer_phone"`
	CustomerAddress string `json:"customer_address" db:"customer_address"`

	StartDate  time.Time `json:"start_date" db:"start_date"`
	EndDate    time.Time `json:"end_date" db:"end_date"`
	RentalZone string    `json:"rental_zone" db:"rental_zone"`

	// quote, embedded at creation and immutable afterwards
	RentalUnits     int64  `json:"rental_units" db:"rental_units"`
	PriceUnit       string `json:"price_unit" db:"price_unit"`
	UnitPrice       int64  `json:"unit_price" db:"unit_price"`
	RentalPrice     int64  `json:"rental_price" db:"rental_price"`
	DeliveryOption  string `json:"delivery_option" db:"delivery_option"`
	DeliveryCost    int64  `json:"delivery_cost" db:"delivery_cost"`
	DeliveryAddress string `json:"delivery_address" db:"delivery_address"`
	TotalPrice      int64  `json:"total_price" db:"total_price"`

	Status string `json:"status" db:"status"`

	OrderID         string     `json:"order_id" db:"order_id"`
	PaymentStatus   string     `json:"payment_status" db:"payment_status"`
	PaymentMethod   string     `json:"payment_method" db:"payment_method"`
	TransactionID   string     `json:"transaction_id" db:"transaction_id"`
	TransactionTime *time.Time `json:"transaction_time,omitempty" db:"transaction_time"`
	PaymentDetails  []byte     `json:"-" db:"payment_details"` // raw gateway payload, audit only
	SnapToken       string     `json:"snap_token" db:"snap_token"`
	SnapRedirectURL string     `json:"snap_redirect_url" db:"snap_redirect_url"`

	Notes     string    `json:"notes" db:"notes"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// PaymentResult is the single write the reconciler applies to a booking.
// Every field is derived from the notification alone, so replaying the
// same notification overwrites the same values.
type PaymentResult struct {
	OrderID         string
	PaymentStatus   string
	BookingStatus   string
	TransactionID   string
	PaymentMethod   string
	TransactionTime time.Time
	RawPayload      []byte
}
