package model

import (
	"time"

	"rental-service/src/internal/pricing"
)

type CreateBookingRequest struct {
	UserID    string `json:"-" validate:"required,max=100"`
	UserEmail string `json:"-"`

	VehicleID       string    `json:"vehicleId" validate:"required,max=100"`
	CustomerName    string    `json:"customerName" validate:"required,max=100"`
	CustomerPhone   string    `json:"customerPhone" validate:"required,max=30"`
	CustomerAddress string    `json:"customerAddress" validate:"max=255"`
	StartDate       time.Time `json:"startDate" validate:"required"`
	EndDate         time.Time `json:"endDate" validate:"required"`
	RentalZone      string    `json:"rentalZone" validate:"omitempty,oneof=inCity outCity"`
	DeliveryOption  string    `json:"deliveryOption" validate:"omitempty,oneof=self_pickup delivery"`
	DeliveryAddress string    `json:"deliveryAddress" validate:"max=255"`
	Notes           string    `json:"notes" validate:"max=500"`
}

type BookingDetailRequest struct {
	UserID    string `json:"-" validate:"required,max=100"`
	IsAdmin   bool   `json:"-"`
	BookingID string `json:"-" validate:"required,max=100"`
}

type ListBookingRequest struct {
	UserID string `json:"-" validate:"required,max=100"`
}

type RegeneratePaymentRequest struct {
	UserID    string `json:"-" validate:"required,max=100"`
	IsAdmin   bool   `json:"-"`
	BookingID string `json:"-" validate:"required,max=100"`
}

type AdminUpdateBookingRequest struct {
	BookingID     string `json:"-" validate:"required,max=100"`
	Status        string `json:"status" validate:"omitempty,oneof=pending confirmed ongoing completed cancelled"`
	PaymentStatus string `json:"paymentStatus" validate:"omitempty,oneof=pending paid failed expired refunded"`
}

type PaymentInfo struct {
	Token       string `json:"token"`
	RedirectURL string `json:"redirect_url"`
}

type CreateBookingResponse struct {
	Booking interface{}   `json:"booking"`
	Quote   pricing.Quote `json:"quote"`
	Payment *PaymentInfo  `json:"payment,omitempty"`
}
