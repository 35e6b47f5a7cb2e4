package model

type Event interface {
	GetId() string
}

type BookingCreatedEvent struct {
	EventID     string `json:"event_id"`
	BookingID   string `json:"booking_id"`
	OrderID     string `json:"order_id"`
	UserID      string `json:"user_id"`
	VehicleID   string `json:"vehicle_id"`
	VehicleName string `json:"vehicle_name"`
	TotalPrice  int64  `json:"total_price"`
	Status      string `json:"status"`
}

func (e *BookingCreatedEvent) GetId() string {
	return e.EventID
}

type PaymentStatusEvent struct {
	EventID       string `json:"event_id"`
	BookingID     string `json:"booking_id"`
	OrderID       string `json:"order_id"`
	PaymentStatus string `json:"payment_status"`
	BookingStatus string `json:"booking_status"`
	TransactionID string `json:"transaction_id,omitempty"`
	PaymentMethod string `json:"payment_method,omitempty"`
}

func (e *PaymentStatusEvent) GetId() string {
	return e.EventID
}
