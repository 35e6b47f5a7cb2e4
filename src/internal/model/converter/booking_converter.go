package converter

import (
	"rental-service/src/internal/entity"
	"rental-service/src/internal/model"

	"github.com/google/uuid"
)

func BookingToCreatedEvent(booking *entity.Booking) *model.BookingCreatedEvent {
	return &model.BookingCreatedEvent{
		EventID:     uuid.NewString(),
		BookingID:   booking.ID,
		OrderID:     booking.OrderID,
		UserID:      booking.UserID,
		VehicleID:   booking.VehicleID,
		VehicleName: booking.VehicleName,
		TotalPrice:  booking.TotalPrice,
		Status:      booking.Status,
	}
}

func BookingToPaymentStatusEvent(booking *entity.Booking, result *entity.PaymentResult) *model.PaymentStatusEvent {
	return &model.PaymentStatusEvent{
		EventID:       uuid.NewString(),
		BookingID:     booking.ID,
		OrderID:       result.OrderID,
		PaymentStatus: result.PaymentStatus,
		BookingStatus: result.BookingStatus,
		TransactionID: result.TransactionID,
		PaymentMethod: result.PaymentMethod,
	}
}
