package messaging

import (
	"rental-service/src/internal/model"
	kafka "rental-service/src/pkg/kafka/confluent"
	"rental-service/src/pkg/log"
)

type BookingProducer struct {
	CreatedProducer       Producer[*model.BookingCreatedEvent]
	PaymentStatusProducer Producer[*model.PaymentStatusEvent]
}

func NewBookingProducer(producer kafka.Producer, log log.Log) *BookingProducer {
	return &BookingProducer{
		CreatedProducer: Producer[*model.BookingCreatedEvent]{
			Producer: producer,
			Topic:    "booking-created",
			Log:      log,
		},
		PaymentStatusProducer: Producer[*model.PaymentStatusEvent]{
			Producer: producer,
			Topic:    "payment-status-changed",
			Log:      log,
		},
	}
}

func (p *BookingProducer) SendBookingCreated(event *model.BookingCreatedEvent) error {
	return p.CreatedProducer.Send(event)
}

func (p *BookingProducer) SendPaymentStatusChanged(event *model.PaymentStatusEvent) error {
	return p.PaymentStatusProducer.Send(event)
}
