package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"rental-service/src/internal/usecase"
	"rental-service/src/pkg/log"

	"github.com/hibiken/asynq"
)

type BookingWorker struct {
	Log     log.Log
	UseCase *usecase.BookingUseCase
}

func NewBookingWorker(useCase *usecase.BookingUseCase, logger log.Log) *BookingWorker {
	return &BookingWorker{
		Log:     logger,
		UseCase: useCase,
	}
}

func (w *BookingWorker) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(usecase.TypeBookingCheckExpiry, w.HandleCheckExpiry)
}

func (w *BookingWorker) HandleCheckExpiry(ctx context.Context, task *asynq.Task) error {
	var payload struct {
		BookingID string `json:"booking_id"`
	}
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		w.Log.Error("booking-worker", fmt.Sprintf("malformed task payload: %v", err), "HandleCheckExpiry", string(task.Payload()))
		return nil
	}

	return w.UseCase.CheckExpiry(ctx, payload.BookingID)
}
