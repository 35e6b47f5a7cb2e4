package middleware

import (
	"fmt"
	"time"

	"rental-service/src/pkg/log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// NewLogger tags every request with an id and logs method, path, status
// and latency after the handler chain runs.
func NewLogger(logger log.Log) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		requestID := ctx.Get(fiber.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx.Set(fiber.HeaderXRequestID, requestID)

		start := time.Now()
		err := ctx.Next()

		meta := fmt.Sprintf("status=%d latency=%s", ctx.Response().StatusCode(), time.Since(start))
		logger.Info("http", ctx.Method()+" "+ctx.Path(), requestID, meta)
		return err
	}
}
