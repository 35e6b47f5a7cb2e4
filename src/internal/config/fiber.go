package config

import (
	"rental-service/src/pkg/utils"

	httpError "rental-service/src/pkg/http-error"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
)

func NewFiber(config *viper.Viper) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      config.GetString("app.name"),
		Prefork:      config.GetBool("web.prefork"),
		ErrorHandler: newErrorHandler(),
	})

	return app
}

func newErrorHandler() fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		if fiberErr, ok := err.(*fiber.Error); ok {
			errObj := httpError.CommonError{Code: fiberErr.Code, Message: fiberErr.Message}
			return utils.ResponseError(errObj, ctx)
		}
		return utils.ResponseError(err, ctx)
	}
}
