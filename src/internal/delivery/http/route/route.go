package route

import (
	"rental-service/src/internal/delivery/http"
	"rental-service/src/internal/delivery/http/middleware"
	"rental-service/src/pkg/log"

	"github.com/gofiber/fiber/v2"
)

type RouteConfig struct {
	App               *fiber.App
	Log               log.Log
	BookingController *http.BookingController
	PaymentController *http.PaymentController
	VehicleController *http.VehicleController
	UserController    *http.UserController
	AuthMiddleware    fiber.Handler
}

func (c *RouteConfig) Setup() {
	c.App.Use(middleware.NewLogger(c.Log))
	c.App.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.SendString("OK")
	})

	c.SetupPublicRoute()
	c.SetupAuthRoute()
	c.SetupAdminRoute()
}

// SetupPublicRoute mounts the catalog and the payment gateway webhook,
// neither of which carries a user token.
func (c *RouteConfig) SetupPublicRoute() {
	c.App.Get("/vehicles/v1", c.VehicleController.List)
	c.App.Get("/vehicles/v1/:id", c.VehicleController.Detail)
	c.App.Post("/payments/v1/midtrans/notification", c.PaymentController.Notification)
}

func (c *RouteConfig) SetupAuthRoute() {
	auth := c.App.Group("", c.AuthMiddleware)
	auth.Get("/users/v1/profile", c.UserController.GetProfile)
	auth.Post("/bookings/v1", c.BookingController.Create)
	auth.Get("/bookings/v1", c.BookingController.ListMine)
	auth.Get("/bookings/v1/:id", c.BookingController.Detail)
	auth.Post("/bookings/v1/:id/payment", c.BookingController.RegeneratePayment)
}

func (c *RouteConfig) SetupAdminRoute() {
	admin := c.App.Group("/admin", c.AuthMiddleware, middleware.NewAdminGate())
	admin.Get("/bookings/v1", c.BookingController.AdminList)
	admin.Patch("/bookings/v1/:id", c.BookingController.AdminUpdateStatus)
	admin.Post("/vehicles/v1", c.VehicleController.AdminCreate)
	admin.Put("/vehicles/v1/:id", c.VehicleController.AdminUpdate)
	admin.Delete("/vehicles/v1/:id", c.VehicleController.AdminDelete)
}
