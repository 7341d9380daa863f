package router

import (
	auth_handler "stall-booking-service/internal/module/auth/handler"
	booking_handler "stall-booking-service/internal/module/booking/handler"
	settings_handler "stall-booking-service/internal/module/settings/handler"
	"stall-booking-service/internal/pkg/http"
	"stall-booking-service/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
)

func Initialize(
	app *fiber.App,
	handlerBooking *booking_handler.BookingHandler,
	handlerAuth *auth_handler.AuthHandler,
	handlerSettings *settings_handler.SettingsHandler,
	handlerHealth *http.HealthHandler,
	m *middleware.Middleware,
) *fiber.App {

	app.Use(middleware.Apm())

	// health check
	app.Get("/health", handlerHealth.Check)

	Api := app.Group("/api")

	v1 := Api.Group("/v1")

	// auth
	auth := v1.Group("/auth")
	auth.Post("/register", handlerAuth.Register)
	auth.Post("/login", handlerAuth.Login)
	auth.Post("/reset-password/request", handlerAuth.RequestPasswordReset)
	auth.Get("/reset-password", handlerAuth.VerifyResetToken)
	auth.Post("/reset-password", handlerAuth.ConfirmPasswordReset)
	auth.Get("/profile", m.ValidateToken, handlerAuth.ShowProfile)
	auth.Put("/profile", m.ValidateToken, handlerAuth.UpdateProfile)

	// catalog & bookings
	v1.Get("/booths", m.ValidateToken, handlerBooking.ShowBooths)
	v1.Post("/booths/hold", m.ValidateToken, handlerBooking.HoldSelection)
	v1.Get("/bookings", m.ValidateToken, handlerBooking.ShowBookings)
	v1.Post("/bookings", m.ValidateToken, handlerBooking.CreateBooking)
	v1.Get("/bookings/:id", m.ValidateToken, handlerBooking.ShowBookingByID)
	v1.Post("/bookings/:id/payment", m.ValidateToken, handlerBooking.SubmitPayment)
	v1.Post("/bookings/:id/cancel", m.ValidateToken, handlerBooking.CancelBooking)
	v1.Post("/payments/slip-check", m.ValidateToken, handlerBooking.CheckSlip)

	// booking calendar
	v1.Get("/settings/open-dates", handlerSettings.ShowOpenDates)

	// admin routes
	admin := Api.Group("/admin", m.ValidateToken, m.RequireAdmin)
	admin.Get("/bookings", handlerBooking.ShowAllBookings)
	admin.Put("/bookings/:id/status", handlerBooking.UpdateBookingStatus)
	admin.Delete("/bookings/:id", handlerBooking.DeleteBooking)
	admin.Post("/settings/open-dates", handlerSettings.ReplaceOpenDates)

	// service-to-service routes
	private := Api.Group("/private")
	private.Get("/bookings/pending/count", handlerBooking.CountPendingBookings)

	return app

}
