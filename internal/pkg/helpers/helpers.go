package helpers

import (
	"stall-booking-service/internal/pkg/errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func RespSuccess(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, message string) error {
	return ctx.Status(fiber.StatusOK).JSON(Response{
		Success: true,
		Data:    data,
		Message: message,
	})
}

func RespCreated(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, message string) error {
	return ctx.Status(fiber.StatusCreated).JSON(Response{
		Success: true,
		Data:    data,
		Message: message,
	})
}

func RespError(ctx *fiber.Ctx, log *otelzap.Logger, err error) error {
	return ctx.Status(errors.GetStatus(err)).JSON(Response{
		Success: false,
		Error:   err.Error(),
	})
}

// DurationCalculation returns the remaining duration until the given time.
func DurationCalculation(until time.Time) time.Duration {
	return time.Until(until)
}
