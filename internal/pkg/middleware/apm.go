package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.elastic.co/apm"
)

// Apm records one APM transaction per HTTP request.
func Apm() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		name := fmt.Sprintf("%s %s", ctx.Method(), ctx.Route().Path)
		tx := apm.DefaultTracer.StartTransaction(name, "request")
		defer tx.End()

		ctx.SetUserContext(apm.ContextWithTransaction(ctx.UserContext(), tx))

		err := ctx.Next()

		tx.Context.SetHTTPStatusCode(ctx.Response().StatusCode())
		if err != nil {
			apm.CaptureError(ctx.UserContext(), err).Send()
		}

		return err
	}
}
