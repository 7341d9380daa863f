package handler_test

import (
	"testing"

	"stall-booking-service/internal/module/auth/handler"
	"stall-booking-service/internal/module/auth/mocks"
	"stall-booking-service/internal/module/auth/models/request"
	"stall-booking-service/internal/module/auth/models/response"
	"stall-booking-service/internal/pkg/errors"
	log_internal "stall-booking-service/internal/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/valyala/fasthttp"
)

var (
	h             *handler.AuthHandler
	ucm           *mocks.Usecase
	app           *fiber.App
	validatorTest *validator.Validate
)

func setup() {
	ucm = &mocks.Usecase{}
	logMock := log_internal.SetupLogger()
	validatorTest = validator.New()
	h = &handler.AuthHandler{
		Log:       logMock,
		Validator: validatorTest,
		Usecase:   ucm,
	}
	app = fiber.New()
}

func teardown() {
	ucm = nil
	validatorTest = nil
	h = nil
	app = nil
}

func TestRegister(t *testing.T) {
	setup()
	defer teardown()
	t.Run("success", func(t *testing.T) {
		payload := request.Register{
			Name:            "somchai",
			Email:           "somchai@test.com",
			Password:        "secret1",
			ConfirmPassword: "secret1",
		}

		jsonData, _ := json.Marshal(payload)

		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().SetRequestURI("/api/v1/auth/register")
		ctx.Request().Header.SetContentType("application/json")
		ctx.Request().Header.SetMethod("POST")
		ctx.Request().SetBody(jsonData)

		ucm.On("Register", ctx.Context(), &payload).
			Return(response.Registered{
				User:  response.Profile{ID: "u-1", Email: "somchai@test.com", Role: "user"},
				Token: response.Token{AccessToken: "token", TokenType: "Bearer"},
			}, nil)

		err := h.Register(ctx)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, ctx.Response().StatusCode())
	})

	t.Run("short password rejected before usecase", func(t *testing.T) {
		payload := request.Register{
			Name:            "somchai",
			Email:           "somchai@test.com",
			Password:        "abc",
			ConfirmPassword: "abc",
		}

		jsonData, _ := json.Marshal(payload)

		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().SetRequestURI("/api/v1/auth/register")
		ctx.Request().Header.SetContentType("application/json")
		ctx.Request().Header.SetMethod("POST")
		ctx.Request().SetBody(jsonData)

		err := h.Register(ctx)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, ctx.Response().StatusCode())
		ucm.AssertNotCalled(t, "Register", ctx.Context(), &payload)
	})
}

func TestLogin(t *testing.T) {
	setup()
	defer teardown()
	t.Run("success", func(t *testing.T) {
		payload := request.Login{
			Email:    "somchai@test.com",
			Password: "secret1",
		}

		jsonData, _ := json.Marshal(payload)

		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().SetRequestURI("/api/v1/auth/login")
		ctx.Request().Header.SetContentType("application/json")
		ctx.Request().Header.SetMethod("POST")
		ctx.Request().SetBody(jsonData)

		ucm.On("Login", ctx.Context(), &payload).
			Return(response.Token{AccessToken: "token", TokenType: "Bearer"}, nil)

		err := h.Login(ctx)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, ctx.Response().StatusCode())
	})
}

func TestShowProfile(t *testing.T) {
	setup()
	defer teardown()
	t.Run("success", func(t *testing.T) {
		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().SetRequestURI("/api/v1/auth/profile")
		ctx.Request().Header.SetMethod("GET")
		ctx.Locals("user_id", "00000000-0000-0000-0000-000000000001")

		ucm.On("ShowProfile", ctx.Context(), "00000000-0000-0000-0000-000000000001").
			Return(response.Profile{ID: "00000000-0000-0000-0000-000000000001"}, nil)

		err := h.ShowProfile(ctx)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, ctx.Response().StatusCode())
	})
}

func TestVerifyResetToken(t *testing.T) {
	setup()
	defer teardown()
	t.Run("success", func(t *testing.T) {
		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().SetRequestURI("/api/v1/auth/reset-password?token=tok-1")
		ctx.Request().Header.SetMethod("GET")

		ucm.On("VerifyResetToken", ctx.Context(), "tok-1").Return(nil)

		err := h.VerifyResetToken(ctx)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, ctx.Response().StatusCode())
	})

	t.Run("expired token returns bad request", func(t *testing.T) {
		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().SetRequestURI("/api/v1/auth/reset-password?token=tok-2")
		ctx.Request().Header.SetMethod("GET")

		ucm.On("VerifyResetToken", ctx.Context(), "tok-2").
			Return(errors.BadRequest("reset token is invalid or expired"))

		err := h.VerifyResetToken(ctx)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, ctx.Response().StatusCode())
	})
}
