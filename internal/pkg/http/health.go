package http

import (
	"stall-booking-service/config"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

// HealthHandler reports connectivity diagnostics for the service's backends.
type HealthHandler struct {
	DB    *sqlx.DB
	Redis *redis.Client
	Cfg   *config.AppConfig
}

func (h *HealthHandler) Check(ctx *fiber.Ctx) error {
	dbOK := h.DB != nil && h.DB.PingContext(ctx.UserContext()) == nil
	redisOK := h.Redis != nil && h.Redis.Ping(ctx.UserContext()).Err() == nil

	status := fiber.StatusOK
	if !dbOK || !redisOK {
		status = fiber.StatusServiceUnavailable
	}

	return ctx.Status(status).JSON(fiber.Map{
		"environment": h.Cfg.Environment,
		"database":    dbOK,
		"redis":       redisOK,
	})
}
