package middleware

import (
	"fmt"
	"stall-booking-service/config"
	"stall-booking-service/internal/pkg/errors"
	"stall-booking-service/internal/pkg/helpers"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

const RoleAdmin = "admin"

// Claims is the JWT payload issued at login and checked on every
// authenticated route.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type Middleware struct {
	Log *otelzap.Logger
	Cfg *config.JwtConfig
}

func (m *Middleware) ValidateToken(ctx *fiber.Ctx) error {
	auth := ctx.Get("Authorization")
	if auth == "" {
		m.Log.Ctx(ctx.UserContext()).Error("error get token from header")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("missing authorization header"))
	}

	if !strings.HasPrefix(auth, "Bearer ") {
		m.Log.Ctx(ctx.UserContext()).Error("error invalid token format")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("invalid token format"))
	}

	claims, err := m.ParseToken(auth[7:])
	if err != nil {
		m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate token: %v", err))
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("invalid token"))
	}

	ctx.Locals("user_id", claims.UserID)
	ctx.Locals("email_user", claims.Email)
	ctx.Locals("role", claims.Role)

	return ctx.Next()
}

// RequireAdmin must run after ValidateToken. Admin-only mutations are
// rejected when the token carries a non-admin role claim.
func (m *Middleware) RequireAdmin(ctx *fiber.Ctx) error {
	role, _ := ctx.Locals("role").(string)
	if role != RoleAdmin {
		m.Log.Ctx(ctx.UserContext()).Error("error require admin role")
		return helpers.RespError(ctx, m.Log, errors.ForbiddenError("admin role required"))
	}
	return ctx.Next()
}

func (m *Middleware) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(m.Cfg.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("unauthorized: %w", err)
	}
	return claims, nil
}

// SignToken issues an access token for the given identity.
func SignToken(cfg *config.JwtConfig, userID, email, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(cfg.ExpiryHours) * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}
