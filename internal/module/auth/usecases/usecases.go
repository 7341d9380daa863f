package usecases

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"stall-booking-service/config"
	"stall-booking-service/internal/module/auth/models/entity"
	"stall-booking-service/internal/module/auth/models/request"
	"stall-booking-service/internal/module/auth/models/response"
	"stall-booking-service/internal/module/auth/repositories"
	"stall-booking-service/internal/pkg/errors"
	"stall-booking-service/internal/pkg/log"
	"stall-booking-service/internal/pkg/mailer"
	"stall-booking-service/internal/pkg/middleware"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type usecase struct {
	repo     repositories.Repositories
	log      log.Logger
	mail     mailer.Mailer
	cfgJwt   *config.JwtConfig
	cfgApp   *config.AppConfig
	cfgAdmin *config.AdminConfig
}

type Usecase interface {
	Register(ctx context.Context, payload *request.Register) (response.Registered, error)
	Login(ctx context.Context, payload *request.Login) (response.Token, error)
	RequestPasswordReset(ctx context.Context, payload *request.ResetPasswordRequest) error
	VerifyResetToken(ctx context.Context, token string) error
	ConfirmPasswordReset(ctx context.Context, payload *request.ResetPasswordConfirm) error
	ShowProfile(ctx context.Context, userID string) (response.Profile, error)
	UpdateProfile(ctx context.Context, userID string, payload *request.UpdateProfile) (response.Profile, error)
	EnsureAdminUser(ctx context.Context) error
}

func New(
	repo repositories.Repositories,
	logger log.Logger,
	mail mailer.Mailer,
	cfgJwt *config.JwtConfig,
	cfgApp *config.AppConfig,
	cfgAdmin *config.AdminConfig,
) Usecase {
	return &usecase{
		repo:     repo,
		log:      logger,
		mail:     mail,
		cfgJwt:   cfgJwt,
		cfgApp:   cfgApp,
		cfgAdmin: cfgAdmin,
	}
}

func (u *usecase) Register(ctx context.Context, payload *request.Register) (response.Registered, error) {
	if payload.Password != payload.ConfirmPassword {
		return response.Registered{}, errors.BadRequest("passwords do not match")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return response.Registered{}, errors.InternalServerError("error hash password")
	}

	user := entity.User{
		ID:              uuid.New(),
		Name:            payload.Name,
		ShopName:        payload.ShopName,
		ShopDescription: payload.ShopDescription,
		Phone:           payload.Phone,
		Email:           payload.Email,
		PasswordHash:    string(hash),
		Role:            entity.RoleUser,
	}

	if err := u.repo.CreateUser(ctx, &user); err != nil {
		return response.Registered{}, err
	}

	token, err := u.issueToken(user)
	if err != nil {
		return response.Registered{}, err
	}

	return response.Registered{User: toProfile(user), Token: token}, nil
}

func (u *usecase) Login(ctx context.Context, payload *request.Login) (response.Token, error) {
	user, err := u.repo.FindUserByEmail(ctx, payload.Email)
	if err != nil {
		return response.Token{}, errors.UnauthorizedError("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(payload.Password)); err != nil {
		return response.Token{}, errors.UnauthorizedError("invalid email or password")
	}

	return u.issueToken(user)
}

func (u *usecase) issueToken(user entity.User) (response.Token, error) {
	token, err := middleware.SignToken(u.cfgJwt, user.ID.String(), user.Email, user.Role)
	if err != nil {
		return response.Token{}, errors.InternalServerError("error sign token")
	}

	return response.Token{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(u.cfgJwt.ExpiryHours) * 3600,
	}, nil
}

// RequestPasswordReset always reports success so the endpoint cannot be
// used to probe which emails are registered.
func (u *usecase) RequestPasswordReset(ctx context.Context, payload *request.ResetPasswordRequest) error {
	user, err := u.repo.FindUserByEmail(ctx, payload.Email)
	if err != nil {
		return nil
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return errors.InternalServerError("error generate reset token")
	}
	token := hex.EncodeToString(raw)

	ttl := time.Duration(u.cfgApp.ResetTokenTTLMinutes) * time.Minute
	if err := u.repo.StoreResetToken(ctx, token, user.ID.String(), ttl); err != nil {
		return err
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", u.cfgApp.BaseURL, token)
	body := fmt.Sprintf("A password reset was requested for your account.\n\nReset link: %s\n\nThe link expires in %d minutes. If you did not request this, ignore this email.", link, u.cfgApp.ResetTokenTTLMinutes)
	if err := u.mail.Send(ctx, user.Email, "Password reset", body); err != nil {
		u.log.Error(ctx, "error send reset email", err)
	}

	return nil
}

func (u *usecase) VerifyResetToken(ctx context.Context, token string) error {
	if token == "" {
		return errors.BadRequest("token is required")
	}
	_, err := u.repo.PeekResetToken(ctx, token)
	return err
}

func (u *usecase) ConfirmPasswordReset(ctx context.Context, payload *request.ResetPasswordConfirm) error {
	if payload.Password != payload.ConfirmPassword {
		return errors.BadRequest("passwords do not match")
	}

	userID, err := u.repo.ConsumeResetToken(ctx, payload.Token)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return errors.InternalServerError("error hash password")
	}

	return u.repo.UpdateUserPassword(ctx, userID, string(hash))
}

func (u *usecase) ShowProfile(ctx context.Context, userID string) (response.Profile, error) {
	user, err := u.repo.FindUserByID(ctx, userID)
	if err != nil {
		return response.Profile{}, err
	}
	return toProfile(user), nil
}

func (u *usecase) UpdateProfile(ctx context.Context, userID string, payload *request.UpdateProfile) (response.Profile, error) {
	user, err := u.repo.FindUserByID(ctx, userID)
	if err != nil {
		return response.Profile{}, err
	}

	user.Name = payload.Name
	user.ShopName = payload.ShopName
	user.ShopDescription = payload.ShopDescription
	user.Phone = payload.Phone

	if err := u.repo.UpdateUserProfile(ctx, &user); err != nil {
		return response.Profile{}, err
	}

	return toProfile(user), nil
}

// EnsureAdminUser seeds the reviewer account from configuration on
// startup. A no-op when the account exists or no admin is configured.
func (u *usecase) EnsureAdminUser(ctx context.Context) error {
	if u.cfgAdmin.Email == "" || u.cfgAdmin.Password == "" {
		return nil
	}

	if _, err := u.repo.FindUserByEmail(ctx, u.cfgAdmin.Email); err == nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(u.cfgAdmin.Password), bcrypt.DefaultCost)
	if err != nil {
		return errors.InternalServerError("error hash admin password")
	}

	admin := entity.User{
		ID:           uuid.New(),
		Name:         "Market Admin",
		Email:        u.cfgAdmin.Email,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
	}

	return u.repo.CreateUser(ctx, &admin)
}

func toProfile(user entity.User) response.Profile {
	return response.Profile{
		ID:              user.ID.String(),
		Name:            user.Name,
		Email:           user.Email,
		ShopName:        user.ShopName,
		ShopDescription: user.ShopDescription,
		Phone:           user.Phone,
		Role:            user.Role,
		CreatedAt:       user.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
