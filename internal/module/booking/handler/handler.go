package handler

import (
	"context"
	"fmt"

	"stall-booking-service/internal/module/booking/models/request"
	"stall-booking-service/internal/module/booking/usecases"
	"stall-booking-service/internal/pkg/errors"
	"stall-booking-service/internal/pkg/helpers"
	"stall-booking-service/internal/pkg/mailer"
	"stall-booking-service/internal/pkg/middleware"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type BookingHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
	Publish   message.Publisher
	Mailer    mailer.Mailer
}

func (h *BookingHandler) ShowBooths(ctx *fiber.Ctx) error {
	day := ctx.Query("day")
	date := ctx.Query("date")
	userID := ctx.Locals("user_id").(string)

	resp, err := h.Usecase.ShowBoothCatalog(ctx.UserContext(), day, date, userID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error show booths: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success show booths")
}

func (h *BookingHandler) HoldSelection(ctx *fiber.Ctx) error {
	var req request.HoldSelection
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	userID := ctx.Locals("user_id").(string)

	if err := h.Usecase.HoldSelection(ctx.UserContext(), &req, userID); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error hold selection: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success hold selection")
}

func (h *BookingHandler) CreateBooking(ctx *fiber.Ctx) error {
	var req request.CreateBooking
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	userID := ctx.Locals("user_id").(string)
	emailUser := ctx.Locals("email_user").(string)

	resp, err := h.Usecase.CreateBooking(ctx.UserContext(), &req, userID, emailUser)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "success create booking, awaiting review")
}

func (h *BookingHandler) ShowBookings(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(string)

	resp, err := h.Usecase.ShowBookings(ctx.UserContext(), userID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error show bookings: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success show bookings")
}

func (h *BookingHandler) ShowBookingByID(ctx *fiber.Ctx) error {
	bookingID := ctx.Params("id")
	userID := ctx.Locals("user_id").(string)
	role, _ := ctx.Locals("role").(string)

	resp, err := h.Usecase.ShowBookingByID(ctx.UserContext(), bookingID, userID, role == middleware.RoleAdmin)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error show booking by id: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success show booking")
}

func (h *BookingHandler) SubmitPayment(ctx *fiber.Ctx) error {
	var req request.SubmitPayment
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	bookingID := ctx.Params("id")
	userID := ctx.Locals("user_id").(string)

	resp, err := h.Usecase.SubmitPayment(ctx.UserContext(), bookingID, &req, userID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error submit payment: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success submit payment, awaiting review")
}

func (h *BookingHandler) CancelBooking(ctx *fiber.Ctx) error {
	bookingID := ctx.Params("id")
	userID := ctx.Locals("user_id").(string)

	if err := h.Usecase.CancelBooking(ctx.UserContext(), bookingID, userID); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error cancel booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success cancel booking")
}

func (h *BookingHandler) CheckSlip(ctx *fiber.Ctx) error {
	var req request.SlipCheck
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	resp := h.Usecase.CheckSlipAmount(ctx.UserContext(), &req)

	return helpers.RespSuccess(ctx, h.Log, resp, "success check slip")
}

func (h *BookingHandler) ShowAllBookings(ctx *fiber.Ctx) error {
	status := ctx.Query("status")

	resp, err := h.Usecase.ShowAllBookings(ctx.UserContext(), status)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error show all bookings: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success show all bookings")
}

func (h *BookingHandler) UpdateBookingStatus(ctx *fiber.Ctx) error {
	var req request.UpdateBookingStatus
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	bookingID := ctx.Params("id")

	resp, err := h.Usecase.UpdateBookingStatus(ctx.UserContext(), bookingID, req.Status)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error update booking status: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success update booking status")
}

func (h *BookingHandler) DeleteBooking(ctx *fiber.Ctx) error {
	bookingID := ctx.Params("id")

	if err := h.Usecase.DeleteBooking(ctx.UserContext(), bookingID); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error delete booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success delete booking")
}

func (h *BookingHandler) CountPendingBookings(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.CountPendingBookings(ctx.UserContext())
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error count pending bookings: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success count pending bookings")
}

// ConsumeBookingEvents notifies the shop owner by email about booking
// lifecycle changes. Undeliverable messages go to the poison queue.
func (h *BookingHandler) ConsumeBookingEvents(msg *message.Message) error {
	msg.Ack()

	var event request.BookingEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error unmarshal message: %v", err))
		h.publishPoisoned(msg, err)
		return err
	}

	if err := h.Validator.Struct(event); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error validate message: %v", err))
		h.publishPoisoned(msg, err)
		return err
	}

	if event.Email == "" {
		return nil
	}

	subject, body := notificationContent(event)
	if err := h.Mailer.Send(msg.Context(), event.Email, subject, body); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error send notification email: %v", err))
		h.publishPoisoned(msg, err)
		return err
	}

	return nil
}

func (h *BookingHandler) publishPoisoned(msg *message.Message, cause error) {
	reqPoisoned := request.PoisonedQueue{
		TopicTarget: usecases.TopicBookingEvents,
		ErrorMsg:    cause.Error(),
		Payload:     msg.Payload,
	}

	jsonPayload, _ := json.Marshal(reqPoisoned)
	if err := h.Publish.Publish("poisoned_queue", message.NewMessage(watermill.NewUUID(), jsonPayload)); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error publish to poison queue: %v", err))
	}
}

func notificationContent(event request.BookingEvent) (string, string) {
	switch event.Type {
	case "booking_created":
		return "Booking received",
			fmt.Sprintf("Your booking %s for %s has been received and is awaiting review. Total: %.2f THB.", event.BookingID, event.BookingDate, event.TotalPrice)
	case "booking_approved":
		return "Booking approved",
			fmt.Sprintf("Your booking %s for %s has been approved. See you at the market!", event.BookingID, event.BookingDate)
	case "booking_rejected":
		return "Booking rejected",
			fmt.Sprintf("Your booking %s for %s was rejected. Your stalls have been released.", event.BookingID, event.BookingDate)
	case "booking_expired":
		return "Booking expired",
			fmt.Sprintf("Your booking %s for %s expired because payment was not submitted in time.", event.BookingID, event.BookingDate)
	default:
		return "Booking update",
			fmt.Sprintf("Your booking %s is now %s.", event.BookingID, event.Status)
	}
}

// SetPaymentExpired is the asynq task handler for elapsed payment windows.
func (h *BookingHandler) SetPaymentExpired(ctx context.Context, t *asynq.Task) error {
	var req request.PaymentExpiration
	if err := json.Unmarshal(t.Payload(), &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error unmarshal payload: %v", err))
		return err
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error validate payload: %v", err))
		return err
	}

	if err := h.Usecase.SetPaymentExpired(ctx, &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error set payment expired: %v", err))
		return err
	}

	return nil
}
