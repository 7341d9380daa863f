package usecases

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"stall-booking-service/config"
	"stall-booking-service/internal/module/booking/models/entity"
	"stall-booking-service/internal/module/booking/models/request"
	"stall-booking-service/internal/module/booking/models/response"
	"stall-booking-service/internal/module/booking/repositories"
	"stall-booking-service/internal/pkg/errors"
	"stall-booking-service/internal/pkg/helpers"
	"stall-booking-service/internal/pkg/log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

const (
	TopicBookingEvents = "booking_events"

	dateLayout = "2006-01-02"
)

type usecase struct {
	repo    repositories.Repositories
	log     log.Logger
	publish message.Publisher
	cfgApp  *config.AppConfig
}

type Usecase interface {
	// catalog & selection
	ShowBoothCatalog(ctx context.Context, day, date, userID string) (response.BoothCatalog, error)
	HoldSelection(ctx context.Context, payload *request.HoldSelection, userID string) error
	// booking lifecycle
	CreateBooking(ctx context.Context, payload *request.CreateBooking, userID, emailUser string) (response.CreatedBooking, error)
	ShowBookings(ctx context.Context, userID string) ([]response.BookingDetail, error)
	ShowBookingByID(ctx context.Context, bookingID, userID string, isAdmin bool) (response.BookingDetail, error)
	SubmitPayment(ctx context.Context, bookingID string, payload *request.SubmitPayment, userID string) (response.BookingDetail, error)
	CancelBooking(ctx context.Context, bookingID, userID string) error
	CheckSlipAmount(ctx context.Context, payload *request.SlipCheck) response.SlipCheckResult
	// admin
	ShowAllBookings(ctx context.Context, status string) ([]response.BookingDetail, error)
	UpdateBookingStatus(ctx context.Context, bookingID, targetStatus string) (response.BookingDetail, error)
	DeleteBooking(ctx context.Context, bookingID string) error
	CountPendingBookings(ctx context.Context) (response.PendingCount, error)
	// scheduler
	SetPaymentExpired(ctx context.Context, payload *request.PaymentExpiration) error
}

func New(repo repositories.Repositories, logger log.Logger, publish message.Publisher, cfgApp *config.AppConfig) Usecase {
	return &usecase{
		repo:    repo,
		log:     logger,
		publish: publish,
		cfgApp:  cfgApp,
	}
}

func (u *usecase) ShowBoothCatalog(ctx context.Context, day, date, userID string) (response.BoothCatalog, error) {
	if _, err := u.parseMarketDate(ctx, day, date); err != nil {
		return response.BoothCatalog{}, err
	}

	booths, err := u.buildCatalog(ctx, day, date, userID)
	if err != nil {
		return response.BoothCatalog{}, err
	}

	catalog := response.BoothCatalog{Day: day, Date: date}
	for _, zone := range entity.Zones() {
		price, _ := entity.ZonePrice(zone)
		zoneBooths := response.ZoneBooths{Zone: zone, Price: price}
		for _, booth := range booths {
			if booth.Zone == zone {
				zoneBooths.Booths = append(zoneBooths.Booths, booth)
			}
		}
		catalog.Zones = append(catalog.Zones, zoneBooths)
	}

	return catalog, nil
}

// HoldSelection places short-lived holds on the chosen stalls so other
// sessions see them as pending while the user completes the wizard.
// Advisory only; the reservation transaction remains the arbiter.
func (u *usecase) HoldSelection(ctx context.Context, payload *request.HoldSelection, userID string) error {
	if _, err := u.parseMarketDate(ctx, payload.Day, payload.BookingDate); err != nil {
		return err
	}

	if _, err := u.replaySelection(ctx, payload.Day, payload.BookingDate, payload.Booths, userID); err != nil {
		return err
	}

	ttl := time.Duration(u.cfgApp.BoothHoldMinutes) * time.Minute
	return u.repo.HoldBooths(ctx, payload.BookingDate, payload.Booths, userID, ttl)
}

func (u *usecase) CreateBooking(ctx context.Context, payload *request.CreateBooking, userID, emailUser string) (response.CreatedBooking, error) {
	bookingDate, err := u.parseMarketDate(ctx, payload.Day, payload.BookingDate)
	if err != nil {
		return response.CreatedBooking{}, err
	}

	flow := entity.NewSubmissionFlow()
	if err := flow.SubmitDetails(payload.OwnerName, payload.Phone); err != nil {
		return response.CreatedBooking{}, errors.BadRequest(err.Error())
	}

	selection, err := u.replaySelection(ctx, payload.Day, payload.BookingDate, payload.Booths, userID)
	if err != nil {
		return response.CreatedBooking{}, err
	}
	total := selection.Total()

	status := entity.StatusPending
	paymentStatus := entity.StatusPending
	if payload.DeferPayment {
		status = entity.StatusPaymentPending
		paymentStatus = entity.StatusPaymentPending
	} else {
		if err := flow.SubmitPayment(payload.DeclaredAmount, total, payload.PaymentSlip, payload.SlipMismatch, payload.MismatchConfirmed); err != nil {
			return response.CreatedBooking{}, errors.BadRequest(err.Error())
		}
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return response.CreatedBooking{}, errors.UnauthorizedError("invalid user identity")
	}

	email := payload.Email
	if email == "" {
		email = emailUser
	}

	booking := entity.Booking{
		ID:          uuid.New(),
		UserID:      userUUID,
		StoreName:   payload.StoreName,
		OwnerName:   payload.OwnerName,
		Phone:       payload.Phone,
		Email:       email,
		ShopType:    payload.ShopType,
		BookingDate: bookingDate,
		Status:      status,
		TotalPrice:  total,
	}

	reservations := make([]entity.Reservation, 0, selection.Size())
	for _, booth := range selection.Booths() {
		reservations = append(reservations, entity.Reservation{
			BookingID:   booking.ID,
			BoothID:     booth.ID,
			Zone:        booth.Zone,
			Price:       booth.Price,
			BookingDate: bookingDate,
		})
	}

	payment := entity.Payment{
		BookingID:   booking.ID,
		Amount:      total,
		Currency:    "THB",
		Status:      paymentStatus,
		PaymentSlip: payload.PaymentSlip,
	}
	if !payload.DeferPayment {
		payment.PaymentDate = sql.NullTime{Time: time.Now(), Valid: true}
	}

	var paymentExpiration time.Time
	if payload.DeferPayment {
		paymentExpiration = time.Now().Add(time.Duration(u.cfgApp.PaymentWindowMinutes) * time.Minute)
		payment.PaymentExpiration = sql.NullTime{Time: paymentExpiration, Valid: true}
	}

	if err := u.repo.ReserveBooking(ctx, &booking, reservations, &payment); err != nil {
		return response.CreatedBooking{}, err
	}

	if payload.DeferPayment {
		expirationPayload, _ := json.Marshal(request.PaymentExpiration{
			BookingID:   booking.ID.String(),
			BookingDate: payload.BookingDate,
			BoothIDs:    selection.IDs(),
		})
		taskID, err := u.repo.SetTaskScheduler(ctx, paymentExpiration, expirationPayload)
		if err != nil {
			u.log.Error(ctx, "error schedule payment expiration", err)
		} else {
			payment.TaskID = taskID
			if err := u.repo.UpdatePayment(ctx, &payment); err != nil {
				u.log.Error(ctx, "error attach expiration task to payment", err)
			}
		}

		// hold the stalls exactly until the payment window closes
		ttl := helpers.DurationCalculation(paymentExpiration)
		if err := u.repo.HoldBooths(ctx, payload.BookingDate, selection.IDs(), userID, ttl); err != nil {
			u.log.Error(ctx, "error hold booths for pending payment", err)
		}
	}

	u.publishEvent(ctx, request.BookingEvent{
		Type:        "booking_created",
		BookingID:   booking.ID.String(),
		StoreName:   booking.StoreName,
		Email:       booking.Email,
		Status:      booking.Status,
		TotalPrice:  booking.TotalPrice,
		BookingDate: payload.BookingDate,
	})

	resp := response.CreatedBooking{
		ID:         booking.ID.String(),
		Status:     booking.Status,
		Booths:     selection.IDs(),
		TotalPrice: total,
	}
	if payload.DeferPayment {
		resp.PaymentExpiration = paymentExpiration.Format("2006-01-02 15:04:05")
	}

	return resp, nil
}

func (u *usecase) ShowBookings(ctx context.Context, userID string) ([]response.BookingDetail, error) {
	bookings, err := u.repo.FindBookingsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.toDetails(ctx, bookings)
}

func (u *usecase) ShowBookingByID(ctx context.Context, bookingID, userID string, isAdmin bool) (response.BookingDetail, error) {
	booking, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return response.BookingDetail{}, err
	}

	if !isAdmin && booking.UserID.String() != userID {
		return response.BookingDetail{}, errors.ForbiddenError("booking belongs to another user")
	}

	return u.toDetail(ctx, booking)
}

// SubmitPayment completes a deferred-payment booking. Persistence errors
// are propagated faithfully; a failed write never reports success.
func (u *usecase) SubmitPayment(ctx context.Context, bookingID string, payload *request.SubmitPayment, userID string) (response.BookingDetail, error) {
	booking, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return response.BookingDetail{}, err
	}

	if booking.UserID.String() != userID {
		return response.BookingDetail{}, errors.ForbiddenError("booking belongs to another user")
	}
	if booking.Status != entity.StatusPaymentPending {
		return response.BookingDetail{}, errors.UnprocessableEntity("booking is not awaiting payment")
	}
	if payload.Amount != booking.TotalPrice {
		return response.BookingDetail{}, errors.BadRequest("declared amount does not match booking total")
	}

	payment, err := u.repo.FindPaymentByBookingID(ctx, bookingID)
	if err != nil {
		return response.BookingDetail{}, err
	}

	if err := u.repo.DeleteTaskScheduler(ctx, payment.TaskID); err != nil {
		u.log.Warn(ctx, "error remove expiration task", err)
	}

	payment.Amount = payload.Amount
	payment.PaymentSlip = payload.PaymentSlip
	payment.Status = entity.StatusPending
	payment.PaymentDate = sql.NullTime{Time: time.Now(), Valid: true}
	payment.TaskID = ""
	if err := u.repo.UpdatePayment(ctx, &payment); err != nil {
		return response.BookingDetail{}, err
	}

	updated, err := u.repo.UpdateBookingStatus(ctx, bookingID, entity.StatusPending)
	if err != nil {
		return response.BookingDetail{}, err
	}

	u.publishEvent(ctx, request.BookingEvent{
		Type:        "booking_payment_submitted",
		BookingID:   updated.ID.String(),
		StoreName:   updated.StoreName,
		Email:       updated.Email,
		Status:      updated.Status,
		TotalPrice:  updated.TotalPrice,
		BookingDate: updated.BookingDate.Format(dateLayout),
	})

	return u.toDetail(ctx, updated)
}

func (u *usecase) CancelBooking(ctx context.Context, bookingID, userID string) error {
	booking, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return err
	}

	if booking.UserID.String() != userID {
		return errors.ForbiddenError("booking belongs to another user")
	}
	if booking.Status != entity.StatusPending && booking.Status != entity.StatusPaymentPending {
		return errors.UnprocessableEntity("only pending bookings can be cancelled")
	}

	return u.releaseBooking(ctx, booking, entity.StatusCancelled, "booking_cancelled")
}

// CheckSlipAmount is advisory: it nudges the user about a possible
// mismatch and never gates submission by itself.
func (u *usecase) CheckSlipAmount(ctx context.Context, payload *request.SlipCheck) response.SlipCheckResult {
	return response.SlipCheckResult{
		Result: entity.CheckSlipAmount(payload.RecognizedText, payload.ExpectedTotal),
	}
}

func (u *usecase) ShowAllBookings(ctx context.Context, status string) ([]response.BookingDetail, error) {
	bookings, err := u.repo.FindBookingsByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	return u.toDetails(ctx, bookings)
}

// UpdateBookingStatus is the admin review operation. Approved and
// rejected are terminal; repeating the current status is a no-op that
// returns the record unchanged.
func (u *usecase) UpdateBookingStatus(ctx context.Context, bookingID, targetStatus string) (response.BookingDetail, error) {
	booking, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return response.BookingDetail{}, err
	}

	if booking.Status == targetStatus {
		return u.toDetail(ctx, booking)
	}
	if booking.IsTerminal() {
		return response.BookingDetail{}, errors.UnprocessableEntity("booking is already finalized")
	}
	if booking.Status != entity.StatusPending {
		return response.BookingDetail{}, errors.UnprocessableEntity("booking is not awaiting review")
	}

	updated, err := u.repo.UpdateBookingStatus(ctx, bookingID, targetStatus)
	if err != nil {
		return response.BookingDetail{}, err
	}

	reservations, err := u.repo.FindReservationsByBookingID(ctx, bookingID)
	if err != nil {
		return response.BookingDetail{}, err
	}

	switch targetStatus {
	case entity.StatusApproved:
		if err := u.repo.SyncBookingToMarket(ctx, updated, reservations); err != nil {
			u.log.Error(ctx, "error sync approved booking to market api", err)
		}
	case entity.StatusRejected:
		if err := u.repo.DeleteReservationsByBookingID(ctx, bookingID); err != nil {
			u.log.Error(ctx, "error release rejected reservations", err)
		}
		date := updated.BookingDate.Format(dateLayout)
		boothIDs := make([]string, 0, len(reservations))
		for _, res := range reservations {
			boothIDs = append(boothIDs, res.BoothID)
		}
		if err := u.repo.ReleaseBoothHolds(ctx, date, boothIDs); err != nil {
			u.log.Warn(ctx, "error release booth holds", err)
		}
	}

	u.publishEvent(ctx, request.BookingEvent{
		Type:        fmt.Sprintf("booking_%s", targetStatus),
		BookingID:   updated.ID.String(),
		StoreName:   updated.StoreName,
		Email:       updated.Email,
		Status:      updated.Status,
		TotalPrice:  updated.TotalPrice,
		BookingDate: updated.BookingDate.Format(dateLayout),
	})

	return u.toDetail(ctx, updated)
}

func (u *usecase) DeleteBooking(ctx context.Context, bookingID string) error {
	booking, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return err
	}

	reservations, err := u.repo.FindReservationsByBookingID(ctx, bookingID)
	if err != nil {
		return err
	}

	if err := u.repo.DeleteReservationsByBookingID(ctx, bookingID); err != nil {
		return err
	}

	date := booking.BookingDate.Format(dateLayout)
	boothIDs := make([]string, 0, len(reservations))
	for _, res := range reservations {
		boothIDs = append(boothIDs, res.BoothID)
	}
	if err := u.repo.ReleaseBoothHolds(ctx, date, boothIDs); err != nil {
		u.log.Warn(ctx, "error release booth holds", err)
	}

	return u.repo.SoftDeleteBooking(ctx, bookingID)
}

func (u *usecase) CountPendingBookings(ctx context.Context) (response.PendingCount, error) {
	count, err := u.repo.CountBookingsByStatus(ctx, entity.StatusPending)
	if err != nil {
		return response.PendingCount{}, err
	}
	return response.PendingCount{Count: count}, nil
}

// SetPaymentExpired cancels a booking whose payment window elapsed and
// returns its stalls to the pool. Already-paid bookings are untouched.
func (u *usecase) SetPaymentExpired(ctx context.Context, payload *request.PaymentExpiration) error {
	booking, err := u.repo.FindBookingByID(ctx, payload.BookingID)
	if err != nil {
		return err
	}

	if booking.Status != entity.StatusPaymentPending {
		return nil
	}

	return u.releaseBooking(ctx, booking, entity.StatusCancelled, "booking_expired")
}

func (u *usecase) releaseBooking(ctx context.Context, booking entity.Booking, targetStatus, eventType string) error {
	reservations, err := u.repo.FindReservationsByBookingID(ctx, booking.ID.String())
	if err != nil {
		return err
	}

	updated, err := u.repo.UpdateBookingStatus(ctx, booking.ID.String(), targetStatus)
	if err != nil {
		return err
	}

	if err := u.repo.DeleteReservationsByBookingID(ctx, booking.ID.String()); err != nil {
		return err
	}

	date := booking.BookingDate.Format(dateLayout)
	boothIDs := make([]string, 0, len(reservations))
	for _, res := range reservations {
		boothIDs = append(boothIDs, res.BoothID)
	}
	if err := u.repo.ReleaseBoothHolds(ctx, date, boothIDs); err != nil {
		u.log.Warn(ctx, "error release booth holds", err)
	}

	payment, err := u.repo.FindPaymentByBookingID(ctx, booking.ID.String())
	if err == nil {
		if err := u.repo.DeleteTaskScheduler(ctx, payment.TaskID); err != nil {
			u.log.Warn(ctx, "error remove expiration task", err)
		}
		payment.Status = targetStatus
		payment.TaskID = ""
		if err := u.repo.UpdatePayment(ctx, &payment); err != nil {
			u.log.Error(ctx, "error update payment status", err)
		}
	}

	u.publishEvent(ctx, request.BookingEvent{
		Type:        eventType,
		BookingID:   updated.ID.String(),
		StoreName:   updated.StoreName,
		Email:       updated.Email,
		Status:      updated.Status,
		TotalPrice:  updated.TotalPrice,
		BookingDate: date,
	})

	return nil
}

// parseMarketDate validates the day/date pair: a real weekend date
// matching the day filter, not in the past, and open for booking.
func (u *usecase) parseMarketDate(ctx context.Context, day, date string) (time.Time, error) {
	parsed, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Time{}, errors.BadRequest("invalid booking date")
	}

	switch day {
	case entity.DaySaturday:
		if parsed.Weekday() != time.Saturday {
			return time.Time{}, errors.BadRequest("booking date is not a saturday")
		}
	case entity.DaySunday:
		if parsed.Weekday() != time.Sunday {
			return time.Time{}, errors.BadRequest("booking date is not a sunday")
		}
	default:
		return time.Time{}, errors.BadRequest("unknown market day")
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if parsed.Before(today) {
		return time.Time{}, errors.BadRequest("booking date is in the past")
	}

	open, err := u.repo.IsOpenDate(ctx, date)
	if err != nil {
		return time.Time{}, err
	}
	if !open {
		return time.Time{}, errors.BadRequest("booking date is not open for booking")
	}

	return parsed, nil
}

// buildCatalog overlays reservation and hold state on the generated
// stall list for a date.
func (u *usecase) buildCatalog(ctx context.Context, day, date, userID string) ([]entity.Booth, error) {
	booths, err := entity.GenerateCatalog(day)
	if err != nil {
		return nil, errors.BadRequest(err.Error())
	}

	reserved, err := u.repo.FindReservedBoothsByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	reservedByID := make(map[string]entity.ReservedBooth, len(reserved))
	for _, res := range reserved {
		reservedByID[res.BoothID] = res
	}

	held, err := u.repo.FindHeldBooths(ctx, date)
	if err != nil {
		return nil, err
	}

	for i := range booths {
		if res, ok := reservedByID[booths[i].ID]; ok {
			if res.Status == entity.StatusPaymentPending {
				booths[i].Status = entity.BoothPending
			} else {
				booths[i].Status = entity.BoothBooked
			}
			if res.UserID.String() == userID {
				booths[i].IsMyBooking = true
			}
			continue
		}
		if holder, ok := held[booths[i].ID]; ok {
			if holder == userID {
				// own hold stays selectable
				booths[i].IsMyBooking = true
			} else {
				booths[i].Status = entity.BoothPending
			}
		}
	}

	return booths, nil
}

// replaySelection runs the requested booth ids through the selection
// rules against live catalog state.
func (u *usecase) replaySelection(ctx context.Context, day, date string, boothIDs []string, userID string) (*entity.Selection, error) {
	booths, err := u.buildCatalog(ctx, day, date, userID)
	if err != nil {
		return nil, err
	}

	boothsByID := make(map[string]entity.Booth, len(booths))
	for _, booth := range booths {
		boothsByID[booth.ID] = booth
	}

	selection := entity.NewSelection(day)
	for _, id := range boothIDs {
		booth, ok := boothsByID[id]
		if !ok {
			return nil, errors.BadRequest(fmt.Sprintf("unknown booth %s for %s", id, day))
		}
		if err := selection.Toggle(booth); err != nil {
			switch err {
			case entity.ErrBoothUnavailable:
				return nil, errors.Conflict(fmt.Sprintf("booth %s is not available", id))
			default:
				return nil, errors.BadRequest(err.Error())
			}
		}
	}

	return selection, nil
}

func (u *usecase) toDetail(ctx context.Context, booking entity.Booking) (response.BookingDetail, error) {
	reservations, err := u.repo.FindReservationsByBookingID(ctx, booking.ID.String())
	if err != nil {
		return response.BookingDetail{}, err
	}

	boothIDs := make([]string, 0, len(reservations))
	for _, res := range reservations {
		boothIDs = append(boothIDs, res.BoothID)
	}

	detail := response.BookingDetail{
		ID:          booking.ID.String(),
		StoreName:   booking.StoreName,
		OwnerName:   booking.OwnerName,
		Phone:       booking.Phone,
		Email:       booking.Email,
		ShopType:    booking.ShopType,
		Booths:      boothIDs,
		BookingDate: booking.BookingDate.Format(dateLayout),
		Status:      booking.Status,
		TotalPrice:  booking.TotalPrice,
		CreatedAt:   booking.CreatedAt.Format("2006-01-02 15:04:05"),
	}

	if payment, err := u.repo.FindPaymentByBookingID(ctx, booking.ID.String()); err == nil {
		detail.PaymentSlip = payment.PaymentSlip
	}

	return detail, nil
}

func (u *usecase) toDetails(ctx context.Context, bookings []entity.Booking) ([]response.BookingDetail, error) {
	details := make([]response.BookingDetail, 0, len(bookings))
	for _, booking := range bookings {
		detail, err := u.toDetail(ctx, booking)
		if err != nil {
			return nil, err
		}
		details = append(details, detail)
	}
	return details, nil
}

func (u *usecase) publishEvent(ctx context.Context, event request.BookingEvent) {
	if u.publish == nil {
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		u.log.Error(ctx, "error marshal booking event", err)
		return
	}

	if err := u.publish.Publish(TopicBookingEvents, message.NewMessage(watermill.NewUUID(), payload)); err != nil {
		u.log.Error(ctx, "error publish booking event", err)
	}
}
