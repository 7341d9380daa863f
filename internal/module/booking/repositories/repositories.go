package repositories

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"sort"
	"time"

	"stall-booking-service/config"
	"stall-booking-service/internal/module/booking/models/entity"
	"stall-booking-service/internal/pkg/errors"
	"stall-booking-service/internal/pkg/log"
	"stall-booking-service/internal/pkg/scheduler"

	"github.com/go-redsync/redsync/v4"
	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	circuit "github.com/rubyist/circuitbreaker"
)

const dateLayout = "2006-01-02"

type repositories struct {
	db           *sqlx.DB
	log          log.Logger
	httpClient   *circuit.HTTPClient
	cfgMarketAPI *config.MarketAPIConfig
	redisClient  *redis.Client
	locker       *redsync.Redsync
	taskClient   *asynq.Client
	taskRemover  TaskRemover
}

// TaskRemover deletes a scheduled task. Satisfied by *asynq.Inspector.
type TaskRemover interface {
	DeleteTask(queue, id string) error
}

type Repositories interface {
	// db
	ReserveBooking(ctx context.Context, booking *entity.Booking, reservations []entity.Reservation, payment *entity.Payment) error
	FindBookingByID(ctx context.Context, bookingID string) (entity.Booking, error)
	FindBookingsByUserID(ctx context.Context, userID string) ([]entity.Booking, error)
	FindBookingsByStatus(ctx context.Context, status string) ([]entity.Booking, error)
	FindReservationsByBookingID(ctx context.Context, bookingID string) ([]entity.Reservation, error)
	FindReservedBoothsByDate(ctx context.Context, date string) ([]entity.ReservedBooth, error)
	UpdateBookingStatus(ctx context.Context, bookingID, status string) (entity.Booking, error)
	SoftDeleteBooking(ctx context.Context, bookingID string) error
	DeleteReservationsByBookingID(ctx context.Context, bookingID string) error
	CountBookingsByStatus(ctx context.Context, status string) (int64, error)
	FindPaymentByBookingID(ctx context.Context, bookingID string) (entity.Payment, error)
	UpdatePayment(ctx context.Context, payment *entity.Payment) error
	IsOpenDate(ctx context.Context, date string) (bool, error)
	// redis
	HoldBooths(ctx context.Context, date string, boothIDs []string, userID string, ttl time.Duration) error
	ReleaseBoothHolds(ctx context.Context, date string, boothIDs []string) error
	FindHeldBooths(ctx context.Context, date string) (map[string]string, error)
	// scheduler
	SetTaskScheduler(ctx context.Context, runAt time.Time, payload []byte) (string, error)
	DeleteTaskScheduler(ctx context.Context, taskID string) error
	// http
	SyncBookingToMarket(ctx context.Context, booking entity.Booking, reservations []entity.Reservation) error
}

func New(
	db *sqlx.DB,
	logger log.Logger,
	httpClient *circuit.HTTPClient,
	cfgMarketAPI *config.MarketAPIConfig,
	redisClient *redis.Client,
	locker *redsync.Redsync,
	taskClient *asynq.Client,
	taskRemover TaskRemover,
) Repositories {
	return &repositories{
		db:           db,
		log:          logger,
		httpClient:   httpClient,
		cfgMarketAPI: cfgMarketAPI,
		redisClient:  redisClient,
		locker:       locker,
		taskClient:   taskClient,
		taskRemover:  taskRemover,
	}
}

// ReserveBooking inserts the booking, its reservation rows and the
// payment record in one transaction. Per-booth distributed mutexes
// serialize concurrent submissions across instances; the unique
// (booth_id, booking_date) index is the final arbiter.
func (r *repositories) ReserveBooking(ctx context.Context, booking *entity.Booking, reservations []entity.Reservation, payment *entity.Payment) error {
	date := booking.BookingDate.Format(dateLayout)

	boothIDs := make([]string, 0, len(reservations))
	for _, res := range reservations {
		boothIDs = append(boothIDs, res.BoothID)
	}
	sort.Strings(boothIDs)

	if r.locker != nil {
		var mutexes []*redsync.Mutex
		for _, boothID := range boothIDs {
			mutex := r.locker.NewMutex(
				fmt.Sprintf("lock:booth:%s:%s", date, boothID),
				redsync.WithExpiry(8*time.Second),
			)
			if err := mutex.LockContext(ctx); err != nil {
				for _, held := range mutexes {
					_, _ = held.UnlockContext(ctx)
				}
				return errors.Conflict("booth is being reserved by another request")
			}
			mutexes = append(mutexes, mutex)
		}
		defer func() {
			for _, held := range mutexes {
				_, _ = held.UnlockContext(ctx)
			}
		}()
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.InternalServerError("error starting transaction")
	}

	_, err = tx.NamedExecContext(ctx, `
		INSERT INTO bookings (id, user_id, store_name, owner_name, phone, email, shop_type, booking_date, status, total_price)
		VALUES (:id, :user_id, :store_name, :owner_name, :phone, :email, :shop_type, :booking_date, :status, :total_price)
	`, booking)
	if err != nil {
		tx.Rollback()
		return errors.InternalServerError("error inserting booking")
	}

	for _, res := range reservations {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO booking_booths (booking_id, booth_id, zone, price, booking_date)
			VALUES ($1, $2, $3, $4, $5)
		`, res.BookingID, res.BoothID, res.Zone, res.Price, res.BookingDate)
		if err != nil {
			tx.Rollback()
			if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
				return errors.Conflict(fmt.Sprintf("booth %s is already reserved for %s", res.BoothID, date))
			}
			return errors.InternalServerError("error inserting reservation")
		}
	}

	_, err = tx.NamedExecContext(ctx, `
		INSERT INTO payments (booking_id, amount, currency, status, payment_slip, payment_date, payment_expiration, task_id)
		VALUES (:booking_id, :amount, :currency, :status, :payment_slip, :payment_date, :payment_expiration, :task_id)
	`, payment)
	if err != nil {
		tx.Rollback()
		return errors.InternalServerError("error inserting payment")
	}

	if err := tx.Commit(); err != nil {
		return errors.InternalServerError("error committing transaction")
	}

	return nil
}

func (r *repositories) FindBookingByID(ctx context.Context, bookingID string) (entity.Booking, error) {
	query := `SELECT * FROM bookings WHERE id = $1 AND deleted_at IS NULL`
	var booking entity.Booking
	err := r.db.GetContext(ctx, &booking, query, bookingID)
	if err == sql.ErrNoRows {
		return entity.Booking{}, errors.NotFound("booking not found")
	}
	if err != nil {
		return entity.Booking{}, errors.InternalServerError("error find booking by id")
	}
	return booking, nil
}

func (r *repositories) FindBookingsByUserID(ctx context.Context, userID string) ([]entity.Booking, error) {
	query := `SELECT * FROM bookings WHERE user_id = $1 AND deleted_at IS NULL ORDER BY created_at DESC`
	var bookings []entity.Booking
	err := r.db.SelectContext(ctx, &bookings, query, userID)
	if err != nil {
		return nil, errors.InternalServerError("error find bookings by user id")
	}
	return bookings, nil
}

func (r *repositories) FindBookingsByStatus(ctx context.Context, status string) ([]entity.Booking, error) {
	var bookings []entity.Booking
	var err error
	if status == "" {
		err = r.db.SelectContext(ctx, &bookings, `SELECT * FROM bookings WHERE deleted_at IS NULL ORDER BY created_at DESC`)
	} else {
		err = r.db.SelectContext(ctx, &bookings, `SELECT * FROM bookings WHERE status = $1 AND deleted_at IS NULL ORDER BY created_at DESC`, status)
	}
	if err != nil {
		return nil, errors.InternalServerError("error find bookings by status")
	}
	return bookings, nil
}

func (r *repositories) FindReservationsByBookingID(ctx context.Context, bookingID string) ([]entity.Reservation, error) {
	query := `SELECT * FROM booking_booths WHERE booking_id = $1 ORDER BY booth_id`
	var reservations []entity.Reservation
	err := r.db.SelectContext(ctx, &reservations, query, bookingID)
	if err != nil {
		return nil, errors.InternalServerError("error find reservations by booking id")
	}
	return reservations, nil
}

// FindReservedBoothsByDate lists booths held by live bookings for a
// date. Cancelled, rejected and deleted bookings do not block a stall.
func (r *repositories) FindReservedBoothsByDate(ctx context.Context, date string) ([]entity.ReservedBooth, error) {
	query := `
		SELECT bb.booth_id, b.user_id, b.status
		FROM booking_booths bb
		JOIN bookings b ON b.id = bb.booking_id
		WHERE bb.booking_date = $1
		  AND b.deleted_at IS NULL
		  AND b.status NOT IN ($2, $3)
	`
	var reserved []entity.ReservedBooth
	err := r.db.SelectContext(ctx, &reserved, query, date, entity.StatusCancelled, entity.StatusRejected)
	if err != nil {
		return nil, errors.InternalServerError("error find reserved booths by date")
	}
	return reserved, nil
}

func (r *repositories) UpdateBookingStatus(ctx context.Context, bookingID, status string) (entity.Booking, error) {
	query := `UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1 AND deleted_at IS NULL RETURNING *`
	var booking entity.Booking
	err := r.db.QueryRowxContext(ctx, query, bookingID, status).StructScan(&booking)
	if err == sql.ErrNoRows {
		return entity.Booking{}, errors.NotFound("booking not found")
	}
	if err != nil {
		return entity.Booking{}, errors.InternalServerError("error update booking status")
	}
	return booking, nil
}

func (r *repositories) SoftDeleteBooking(ctx context.Context, bookingID string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE bookings SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`, bookingID)
	if err != nil {
		return errors.InternalServerError("error delete booking")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return errors.InternalServerError("error delete booking")
	}
	if affected == 0 {
		return errors.NotFound("booking not found")
	}
	return nil
}

func (r *repositories) DeleteReservationsByBookingID(ctx context.Context, bookingID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM booking_booths WHERE booking_id = $1`, bookingID)
	if err != nil {
		return errors.InternalServerError("error delete reservations")
	}
	return nil
}

func (r *repositories) CountBookingsByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM bookings WHERE status = $1 AND deleted_at IS NULL`, status)
	if err != nil {
		return 0, errors.InternalServerError("error count bookings by status")
	}
	return count, nil
}

func (r *repositories) FindPaymentByBookingID(ctx context.Context, bookingID string) (entity.Payment, error) {
	query := `SELECT * FROM payments WHERE booking_id = $1`
	var payment entity.Payment
	err := r.db.GetContext(ctx, &payment, query, bookingID)
	if err == sql.ErrNoRows {
		return entity.Payment{}, errors.NotFound("payment not found")
	}
	if err != nil {
		return entity.Payment{}, errors.InternalServerError("error find payment by booking id")
	}
	return payment, nil
}

func (r *repositories) UpdatePayment(ctx context.Context, payment *entity.Payment) error {
	_, err := r.db.NamedExecContext(ctx, `
		UPDATE payments
		SET amount = :amount,
		    status = :status,
		    payment_slip = :payment_slip,
		    payment_date = :payment_date,
		    task_id = :task_id,
		    updated_at = now()
		WHERE booking_id = :booking_id
	`, payment)
	if err != nil {
		return errors.InternalServerError("error update payment")
	}
	return nil
}

func (r *repositories) IsOpenDate(ctx context.Context, date string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM open_dates WHERE open_date = $1)`, date)
	if err != nil {
		return false, errors.InternalServerError("error check open date")
	}
	return exists, nil
}

func holdKey(date, boothID string) string {
	return fmt.Sprintf("hold:booth:%s:%s", date, boothID)
}

// HoldBooths marks booths pending while a submission is in flight. The
// hold value records the holder, so their own session can still complete
// the booking while other sessions see the stall as unavailable.
func (r *repositories) HoldBooths(ctx context.Context, date string, boothIDs []string, userID string, ttl time.Duration) error {
	for _, boothID := range boothIDs {
		if err := r.redisClient.Set(ctx, holdKey(date, boothID), userID, ttl).Err(); err != nil {
			return errors.InternalServerError("error hold booth")
		}
	}
	return nil
}

func (r *repositories) ReleaseBoothHolds(ctx context.Context, date string, boothIDs []string) error {
	keys := make([]string, 0, len(boothIDs))
	for _, boothID := range boothIDs {
		keys = append(keys, holdKey(date, boothID))
	}
	if len(keys) == 0 {
		return nil
	}
	if err := r.redisClient.Del(ctx, keys...).Err(); err != nil {
		return errors.InternalServerError("error release booth holds")
	}
	return nil
}

// FindHeldBooths returns the active holds for a date, keyed by booth id
// with the holder's user id as value.
func (r *repositories) FindHeldBooths(ctx context.Context, date string) (map[string]string, error) {
	prefix := fmt.Sprintf("hold:booth:%s:", date)

	var keys []string
	iter := r.redisClient.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, errors.InternalServerError("error scan booth holds")
	}

	held := make(map[string]string, len(keys))
	if len(keys) == 0 {
		return held, nil
	}

	values, err := r.redisClient.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.InternalServerError("error read booth holds")
	}
	for i, key := range keys {
		holder, ok := values[i].(string)
		if !ok {
			// hold expired between scan and read
			continue
		}
		held[key[len(prefix):]] = holder
	}
	return held, nil
}

func (r *repositories) SetTaskScheduler(ctx context.Context, runAt time.Time, payload []byte) (string, error) {
	task := asynq.NewTask(scheduler.TypePaymentExpired, payload)
	info, err := r.taskClient.EnqueueContext(ctx, task, asynq.ProcessAt(runAt))
	if err != nil {
		return "", errors.InternalServerError("error schedule payment expiration task")
	}
	return info.ID, nil
}

func (r *repositories) DeleteTaskScheduler(ctx context.Context, taskID string) error {
	if taskID == "" {
		return nil
	}
	if err := r.taskRemover.DeleteTask("default", taskID); err != nil {
		r.log.Warn(ctx, "error delete scheduled task", err)
	}
	return nil
}

// SyncBookingToMarket pushes an approved booking to the external market
// directory API. Best effort behind a circuit breaker.
func (r *repositories) SyncBookingToMarket(ctx context.Context, booking entity.Booking, reservations []entity.Reservation) error {
	if r.cfgMarketAPI == nil || r.cfgMarketAPI.BaseURL == "" {
		return nil
	}

	boothIDs := make([]string, 0, len(reservations))
	for _, res := range reservations {
		boothIDs = append(boothIDs, res.BoothID)
	}

	payload, err := json.Marshal(map[string]interface{}{
		"booking_id":   booking.ID.String(),
		"store_name":   booking.StoreName,
		"owner_name":   booking.OwnerName,
		"phone":        booking.Phone,
		"shop_type":    booking.ShopType,
		"booths":       boothIDs,
		"booking_date": booking.BookingDate.Format(dateLayout),
		"status":       booking.Status,
		"total_price":  booking.TotalPrice,
	})
	if err != nil {
		return errors.InternalServerError("error marshal market sync payload")
	}

	url := fmt.Sprintf("%s/bookings", r.cfgMarketAPI.BaseURL)
	resp, err := r.httpClient.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		return errors.InternalServerError("error call market api")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		r.log.Error(ctx, "market api rejected booking sync", resp.StatusCode)
		return errors.InternalServerError("market api rejected booking sync")
	}

	return nil
}
