package repositories_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"stall-booking-service/internal/module/booking/models/entity"
	"stall-booking-service/internal/module/booking/repositories"
	"stall-booking-service/internal/pkg/log"
	log_internal "stall-booking-service/internal/pkg/log"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	sqlxmock "github.com/zhashkevych/go-sqlxmock"
)

var (
	mock    sqlxmock.Sqlmock
	dbx     *sqlx.DB
	logMock log.Logger
)

func setup() {
	dbx, mock, _ = sqlxmock.Newx()
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logMock = log_internal.GetLogger()
}

func bookingColumns() []string {
	return []string{
		"id", "user_id", "store_name", "owner_name", "phone", "email",
		"shop_type", "booking_date", "status", "total_price",
		"created_at", "updated_at", "deleted_at",
	}
}

func bookingRow(booking entity.Booking) *sqlxmock.Rows {
	return sqlxmock.NewRows(bookingColumns()).AddRow(
		booking.ID, booking.UserID, booking.StoreName, booking.OwnerName,
		booking.Phone, booking.Email, booking.ShopType, booking.BookingDate,
		booking.Status, booking.TotalPrice,
		booking.CreatedAt, booking.UpdatedAt, booking.DeletedAt,
	)
}

func TestFindBookingByID(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock, nil, nil, nil, nil, nil, nil)

	bookingID := uuid.New()
	expected := entity.Booking{
		ID:          bookingID,
		UserID:      uuid.New(),
		StoreName:   "Somchai Grill",
		OwnerName:   "somchai",
		Phone:       "0812345678",
		Email:       "somchai@test.com",
		ShopType:    "food",
		BookingDate: time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
		Status:      entity.StatusPending,
		TotalPrice:  500,
	}

	t.Run("booking found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM bookings WHERE id = $1 AND deleted_at IS NULL`)).
			WithArgs(bookingID.String()).
			WillReturnRows(bookingRow(expected))

		booking, err := repo.FindBookingByID(context.Background(), bookingID.String())

		assert.NoError(t, err)
		assert.Equal(t, expected, booking)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("booking not found", func(t *testing.T) {
		missing := uuid.New().String()
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM bookings WHERE id = $1 AND deleted_at IS NULL`)).
			WithArgs(missing).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.FindBookingByID(context.Background(), missing)

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateBookingStatus(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock, nil, nil, nil, nil, nil, nil)

	bookingID := uuid.New()
	updated := entity.Booking{
		ID:          bookingID,
		UserID:      uuid.New(),
		StoreName:   "Somchai Grill",
		OwnerName:   "somchai",
		Phone:       "0812345678",
		ShopType:    "food",
		BookingDate: time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
		Status:      entity.StatusApproved,
		TotalPrice:  500,
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1 AND deleted_at IS NULL RETURNING *`)).
			WithArgs(bookingID.String(), entity.StatusApproved).
			WillReturnRows(bookingRow(updated))

		booking, err := repo.UpdateBookingStatus(context.Background(), bookingID.String(), entity.StatusApproved)

		assert.NoError(t, err)
		assert.Equal(t, entity.StatusApproved, booking.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCountBookingsByStatus(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock, nil, nil, nil, nil, nil, nil)

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM bookings WHERE status = $1 AND deleted_at IS NULL`)).
			WithArgs(entity.StatusPending).
			WillReturnRows(sqlxmock.NewRows([]string{"count"}).AddRow(int64(3)))

		count, err := repo.CountBookingsByStatus(context.Background(), entity.StatusPending)

		assert.NoError(t, err)
		assert.Equal(t, int64(3), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestIsOpenDate(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock, nil, nil, nil, nil, nil, nil)

	t.Run("open", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM open_dates WHERE open_date = $1)`)).
			WithArgs("2026-09-05").
			WillReturnRows(sqlxmock.NewRows([]string{"exists"}).AddRow(true))

		open, err := repo.IsOpenDate(context.Background(), "2026-09-05")

		assert.NoError(t, err)
		assert.True(t, open)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("closed", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM open_dates WHERE open_date = $1)`)).
			WithArgs("2026-09-07").
			WillReturnRows(sqlxmock.NewRows([]string{"exists"}).AddRow(false))

		open, err := repo.IsOpenDate(context.Background(), "2026-09-07")

		assert.NoError(t, err)
		assert.False(t, open)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestReserveBooking(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock, nil, nil, nil, nil, nil, nil)

	bookingDate := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
	booking := entity.Booking{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		StoreName:   "Somchai Grill",
		OwnerName:   "somchai",
		Phone:       "0812345678",
		ShopType:    "food",
		BookingDate: bookingDate,
		Status:      entity.StatusPending,
		TotalPrice:  500,
	}
	reservations := []entity.Reservation{
		{BookingID: booking.ID, BoothID: "A-01", Zone: "A", Price: 500, BookingDate: bookingDate},
	}
	payment := entity.Payment{
		BookingID: booking.ID,
		Amount:    500,
		Currency:  "THB",
		Status:    entity.StatusPending,
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO bookings").
			WillReturnResult(sqlxmock.NewResult(1, 1))
		mock.ExpectExec("INSERT INTO booking_booths").
			WillReturnResult(sqlxmock.NewResult(1, 1))
		mock.ExpectExec("INSERT INTO payments").
			WillReturnResult(sqlxmock.NewResult(1, 1))
		mock.ExpectCommit()

		err := repo.ReserveBooking(context.Background(), &booking, reservations, &payment)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("booth already taken", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO bookings").
			WillReturnResult(sqlxmock.NewResult(1, 1))
		mock.ExpectExec("INSERT INTO booking_booths").
			WillReturnError(&pq.Error{Code: "23505", Constraint: "booking_booths_booth_date_key"})
		mock.ExpectRollback()

		err := repo.ReserveBooking(context.Background(), &booking, reservations, &payment)

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSoftDeleteBooking(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock, nil, nil, nil, nil, nil, nil)

	t.Run("success", func(t *testing.T) {
		bookingID := uuid.New().String()
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE bookings SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`)).
			WithArgs(bookingID).
			WillReturnResult(sqlxmock.NewResult(0, 1))

		err := repo.SoftDeleteBooking(context.Background(), bookingID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already deleted", func(t *testing.T) {
		bookingID := uuid.New().String()
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE bookings SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`)).
			WithArgs(bookingID).
			WillReturnResult(sqlxmock.NewResult(0, 0))

		err := repo.SoftDeleteBooking(context.Background(), bookingID)

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
