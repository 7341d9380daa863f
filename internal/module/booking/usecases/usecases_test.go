package usecases_test

import (
	"context"
	"testing"
	"time"

	"stall-booking-service/config"
	"stall-booking-service/internal/module/booking/mocks"
	"stall-booking-service/internal/module/booking/models/entity"
	"stall-booking-service/internal/module/booking/models/request"
	"stall-booking-service/internal/module/booking/usecases"
	"stall-booking-service/internal/pkg/errors"
	"stall-booking-service/internal/pkg/log"
	log_internal "stall-booking-service/internal/pkg/log"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	uc       usecases.Usecase
	repoMock *mocks.Repositories
	logMock  log.Logger
	p        message.Publisher
)

type mockPublisher struct{}

// Close implements message.Publisher.
func (m *mockPublisher) Close() error {
	return nil
}

// Publish implements message.Publisher.
func (m *mockPublisher) Publish(topic string, messages ...*message.Message) error {
	return nil
}

func NewMockPublisher() message.Publisher {
	return &mockPublisher{}
}

func setup() {
	repoMock = new(mocks.Repositories)
	p = NewMockPublisher()
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logMock = log_internal.GetLogger()
	uc = usecases.New(repoMock, logMock, p, &config.AppConfig{
		PaymentWindowMinutes: 30,
		BoothHoldMinutes:     15,
	})
}

func teardown() {
	repoMock = nil
	uc = nil
}

// nextMarketDate returns the next upcoming date falling on the given
// weekday, formatted for the booking API.
func nextMarketDate(weekday time.Weekday) string {
	d := time.Now().AddDate(0, 0, 1)
	for d.Weekday() != weekday {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format("2006-01-02")
}

func TestShowBoothCatalog(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		// mock data
		date := nextMarketDate(time.Saturday)
		userID := uuid.New()
		otherUser := uuid.New()

		// mock repo
		repoMock.On("IsOpenDate", ctx, date).Return(true, nil)
		repoMock.On("FindReservedBoothsByDate", ctx, date).Return([]entity.ReservedBooth{
			{BoothID: "A-01", UserID: otherUser, Status: entity.StatusPending},
			{BoothID: "B-02", UserID: userID, Status: entity.StatusPaymentPending},
		}, nil)
		repoMock.On("FindHeldBooths", ctx, date).Return(map[string]string{
			"C-03": otherUser.String(),
			"A-03": userID.String(),
		}, nil)

		// test
		catalog, err := uc.ShowBoothCatalog(ctx, entity.DaySaturday, date, userID.String())

		// assert
		assert.NoError(t, err)
		assert.Equal(t, entity.DaySaturday, catalog.Day)
		assert.Len(t, catalog.Zones, 3)

		boothByID := map[string]entity.Booth{}
		for _, zone := range catalog.Zones {
			for _, booth := range zone.Booths {
				boothByID[booth.ID] = booth
			}
		}
		assert.Len(t, boothByID, 40)
		assert.Equal(t, entity.BoothBooked, boothByID["A-01"].Status)
		assert.False(t, boothByID["A-01"].IsMyBooking)
		assert.Equal(t, entity.BoothPending, boothByID["B-02"].Status)
		assert.True(t, boothByID["B-02"].IsMyBooking)
		assert.Equal(t, entity.BoothPending, boothByID["C-03"].Status)
		assert.Equal(t, entity.BoothAvailable, boothByID["A-03"].Status)
		assert.True(t, boothByID["A-03"].IsMyBooking)
		assert.Equal(t, entity.BoothAvailable, boothByID["A-02"].Status)
	})

	t.Run("closed date", func(t *testing.T) {
		date := nextMarketDate(time.Sunday)
		repoMock.On("IsOpenDate", ctx, date).Return(false, nil)

		_, err := uc.ShowBoothCatalog(ctx, entity.DaySunday, date, uuid.New().String())

		assert.Error(t, err)
		assert.Equal(t, 400, errors.GetStatus(err))
	})

	t.Run("day does not match date", func(t *testing.T) {
		date := nextMarketDate(time.Saturday)

		_, err := uc.ShowBoothCatalog(ctx, entity.DaySunday, date, uuid.New().String())

		assert.Error(t, err)
		assert.Equal(t, 400, errors.GetStatus(err))
	})
}

func TestHoldSelection(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		date := nextMarketDate(time.Saturday)
		userID := uuid.New()
		payload := request.HoldSelection{
			Day:         entity.DaySaturday,
			BookingDate: date,
			Booths:      []string{"A-01", "A-02"},
		}

		repoMock.On("IsOpenDate", ctx, date).Return(true, nil)
		repoMock.On("FindReservedBoothsByDate", ctx, date).Return([]entity.ReservedBooth{}, nil)
		repoMock.On("FindHeldBooths", ctx, date).Return(map[string]string{}, nil)
		repoMock.On("HoldBooths", ctx, date, payload.Booths, userID.String(), 15*time.Minute).Return(nil)

		err := uc.HoldSelection(ctx, &payload, userID.String())

		assert.NoError(t, err)
	})
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("success with immediate payment", func(t *testing.T) {
		setup()
		defer teardown()

		// mock data
		date := nextMarketDate(time.Saturday)
		userID := uuid.New()
		payload := request.CreateBooking{
			StoreName:      "Somchai Grill",
			OwnerName:      "somchai",
			Phone:          "0812345678",
			ShopType:       "food",
			Day:            entity.DaySaturday,
			BookingDate:    date,
			Booths:         []string{"A-01", "B-01"},
			DeclaredAmount: 1200,
			PaymentSlip:    "slips/abc.jpg",
		}

		// mock repo
		repoMock.On("IsOpenDate", ctx, date).Return(true, nil)
		repoMock.On("FindReservedBoothsByDate", ctx, date).Return([]entity.ReservedBooth{}, nil)
		repoMock.On("FindHeldBooths", ctx, date).Return(map[string]string{}, nil)
		repoMock.On("ReserveBooking", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		// test
		resp, err := uc.CreateBooking(ctx, &payload, userID.String(), "somchai@test.com")

		// assert
		assert.NoError(t, err)
		assert.Equal(t, entity.StatusPending, resp.Status)
		assert.Equal(t, []string{"A-01", "B-01"}, resp.Booths)
		assert.Equal(t, float64(1200), resp.TotalPrice)
		assert.Empty(t, resp.PaymentExpiration)
	})

	t.Run("success with deferred payment", func(t *testing.T) {
		setup()
		defer teardown()

		date := nextMarketDate(time.Sunday)
		userID := uuid.New()
		payload := request.CreateBooking{
			StoreName:    "Nok Textiles",
			OwnerName:    "nok",
			Phone:        "0899999999",
			ShopType:     "clothing",
			Day:          entity.DaySunday,
			BookingDate:  date,
			Booths:       []string{"C-05"},
			DeferPayment: true,
		}

		repoMock.On("IsOpenDate", ctx, date).Return(true, nil)
		repoMock.On("FindReservedBoothsByDate", ctx, date).Return([]entity.ReservedBooth{}, nil)
		repoMock.On("FindHeldBooths", ctx, date).Return(map[string]string{}, nil)
		repoMock.On("ReserveBooking", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)
		repoMock.On("SetTaskScheduler", ctx, mock.Anything, mock.Anything).Return("task-1", nil)
		repoMock.On("UpdatePayment", ctx, mock.Anything).Return(nil)
		repoMock.On("HoldBooths", ctx, date, []string{"C-05"}, userID.String(), mock.MatchedBy(func(ttl time.Duration) bool {
			return ttl > 29*time.Minute && ttl <= 30*time.Minute
		})).Return(nil)

		resp, err := uc.CreateBooking(ctx, &payload, userID.String(), "nok@test.com")

		assert.NoError(t, err)
		assert.Equal(t, entity.StatusPaymentPending, resp.Status)
		assert.Equal(t, float64(1000), resp.TotalPrice)
		assert.NotEmpty(t, resp.PaymentExpiration)
	})

	t.Run("succeeds on booths the user already holds", func(t *testing.T) {
		setup()
		defer teardown()

		date := nextMarketDate(time.Saturday)
		userID := uuid.New()
		payload := request.CreateBooking{
			StoreName:      "Somchai Grill",
			OwnerName:      "somchai",
			Phone:          "0812345678",
			ShopType:       "food",
			Day:            entity.DaySaturday,
			BookingDate:    date,
			Booths:         []string{"A-01", "B-01"},
			DeclaredAmount: 1200,
			PaymentSlip:    "slips/abc.jpg",
		}

		repoMock.On("IsOpenDate", ctx, date).Return(true, nil)
		repoMock.On("FindReservedBoothsByDate", ctx, date).Return([]entity.ReservedBooth{}, nil)
		// the wizard placed these holds for the same user moments earlier
		repoMock.On("FindHeldBooths", ctx, date).Return(map[string]string{
			"A-01": userID.String(),
			"B-01": userID.String(),
		}, nil)
		repoMock.On("ReserveBooking", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		resp, err := uc.CreateBooking(ctx, &payload, userID.String(), "somchai@test.com")

		assert.NoError(t, err)
		assert.Equal(t, entity.StatusPending, resp.Status)
		assert.Equal(t, []string{"A-01", "B-01"}, resp.Booths)
	})

	t.Run("booth held by another session", func(t *testing.T) {
		setup()
		defer teardown()

		date := nextMarketDate(time.Saturday)
		payload := request.CreateBooking{
			StoreName:      "Somchai Grill",
			OwnerName:      "somchai",
			Phone:          "0812345678",
			ShopType:       "food",
			Day:            entity.DaySaturday,
			BookingDate:    date,
			Booths:         []string{"A-01"},
			DeclaredAmount: 500,
			PaymentSlip:    "slips/abc.jpg",
		}

		repoMock.On("IsOpenDate", ctx, date).Return(true, nil)
		repoMock.On("FindReservedBoothsByDate", ctx, date).Return([]entity.ReservedBooth{}, nil)
		repoMock.On("FindHeldBooths", ctx, date).Return(map[string]string{
			"A-01": uuid.New().String(),
		}, nil)

		_, err := uc.CreateBooking(ctx, &payload, uuid.New().String(), "somchai@test.com")

		assert.Error(t, err)
		assert.Equal(t, 409, errors.GetStatus(err))
		repoMock.AssertNotCalled(t, "ReserveBooking", ctx, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing contact details", func(t *testing.T) {
		setup()
		defer teardown()

		date := nextMarketDate(time.Saturday)
		payload := request.CreateBooking{
			StoreName:   "Somchai Grill",
			ShopType:    "food",
			Day:         entity.DaySaturday,
			BookingDate: date,
			Booths:      []string{"A-01"},
		}

		repoMock.On("IsOpenDate", ctx, date).Return(true, nil)

		_, err := uc.CreateBooking(ctx, &payload, uuid.New().String(), "somchai@test.com")

		assert.Error(t, err)
		assert.Equal(t, 400, errors.GetStatus(err))
	})

	t.Run("declared amount mismatch", func(t *testing.T) {
		setup()
		defer teardown()

		date := nextMarketDate(time.Saturday)
		payload := request.CreateBooking{
			StoreName:      "Somchai Grill",
			OwnerName:      "somchai",
			Phone:          "0812345678",
			ShopType:       "food",
			Day:            entity.DaySaturday,
			BookingDate:    date,
			Booths:         []string{"A-01"},
			DeclaredAmount: 100,
			PaymentSlip:    "slips/abc.jpg",
		}

		repoMock.On("IsOpenDate", ctx, date).Return(true, nil)
		repoMock.On("FindReservedBoothsByDate", ctx, date).Return([]entity.ReservedBooth{}, nil)
		repoMock.On("FindHeldBooths", ctx, date).Return(map[string]string{}, nil)

		_, err := uc.CreateBooking(ctx, &payload, uuid.New().String(), "somchai@test.com")

		assert.Error(t, err)
		assert.Equal(t, 400, errors.GetStatus(err))
	})

	t.Run("booth already reserved", func(t *testing.T) {
		setup()
		defer teardown()

		date := nextMarketDate(time.Saturday)
		payload := request.CreateBooking{
			StoreName:      "Somchai Grill",
			OwnerName:      "somchai",
			Phone:          "0812345678",
			ShopType:       "food",
			Day:            entity.DaySaturday,
			BookingDate:    date,
			Booths:         []string{"A-01"},
			DeclaredAmount: 500,
			PaymentSlip:    "slips/abc.jpg",
		}

		repoMock.On("IsOpenDate", ctx, date).Return(true, nil)
		repoMock.On("FindReservedBoothsByDate", ctx, date).Return([]entity.ReservedBooth{
			{BoothID: "A-01", UserID: uuid.New(), Status: entity.StatusPending},
		}, nil)
		repoMock.On("FindHeldBooths", ctx, date).Return(map[string]string{}, nil)

		_, err := uc.CreateBooking(ctx, &payload, uuid.New().String(), "somchai@test.com")

		assert.Error(t, err)
		assert.Equal(t, 409, errors.GetStatus(err))
	})

	t.Run("more than three booths", func(t *testing.T) {
		setup()
		defer teardown()

		date := nextMarketDate(time.Saturday)
		payload := request.CreateBooking{
			StoreName:      "Somchai Grill",
			OwnerName:      "somchai",
			Phone:          "0812345678",
			ShopType:       "food",
			Day:            entity.DaySaturday,
			BookingDate:    date,
			Booths:         []string{"A-01", "A-02", "A-03", "A-04"},
			DeclaredAmount: 2000,
			PaymentSlip:    "slips/abc.jpg",
		}

		repoMock.On("IsOpenDate", ctx, date).Return(true, nil)
		repoMock.On("FindReservedBoothsByDate", ctx, date).Return([]entity.ReservedBooth{}, nil)
		repoMock.On("FindHeldBooths", ctx, date).Return(map[string]string{}, nil)

		_, err := uc.CreateBooking(ctx, &payload, uuid.New().String(), "somchai@test.com")

		assert.Error(t, err)
		assert.Equal(t, 400, errors.GetStatus(err))
	})
}

func TestSubmitPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		setup()
		defer teardown()

		userID := uuid.New()
		bookingID := uuid.New()
		booking := entity.Booking{
			ID:          bookingID,
			UserID:      userID,
			StoreName:   "Somchai Grill",
			Status:      entity.StatusPaymentPending,
			TotalPrice:  1200,
			BookingDate: time.Now().AddDate(0, 0, 7),
		}
		payment := entity.Payment{
			BookingID: bookingID,
			Amount:    1200,
			Currency:  "THB",
			Status:    entity.StatusPaymentPending,
			TaskID:    "task-1",
		}
		updated := booking
		updated.Status = entity.StatusPending

		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(booking, nil)
		repoMock.On("FindPaymentByBookingID", ctx, bookingID.String()).Return(payment, nil)
		repoMock.On("DeleteTaskScheduler", ctx, "task-1").Return(nil)
		repoMock.On("UpdatePayment", ctx, mock.Anything).Return(nil)
		repoMock.On("UpdateBookingStatus", ctx, bookingID.String(), entity.StatusPending).Return(updated, nil)
		repoMock.On("FindReservationsByBookingID", ctx, bookingID.String()).Return([]entity.Reservation{
			{BookingID: bookingID, BoothID: "A-01"},
		}, nil)

		payload := request.SubmitPayment{Amount: 1200, PaymentSlip: "slips/abc.jpg"}
		resp, err := uc.SubmitPayment(ctx, bookingID.String(), &payload, userID.String())

		assert.NoError(t, err)
		assert.Equal(t, entity.StatusPending, resp.Status)
		assert.Equal(t, []string{"A-01"}, resp.Booths)
	})

	t.Run("not the owner", func(t *testing.T) {
		setup()
		defer teardown()

		bookingID := uuid.New()
		booking := entity.Booking{
			ID:     bookingID,
			UserID: uuid.New(),
			Status: entity.StatusPaymentPending,
		}
		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(booking, nil)

		payload := request.SubmitPayment{Amount: 1200, PaymentSlip: "slips/abc.jpg"}
		_, err := uc.SubmitPayment(ctx, bookingID.String(), &payload, uuid.New().String())

		assert.Error(t, err)
		assert.Equal(t, 403, errors.GetStatus(err))
	})

	t.Run("wrong amount", func(t *testing.T) {
		setup()
		defer teardown()

		userID := uuid.New()
		bookingID := uuid.New()
		booking := entity.Booking{
			ID:         bookingID,
			UserID:     userID,
			Status:     entity.StatusPaymentPending,
			TotalPrice: 1200,
		}
		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(booking, nil)

		payload := request.SubmitPayment{Amount: 500, PaymentSlip: "slips/abc.jpg"}
		_, err := uc.SubmitPayment(ctx, bookingID.String(), &payload, userID.String())

		assert.Error(t, err)
		assert.Equal(t, 400, errors.GetStatus(err))
	})

	t.Run("not awaiting payment", func(t *testing.T) {
		setup()
		defer teardown()

		userID := uuid.New()
		bookingID := uuid.New()
		booking := entity.Booking{
			ID:         bookingID,
			UserID:     userID,
			Status:     entity.StatusPending,
			TotalPrice: 1200,
		}
		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(booking, nil)

		payload := request.SubmitPayment{Amount: 1200, PaymentSlip: "slips/abc.jpg"}
		_, err := uc.SubmitPayment(ctx, bookingID.String(), &payload, userID.String())

		assert.Error(t, err)
		assert.Equal(t, 422, errors.GetStatus(err))
	})
}

func TestUpdateBookingStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("approve pending booking", func(t *testing.T) {
		setup()
		defer teardown()

		bookingID := uuid.New()
		booking := entity.Booking{
			ID:          bookingID,
			UserID:      uuid.New(),
			Status:      entity.StatusPending,
			TotalPrice:  500,
			BookingDate: time.Now().AddDate(0, 0, 7),
		}
		approved := booking
		approved.Status = entity.StatusApproved
		reservations := []entity.Reservation{{BookingID: bookingID, BoothID: "A-01"}}

		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(booking, nil)
		repoMock.On("UpdateBookingStatus", ctx, bookingID.String(), entity.StatusApproved).Return(approved, nil)
		repoMock.On("FindReservationsByBookingID", ctx, bookingID.String()).Return(reservations, nil)
		repoMock.On("SyncBookingToMarket", ctx, approved, reservations).Return(nil)
		repoMock.On("FindPaymentByBookingID", ctx, bookingID.String()).Return(entity.Payment{}, nil)

		resp, err := uc.UpdateBookingStatus(ctx, bookingID.String(), entity.StatusApproved)

		assert.NoError(t, err)
		assert.Equal(t, entity.StatusApproved, resp.Status)
	})

	t.Run("reject releases reservations", func(t *testing.T) {
		setup()
		defer teardown()

		bookingID := uuid.New()
		bookingDate := time.Now().AddDate(0, 0, 7)
		booking := entity.Booking{
			ID:          bookingID,
			UserID:      uuid.New(),
			Status:      entity.StatusPending,
			TotalPrice:  500,
			BookingDate: bookingDate,
		}
		rejected := booking
		rejected.Status = entity.StatusRejected
		reservations := []entity.Reservation{{BookingID: bookingID, BoothID: "A-01"}}

		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(booking, nil)
		repoMock.On("UpdateBookingStatus", ctx, bookingID.String(), entity.StatusRejected).Return(rejected, nil)
		repoMock.On("FindReservationsByBookingID", ctx, bookingID.String()).Return(reservations, nil)
		repoMock.On("DeleteReservationsByBookingID", ctx, bookingID.String()).Return(nil)
		repoMock.On("ReleaseBoothHolds", ctx, bookingDate.Format("2006-01-02"), []string{"A-01"}).Return(nil)
		repoMock.On("FindPaymentByBookingID", ctx, bookingID.String()).Return(entity.Payment{}, nil)

		resp, err := uc.UpdateBookingStatus(ctx, bookingID.String(), entity.StatusRejected)

		assert.NoError(t, err)
		assert.Equal(t, entity.StatusRejected, resp.Status)
		repoMock.AssertCalled(t, "DeleteReservationsByBookingID", ctx, bookingID.String())
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		setup()
		defer teardown()

		bookingID := uuid.New()
		booking := entity.Booking{
			ID:          bookingID,
			UserID:      uuid.New(),
			Status:      entity.StatusApproved,
			BookingDate: time.Now().AddDate(0, 0, 7),
		}

		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(booking, nil)
		repoMock.On("FindReservationsByBookingID", ctx, bookingID.String()).Return([]entity.Reservation{}, nil)
		repoMock.On("FindPaymentByBookingID", ctx, bookingID.String()).Return(entity.Payment{}, nil)

		resp, err := uc.UpdateBookingStatus(ctx, bookingID.String(), entity.StatusApproved)

		assert.NoError(t, err)
		assert.Equal(t, entity.StatusApproved, resp.Status)
		repoMock.AssertNotCalled(t, "UpdateBookingStatus", ctx, bookingID.String(), entity.StatusApproved)
	})

	t.Run("terminal booking rejected", func(t *testing.T) {
		setup()
		defer teardown()

		bookingID := uuid.New()
		booking := entity.Booking{
			ID:     bookingID,
			UserID: uuid.New(),
			Status: entity.StatusRejected,
		}

		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(booking, nil)

		_, err := uc.UpdateBookingStatus(ctx, bookingID.String(), entity.StatusApproved)

		assert.Error(t, err)
		assert.Equal(t, 422, errors.GetStatus(err))
	})
}

func TestCancelBooking(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		userID := uuid.New()
		bookingID := uuid.New()
		bookingDate := time.Now().AddDate(0, 0, 7)
		booking := entity.Booking{
			ID:          bookingID,
			UserID:      userID,
			Status:      entity.StatusPending,
			BookingDate: bookingDate,
		}
		cancelled := booking
		cancelled.Status = entity.StatusCancelled

		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(booking, nil)
		repoMock.On("FindReservationsByBookingID", ctx, bookingID.String()).Return([]entity.Reservation{
			{BookingID: bookingID, BoothID: "B-02"},
		}, nil)
		repoMock.On("UpdateBookingStatus", ctx, bookingID.String(), entity.StatusCancelled).Return(cancelled, nil)
		repoMock.On("DeleteReservationsByBookingID", ctx, bookingID.String()).Return(nil)
		repoMock.On("ReleaseBoothHolds", ctx, bookingDate.Format("2006-01-02"), []string{"B-02"}).Return(nil)
		repoMock.On("FindPaymentByBookingID", ctx, bookingID.String()).Return(entity.Payment{TaskID: "task-1"}, nil)
		repoMock.On("DeleteTaskScheduler", ctx, "task-1").Return(nil)
		repoMock.On("UpdatePayment", ctx, mock.Anything).Return(nil)

		err := uc.CancelBooking(ctx, bookingID.String(), userID.String())

		assert.NoError(t, err)
	})
}

func TestSetPaymentExpired(t *testing.T) {
	ctx := context.Background()

	t.Run("expires pending payment", func(t *testing.T) {
		setup()
		defer teardown()

		bookingID := uuid.New()
		bookingDate := time.Now().AddDate(0, 0, 7)
		booking := entity.Booking{
			ID:          bookingID,
			UserID:      uuid.New(),
			Status:      entity.StatusPaymentPending,
			BookingDate: bookingDate,
		}
		cancelled := booking
		cancelled.Status = entity.StatusCancelled

		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(booking, nil)
		repoMock.On("FindReservationsByBookingID", ctx, bookingID.String()).Return([]entity.Reservation{
			{BookingID: bookingID, BoothID: "A-01"},
		}, nil)
		repoMock.On("UpdateBookingStatus", ctx, bookingID.String(), entity.StatusCancelled).Return(cancelled, nil)
		repoMock.On("DeleteReservationsByBookingID", ctx, bookingID.String()).Return(nil)
		repoMock.On("ReleaseBoothHolds", ctx, bookingDate.Format("2006-01-02"), []string{"A-01"}).Return(nil)
		repoMock.On("FindPaymentByBookingID", ctx, bookingID.String()).Return(entity.Payment{TaskID: "task-1"}, nil)
		repoMock.On("DeleteTaskScheduler", ctx, "task-1").Return(nil)
		repoMock.On("UpdatePayment", ctx, mock.Anything).Return(nil)

		err := uc.SetPaymentExpired(ctx, &request.PaymentExpiration{
			BookingID:   bookingID.String(),
			BookingDate: bookingDate.Format("2006-01-02"),
			BoothIDs:    []string{"A-01"},
		})

		assert.NoError(t, err)
	})

	t.Run("already paid booking untouched", func(t *testing.T) {
		setup()
		defer teardown()

		bookingID := uuid.New()
		booking := entity.Booking{
			ID:     bookingID,
			UserID: uuid.New(),
			Status: entity.StatusPending,
		}

		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(booking, nil)

		err := uc.SetPaymentExpired(ctx, &request.PaymentExpiration{
			BookingID:   bookingID.String(),
			BookingDate: "2026-09-05",
			BoothIDs:    []string{"A-01"},
		})

		assert.NoError(t, err)
		repoMock.AssertNotCalled(t, "UpdateBookingStatus", ctx, bookingID.String(), entity.StatusCancelled)
	})
}

func TestCountPendingBookings(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repoMock.On("CountBookingsByStatus", ctx, entity.StatusPending).Return(int64(4), nil)

		resp, err := uc.CountPendingBookings(ctx)

		assert.NoError(t, err)
		assert.Equal(t, int64(4), resp.Count)
	})
}
