package entity

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Booking lifecycle statuses. approved and rejected are terminal.
const (
	StatusPaymentPending = "payment_pending"
	StatusPending        = "pending"
	StatusApproved       = "approved"
	StatusRejected       = "rejected"
	StatusCancelled      = "cancelled"
)

// Booth display statuses derived from the reservation ledger and holds.
const (
	BoothAvailable = "available"
	BoothPending   = "pending"
	BoothBooked    = "booked"
)

type Booking struct {
	ID          uuid.UUID    `db:"id"`
	UserID      uuid.UUID    `db:"user_id"`
	StoreName   string       `db:"store_name"`
	OwnerName   string       `db:"owner_name"`
	Phone       string       `db:"phone"`
	Email       string       `db:"email"`
	ShopType    string       `db:"shop_type"`
	BookingDate time.Time    `db:"booking_date"`
	Status      string       `db:"status"`
	TotalPrice  float64      `db:"total_price"`
	CreatedAt   time.Time    `db:"created_at"`
	UpdatedAt   sql.NullTime `db:"updated_at"`
	DeletedAt   sql.NullTime `db:"deleted_at"`
}

// IsTerminal reports whether no further status transition is allowed.
func (b Booking) IsTerminal() bool {
	return b.Status == StatusApproved || b.Status == StatusRejected
}

// Reservation is one row of the reservation ledger. The unique
// (booth_id, booking_date) index on this table is what makes a stall
// exclusive for a date.
type Reservation struct {
	ID          int64     `db:"id"`
	BookingID   uuid.UUID `db:"booking_id"`
	BoothID     string    `db:"booth_id"`
	Zone        string    `db:"zone"`
	Price       float64   `db:"price"`
	BookingDate time.Time `db:"booking_date"`
}

type Payment struct {
	ID                int64        `db:"id"`
	BookingID         uuid.UUID    `db:"booking_id"`
	Amount            float64      `db:"amount"`
	Currency          string       `db:"currency"`
	Status            string       `db:"status"`
	PaymentSlip       string       `db:"payment_slip"`
	PaymentDate       sql.NullTime `db:"payment_date"`
	PaymentExpiration sql.NullTime `db:"payment_expiration"`
	TaskID            string       `db:"task_id"`
	CreatedAt         time.Time    `db:"created_at"`
	UpdatedAt         sql.NullTime `db:"updated_at"`
}

// ReservedBooth is the per-date view used to derive catalog statuses.
type ReservedBooth struct {
	BoothID string    `db:"booth_id"`
	UserID  uuid.UUID `db:"user_id"`
	Status  string    `db:"status"`
}
