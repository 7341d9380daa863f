package request

// CreateBooking is the canonical submission payload. It unifies the
// contact step and the payment step of the booking wizard.
type CreateBooking struct {
	StoreName         string   `json:"store_name" validate:"required"`
	OwnerName         string   `json:"owner_name"`
	Phone             string   `json:"phone"`
	Email             string   `json:"email" validate:"omitempty,email"`
	ShopType          string   `json:"shop_type" validate:"required,oneof=food clothing goods other"`
	Day               string   `json:"day" validate:"required,oneof=saturday sunday"`
	BookingDate       string   `json:"booking_date" validate:"required,datetime=2006-01-02"`
	Booths            []string `json:"booths" validate:"required,min=1,max=3,dive,required"`
	DeclaredAmount    float64  `json:"declared_amount"`
	PaymentSlip       string   `json:"payment_slip"`
	SlipMismatch      bool     `json:"slip_mismatch"`
	MismatchConfirmed bool     `json:"mismatch_confirmed"`
	DeferPayment      bool     `json:"defer_payment"`
}

// HoldSelection marks stalls as pending while the user finishes the
// wizard. Holds expire on their own.
type HoldSelection struct {
	Day         string   `json:"day" validate:"required,oneof=saturday sunday"`
	BookingDate string   `json:"booking_date" validate:"required,datetime=2006-01-02"`
	Booths      []string `json:"booths" validate:"required,min=1,max=3,dive,required"`
}

type SubmitPayment struct {
	Amount      float64 `json:"amount" validate:"required"`
	PaymentSlip string  `json:"payment_slip" validate:"required"`
}

type UpdateBookingStatus struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

type SlipCheck struct {
	RecognizedText string  `json:"recognized_text"`
	ExpectedTotal  float64 `json:"expected_total" validate:"required"`
}

type PaymentExpiration struct {
	BookingID   string   `json:"booking_id" validate:"required"`
	BookingDate string   `json:"booking_date" validate:"required"`
	BoothIDs    []string `json:"booth_ids" validate:"required"`
}

// BookingEvent is the message published to the booking events stream and
// consumed by the notification handler.
type BookingEvent struct {
	Type        string  `json:"type" validate:"required"`
	BookingID   string  `json:"booking_id" validate:"required"`
	StoreName   string  `json:"store_name"`
	Email       string  `json:"email"`
	Status      string  `json:"status"`
	TotalPrice  float64 `json:"total_price"`
	BookingDate string  `json:"booking_date"`
}

type PoisonedQueue struct {
	TopicTarget string      `json:"topic_target" validate:"required"`
	ErrorMsg    string      `json:"error_msg" validate:"required"`
	Payload     interface{} `json:"payload" validate:"required"`
}
