package response

import "stall-booking-service/internal/module/booking/models/entity"

type ZoneBooths struct {
	Zone   string         `json:"zone"`
	Price  float64        `json:"price"`
	Booths []entity.Booth `json:"booths"`
}

type BoothCatalog struct {
	Day   string       `json:"day"`
	Date  string       `json:"date"`
	Zones []ZoneBooths `json:"zones"`
}

type CreatedBooking struct {
	ID                string   `json:"id"`
	Status            string   `json:"status"`
	Booths            []string `json:"booths"`
	TotalPrice        float64  `json:"total_price"`
	PaymentExpiration string   `json:"payment_expiration,omitempty"`
}

type BookingDetail struct {
	ID          string   `json:"id"`
	StoreName   string   `json:"store_name"`
	OwnerName   string   `json:"owner_name"`
	Phone       string   `json:"phone"`
	Email       string   `json:"email,omitempty"`
	ShopType    string   `json:"shop_type"`
	Booths      []string `json:"booths"`
	BookingDate string   `json:"booking_date"`
	Status      string   `json:"status"`
	TotalPrice  float64  `json:"total_price"`
	PaymentSlip string   `json:"payment_slip,omitempty"`
	CreatedAt   string   `json:"created_at"`
}

type SlipCheckResult struct {
	Result string `json:"result"`
}

type PendingCount struct {
	Count int64 `json:"count"`
}
