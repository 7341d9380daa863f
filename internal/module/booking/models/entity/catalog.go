package entity

import "fmt"

const (
	DaySaturday = "saturday"
	DaySunday   = "sunday"
)

// MaxBoothsPerBooking caps how many stalls a single booking may hold.
const MaxBoothsPerBooking = 3

type Booth struct {
	ID          string  `json:"id"`
	Zone        string  `json:"zone"`
	Price       float64 `json:"price"`
	Status      string  `json:"status"`
	IsMyBooking bool    `json:"is_my_booking"`
}

// zone price tiers are fixed per zone, not per booth
var zonePrices = map[string]float64{
	"A": 500,
	"B": 700,
	"C": 1000,
}

var zoneOrder = []string{"A", "B", "C"}

var dayZoneSizes = map[string]map[string]int{
	DaySaturday: {"A": 10, "B": 20, "C": 10},
	DaySunday:   {"A": 30, "B": 40, "C": 30},
}

// ZonePrice returns the price tier for a zone, false for unknown zones.
func ZonePrice(zone string) (float64, bool) {
	price, ok := zonePrices[zone]
	return price, ok
}

func Zones() []string {
	return zoneOrder
}

// GenerateCatalog produces the full stall list for a market day, every
// booth available. Reservation state is overlaid by the caller.
func GenerateCatalog(day string) ([]Booth, error) {
	sizes, ok := dayZoneSizes[day]
	if !ok {
		return nil, fmt.Errorf("unknown market day %q", day)
	}

	var booths []Booth
	for _, zone := range zoneOrder {
		for i := 1; i <= sizes[zone]; i++ {
			booths = append(booths, Booth{
				ID:     fmt.Sprintf("%s-%02d", zone, i),
				Zone:   zone,
				Price:  zonePrices[zone],
				Status: BoothAvailable,
			})
		}
	}

	return booths, nil
}
