package entity

import "errors"

var (
	// ErrSelectionLimit signals a 4th toggle on a full selection. The
	// selection itself is left untouched.
	ErrSelectionLimit = errors.New("selection limit reached")

	// ErrBoothUnavailable signals a toggle on a booth that is not available.
	ErrBoothUnavailable = errors.New("booth is not available")
)

// Selection tracks the stalls tentatively chosen for one booking.
// Toggling an already-selected booth removes it; switching the market day
// empties the selection.
type Selection struct {
	day    string
	booths []Booth
}

func NewSelection(day string) *Selection {
	return &Selection{day: day}
}

func (s *Selection) Toggle(booth Booth) error {
	for i, b := range s.booths {
		if b.ID == booth.ID {
			s.booths = append(s.booths[:i], s.booths[i+1:]...)
			return nil
		}
	}

	if booth.Status != BoothAvailable {
		return ErrBoothUnavailable
	}

	if len(s.booths) >= MaxBoothsPerBooking {
		return ErrSelectionLimit
	}

	s.booths = append(s.booths, booth)
	return nil
}

// SetDay switches the day filter, clearing the selection when it changes.
func (s *Selection) SetDay(day string) {
	if s.day != day {
		s.booths = nil
	}
	s.day = day
}

func (s *Selection) Day() string {
	return s.day
}

func (s *Selection) Booths() []Booth {
	out := make([]Booth, len(s.booths))
	copy(out, s.booths)
	return out
}

func (s *Selection) IDs() []string {
	ids := make([]string, 0, len(s.booths))
	for _, b := range s.booths {
		ids = append(ids, b.ID)
	}
	return ids
}

func (s *Selection) Total() float64 {
	var total float64
	for _, b := range s.booths {
		total += b.Price
	}
	return total
}

func (s *Selection) Size() int {
	return len(s.booths)
}
