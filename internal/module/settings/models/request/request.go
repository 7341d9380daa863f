package request

// ReplaceOpenDates swaps the whole bookable-dates list in one call, the
// way the admin calendar screen saves it.
type ReplaceOpenDates struct {
	Dates []string `json:"dates" validate:"required,dive,datetime=2006-01-02"`
}
