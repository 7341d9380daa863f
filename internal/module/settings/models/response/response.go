package response

type OpenDates struct {
	Dates []string `json:"dates"`
}
