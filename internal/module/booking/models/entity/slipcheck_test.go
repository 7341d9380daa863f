package entity_test

import (
	"testing"

	"stall-booking-service/internal/module/booking/models/entity"

	"github.com/stretchr/testify/assert"
)

func TestCheckSlipAmount(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		expected float64
		result   string
	}{
		{"decimal amount present", "Transfer complete 1200.00 THB", 1200, entity.SlipCheckSuccess},
		{"integer amount present", "amount: 1200 baht", 1200, entity.SlipCheckSuccess},
		{"thousands separator stripped", "total 1,200.00", 1200, entity.SlipCheckSuccess},
		{"spaced digits stripped", "1 2 0 0", 1200, entity.SlipCheckSuccess},
		{"amount absent", "Transfer complete 999.00 THB", 1200, entity.SlipCheckFailed},
		{"empty text", "", 1200, entity.SlipCheckError},
		{"whitespace only", "   ", 1200, entity.SlipCheckError},
		{"fractional total needs decimals", "paid 750.50 THB", 750.5, entity.SlipCheckSuccess},
		{"fractional total integer form not matched", "paid 750 THB", 750.5, entity.SlipCheckFailed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.result, entity.CheckSlipAmount(tc.text, tc.expected))
		})
	}
}
