package entity_test

import (
	"testing"

	"stall-booking-service/internal/module/booking/models/entity"

	"github.com/stretchr/testify/assert"
)

func TestSubmissionFlow(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		flow := entity.NewSubmissionFlow()
		assert.Equal(t, entity.FlowDetails, flow.State())

		assert.NoError(t, flow.SubmitDetails("somchai", "0812345678"))
		assert.Equal(t, entity.FlowPayment, flow.State())

		assert.NoError(t, flow.SubmitPayment(1200, 1200, "slip.jpg", false, false))
		assert.Equal(t, entity.FlowSubmitted, flow.State())
	})

	t.Run("missing contact", func(t *testing.T) {
		flow := entity.NewSubmissionFlow()
		assert.ErrorIs(t, flow.SubmitDetails("", "0812345678"), entity.ErrMissingContact)
		assert.ErrorIs(t, flow.SubmitDetails("somchai", ""), entity.ErrMissingContact)
		assert.Equal(t, entity.FlowDetails, flow.State())
	})

	t.Run("payment before details", func(t *testing.T) {
		flow := entity.NewSubmissionFlow()
		assert.ErrorIs(t, flow.SubmitPayment(1200, 1200, "slip.jpg", false, false), entity.ErrFlowState)
	})

	t.Run("amount mismatch", func(t *testing.T) {
		flow := entity.NewSubmissionFlow()
		assert.NoError(t, flow.SubmitDetails("somchai", "0812345678"))
		assert.ErrorIs(t, flow.SubmitPayment(1000, 1200, "slip.jpg", false, false), entity.ErrAmountMismatch)
		assert.Equal(t, entity.FlowPayment, flow.State())
	})

	t.Run("missing slip", func(t *testing.T) {
		flow := entity.NewSubmissionFlow()
		assert.NoError(t, flow.SubmitDetails("somchai", "0812345678"))
		assert.ErrorIs(t, flow.SubmitPayment(1200, 1200, "", false, false), entity.ErrMissingSlip)
	})

	t.Run("reported mismatch needs confirmation", func(t *testing.T) {
		flow := entity.NewSubmissionFlow()
		assert.NoError(t, flow.SubmitDetails("somchai", "0812345678"))
		assert.ErrorIs(t, flow.SubmitPayment(1200, 1200, "slip.jpg", true, false), entity.ErrMismatchUnconfirmed)

		assert.NoError(t, flow.SubmitPayment(1200, 1200, "slip.jpg", true, true))
		assert.Equal(t, entity.FlowSubmitted, flow.State())
	})

	t.Run("double submit", func(t *testing.T) {
		flow := entity.NewSubmissionFlow()
		assert.NoError(t, flow.SubmitDetails("somchai", "0812345678"))
		assert.NoError(t, flow.SubmitPayment(1200, 1200, "slip.jpg", false, false))
		assert.ErrorIs(t, flow.SubmitPayment(1200, 1200, "slip.jpg", false, false), entity.ErrFlowState)
	})
}
