package entity_test

import (
	"testing"

	"stall-booking-service/internal/module/booking/models/entity"

	"github.com/stretchr/testify/assert"
)

func availableBooth(id string, price float64) entity.Booth {
	return entity.Booth{ID: id, Zone: id[:1], Price: price, Status: entity.BoothAvailable}
}

func TestSelectionToggle(t *testing.T) {
	t.Run("adds and totals", func(t *testing.T) {
		sel := entity.NewSelection(entity.DaySaturday)

		assert.NoError(t, sel.Toggle(availableBooth("A-01", 500)))
		assert.NoError(t, sel.Toggle(availableBooth("B-03", 700)))
		assert.NoError(t, sel.Toggle(availableBooth("C-05", 1000)))

		assert.Equal(t, 3, sel.Size())
		assert.Equal(t, float64(2200), sel.Total())
		assert.Equal(t, []string{"A-01", "B-03", "C-05"}, sel.IDs())
	})

	t.Run("toggle again removes", func(t *testing.T) {
		sel := entity.NewSelection(entity.DaySaturday)

		assert.NoError(t, sel.Toggle(availableBooth("A-01", 500)))
		assert.NoError(t, sel.Toggle(availableBooth("A-01", 500)))

		assert.Equal(t, 0, sel.Size())
		assert.Equal(t, float64(0), sel.Total())
	})

	t.Run("fourth booth rejected, selection untouched", func(t *testing.T) {
		sel := entity.NewSelection(entity.DaySaturday)

		assert.NoError(t, sel.Toggle(availableBooth("A-01", 500)))
		assert.NoError(t, sel.Toggle(availableBooth("A-02", 500)))
		assert.NoError(t, sel.Toggle(availableBooth("A-03", 500)))

		err := sel.Toggle(availableBooth("A-04", 500))
		assert.ErrorIs(t, err, entity.ErrSelectionLimit)
		assert.Equal(t, []string{"A-01", "A-02", "A-03"}, sel.IDs())
	})

	t.Run("unavailable booth rejected", func(t *testing.T) {
		sel := entity.NewSelection(entity.DaySaturday)

		booked := availableBooth("B-01", 700)
		booked.Status = entity.BoothBooked

		err := sel.Toggle(booked)
		assert.ErrorIs(t, err, entity.ErrBoothUnavailable)
		assert.Equal(t, 0, sel.Size())
	})

	t.Run("removing a selected booth ignores its current status", func(t *testing.T) {
		sel := entity.NewSelection(entity.DaySaturday)

		booth := availableBooth("C-02", 1000)
		assert.NoError(t, sel.Toggle(booth))

		booth.Status = entity.BoothPending
		assert.NoError(t, sel.Toggle(booth))
		assert.Equal(t, 0, sel.Size())
	})
}

func TestSelectionSetDay(t *testing.T) {
	t.Run("switching day clears selection", func(t *testing.T) {
		sel := entity.NewSelection(entity.DaySaturday)
		assert.NoError(t, sel.Toggle(availableBooth("A-01", 500)))

		sel.SetDay(entity.DaySunday)
		assert.Equal(t, entity.DaySunday, sel.Day())
		assert.Equal(t, 0, sel.Size())
	})

	t.Run("same day keeps selection", func(t *testing.T) {
		sel := entity.NewSelection(entity.DaySaturday)
		assert.NoError(t, sel.Toggle(availableBooth("A-01", 500)))

		sel.SetDay(entity.DaySaturday)
		assert.Equal(t, 1, sel.Size())
	})
}
