package model_test

import (
	"agenda/config"
	"agenda/internal/domains/booking/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeSlotValidate(t *testing.T) {
	assert.Len(t, model.TimeSlots(), 11)

	for _, slot := range model.TimeSlots() {
		assert.NoError(t, slot.Validate(nil), slot)
	}

	assert.ErrorIs(t, model.TimeSlot("07:00/08:00").Validate(nil), model.ErrUnknownTimeSlot)
	assert.ErrorIs(t, model.TimeSlot("").Validate(nil), model.ErrUnknownTimeSlot)
}

func TestLocations(t *testing.T) {
	t.Run("default set", func(t *testing.T) {
		cfg := &config.Config{}

		assert.Equal(t, []model.Location{
			model.LocationInformatica,
			model.LocationAuditorio,
			model.LocationQuimica,
		}, model.Locations(cfg))
		assert.NoError(t, model.LocationQuimica.Validate(cfg))
		assert.ErrorIs(t, model.Location("Biblioteca").Validate(cfg), model.ErrUnknownLocation)
	})

	t.Run("configured set", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.App.Locations = []string{"Biblioteca", "Ginásio"}

		assert.Equal(t, []model.Location{"Biblioteca", "Ginásio"}, model.Locations(cfg))
		assert.NoError(t, model.Location("Biblioteca").Validate(cfg))
		assert.ErrorIs(t, model.LocationQuimica.Validate(cfg), model.ErrUnknownLocation)
	})
}
