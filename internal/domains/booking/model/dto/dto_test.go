package dto_test

import (
	"agenda/internal/domains/booking/model"
	"agenda/internal/domains/booking/model/dto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingRequest_ToModel(t *testing.T) {
	req := dto.CreateBookingRequest{
		RequesterName: "Ana",
		Date:          "2024-03-10",
		TimeSlot:      model.TimeSlot0710,
		Location:      model.LocationQuimica,
	}

	booking, err := req.ToModel()
	require.NoError(t, err)

	assert.Empty(t, booking.ID, "id is assigned by the store")
	assert.Equal(t, "Ana", booking.RequesterName)
	assert.Equal(t, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), booking.BookingDate)
	assert.Equal(t, model.TimeSlot0710, booking.TimeSlot)
	assert.Equal(t, model.LocationQuimica, booking.Location)

	req.Date = "2024-02-30"
	_, err = req.ToModel()
	assert.Error(t, err)
}

func TestBookingResponse_FromModel(t *testing.T) {
	booking := model.Booking{
		ID:            "b1",
		RequesterName: "Ana",
		BookingDate:   time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		TimeSlot:      model.TimeSlot0710,
		Location:      model.LocationQuimica,
		CreatedAt:     time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC),
	}

	var res dto.BookingResponse
	res.FromModel(booking)

	assert.Equal(t, "b1", res.ID)
	assert.Equal(t, "Ana", res.RequesterName)
	assert.Equal(t, "2024-03-10", res.Date)
	assert.Equal(t, "07:10/08:00", res.TimeSlot)
	assert.Equal(t, "Química", res.Location)
	assert.NotEmpty(t, res.CreatedAt)
}

func TestCalendarResponse_FromModels(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC) }

	res := dto.CalendarResponse{}
	res.FromModels([]model.Booking{
		{ID: "1", BookingDate: day(10), TimeSlot: model.TimeSlot0710, Location: model.LocationQuimica},
		{ID: "2", BookingDate: day(10), TimeSlot: model.TimeSlot0800, Location: model.LocationQuimica},
		{ID: "3", BookingDate: day(12), TimeSlot: model.TimeSlot0710, Location: model.LocationAuditorio},
	})

	assert.Len(t, res, 2)
	assert.Len(t, res["2024-03-10"], 2)
	assert.Len(t, res["2024-03-12"], 1)
	assert.NotContains(t, res, "2024-03-11")
}

func TestAvailabilityResponse_FromModels(t *testing.T) {
	var res dto.AvailabilityResponse
	res.FromModels("2024-03-10", model.LocationQuimica, []model.Booking{
		{RequesterName: "Ana", TimeSlot: model.TimeSlot0710, Location: model.LocationQuimica},
	})

	assert.Equal(t, "2024-03-10", res.Date)
	assert.Equal(t, "Química", res.Location)
	require.Len(t, res.Slots, len(model.TimeSlots()))

	assert.Equal(t, dto.SlotAvailability{TimeSlot: "07:10/08:00", Available: false, RequesterName: "Ana"}, res.Slots[0])

	for _, slot := range res.Slots[1:] {
		assert.True(t, slot.Available, slot.TimeSlot)
		assert.Empty(t, slot.RequesterName)
	}
}

func TestCatalogResponse_FromModels(t *testing.T) {
	var res dto.CatalogResponse
	res.FromModels(model.TimeSlots(), []model.Location{model.LocationAuditorio})

	assert.Len(t, res.TimeSlots, 11)
	assert.Equal(t, "07:10/08:00", res.TimeSlots[0])
	assert.Equal(t, "17:00/17:50", res.TimeSlots[10])
	assert.Equal(t, []string{"Auditório"}, res.Locations)
}

func TestNewBookingEvent(t *testing.T) {
	event := dto.NewBookingEvent(dto.EventBookingCreated, dto.BookingResponse{ID: "b1"})

	assert.Equal(t, "booking.created", event.Type)
	assert.Equal(t, "b1", event.Booking.ID)
	assert.NotEmpty(t, event.OccurredAt)
}
