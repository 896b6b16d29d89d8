package dto

import (
	"agenda/internal/domains/booking/model"
	"agenda/shared/constant"
	"agenda/shared/timezone"
	"time"
)

const (
	EventBookingCreated   = "booking.created"
	EventBookingCancelled = "booking.cancelled"
)

type CreateBookingRequest struct {
	RequesterName string         `json:"requester_name" validate:"required,notblank,max=100"`
	Date          string         `json:"date"           validate:"required,datetime=2006-01-02"`
	TimeSlot      model.TimeSlot `json:"time_slot"      validate:"required,agenda"`
	Location      model.Location `json:"location"       validate:"required,agenda"`
}

// ToModel expects a validated request. The id is left for the store to assign.
func (c *CreateBookingRequest) ToModel() (model.Booking, error) {
	date, err := time.Parse(constant.DateOnlyFormat, c.Date)
	if err != nil {
		return model.Booking{}, err //nolint:wrapcheck
	}

	return model.Booking{
		RequesterName: c.RequesterName,
		BookingDate:   date,
		TimeSlot:      c.TimeSlot,
		Location:      c.Location,
	}, nil
}

type AvailabilityRequest struct {
	Date     string         `json:"date"     validate:"required,datetime=2006-01-02"`
	Location model.Location `json:"location" validate:"required,agenda"`
}

type BookingResponse struct {
	ID            string `json:"id"`
	RequesterName string `json:"requester_name"`
	Date          string `json:"date"`
	TimeSlot      string `json:"time_slot"`
	Location      string `json:"location"`
	CreatedAt     string `json:"created_at"`
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.RequesterName = model.RequesterName
	// DATE values carry no zone; converting them would shift the day.
	r.Date = model.BookingDate.Format(constant.DateOnlyFormat)
	r.TimeSlot = model.TimeSlot.String()
	r.Location = model.Location.String()
	r.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
}

func FromModels(models []model.Booking) []BookingResponse {
	res := make([]BookingResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

// CalendarResponse groups a month's bookings by YYYY-MM-DD. Days without bookings are absent.
type CalendarResponse map[string][]BookingResponse

func (r CalendarResponse) FromModels(models []model.Booking) {
	for _, mod := range models {
		var booking BookingResponse

		booking.FromModel(mod)
		r[booking.Date] = append(r[booking.Date], booking)
	}
}

type SlotAvailability struct {
	TimeSlot      string `json:"time_slot"`
	Available     bool   `json:"available"`
	RequesterName string `json:"requester_name,omitempty"`
}

type AvailabilityResponse struct {
	Date     string             `json:"date"`
	Location string             `json:"location"`
	Slots    []SlotAvailability `json:"slots"`
}

// FromModels marks every slot taken by one of the bookings. bookings must already be
// restricted to the requested date and location.
func (r *AvailabilityResponse) FromModels(date string, location model.Location, bookings []model.Booking) {
	taken := make(map[model.TimeSlot]string, len(bookings))
	for _, booking := range bookings {
		taken[booking.TimeSlot] = booking.RequesterName
	}

	r.Date = date
	r.Location = location.String()
	r.Slots = make([]SlotAvailability, 0, len(model.TimeSlots()))

	for _, slot := range model.TimeSlots() {
		name, booked := taken[slot]

		r.Slots = append(r.Slots, SlotAvailability{
			TimeSlot:      slot.String(),
			Available:     !booked,
			RequesterName: name,
		})
	}
}

type CatalogResponse struct {
	TimeSlots []string `json:"time_slots"`
	Locations []string `json:"locations"`
}

func (r *CatalogResponse) FromModels(slots []model.TimeSlot, locations []model.Location) {
	r.TimeSlots = make([]string, len(slots))
	for i, slot := range slots {
		r.TimeSlots[i] = slot.String()
	}

	r.Locations = make([]string, len(locations))
	for i, location := range locations {
		r.Locations[i] = location.String()
	}
}

// BookingEvent is the payload published after a booking is created or cancelled.
type BookingEvent struct {
	Type       string          `json:"type"`
	Booking    BookingResponse `json:"booking"`
	OccurredAt string          `json:"occurred_at"`
}

func NewBookingEvent(eventType string, booking BookingResponse) BookingEvent {
	return BookingEvent{
		Type:       eventType,
		Booking:    booking,
		OccurredAt: timezone.Format(timezone.Now(), constant.DateFormat),
	}
}
