package model

import (
	"agenda/config"
	"errors"
	"slices"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldRequesterName = "requester_name"
	FieldBookingDate   = "booking_date"
	FieldTimeSlot      = "time_slot"
	FieldLocation      = "location"
	FieldCreatedAt     = "created_at"
)

var (
	ErrUnknownTimeSlot = errors.New("unknown time slot")
	ErrUnknownLocation = errors.New("unknown location")
)

// Booking is one reservation of a location during a time slot on a date.
// (BookingDate, TimeSlot, Location) is unique across the table.
type Booking struct {
	ID            string    `db:"id"`
	RequesterName string    `db:"requester_name"`
	BookingDate   time.Time `db:"booking_date"`
	TimeSlot      TimeSlot  `db:"time_slot"`
	Location      Location  `db:"location"`
	CreatedAt     time.Time `db:"created_at"`
}

// TimeSlot is a labeled "start/end" class period.
type TimeSlot string

const (
	TimeSlot0710 TimeSlot = "07:10/08:00"
	TimeSlot0800 TimeSlot = "08:00/08:50"
	TimeSlot0920 TimeSlot = "09:20/10:10"
	TimeSlot1010 TimeSlot = "10:10/11:00"
	TimeSlot1100 TimeSlot = "11:00/11:50"
	TimeSlot1150 TimeSlot = "11:50/12:40"
	TimeSlot1310 TimeSlot = "13:10/14:00"
	TimeSlot1400 TimeSlot = "14:00/14:50"
	TimeSlot1450 TimeSlot = "14:50/15:40"
	TimeSlot1610 TimeSlot = "16:10/17:00"
	TimeSlot1700 TimeSlot = "17:00/17:50"
)

// TimeSlots returns the slots in day order.
func TimeSlots() []TimeSlot {
	return []TimeSlot{
		TimeSlot0710, TimeSlot0800, TimeSlot0920, TimeSlot1010,
		TimeSlot1100, TimeSlot1150, TimeSlot1310, TimeSlot1400,
		TimeSlot1450, TimeSlot1610, TimeSlot1700,
	}
}

func (t TimeSlot) Validate(_ *config.Config) error {
	if !slices.Contains(TimeSlots(), t) {
		return ErrUnknownTimeSlot
	}

	return nil
}

func (t TimeSlot) String() string {
	return string(t)
}

// Location names a bookable room.
type Location string

const (
	LocationInformatica Location = "Informática"
	LocationAuditorio   Location = "Auditório"
	LocationQuimica     Location = "Química"
)

// Locations returns the configured rooms, or the default set when APP_LOCATIONS is empty.
func Locations(cfg *config.Config) []Location {
	if cfg == nil || len(cfg.App.Locations) == 0 {
		return []Location{LocationInformatica, LocationAuditorio, LocationQuimica}
	}

	locations := make([]Location, 0, len(cfg.App.Locations))
	for _, name := range cfg.App.Locations {
		locations = append(locations, Location(name))
	}

	return locations
}

func (l Location) Validate(cfg *config.Config) error {
	if !slices.Contains(Locations(cfg), l) {
		return ErrUnknownLocation
	}

	return nil
}

func (l Location) String() string {
	return string(l)
}
