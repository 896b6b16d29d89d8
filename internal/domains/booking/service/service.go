package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"agenda/config"
	"agenda/infras/kafka"
	"agenda/infras/otel"
	"agenda/internal/domains/booking/model"
	"agenda/internal/domains/booking/model/dto"
	"agenda/internal/domains/booking/repository"
	"agenda/shared/constant"
	gDto "agenda/shared/dto"
	"agenda/shared/failure"
	"agenda/shared/logger"
	"agenda/shared/timezone"
	"agenda/shared/validator"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	MessageConflict = "time slot already booked for this location"
	MessageNotFound = "booking not found"
	MessageInvalid  = "invalid booking"
)

const (
	validateDate  = "required,datetime=2006-01-02"
	validateMonth = "required,datetime=2006-01"
	validateID    = "required,uuid"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id string) error
	GetByDate(ctx context.Context, date string) ([]dto.BookingResponse, error)
	Recent(ctx context.Context, params gDto.QueryParams) ([]dto.BookingResponse, error)
	Calendar(ctx context.Context, month string) (dto.CalendarResponse, error)
	Availability(ctx context.Context, req dto.AvailabilityRequest) (dto.AvailabilityResponse, error)
	Catalog(ctx context.Context) dto.CatalogResponse
}

type serviceImpl struct {
	repo   repository.Booking
	cfg    *config.Config
	events kafka.Client
	otel   otel.Otel
}

func New(repo repository.Booking, cfg *config.Config, events kafka.Client, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:   repo,
		cfg:    cfg,
		events: events,
		otel:   otel,
	}
}

// storageError logs err with its stack and hides it behind a wrapped error that the
// transport renders as a generic 500.
func storageError(err error, action string) error {
	logger.ErrorWithStack(err)

	return fmt.Errorf("failed to %s: %w", action, err)
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	booking, err := req.ToModel()
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date: %v", err)) //nolint:wrapcheck
	}

	booking, err = s.repo.Reserve(ctx, booking)

	switch {
	case errors.Is(err, repository.ErrConflict):
		log.Info().
			Str("date", req.Date).
			Str("time_slot", req.TimeSlot.String()).
			Str("location", req.Location.String()).
			Msg("booking rejected, slot already taken")

		return res, failure.Conflict(MessageConflict) //nolint:wrapcheck
	case errors.Is(err, repository.ErrInvalid):
		return res, failure.BadRequestFromString(MessageInvalid) //nolint:wrapcheck
	case err != nil:
		return res, storageError(err, "create booking")
	}

	res.FromModel(booking)
	s.publish(ctx, dto.EventBookingCreated, res)

	return res, nil
}

// Cancel deletes the booking. Ids that are not UUIDs cannot exist and are reported as not found.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if validator.ValidateVar(id, validateID) != nil {
		return failure.NotFound(MessageNotFound) //nolint:wrapcheck
	}

	err = s.repo.DeleteByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return failure.NotFound(MessageNotFound) //nolint:wrapcheck
	}

	if err != nil {
		return storageError(err, "cancel booking")
	}

	s.publish(ctx, dto.EventBookingCancelled, dto.BookingResponse{ID: id})

	return nil
}

func (s *serviceImpl) GetByDate(ctx context.Context, date string) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByDate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	day, err := s.parseDate(date)
	if err != nil {
		return res, err
	}

	bookings, err := s.repo.GetByDate(ctx, day)
	if err != nil {
		return res, storageError(err, "list bookings by date")
	}

	return dto.FromModels(bookings), nil
}

// Recent returns the newest bookings. A non-positive limit falls back to the configured
// default and larger limits are capped.
func (s *serviceImpl) Recent(ctx context.Context, params gDto.QueryParams) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Recent")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	limit := params.Limit
	if limit <= 0 {
		limit = s.cfg.App.RecentLimit
	}

	if limit <= 0 {
		limit = constant.DefaultValueRecentLimit
	}

	limit = min(limit, constant.MaxValueRecentLimit)
	scope.SetAttribute(constant.RequestParamLimit, limit)

	bookings, err := s.repo.GetRecent(ctx, limit)
	if err != nil {
		return res, storageError(err, "list recent bookings")
	}

	return dto.FromModels(bookings), nil
}

func (s *serviceImpl) Calendar(ctx context.Context, month string) (res dto.CalendarResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Calendar")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateVar(month, validateMonth); err != nil {
		return res, failure.BadRequestFromString("month must match the format " + constant.MonthFormat) //nolint:wrapcheck
	}

	start, err := time.Parse(constant.MonthFormat, month)
	if err != nil {
		return res, failure.BadRequest(err) //nolint:wrapcheck
	}

	first, last := timezone.MonthRange(start)

	bookings, err := s.repo.GetBetween(ctx, first, last)
	if err != nil {
		return res, storageError(err, "list bookings for month")
	}

	res = dto.CalendarResponse{}
	res.FromModels(bookings)

	return res, nil
}

func (s *serviceImpl) Availability(ctx context.Context, req dto.AvailabilityRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	day, err := time.Parse(constant.DateOnlyFormat, req.Date)
	if err != nil {
		return res, failure.BadRequest(err) //nolint:wrapcheck
	}

	bookings, err := s.repo.GetByDateAndLocation(ctx, day, req.Location)
	if err != nil {
		return res, storageError(err, "list bookings for availability")
	}

	res.FromModels(req.Date, req.Location, bookings)

	return res, nil
}

func (s *serviceImpl) Catalog(ctx context.Context) (res dto.CatalogResponse) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Catalog")
	defer scope.End()

	res.FromModels(model.TimeSlots(), model.Locations(s.cfg))

	return res
}

func (s *serviceImpl) parseDate(date string) (time.Time, error) {
	if err := validator.ValidateVar(date, validateDate); err != nil {
		return time.Time{}, failure.BadRequestFromString("date must match the format " + constant.DateOnlyFormat) //nolint:wrapcheck
	}

	day, err := time.Parse(constant.DateOnlyFormat, date)
	if err != nil {
		return time.Time{}, failure.BadRequest(err) //nolint:wrapcheck
	}

	return day, nil
}

// publish sends the event in the background. Failures are logged and never reach the caller.
func (s *serviceImpl) publish(ctx context.Context, eventType string, booking dto.BookingResponse) {
	event := dto.NewBookingEvent(eventType, booking)

	go func() {
		c := context.WithoutCancel(ctx)

		err := s.events.SendMessages(c, kafka.Message{Key: booking.ID, Value: event})
		if err != nil {
			log.Error().Err(err).Str("event", eventType).Str("id", booking.ID).Msg("failed to publish booking event")
		}
	}()
}
