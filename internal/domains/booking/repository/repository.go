package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"agenda/infras/otel"
	"agenda/infras/postgres"
	"agenda/internal/domains/booking/model"
	"agenda/shared"
	"agenda/shared/constant"
	gDto "agenda/shared/dto"
	gRepo "agenda/shared/repository"
	"agenda/shared/timezone"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrConflict means the (date, time slot, location) triple is already reserved.
	ErrConflict = errors.New("booking conflict")
	// ErrInvalid means a required field was empty or rejected by a table constraint.
	ErrInvalid = errors.New("invalid booking")
	// ErrNotFound means no booking has the given id.
	ErrNotFound = errors.New("booking not found")
)

type Booking interface {
	Reserve(ctx context.Context, booking model.Booking) (model.Booking, error)
	GetByDate(ctx context.Context, date time.Time) ([]model.Booking, error)
	GetByDateAndLocation(ctx context.Context, date time.Time, location model.Location) ([]model.Booking, error)
	GetBetween(ctx context.Context, from, to time.Time) ([]model.Booking, error)
	GetRecent(ctx context.Context, limit int) ([]model.Booking, error)
	DeleteByID(ctx context.Context, id string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

// slotOrdering keeps daily listings stable: slot labels sort chronologically as text.
var slotOrdering = gDto.QueryParams{
	SortBy:  strings.Join([]string{model.FieldBookingDate, model.FieldTimeSlot, model.FieldLocation}, ", "),
	SortDir: gDto.SortDirAsc,
}

func dateValue(date time.Time) string {
	return date.Format(constant.DateOnlyFormat)
}

// Reserve inserts the booking with a fresh id. Exclusivity is decided by the table's
// unique constraint in the same statement, so concurrent reservations of one triple
// leave exactly one row and the others get ErrConflict.
func (r *repositoryImpl) Reserve(ctx context.Context, booking model.Booking) (res model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Reserve")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if strings.TrimSpace(booking.RequesterName) == "" || booking.BookingDate.IsZero() ||
		booking.TimeSlot == "" || booking.Location == "" {
		return res, ErrInvalid
	}

	booking.ID = uuid.NewString()
	booking.CreatedAt = timezone.Now()

	scope.SetAttributes(map[string]any{
		model.FieldBookingDate: dateValue(booking.BookingDate),
		model.FieldTimeSlot:    booking.TimeSlot.String(),
		model.FieldLocation:    booking.Location.String(),
	})

	err = r.Insert(ctx, booking)

	switch {
	case errors.Is(err, gRepo.ErrDuplicate):
		return res, fmt.Errorf("%w: %w", ErrConflict, err)
	case errors.Is(err, gRepo.ErrConstraint):
		return res, fmt.Errorf("%w: %w", ErrInvalid, err)
	case err != nil:
		return res, fmt.Errorf("failed to reserve booking: %w", err)
	}

	return booking, nil
}

func (r *repositoryImpl) GetByDate(ctx context.Context, date time.Time) (res []model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetByDate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = r.GetAll(ctx, slotOrdering, shared.FilterByField(model.FieldBookingDate, dateValue(date), model.TableName))
	if err != nil {
		return res, fmt.Errorf("failed to list bookings by date: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) GetByDateAndLocation(ctx context.Context, date time.Time, location model.Location) (res []model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetByDateAndLocation")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			shared.FilterByField(model.FieldBookingDate, dateValue(date), model.TableName),
			shared.FilterByField(model.FieldLocation, location.String(), model.TableName),
		},
	}

	res, err = r.GetAll(ctx, slotOrdering, filter)
	if err != nil {
		return res, fmt.Errorf("failed to list bookings by date and location: %w", err)
	}

	return res, nil
}

// GetBetween lists bookings with from <= date <= to, both inclusive.
func (r *repositoryImpl) GetBetween(ctx context.Context, from, to time.Time) (res []model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetBetween")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterBetween(model.FieldBookingDate, dateValue(from), dateValue(to), model.TableName)

	res, err = r.GetAll(ctx, slotOrdering, filter)
	if err != nil {
		return res, fmt.Errorf("failed to list bookings between dates: %w", err)
	}

	return res, nil
}

// GetRecent lists the newest bookings by creation time.
func (r *repositoryImpl) GetRecent(ctx context.Context, limit int) (res []model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetRecent")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params := gDto.QueryParams{
		Limit:   limit,
		SortBy:  model.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}

	res, err = r.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		return res, fmt.Errorf("failed to list recent bookings: %w", err)
	}

	return res, nil
}

// DeleteByID is not idempotent: a second call for the same id returns ErrNotFound.
func (r *repositoryImpl) DeleteByID(ctx context.Context, id string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.DeleteByID")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = r.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if errors.Is(err, gRepo.ErrNoRowsAffected) {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	return nil
}
