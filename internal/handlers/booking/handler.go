package booking

import (
	"agenda/infras/otel"
	"agenda/internal/domains/booking/model"
	"agenda/internal/domains/booking/model/dto"
	"agenda/internal/domains/booking/service"
	"agenda/shared/constant"
	gDto "agenda/shared/dto"
	"agenda/shared/failure"
	"agenda/shared/validator"
	"agenda/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookingsByDate)
		routerGroup.Get("/recent", handler.GetRecentBookings)
		routerGroup.Get("/calendar", handler.GetCalendar)
		routerGroup.Get("/availability", handler.GetAvailability)
		routerGroup.Delete("/{id}", handler.CancelBooking)
	})

	router.Get("/catalog", handler.GetCatalog)
}

// logFailure keeps client errors at warn level; everything else was already logged with a stack.
func logFailure(err error, msg string) {
	if failure.IsFailure(err) {
		log.Warn().Err(err).Msg(msg)

		return
	}

	log.Error().Err(err).Msg(msg)
}

// CreateBooking reserves a time slot at a location.
// @Summary Create a booking
// @Description Reserve one time slot at one location on a date. A slot can be held by a single booking.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse] "Booking created"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error "Time slot already booked for this location"
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		logFailure(err, "failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created " + res.ID)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetBookingsByDate lists the bookings of one day.
// @Summary List bookings by date
// @Description List every booking on the given date, ordered by time slot and location.
// @Tags Booking
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[[]dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
func (handler *Handler) GetBookingsByDate(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingsByDate")
	defer scope.End()

	date := request.URL.Query().Get(constant.RequestParamDate)

	res, err := handler.service.GetByDate(ctx, date)
	if err != nil {
		scope.TraceError(err)
		logFailure(err, "failed to list bookings by date")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetRecentBookings lists the newest bookings.
// @Summary List recent bookings
// @Description List the most recently created bookings, newest first.
// @Tags Booking
// @Produce json
// @Param limit query int false "Maximum number of bookings (default 10, max 50)"
// @Success 200 {object} response.Data[[]dto.BookingResponse]
// @Failure 500 {object} response.Error
// @Router /v1/bookings/recent [get]
func (handler *Handler) GetRecentBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRecentBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.LimitFromRequest(request, 0, constant.MaxValueRecentLimit)

	res, err := handler.service.Recent(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		logFailure(err, "failed to list recent bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetCalendar groups a month's bookings by day.
// @Summary Month calendar
// @Description Bookings of a month keyed by date. Days without bookings are omitted.
// @Tags Booking
// @Produce json
// @Param month query string true "Month (YYYY-MM)"
// @Success 200 {object} response.Data[dto.CalendarResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/calendar [get]
func (handler *Handler) GetCalendar(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCalendar")
	defer scope.End()

	month := request.URL.Query().Get(constant.RequestParamMonth)

	res, err := handler.service.Calendar(ctx, month)
	if err != nil {
		scope.TraceError(err)
		logFailure(err, "failed to build calendar")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetAvailability reports which time slots are still free.
// @Summary Slot availability
// @Description Every time slot of the date for one location with an available flag.
// @Tags Booking
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param location query string true "Location"
// @Success 200 {object} response.Data[dto.AvailabilityResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/availability [get]
func (handler *Handler) GetAvailability(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	req := dto.AvailabilityRequest{
		Date:     request.URL.Query().Get(constant.RequestParamDate),
		Location: model.Location(request.URL.Query().Get(constant.RequestParamLocation)),
	}

	res, err := handler.service.Availability(ctx, req)
	if err != nil {
		scope.TraceError(err)
		logFailure(err, "failed to compute availability")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// CancelBooking deletes a booking.
// @Summary Cancel a booking
// @Description Delete the booking with the given id. Cancelling twice returns 404.
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking cancelled"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [delete]
func (handler *Handler) CancelBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.Cancel(ctx, id); err != nil {
		scope.TraceError(err)
		logFailure(err, "failed to cancel booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking cancelled " + id)

	response.WithMessage(writer, http.StatusOK, "Booking cancelled successfully")
}

// GetCatalog lists the bookable time slots and locations.
// @Summary Catalog
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[dto.CatalogResponse]
// @Router /v1/catalog [get]
func (handler *Handler) GetCatalog(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCatalog")
	defer scope.End()

	response.WithJSON(writer, http.StatusOK, handler.service.Catalog(ctx))
}
