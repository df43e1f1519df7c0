package calendar

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/calendar/model/dto"
	"frontdesk/internal/domains/calendar/service"
	"frontdesk/shared/constant"
	"frontdesk/shared/daterange"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/response"
)

type Handler struct {
	service    service.Calendar
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.Calendar, middleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/calendar", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.RequireStaff)
		routerGroup.Get("/month", handler.GetMonthView)
		routerGroup.Get("/schedule", handler.GetScheduleView)
		routerGroup.Put("/bookings/{id}/move", handler.MoveBooking)
	})
}

// GetMonthView renders the month calendar grid.
// @Summary Get the month view
// @Description Render the booking calendar for one month. Defaults to the current month.
// @Tags Calendar
// @Produce json
// @Param year query int false "Year, e.g. 2024"
// @Param month query int false "Month number, 1 through 12"
// @Success 200 {object} dto.MonthViewResponse "Month grid"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/calendar/month [get]
// @Security BearerAuth
func (handler *Handler) GetMonthView(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMonthView")
	defer scope.End()

	now := timezone.Now()
	year := now.Year()
	month := now.Month()

	if raw := request.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.WithError(writer, failure.BadRequestFromString("year must be an integer"))

			return
		}

		year = parsed
	}

	if raw := request.URL.Query().Get("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 12 {
			response.WithError(writer, failure.BadRequestFromString("month must be an integer between 1 and 12"))

			return
		}

		month = time.Month(parsed)
	}

	res, err := handler.service.MonthView(ctx, year, month)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("year", year).Int("month", int(month)).Msg("failed to get month view")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetScheduleView renders the two-week room-by-day board.
// @Summary Get the schedule view
// @Description Render the fourteen day room scheduling board starting at the week of the given date. Defaults to today.
// @Tags Calendar
// @Produce json
// @Param date query string false "Anchor date (YYYY-MM-DD)"
// @Success 200 {object} dto.ScheduleViewResponse "Room-by-day grid"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/calendar/schedule [get]
// @Security BearerAuth
func (handler *Handler) GetScheduleView(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetScheduleView")
	defer scope.End()

	anchor := daterange.Normalize(timezone.Now())

	if raw := request.URL.Query().Get("date"); raw != "" {
		parsed, err := timezone.Parse(constant.DateOnlyFormat, raw)
		if err != nil {
			response.WithError(writer, failure.BadRequestFromString("date must be a calendar date in YYYY-MM-DD form"))

			return
		}

		anchor = parsed
	}

	res, err := handler.service.ScheduleView(ctx, anchor)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get schedule view")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// MoveBooking reschedules a booking to a new room and check-in date.
// @Summary Move a booking
// @Description Reschedule a booking, preserving its duration. Returns 409 when the destination is occupied.
// @Tags Calendar
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Param request body dto.MoveBookingRequest true "Move Booking Request"
// @Success 200 {object} dto.MoveBookingResponse "Move result"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/calendar/bookings/{id}/move [put]
// @Security BearerAuth
func (handler *Handler) MoveBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MoveBooking")
	defer scope.End()

	id, err := strconv.ParseInt(chi.URLParam(request, constant.RequestParamID), 10, 64)
	if err != nil {
		response.WithError(writer, failure.BadRequestFromString("id must be an integer"))

		return
	}

	req := dto.MoveBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate move booking request")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.MoveBooking(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to move booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking moved: " + strconv.FormatInt(id, 10))

	response.WithJSON(writer, http.StatusOK, res)
}
