package room

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/room/model/dto"
	"frontdesk/internal/domains/room/service"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/response"
)

type Handler struct {
	service    service.Room
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.Room, middleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.RequireStaff)
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/{id}", handler.GetRoomByID)
		routerGroup.Put("/{id}/status", handler.UpdateRoomStatus)
	})
}

// GetRooms retrieves rooms matching the query filters.
// @Summary Get all rooms
// @Description Retrieve rooms from the room service. Unknown filter keys are rejected.
// @Tags Room
// @Produce json
// @Param type query string false "Filter by room type"
// @Param status query string false "Filter by room status"
// @Param viewType query string false "Filter by view type"
// @Param minPrice query number false "Minimum price per night"
// @Param maxPrice query number false "Maximum price per night"
// @Param maxGuests query int false "Minimum guest capacity"
// @Param bedCount query int false "Minimum bed count"
// @Param checkInDate query string false "Availability window start (YYYY-MM-DD)"
// @Param checkOutDate query string false "Availability window end (YYYY-MM-DD)"
// @Success 200 {object} dto.GetRoomsResponse "List of rooms"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms [get]
// @Security BearerAuth
func (handler *Handler) GetRooms(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	raw := map[string]string{}
	for key := range request.URL.Query() {
		raw[key] = request.URL.Query().Get(key)
	}

	filter, err := dto.NewFilter(raw)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("rejected room filter")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.GetAll(ctx, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetRoomByID retrieves one room.
// @Summary Get a room
// @Tags Room
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} dto.RoomResponse "Room detail"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/rooms/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetRoomByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	id, err := strconv.ParseInt(chi.URLParam(request, constant.RequestParamID), 10, 64)
	if err != nil {
		response.WithError(writer, failure.BadRequestFromString("id must be an integer"))

		return
	}

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to get room")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// UpdateRoomStatus sets the housekeeping status of a room.
// @Summary Update room status
// @Tags Room
// @Accept json
// @Produce json
// @Param id path int true "Room ID"
// @Param request body dto.UpdateRoomStatusRequest true "Update Room Status Request"
// @Success 200 {object} response.Message "Room status updated successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id}/status [put]
// @Security BearerAuth
func (handler *Handler) UpdateRoomStatus(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoomStatus")
	defer scope.End()

	id, err := strconv.ParseInt(chi.URLParam(request, constant.RequestParamID), 10, 64)
	if err != nil {
		response.WithError(writer, failure.BadRequestFromString("id must be an integer"))

		return
	}

	req := dto.UpdateRoomStatusRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate room status request")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to update room status")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Room status updated successfully")
}
