package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/dashboard/service"
	"frontdesk/shared/constant"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/response"
)

type Handler struct {
	service    service.Dashboard
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.Dashboard, middleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/dashboard", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.RequireStaff)
		routerGroup.Get("/summary", handler.GetSummary)
	})
}

// GetSummary aggregates the day's operational numbers.
// @Summary Get the dashboard summary
// @Description Aggregate guest, room and booking data into the operator dashboard counters.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} dto.SummaryResponse "Dashboard summary"
// @Failure 500 {object} response.Error
// @Router /v1/dashboard/summary [get]
// @Security BearerAuth
func (handler *Handler) GetSummary(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSummary")
	defer scope.End()

	res, err := handler.service.Summary(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get dashboard summary")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
