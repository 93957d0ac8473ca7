package admin

import (
	"net/http"

	"parkdz/infras/otel"
	"parkdz/internal/domains/admin/service"
	"parkdz/shared/constant"
	"parkdz/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Admin
	otel    otel.Otel
}

func New(service service.Admin, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/admin", func(routerGroup chi.Router) {
		routerGroup.Get("/metrics", handler.GetMetrics)
	})
}

// GetMetrics returns the dashboard rollup.
func (handler *Handler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMetrics")
	defer scope.End()

	metrics, err := handler.service.Metrics(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get admin metrics")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Admin metrics retrieved successfully")

	response.WithJSON(w, http.StatusOK, metrics)
}
