package checkout

import (
	"net/http"

	"parkdz/infras/otel"
	"parkdz/internal/domains/checkout/model/dto"
	"parkdz/internal/domains/checkout/service"
	"parkdz/shared/constant"
	"parkdz/shared/validator"
	"parkdz/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Checkout
	otel    otel.Otel
}

func New(service service.Checkout, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/checkout", func(routerGroup chi.Router) {
		routerGroup.Post("/exit", handler.ProcessExit)
	})
}

// ProcessExit settles the open session of a vehicle leaving the parking.
func (handler *Handler) ProcessExit(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ProcessExit")
	defer scope.End()

	var req dto.ProcessExitRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	result, err := handler.service.ProcessExit(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to process parking exit")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Parking exit processed successfully")

	response.WithJSON(w, http.StatusOK, result)
}
