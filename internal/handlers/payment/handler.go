package payment

import (
	"net/http"

	"parkdz/infras/otel"
	"parkdz/internal/domains/company/model/dto"
	"parkdz/internal/domains/company/service"
	"parkdz/shared/constant"
	"parkdz/shared/validator"
	"parkdz/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Company
	otel    otel.Otel
}

func New(service service.Company, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/payment", handler.ProcessPayment)
}

// ProcessPayment charges the subscription fee via the payment gateway and
// upgrades the company to the pro plan.
func (handler *Handler) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ProcessPayment")
	defer scope.End()

	var req dto.PaymentRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	result, err := handler.service.ProcessPayment(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to process payment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payment processed successfully")

	response.WithJSON(w, http.StatusOK, result)
}
