package reservation

import (
	"net/http"

	"parkdz/infras/otel"
	"parkdz/internal/domains/reservation/model/dto"
	"parkdz/internal/domains/reservation/service"
	"parkdz/shared/constant"
	"parkdz/shared/validator"
	"parkdz/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Reservation
	otel    otel.Otel
}

func New(service service.Reservation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reservations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateReservation)
		routerGroup.Get("/", handler.GetReservations)
		routerGroup.Get("/code/{confirmationCode}", handler.GetReservationByCode)
		routerGroup.Put("/{id}/cancel", handler.CancelReservation)
		routerGroup.Patch("/{id}/cancel", handler.CancelReservation)
		routerGroup.Put("/{id}/complete", handler.CompleteReservation)
		routerGroup.Patch("/{id}/complete", handler.CompleteReservation)
	})
}

// CreateReservation books a parking window. The reservation row, the location
// counter and the spot flag move in one transaction behind the service.
func (handler *Handler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReservation")
	defer scope.End()

	var req dto.CreateReservationRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	reservation, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation created successfully")

	response.WithJSON(w, http.StatusCreated, reservation)
}

// GetReservations lists the most recent reservations, optionally filtered by
// status and parking location.
func (handler *Handler) GetReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservations")
	defer scope.End()

	status := r.URL.Query().Get("status")
	parkingLocationID := r.URL.Query().Get("parkingLocationId")

	reservations, err := handler.service.GetAll(ctx, status, parkingLocationID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservations retrieved successfully")

	response.WithJSONCount(w, http.StatusOK, reservations, len(reservations))
}

// GetReservationByCode looks a reservation up by its confirmation code.
func (handler *Handler) GetReservationByCode(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservationByCode")
	defer scope.End()

	confirmationCode := chi.URLParam(r, constant.RequestParamConfirmationCode)

	reservation, err := handler.service.GetByCode(ctx, confirmationCode)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservation by code")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation retrieved successfully")

	response.WithJSON(w, http.StatusOK, reservation)
}

// CancelReservation cancels a confirmed reservation and restores capacity.
func (handler *Handler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelReservation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateVar(id, "uuid4"); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid reservation id")

		response.WithError(w, err)

		return
	}

	reservation, err := handler.service.Cancel(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation cancelled successfully")

	response.WithJSON(w, http.StatusOK, reservation)
}

// CompleteReservation marks a reservation completed and releases the spot.
func (handler *Handler) CompleteReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CompleteReservation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateVar(id, "uuid4"); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid reservation id")

		response.WithError(w, err)

		return
	}

	reservation, err := handler.service.Complete(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to complete reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation completed successfully")

	response.WithJSON(w, http.StatusOK, reservation)
}
