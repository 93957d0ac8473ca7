package parking

import (
	"net/http"
	"strconv"

	"parkdz/infras/otel"
	"parkdz/internal/domains/parking/model/dto"
	"parkdz/internal/domains/parking/service"
	"parkdz/shared/constant"
	"parkdz/shared/failure"
	"parkdz/shared/validator"
	"parkdz/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Parking
	otel    otel.Otel
}

func New(service service.Parking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/parking", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetLocations)
		routerGroup.Post("/", handler.CreateLocation)
		routerGroup.Get("/search", handler.Search)
		routerGroup.Get("/wilayas", handler.GetWilayas)
		routerGroup.Get("/wilaya/{wilaya}", handler.GetByWilaya)
		routerGroup.Put("/spots/{id}/availability", handler.SetSpotAvailability)
		routerGroup.Patch("/spots/{id}/availability", handler.SetSpotAvailability)
		routerGroup.Get("/{id}", handler.GetLocationByID)
		routerGroup.Put("/{id}", handler.UpdateLocation)
		routerGroup.Patch("/{id}", handler.UpdateLocation)
		routerGroup.Delete("/{id}", handler.DeleteLocation)
		routerGroup.Put("/{id}/availability", handler.OverrideAvailability)
		routerGroup.Patch("/{id}/availability", handler.OverrideAvailability)
		routerGroup.Get("/{id}/spots", handler.GetSpots)
	})
}

// GetLocations lists every active parking location.
func (handler *Handler) GetLocations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLocations")
	defer scope.End()

	locations, err := handler.service.GetAllLocations(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get parking locations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Parking locations retrieved successfully")

	response.WithJSONCount(w, http.StatusOK, locations, len(locations))
}

// Search performs a geo search around a coordinate pair. The radius query
// parameter is in meters.
func (handler *Handler) Search(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Search")
	defer scope.End()

	req, err := searchRequestFromQuery(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse search query")

		response.WithError(w, err)

		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate search query")

		response.WithError(w, err)

		return
	}

	results, err := handler.service.Search(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search parking locations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Parking locations searched successfully")

	response.WithJSONCount(w, http.StatusOK, results, len(results))
}

// GetWilayas lists the wilayas that have active locations, with counts.
func (handler *Handler) GetWilayas(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWilayas")
	defer scope.End()

	wilayas, err := handler.service.Wilayas(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get wilayas")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Wilayas retrieved successfully")

	response.WithJSON(w, http.StatusOK, wilayas)
}

// GetByWilaya lists active locations whose wilaya matches the path segment.
func (handler *Handler) GetByWilaya(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetByWilaya")
	defer scope.End()

	wilaya := chi.URLParam(r, constant.RequestParamWilaya)

	locations, err := handler.service.GetByWilaya(ctx, wilaya)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get parking locations by wilaya")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Parking locations retrieved by wilaya successfully")

	response.WithJSONCount(w, http.StatusOK, locations, len(locations))
}

// GetLocationByID returns one location together with its spots.
func (handler *Handler) GetLocationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLocationByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateVar(id, "uuid4"); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid parking location id")

		response.WithError(w, err)

		return
	}

	location, err := handler.service.GetLocation(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get parking location by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Parking location retrieved successfully")

	response.WithJSON(w, http.StatusOK, location)
}

// CreateLocation registers a new parking location. Organized locations get
// their spot rows seeded.
func (handler *Handler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateLocation")
	defer scope.End()

	var req dto.CreateParkingLocationRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	location, err := handler.service.CreateLocation(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create parking location")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Parking location created successfully")

	response.WithJSON(w, http.StatusCreated, location)
}

// UpdateLocation updates the mutable fields of a location.
func (handler *Handler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateLocation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateVar(id, "uuid4"); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid parking location id")

		response.WithError(w, err)

		return
	}

	var req dto.UpdateParkingLocationRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateLocation(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update parking location")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Parking location updated successfully")

	response.WithMessage(w, http.StatusOK, "Parking location updated successfully")
}

// DeleteLocation removes a location and its spots.
func (handler *Handler) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteLocation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateVar(id, "uuid4"); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid parking location id")

		response.WithError(w, err)

		return
	}

	if err := handler.service.DeleteLocation(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete parking location")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Parking location deleted successfully")

	response.WithMessage(w, http.StatusOK, "Parking location deleted successfully")
}

// OverrideAvailability is the administrative absolute set of available_spots.
func (handler *Handler) OverrideAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".OverrideAvailability")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateVar(id, "uuid4"); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid parking location id")

		response.WithError(w, err)

		return
	}

	var req dto.UpdateAvailabilityRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	location, err := handler.service.OverrideAvailability(ctx, id, *req.AvailableSpots)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to override parking availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Parking availability overridden successfully")

	response.WithJSON(w, http.StatusOK, location)
}

// GetSpots lists the spots of one location.
func (handler *Handler) GetSpots(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSpots")
	defer scope.End()

	parkingID := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateVar(parkingID, "uuid4"); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid parking location id")

		response.WithError(w, err)

		return
	}

	spots, err := handler.service.GetSpots(ctx, parkingID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get parking spots")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Parking spots retrieved successfully")

	response.WithJSONCount(w, http.StatusOK, spots, len(spots))
}

// SetSpotAvailability toggles one spot and keeps the parent counter in step.
func (handler *Handler) SetSpotAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetSpotAvailability")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateVar(id, "uuid4"); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid parking spot id")

		response.WithError(w, err)

		return
	}

	var req dto.UpdateSpotAvailabilityRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.SetSpotAvailability(ctx, id, *req.IsAvailable); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set spot availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Parking spot availability updated successfully")

	response.WithMessage(w, http.StatusOK, "Parking spot availability updated successfully")
}

func searchRequestFromQuery(r *http.Request) (dto.SearchParkingRequest, error) {
	query := r.URL.Query()

	req := dto.SearchParkingRequest{
		ParkingType: query.Get("parkingType"),
	}

	latitude, err := strconv.ParseFloat(query.Get("latitude"), 64)
	if err != nil {
		return req, failure.BadRequestFromString("latitude must be a number") // nolint:wrapcheck
	}

	longitude, err := strconv.ParseFloat(query.Get("longitude"), 64)
	if err != nil {
		return req, failure.BadRequestFromString("longitude must be a number") // nolint:wrapcheck
	}

	req.Latitude = latitude
	req.Longitude = longitude
	// Radius defaults to one kilometer around the caller.
	req.RadiusMeters = 1000

	if raw := query.Get("radius"); raw != "" {
		radius, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return req, failure.BadRequestFromString("radius must be a number") // nolint:wrapcheck
		}

		req.RadiusMeters = radius
	}

	if raw := query.Get("maxPrice"); raw != "" {
		maxPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return req, failure.BadRequestFromString("maxPrice must be a number") // nolint:wrapcheck
		}

		req.MaxPrice = &maxPrice
	}

	return req, nil
}
