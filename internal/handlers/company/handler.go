package company

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
	router.Route("/companies", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.RegisterCompany)
		routerGroup.Get("/{id}", handler.GetCompanyByID)
		routerGroup.Get("/{id}/parking-locations", handler.GetCompanyLocations)
		routerGroup.Get("/{id}/analytics", handler.GetCompanyAnalytics)
	})
}

// RegisterCompany creates the owning user account and the company in one
// transaction.
func (handler *Handler) RegisterCompany(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RegisterCompany")
	defer scope.End()

	var req dto.RegisterCompanyRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	company, err := handler.service.Register(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register company")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Company registered successfully")

	response.WithJSON(w, http.StatusCreated, company)
}

// GetCompanyByID returns one company.
func (handler *Handler) GetCompanyByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCompanyByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateVar(id, "uuid4"); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid company id")

		response.WithError(w, err)

		return
	}

	company, err := handler.service.GetByID(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get company by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Company retrieved successfully")

	response.WithJSON(w, http.StatusOK, company)
}

// GetCompanyLocations lists the parking locations a company operates.
func (handler *Handler) GetCompanyLocations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCompanyLocations")
	defer scope.End()

	companyID := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateVar(companyID, "uuid4"); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid company id")

		response.WithError(w, err)

		return
	}

	locations, err := handler.service.Locations(ctx, companyID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get company locations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Company locations retrieved successfully")

	response.WithJSON(w, http.StatusOK, locations)
}

// GetCompanyAnalytics rolls up the company's reservation footprint.
func (handler *Handler) GetCompanyAnalytics(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCompanyAnalytics")
	defer scope.End()

	companyID := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateVar(companyID, "uuid4"); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid company id")

		response.WithError(w, err)

		return
	}

	analytics, err := handler.service.Analytics(ctx, companyID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get company analytics")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Company analytics retrieved successfully")

	response.WithJSON(w, http.StatusOK, analytics)
}
