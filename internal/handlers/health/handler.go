package health

import (
	"net/http"

	"parkdz/config"
	"parkdz/shared/constant"
	"parkdz/shared/timezone"
	"parkdz/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	cfg *config.Config
}

func New(cfg *config.Config) Handler {
	return Handler{cfg: cfg}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Health)
}

type healthResponse struct {
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

// Health reports liveness.
func (handler *Handler) Health(w http.ResponseWriter, r *http.Request) {
	response.WithJSON(w, http.StatusOK, healthResponse{
		Status:      "ok",
		Timestamp:   timezone.Now().Format(constant.DateFormat),
		Version:     handler.cfg.App.Version,
		Environment: handler.cfg.Server.Env,
	})
}
