package handler

import (
	"net/http"

	"storefront/internal/service"

	"github.com/rs/zerolog"
)

// StatisticsHandler serves shop and platform statistics.
type StatisticsHandler struct {
	service service.StatisticsService
	logger  zerolog.Logger
}

// NewStatisticsHandler creates a new statistics handler.
func NewStatisticsHandler(service service.StatisticsService, logger zerolog.Logger) *StatisticsHandler {
	return &StatisticsHandler{
		service: service,
		logger:  logger.With().Str("handler", "statistics").Logger(),
	}
}

// Shop handles GET /api/shops/{id}/statistics requests.
func (h *StatisticsHandler) Shop(w http.ResponseWriter, r *http.Request) {
	shopID, ok := pathUUID(w, r, "id", h.logger)
	if !ok {
		return
	}

	stats, err := h.service.ShopStatistics(r.Context(), shopID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// Platform handles GET /api/admin/statistics requests.
func (h *StatisticsHandler) Platform(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.PlatformStatistics(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
