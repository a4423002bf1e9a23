package health

import (
	"context"
	"net/http"
	"time"

	"github.com/GlebRadaev/coopportal/internal/dto"
	"github.com/GlebRadaev/coopportal/pkg/utils"
	"go.uber.org/zap"
)

//go:generate mockgen -source=health.go -destination=mock_health.go -package=health

const pingTimeout = 2 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func New(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check godoc
//
//	@Summary	Liveness and database connectivity
//	@Tags		Health
//	@Produce	json
//	@Success	200	{object}	dto.HealthResponse
//	@Failure	503	{object}	dto.HealthResponse
//	@Router		/health [get]
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		zap.L().Warn("health check failed", zap.Error(err))
		utils.RespondWithJSON(w, http.StatusServiceUnavailable, dto.HealthResponse{Status: "error", Database: "unreachable"})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.HealthResponse{Status: "ok", Database: "healthy"})
}
