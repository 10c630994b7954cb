package http

import (
	"log/slog"
	"net/http"

	"github.com/wellpay/wellpay-backend-go/internal/domain/dashboard"
	"github.com/wellpay/wellpay-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	HRDashboard(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// HRDashboard implements DashboardHandler. HR only.
func (h *DashboardHandlerImpl) HRDashboard(w http.ResponseWriter, r *http.Request) {
	dashboardResponse, err := h.dashboardService.HRDashboard(r.Context())
	if err != nil {
		slog.Error("HRDashboard service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, dashboardResponse)
}
