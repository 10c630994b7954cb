package dashboard

import "context"

type DashboardService interface {
	// HRDashboard aggregates company-wide statistics, recent payslips, and
	// high-stress employees for the current calendar month.
	HRDashboard(ctx context.Context) (HRDashboardResponse, error)
}
