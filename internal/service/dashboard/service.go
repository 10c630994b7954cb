package dashboard

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/wellpay/wellpay-backend-go/internal/domain/attendance"
	"github.com/wellpay/wellpay-backend-go/internal/domain/dashboard"
	"github.com/wellpay/wellpay-backend-go/internal/domain/payroll"
	"github.com/wellpay/wellpay-backend-go/internal/domain/user"
)

// HighStressThreshold is exclusive: only employees scoring strictly above it
// appear on the HR dashboard.
const HighStressThreshold = 7

const recentPayslipLimit = 10

type DashboardServiceImpl struct {
	userRepo       user.UserRepository
	attendanceRepo attendance.AttendanceRepository
	payslipRepo    payroll.PayslipRepository
	stressRepo     payroll.StressRecordRepository
}

func NewDashboardService(
	userRepo user.UserRepository,
	attendanceRepo attendance.AttendanceRepository,
	payslipRepo payroll.PayslipRepository,
	stressRepo payroll.StressRecordRepository,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		userRepo:       userRepo,
		attendanceRepo: attendanceRepo,
		payslipRepo:    payslipRepo,
		stressRepo:     stressRepo,
	}
}

// HRDashboard implements dashboard.DashboardService.
func (s *DashboardServiceImpl) HRDashboard(ctx context.Context) (dashboard.HRDashboardResponse, error) {
	now := time.Now()
	start, end, err := payroll.PeriodBounds(int(now.Month()), now.Year())
	if err != nil {
		return dashboard.HRDashboardResponse{}, err
	}

	totalEmployees, err := s.userRepo.CountByRole(ctx, user.RoleEmployee)
	if err != nil {
		return dashboard.HRDashboardResponse{}, fmt.Errorf("failed to count employees: %w", err)
	}

	totalRecords, err := s.attendanceRepo.CountByPeriod(ctx, start, end)
	if err != nil {
		return dashboard.HRDashboardResponse{}, fmt.Errorf("failed to count attendance records: %w", err)
	}

	presentDays, err := s.attendanceRepo.CountByStatusAndPeriod(ctx, attendance.StatusPresent, start, end)
	if err != nil {
		return dashboard.HRDashboardResponse{}, fmt.Errorf("failed to count present days: %w", err)
	}

	recentPayslips, err := s.payslipRepo.ListRecent(ctx, recentPayslipLimit)
	if err != nil {
		return dashboard.HRDashboardResponse{}, fmt.Errorf("failed to list recent payslips: %w", err)
	}

	highStress, err := s.stressRepo.ListByMinLevel(ctx, HighStressThreshold)
	if err != nil {
		return dashboard.HRDashboardResponse{}, fmt.Errorf("failed to list high stress records: %w", err)
	}

	resp := dashboard.HRDashboardResponse{
		Statistics: dashboard.Statistics{
			TotalEmployees:         totalEmployees,
			TotalAttendanceRecords: totalRecords,
			PresentDays:            presentDays,
			AttendanceRate:         attendanceRate(presentDays, totalRecords),
		},
		RecentPayslips:      make([]dashboard.RecentPayslip, 0, len(recentPayslips)),
		HighStressEmployees: make([]dashboard.HighStressEmployee, 0, len(highStress)),
	}

	for _, p := range recentPayslips {
		resp.RecentPayslips = append(resp.RecentPayslips, dashboard.RecentPayslip{
			ID:           p.ID,
			EmployeeName: derefName(p.EmployeeName),
			Month:        p.Month,
			Year:         p.Year,
			FinalSalary:  p.FinalSalary,
			GeneratedAt:  p.GeneratedAt.Format("2006-01-02 15:04:05"),
		})
	}

	for _, rec := range highStress {
		resp.HighStressEmployees = append(resp.HighStressEmployees, dashboard.HighStressEmployee{
			EmployeeName:  derefName(rec.EmployeeName),
			StressLevel:   rec.StressLevel,
			OvertimeHours: rec.OvertimeHours,
			Month:         rec.Month,
			Year:          rec.Year,
		})
	}

	return resp, nil
}

// attendanceRate is the present-day share of this month's records as a
// rounded percentage, 0 when there are no records yet.
func attendanceRate(presentDays, totalRecords int64) int64 {
	if totalRecords == 0 {
		return 0
	}
	return int64(math.Round(float64(presentDays) / float64(totalRecords) * 100))
}

func derefName(name *string) string {
	if name == nil {
		return ""
	}
	return *name
}
