package payroll

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wellpay/wellpay-backend-go/internal/domain/employee"
	"github.com/wellpay/wellpay-backend-go/internal/domain/payroll"
	"github.com/wellpay/wellpay-backend-go/internal/service/leave"
)

// WorkingDaysPerMonth is the fixed divisor for daily-salary proration. It is
// deliberately NOT derived from the calendar days of the period; every
// historical payslip was computed with 22, so changing it changes all
// computed salary figures.
const WorkingDaysPerMonth = 22

type PayrollServiceImpl struct {
	payslipRepo payroll.PayslipRepository
	stressRepo  payroll.StressRecordRepository
	accountant  *leave.Accountant
	policies    employee.LeavePolicyProvider
}

func NewPayrollService(
	payslipRepo payroll.PayslipRepository,
	stressRepo payroll.StressRecordRepository,
	accountant *leave.Accountant,
	policies employee.LeavePolicyProvider,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		payslipRepo: payslipRepo,
		stressRepo:  stressRepo,
		accountant:  accountant,
		policies:    policies,
	}
}

// GeneratePayslip implements payroll.PayrollService.
//
// A payslip is a frozen financial record: once one exists for the period it
// is returned as-is, even when attendance data changed afterwards. The
// natural-key unique constraint resolves the concurrent-generation race, so
// no in-process locking is needed.
func (s *PayrollServiceImpl) GeneratePayslip(ctx context.Context, employeeID string, req payroll.GeneratePayslipRequest) (payroll.PayslipResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayslipResponse{}, err
	}

	existing, err := s.payslipRepo.GetByEmployeeAndPeriod(ctx, employeeID, req.Month, req.Year)
	if err == nil {
		return toPayslipResponse(existing), nil
	}
	if !errors.Is(err, payroll.ErrPayslipNotFound) {
		return payroll.PayslipResponse{}, fmt.Errorf("failed to look up existing payslip: %w", err)
	}

	policy, err := s.policies.GetLeavePolicy(ctx, employeeID)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	start, end, err := payroll.PeriodBounds(req.Month, req.Year)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	chargeableDays, err := s.accountant.ChargeableUnpaidDays(ctx, employeeID, start, end, policy.PaidLeavesPerMonth)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	// base/22 rounded half-up to 2dp; DivRound rounds half away from zero,
	// which matches half-up for non-negative salaries.
	dailySalary := policy.BaseSalary.DivRound(decimal.NewFromInt(WorkingDaysPerMonth), 2)
	deductions := dailySalary.Mul(decimal.NewFromInt(int64(chargeableDays)))
	// May go negative when chargeable leave exceeds the working-day constant;
	// not clamped.
	finalSalary := policy.BaseSalary.Sub(deductions)

	created, err := s.payslipRepo.Insert(ctx, payroll.Payslip{
		EmployeeID:            employeeID,
		Month:                 req.Month,
		Year:                  req.Year,
		BaseSalary:            policy.BaseSalary,
		UnpaidLeaveDeductions: deductions,
		FinalSalary:           finalSalary,
	})
	if err != nil {
		if errors.Is(err, payroll.ErrPayslipExists) {
			// Lost the race: another request generated the payslip first.
			// That record is the frozen one; return it.
			winner, getErr := s.payslipRepo.GetByEmployeeAndPeriod(ctx, employeeID, req.Month, req.Year)
			if getErr != nil {
				return payroll.PayslipResponse{}, fmt.Errorf("failed to fetch concurrently generated payslip: %w", getErr)
			}
			return toPayslipResponse(winner), nil
		}
		return payroll.PayslipResponse{}, fmt.Errorf("failed to persist payslip: %w", err)
	}

	return toPayslipResponse(created), nil
}

// ListPayslips implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListPayslips(ctx context.Context, employeeID string) ([]payroll.PayslipResponse, error) {
	payslips, err := s.payslipRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips: %w", err)
	}

	responses := make([]payroll.PayslipResponse, 0, len(payslips))
	for _, p := range payslips {
		responses = append(responses, toPayslipResponse(p))
	}
	return responses, nil
}

// RecordOvertime implements payroll.PayrollService.
func (s *PayrollServiceImpl) RecordOvertime(ctx context.Context, employeeID string, req payroll.RecordOvertimeRequest) (payroll.StressRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.StressRecordResponse{}, err
	}

	level := StressLevel(req.OvertimeHours)
	if level < MinStressLevel || level > MaxStressLevel {
		// The formula cannot produce this; fail loudly, never re-clamp.
		return payroll.StressRecordResponse{}, payroll.ErrInvalidStressLevel
	}

	record, err := s.stressRepo.Upsert(ctx, payroll.StressRecord{
		EmployeeID:     employeeID,
		Month:          req.Month,
		Year:           req.Year,
		OvertimeHours:  req.OvertimeHours,
		OvertimeReason: req.OvertimeReason,
		StressLevel:    level,
	})
	if err != nil {
		return payroll.StressRecordResponse{}, fmt.Errorf("failed to upsert stress record: %w", err)
	}

	return toStressRecordResponse(record), nil
}

// ListStressRecords implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListStressRecords(ctx context.Context, employeeID string) ([]payroll.StressRecordResponse, error) {
	records, err := s.stressRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stress records: %w", err)
	}

	responses := make([]payroll.StressRecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toStressRecordResponse(rec))
	}
	return responses, nil
}

// StressDashboard implements payroll.PayrollService.
func (s *PayrollServiceImpl) StressDashboard(ctx context.Context, employeeID string) (payroll.StressDashboardResponse, error) {
	records, err := s.stressRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return payroll.StressDashboardResponse{}, fmt.Errorf("failed to list stress records: %w", err)
	}

	now := time.Now()
	currentMonth := int(now.Month())
	currentYear := now.Year()

	dashboard := payroll.StressDashboardResponse{
		AverageStressLevel: averageStressLevel(records),
		StressHistory:      make([]payroll.StressRecordResponse, 0, len(records)),
	}
	for _, rec := range records {
		if rec.Month == currentMonth && rec.Year == currentYear {
			dashboard.CurrentStressLevel = rec.StressLevel
		}
		dashboard.StressHistory = append(dashboard.StressHistory, toStressRecordResponse(rec))
	}

	return dashboard, nil
}

// StressHistory implements payroll.PayrollService.
func (s *PayrollServiceImpl) StressHistory(ctx context.Context, employeeID string) (payroll.StressHistoryResponse, error) {
	records, err := s.stressRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return payroll.StressHistoryResponse{}, fmt.Errorf("failed to list stress records: %w", err)
	}

	stats := payroll.StressStatistics{
		AverageStressLevel: averageStressLevel(records),
		TotalRecords:       len(records),
	}
	responses := make([]payroll.StressRecordResponse, 0, len(records))
	for _, rec := range records {
		if rec.StressLevel > stats.MaxStressLevel {
			stats.MaxStressLevel = rec.StressLevel
		}
		stats.TotalOvertimeHours += rec.OvertimeHours
		responses = append(responses, toStressRecordResponse(rec))
	}

	return payroll.StressHistoryResponse{
		Statistics: stats,
		Records:    responses,
	}, nil
}

// averageStressLevel returns the mean stress level rounded to 2 decimal
// places, 0 for an empty history.
func averageStressLevel(records []payroll.StressRecord) float64 {
	if len(records) == 0 {
		return 0
	}

	sum := 0
	for _, rec := range records {
		sum += rec.StressLevel
	}
	avg := float64(sum) / float64(len(records))
	return math.Round(avg*100) / 100
}

func toPayslipResponse(p payroll.Payslip) payroll.PayslipResponse {
	return payroll.PayslipResponse{
		ID:                    p.ID,
		EmployeeID:            p.EmployeeID,
		Month:                 p.Month,
		Year:                  p.Year,
		BaseSalary:            p.BaseSalary,
		UnpaidLeaveDeductions: p.UnpaidLeaveDeductions,
		FinalSalary:           p.FinalSalary,
		GeneratedAt:           p.GeneratedAt.Format("2006-01-02 15:04:05"),
	}
}

func toStressRecordResponse(rec payroll.StressRecord) payroll.StressRecordResponse {
	return payroll.StressRecordResponse{
		ID:             rec.ID,
		EmployeeID:     rec.EmployeeID,
		Month:          rec.Month,
		Year:           rec.Year,
		OvertimeHours:  rec.OvertimeHours,
		OvertimeReason: rec.OvertimeReason,
		StressLevel:    rec.StressLevel,
		CreatedAt:      rec.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
