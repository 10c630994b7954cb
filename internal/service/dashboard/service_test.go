package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wellpay/wellpay-backend-go/internal/domain/attendance"
	"github.com/wellpay/wellpay-backend-go/internal/domain/payroll"
	"github.com/wellpay/wellpay-backend-go/internal/domain/user"
)

func TestAttendanceRate(t *testing.T) {
	cases := []struct {
		present int64
		total   int64
		want    int64
	}{
		{0, 0, 0},
		{0, 10, 0},
		{10, 10, 100},
		{5, 10, 50},
		{2, 3, 67},
		{1, 3, 33},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, attendanceRate(c.present, c.total),
			"attendanceRate(%d, %d)", c.present, c.total)
	}
}

type stubUserRepo struct {
	user.UserRepository
	employees int64
}

func (s *stubUserRepo) CountByRole(ctx context.Context, role user.Role) (int64, error) {
	return s.employees, nil
}

type stubAttendanceRepo struct {
	attendance.AttendanceRepository
	total   int64
	present int64
}

func (s *stubAttendanceRepo) CountByPeriod(ctx context.Context, start, end time.Time) (int64, error) {
	return s.total, nil
}

func (s *stubAttendanceRepo) CountByStatusAndPeriod(ctx context.Context, status attendance.Status, start, end time.Time) (int64, error) {
	return s.present, nil
}

type stubPayslipRepo struct {
	payroll.PayslipRepository
	recent []payroll.Payslip
}

func (s *stubPayslipRepo) ListRecent(ctx context.Context, limit int) ([]payroll.Payslip, error) {
	return s.recent, nil
}

type stubStressRepo struct {
	payroll.StressRecordRepository
	highStress []payroll.StressRecord
}

func (s *stubStressRepo) ListByMinLevel(ctx context.Context, minLevelExclusive int) ([]payroll.StressRecord, error) {
	return s.highStress, nil
}

func TestHRDashboard(t *testing.T) {
	name := "Budi Santoso"
	svc := NewDashboardService(
		&stubUserRepo{employees: 12},
		&stubAttendanceRepo{total: 200, present: 150},
		&stubPayslipRepo{recent: []payroll.Payslip{{
			ID:           "ps-1",
			EmployeeName: &name,
			Month:        3,
			Year:         2025,
			FinalSalary:  decimal.NewFromInt(64772),
			GeneratedAt:  time.Date(2025, 3, 31, 12, 0, 0, 0, time.UTC),
		}}},
		&stubStressRepo{highStress: []payroll.StressRecord{{
			EmployeeName:  &name,
			StressLevel:   9,
			OvertimeHours: 85,
			Month:         3,
			Year:          2025,
		}}},
	)

	got, err := svc.HRDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(12), got.Statistics.TotalEmployees)
	assert.Equal(t, int64(200), got.Statistics.TotalAttendanceRecords)
	assert.Equal(t, int64(150), got.Statistics.PresentDays)
	assert.Equal(t, int64(75), got.Statistics.AttendanceRate)

	require.Len(t, got.RecentPayslips, 1)
	assert.Equal(t, "Budi Santoso", got.RecentPayslips[0].EmployeeName)

	require.Len(t, got.HighStressEmployees, 1)
	assert.Equal(t, 9, got.HighStressEmployees[0].StressLevel)
	assert.Equal(t, 85, got.HighStressEmployees[0].OvertimeHours)
}
