package payroll

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wellpay/wellpay-backend-go/internal/domain/employee"
	domain "github.com/wellpay/wellpay-backend-go/internal/domain/payroll"
	"github.com/wellpay/wellpay-backend-go/internal/pkg/validator"
	"github.com/wellpay/wellpay-backend-go/internal/service/leave"
)

type periodKey struct {
	employeeID string
	month      int
	year       int
}

type fakePayslipRepo struct {
	mu       sync.Mutex
	payslips map[periodKey]domain.Payslip
	inserts  int
}

func newFakePayslipRepo() *fakePayslipRepo {
	return &fakePayslipRepo{payslips: make(map[periodKey]domain.Payslip)}
}

func (f *fakePayslipRepo) Insert(ctx context.Context, p domain.Payslip) (domain.Payslip, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := periodKey{p.EmployeeID, p.Month, p.Year}
	if _, ok := f.payslips[key]; ok {
		return domain.Payslip{}, domain.ErrPayslipExists
	}

	p.ID = uuid.New().String()
	p.GeneratedAt = time.Now()
	f.payslips[key] = p
	f.inserts++
	return p, nil
}

func (f *fakePayslipRepo) GetByEmployeeAndPeriod(ctx context.Context, employeeID string, month, year int) (domain.Payslip, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.payslips[periodKey{employeeID, month, year}]
	if !ok {
		return domain.Payslip{}, domain.ErrPayslipNotFound
	}
	return p, nil
}

func (f *fakePayslipRepo) ListByEmployee(ctx context.Context, employeeID string) ([]domain.Payslip, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []domain.Payslip
	for key, p := range f.payslips {
		if key.employeeID == employeeID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePayslipRepo) ListRecent(ctx context.Context, limit int) ([]domain.Payslip, error) {
	return nil, nil
}

type fakeStressRepo struct {
	mu      sync.Mutex
	records map[periodKey]domain.StressRecord
}

func newFakeStressRepo() *fakeStressRepo {
	return &fakeStressRepo{records: make(map[periodKey]domain.StressRecord)}
}

func (f *fakeStressRepo) Upsert(ctx context.Context, rec domain.StressRecord) (domain.StressRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := periodKey{rec.EmployeeID, rec.Month, rec.Year}
	if existing, ok := f.records[key]; ok {
		rec.ID = existing.ID
		rec.CreatedAt = existing.CreatedAt
		rec.UpdatedAt = time.Now()
	} else {
		rec.ID = uuid.New().String()
		rec.CreatedAt = time.Now()
		rec.UpdatedAt = rec.CreatedAt
	}
	f.records[key] = rec
	return rec, nil
}

func (f *fakeStressRepo) GetByEmployeeAndPeriod(ctx context.Context, employeeID string, month, year int) (domain.StressRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	rec, ok := f.records[periodKey{employeeID, month, year}]
	if !ok {
		return domain.StressRecord{}, domain.ErrStressRecordNotFound
	}
	return rec, nil
}

func (f *fakeStressRepo) ListByEmployee(ctx context.Context, employeeID string) ([]domain.StressRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []domain.StressRecord
	for key, rec := range f.records {
		if key.employeeID == employeeID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeStressRepo) ListByMinLevel(ctx context.Context, minLevelExclusive int) ([]domain.StressRecord, error) {
	return nil, nil
}

type fakeLeaveCounter struct {
	mu        sync.Mutex
	leaveDays int
	gotStart  time.Time
	gotEnd    time.Time
}

func (f *fakeLeaveCounter) CountLeaveDays(ctx context.Context, employeeID string, start, end time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gotStart = start
	f.gotEnd = end
	return f.leaveDays, nil
}

func (f *fakeLeaveCounter) setLeaveDays(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.leaveDays = n
}

type fakePolicyProvider struct {
	policies map[string]employee.LeavePolicy
}

func (f *fakePolicyProvider) GetLeavePolicy(ctx context.Context, employeeID string) (employee.LeavePolicy, error) {
	policy, ok := f.policies[employeeID]
	if !ok {
		return employee.LeavePolicy{}, employee.ErrProfileNotFound
	}
	return policy, nil
}

type payrollFixture struct {
	svc         domain.PayrollService
	payslipRepo *fakePayslipRepo
	stressRepo  *fakeStressRepo
	counter     *fakeLeaveCounter
	policies    *fakePolicyProvider
}

func newPayrollFixture() *payrollFixture {
	payslipRepo := newFakePayslipRepo()
	stressRepo := newFakeStressRepo()
	counter := &fakeLeaveCounter{}
	policies := &fakePolicyProvider{policies: map[string]employee.LeavePolicy{
		"emp-1": {
			BaseSalary:         decimal.NewFromInt(75000),
			PaidLeavesPerMonth: 2,
		},
	}}

	return &payrollFixture{
		svc:         NewPayrollService(payslipRepo, stressRepo, leave.NewAccountant(counter), policies),
		payslipRepo: payslipRepo,
		stressRepo:  stressRepo,
		counter:     counter,
		policies:    policies,
	}
}

func TestGeneratePayslipComputesDeductions(t *testing.T) {
	fx := newPayrollFixture()
	fx.counter.setLeaveDays(5) // 2 covered by allowance, 3 chargeable

	got, err := fx.svc.GeneratePayslip(context.Background(), "emp-1",
		domain.GeneratePayslipRequest{Month: 3, Year: 2025})
	require.NoError(t, err)

	// 75000 / 22 = 3409.09 daily, 3 chargeable days
	assert.True(t, got.BaseSalary.Equal(decimal.NewFromInt(75000)), "base %s", got.BaseSalary)
	assert.Equal(t, "10227.27", got.UnpaidLeaveDeductions.StringFixed(2))
	assert.Equal(t, "64772.73", got.FinalSalary.StringFixed(2))
	assert.Equal(t, 3, got.Month)
	assert.Equal(t, 2025, got.Year)
	assert.NotEmpty(t, got.ID)
}

func TestGeneratePayslipNoDeductionWithinAllowance(t *testing.T) {
	fx := newPayrollFixture()
	fx.counter.setLeaveDays(2)

	got, err := fx.svc.GeneratePayslip(context.Background(), "emp-1",
		domain.GeneratePayslipRequest{Month: 3, Year: 2025})
	require.NoError(t, err)

	assert.Equal(t, "0.00", got.UnpaidLeaveDeductions.StringFixed(2))
	assert.Equal(t, "75000.00", got.FinalSalary.StringFixed(2))
}

func TestGeneratePayslipIdempotent(t *testing.T) {
	fx := newPayrollFixture()
	fx.counter.setLeaveDays(5)

	first, err := fx.svc.GeneratePayslip(context.Background(), "emp-1",
		domain.GeneratePayslipRequest{Month: 3, Year: 2025})
	require.NoError(t, err)

	// More leave recorded after generation must not change the payslip.
	fx.counter.setLeaveDays(12)

	second, err := fx.svc.GeneratePayslip(context.Background(), "emp-1",
		domain.GeneratePayslipRequest{Month: 3, Year: 2025})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.FinalSalary.StringFixed(2), second.FinalSalary.StringFixed(2))
	assert.Equal(t, 1, fx.payslipRepo.inserts)
}

func TestGeneratePayslipConcurrentRequestsProduceOneRecord(t *testing.T) {
	fx := newPayrollFixture()
	fx.counter.setLeaveDays(3)

	const workers = 8
	results := make(chan domain.PayslipResponse, workers)
	errs := make(chan error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := fx.svc.GeneratePayslip(context.Background(), "emp-1",
				domain.GeneratePayslipRequest{Month: 6, Year: 2025})
			if err != nil {
				errs <- err
				return
			}
			results <- resp
		}()
	}
	wg.Wait()
	close(results)
	close(errs)

	for err := range errs {
		t.Fatalf("concurrent generation failed: %v", err)
	}

	var firstID string
	for resp := range results {
		if firstID == "" {
			firstID = resp.ID
		}
		assert.Equal(t, firstID, resp.ID)
	}
	assert.Equal(t, 1, fx.payslipRepo.inserts)
}

func TestGeneratePayslipUsesCalendarMonthBounds(t *testing.T) {
	fx := newPayrollFixture()

	_, err := fx.svc.GeneratePayslip(context.Background(), "emp-1",
		domain.GeneratePayslipRequest{Month: 2, Year: 2024})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), fx.counter.gotStart)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), fx.counter.gotEnd)
}

func TestGeneratePayslipUnknownProfile(t *testing.T) {
	fx := newPayrollFixture()

	_, err := fx.svc.GeneratePayslip(context.Background(), "emp-unknown",
		domain.GeneratePayslipRequest{Month: 3, Year: 2025})
	assert.ErrorIs(t, err, employee.ErrProfileNotFound)
}

func TestGeneratePayslipInvalidPeriod(t *testing.T) {
	fx := newPayrollFixture()

	for _, req := range []domain.GeneratePayslipRequest{
		{Month: 0, Year: 2025},
		{Month: 13, Year: 2025},
		{Month: 6, Year: 0},
	} {
		_, err := fx.svc.GeneratePayslip(context.Background(), "emp-1", req)
		require.Error(t, err, "req %+v", req)

		var validationErrs validator.ValidationErrors
		assert.ErrorAs(t, err, &validationErrs)
	}
}

func TestRecordOvertimeUpsertsSinglePeriodRecord(t *testing.T) {
	fx := newPayrollFixture()

	first, err := fx.svc.RecordOvertime(context.Background(), "emp-1",
		domain.RecordOvertimeRequest{Month: 3, Year: 2025, OvertimeHours: 25})
	require.NoError(t, err)
	assert.Equal(t, 3, first.StressLevel)

	reason := "release crunch"
	second, err := fx.svc.RecordOvertime(context.Background(), "emp-1",
		domain.RecordOvertimeRequest{Month: 3, Year: 2025, OvertimeHours: 95, OvertimeReason: &reason})
	require.NoError(t, err)

	// Same period, same row: the resubmission overwrote the first report.
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 10, second.StressLevel)
	assert.Equal(t, 95, second.OvertimeHours)

	records, err := fx.svc.ListStressRecords(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestRecordOvertimeRejectsNegativeHours(t *testing.T) {
	fx := newPayrollFixture()

	_, err := fx.svc.RecordOvertime(context.Background(), "emp-1",
		domain.RecordOvertimeRequest{Month: 3, Year: 2025, OvertimeHours: -1})
	require.Error(t, err)

	var validationErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
}

func TestStressHistoryStatistics(t *testing.T) {
	fx := newPayrollFixture()

	for i, hours := range []int{5, 25, 95} {
		_, err := fx.svc.RecordOvertime(context.Background(), "emp-1",
			domain.RecordOvertimeRequest{Month: i + 1, Year: 2025, OvertimeHours: hours})
		require.NoError(t, err)
	}

	history, err := fx.svc.StressHistory(context.Background(), "emp-1")
	require.NoError(t, err)

	assert.Equal(t, 3, history.Statistics.TotalRecords)
	assert.Equal(t, 125, history.Statistics.TotalOvertimeHours)
	assert.Equal(t, 10, history.Statistics.MaxStressLevel)
	// levels 1, 3, 10 -> mean 4.67
	assert.InDelta(t, 4.67, history.Statistics.AverageStressLevel, 0.001)
	assert.Len(t, history.Records, 3)
}

func TestStressDashboardCurrentMonth(t *testing.T) {
	fx := newPayrollFixture()
	now := time.Now()

	_, err := fx.svc.RecordOvertime(context.Background(), "emp-1",
		domain.RecordOvertimeRequest{Month: int(now.Month()), Year: now.Year(), OvertimeHours: 42})
	require.NoError(t, err)

	dashboardResp, err := fx.svc.StressDashboard(context.Background(), "emp-1")
	require.NoError(t, err)

	assert.Equal(t, 5, dashboardResp.CurrentStressLevel)
	assert.InDelta(t, 5.0, dashboardResp.AverageStressLevel, 0.001)
	assert.Len(t, dashboardResp.StressHistory, 1)
}

func TestListPayslips(t *testing.T) {
	fx := newPayrollFixture()

	for month := 1; month <= 3; month++ {
		_, err := fx.svc.GeneratePayslip(context.Background(), "emp-1",
			domain.GeneratePayslipRequest{Month: month, Year: 2025})
		require.NoError(t, err)
	}

	payslips, err := fx.svc.ListPayslips(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Len(t, payslips, 3)

	seen := make(map[string]bool)
	for _, p := range payslips {
		key := fmt.Sprintf("%d-%d", p.Year, p.Month)
		assert.False(t, seen[key], "duplicate period %s", key)
		seen[key] = true
	}
}
