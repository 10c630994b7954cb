package attendance

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/wellpay/wellpay-backend-go/internal/domain/attendance"
	"github.com/wellpay/wellpay-backend-go/internal/domain/user"
	"github.com/wellpay/wellpay-backend-go/internal/pkg/validator"
)

type dayKey struct {
	employeeID string
	date       string
}

type fakeAttendanceRepo struct {
	mu      sync.Mutex
	records map[dayKey]domain.Record
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[dayKey]domain.Record)}
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, rec domain.Record) (domain.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := dayKey{rec.EmployeeID, rec.Date.Format("2006-01-02")}
	if _, ok := f.records[key]; ok {
		return domain.Record{}, domain.ErrDuplicateRecord
	}

	rec.ID = uuid.New().String()
	rec.CreatedAt = time.Now()
	f.records[key] = rec
	return rec, nil
}

func (f *fakeAttendanceRepo) CountLeaveDays(ctx context.Context, employeeID string, start, end time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	count := 0
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID && rec.Status.IsLeave() &&
			!rec.Date.Before(start) && !rec.Date.After(end) {
			count++
		}
	}
	return count, nil
}

func (f *fakeAttendanceRepo) ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]domain.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []domain.Record
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID && !rec.Date.Before(start) && !rec.Date.After(end) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListByEmployee(ctx context.Context, employeeID string) ([]domain.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []domain.Record
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) CountByPeriod(ctx context.Context, start, end time.Time) (int64, error) {
	return 0, nil
}

func (f *fakeAttendanceRepo) CountByStatusAndPeriod(ctx context.Context, status domain.Status, start, end time.Time) (int64, error) {
	return 0, nil
}

type fakeUserRepo struct {
	users map[string]user.User
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return false, nil
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}

func (f *fakeUserRepo) ListByRole(ctx context.Context, role user.Role) ([]user.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) CountByRole(ctx context.Context, role user.Role) (int64, error) {
	return 0, nil
}

func newAttendanceFixture() (domain.AttendanceService, *fakeAttendanceRepo) {
	attendanceRepo := newFakeAttendanceRepo()
	userRepo := &fakeUserRepo{users: map[string]user.User{
		"emp-1": {ID: "emp-1", Username: "budi.santoso", Role: user.RoleEmployee},
		"hr-1":  {ID: "hr-1", Username: "hr.admin", Role: user.RoleHR},
	}}
	return NewAttendanceService(attendanceRepo, userRepo), attendanceRepo
}

func TestRecordAttendance(t *testing.T) {
	svc, _ := newAttendanceFixture()

	got, err := svc.Record(context.Background(), "emp-1", domain.RecordAttendanceRequest{
		Date:   "2025-03-10",
		Status: string(domain.StatusPresent),
	})
	require.NoError(t, err)

	assert.Equal(t, "emp-1", got.EmployeeID)
	assert.Equal(t, "2025-03-10", got.Date)
	assert.Equal(t, string(domain.StatusPresent), got.Status)
	assert.NotEmpty(t, got.ID)
}

func TestRecordAttendanceRejectsDuplicateDay(t *testing.T) {
	svc, _ := newAttendanceFixture()

	_, err := svc.Record(context.Background(), "emp-1", domain.RecordAttendanceRequest{
		Date:   "2025-03-10",
		Status: string(domain.StatusPresent),
	})
	require.NoError(t, err)

	// Same day again, even with a different status.
	_, err = svc.Record(context.Background(), "emp-1", domain.RecordAttendanceRequest{
		Date:   "2025-03-10",
		Status: string(domain.StatusUnpaidLeave),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateRecord)
}

func TestRecordAttendanceValidation(t *testing.T) {
	svc, _ := newAttendanceFixture()

	cases := []struct {
		name string
		req  domain.RecordAttendanceRequest
	}{
		{"missing date", domain.RecordAttendanceRequest{Status: string(domain.StatusPresent)}},
		{"bad date format", domain.RecordAttendanceRequest{Date: "10-03-2025", Status: string(domain.StatusPresent)}},
		{"missing status", domain.RecordAttendanceRequest{Date: "2025-03-10"}},
		{"unknown status", domain.RecordAttendanceRequest{Date: "2025-03-10", Status: "SICK"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := svc.Record(context.Background(), "emp-1", c.req)
			require.Error(t, err)

			var validationErrs validator.ValidationErrors
			assert.ErrorAs(t, err, &validationErrs)
		})
	}
}

func TestRecordAttendanceRejectsNonEmployee(t *testing.T) {
	svc, _ := newAttendanceFixture()

	_, err := svc.Record(context.Background(), "hr-1", domain.RecordAttendanceRequest{
		Date:   "2025-03-10",
		Status: string(domain.StatusPresent),
	})
	assert.ErrorIs(t, err, user.ErrNotAnEmployee)

	_, err = svc.Record(context.Background(), "ghost", domain.RecordAttendanceRequest{
		Date:   "2025-03-10",
		Status: string(domain.StatusPresent),
	})
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestQueryAttendanceByMonth(t *testing.T) {
	svc, _ := newAttendanceFixture()

	for _, date := range []string{"2025-02-28", "2025-03-03", "2025-03-10", "2025-04-01"} {
		_, err := svc.Record(context.Background(), "emp-1", domain.RecordAttendanceRequest{
			Date:   date,
			Status: string(domain.StatusPresent),
		})
		require.NoError(t, err)
	}

	month, year := 3, 2025
	records, err := svc.Query(context.Background(), "emp-1",
		domain.QueryAttendanceRequest{Month: &month, Year: &year})
	require.NoError(t, err)
	assert.Len(t, records, 2)

	all, err := svc.Query(context.Background(), "emp-1", domain.QueryAttendanceRequest{})
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestQueryAttendanceRequiresMonthAndYearTogether(t *testing.T) {
	svc, _ := newAttendanceFixture()

	month := 3
	_, err := svc.Query(context.Background(), "emp-1",
		domain.QueryAttendanceRequest{Month: &month})
	require.Error(t, err)

	var validationErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
}
