package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/wellpay/wellpay-backend-go/internal/domain/attendance"
	"github.com/wellpay/wellpay-backend-go/internal/domain/payroll"
	"github.com/wellpay/wellpay-backend-go/internal/domain/user"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	userRepo       user.UserRepository
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository, userRepo user.UserRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
	}
}

// Record implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Record(ctx context.Context, employeeID string, req attendance.RecordAttendanceRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	target, err := s.userRepo.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	if !target.IsEmployee() {
		return attendance.RecordResponse{}, user.ErrNotAnEmployee
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	created, err := s.attendanceRepo.Create(ctx, attendance.Record{
		EmployeeID: employeeID,
		Date:       date,
		Status:     attendance.Status(req.Status),
	})
	if err != nil {
		// ErrDuplicateRecord passes through untouched so the handler can map
		// it to a conflict.
		return attendance.RecordResponse{}, err
	}

	return toRecordResponse(created), nil
}

// Query implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Query(ctx context.Context, employeeID string, req attendance.QueryAttendanceRequest) ([]attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var records []attendance.Record
	var err error

	if req.Month != nil && req.Year != nil {
		start, end, boundsErr := payroll.PeriodBounds(*req.Month, *req.Year)
		if boundsErr != nil {
			return nil, boundsErr
		}
		records, err = s.attendanceRepo.ListByEmployeeAndRange(ctx, employeeID, start, end)
	} else {
		records, err = s.attendanceRepo.ListByEmployee(ctx, employeeID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toRecordResponse(rec))
	}
	return responses, nil
}

func toRecordResponse(rec attendance.Record) attendance.RecordResponse {
	return attendance.RecordResponse{
		ID:         rec.ID,
		EmployeeID: rec.EmployeeID,
		Date:       rec.Date.Format("2006-01-02"),
		Status:     string(rec.Status),
		CreatedAt:  rec.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
