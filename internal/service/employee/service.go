package employee

import (
	"context"
	"fmt"

	"github.com/wellpay/wellpay-backend-go/internal/domain/employee"
	"github.com/wellpay/wellpay-backend-go/internal/domain/user"
)

type EmployeeServiceImpl struct {
	profileRepo employee.ProfileRepository
	userRepo    user.UserRepository
}

func NewEmployeeService(profileRepo employee.ProfileRepository, userRepo user.UserRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

// GetProfile implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetProfile(ctx context.Context, userID string) (employee.ProfileResponse, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return employee.ProfileResponse{}, err
	}
	return toProfileResponse(profile), nil
}

// UpdateProfile implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateProfile(ctx context.Context, userID string, req employee.UpdateProfileRequest) (employee.ProfileResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.ProfileResponse{}, err
	}

	updated, err := s.profileRepo.UpdateContact(ctx, userID, req.Phone, req.Department, req.Position)
	if err != nil {
		return employee.ProfileResponse{}, err
	}
	return toProfileResponse(updated), nil
}

// CreateProfile implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateProfile(ctx context.Context, req employee.CreateProfileRequest) (employee.ProfileResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.ProfileResponse{}, err
	}

	target, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return employee.ProfileResponse{}, err
	}
	if !target.IsEmployee() {
		return employee.ProfileResponse{}, user.ErrNotAnEmployee
	}

	created, err := s.profileRepo.Create(ctx, employee.Profile{
		UserID:             req.UserID,
		Phone:              req.Phone,
		Department:         req.Department,
		Position:           req.Position,
		BaseSalary:         req.BaseSalary,
		PaidLeavesPerMonth: req.PaidLeavesPerMonth,
	})
	if err != nil {
		return employee.ProfileResponse{}, err
	}
	return toProfileResponse(created), nil
}

// ListDirectory implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListDirectory(ctx context.Context) ([]employee.DirectoryEntry, error) {
	entries, err := s.profileRepo.ListDirectory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee directory: %w", err)
	}
	return entries, nil
}

func toProfileResponse(p employee.Profile) employee.ProfileResponse {
	return employee.ProfileResponse{
		UserID:             p.UserID,
		Phone:              p.Phone,
		Department:         p.Department,
		Position:           p.Position,
		BaseSalary:         p.BaseSalary,
		PaidLeavesPerMonth: p.PaidLeavesPerMonth,
		CreatedAt:          p.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:          p.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
