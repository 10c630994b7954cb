package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/wellpay/wellpay-backend-go/internal/domain/employee"
	"github.com/wellpay/wellpay-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	GetMyProfile(w http.ResponseWriter, r *http.Request)
	UpdateMyProfile(w http.ResponseWriter, r *http.Request)
	CreateProfile(w http.ResponseWriter, r *http.Request)
	GetEmployeeProfile(w http.ResponseWriter, r *http.Request)
	ListDirectory(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: employeeService}
}

// GetMyProfile implements EmployeeHandler.
func (e *EmployeeHandlerImpl) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	profileResponse, err := e.employeeService.GetProfile(r.Context(), userID)
	if err != nil {
		slog.Error("GetMyProfile service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, profileResponse)
}

// UpdateMyProfile implements EmployeeHandler.
func (e *EmployeeHandlerImpl) UpdateMyProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var updateReq employee.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateMyProfile decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	profileResponse, err := e.employeeService.UpdateProfile(r.Context(), userID, updateReq)
	if err != nil {
		slog.Error("UpdateMyProfile service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Profile updated successfully", profileResponse)
}

// CreateProfile implements EmployeeHandler. HR only.
func (e *EmployeeHandlerImpl) CreateProfile(w http.ResponseWriter, r *http.Request) {
	var createReq employee.CreateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateProfile decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	profileResponse, err := e.employeeService.CreateProfile(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateProfile service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee profile created successfully", profileResponse)
}

// GetEmployeeProfile implements EmployeeHandler. HR only.
func (e *EmployeeHandlerImpl) GetEmployeeProfile(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	profileResponse, err := e.employeeService.GetProfile(r.Context(), employeeID)
	if err != nil {
		slog.Error("GetEmployeeProfile service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, profileResponse)
}

// ListDirectory implements EmployeeHandler. HR only.
func (e *EmployeeHandlerImpl) ListDirectory(w http.ResponseWriter, r *http.Request) {
	entries, err := e.employeeService.ListDirectory(r.Context())
	if err != nil {
		slog.Error("ListDirectory service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}
