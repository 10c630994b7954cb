package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/wellpay/wellpay-backend-go/internal/domain/attendance"
	"github.com/wellpay/wellpay-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Record(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListForEmployee(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// Record implements AttendanceHandler. HR only; the target employee comes
// from the URL, never from the token.
func (a *AttendanceHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	var recordReq attendance.RecordAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&recordReq); err != nil {
		slog.Error("Record attendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	recordResponse, err := a.attendanceService.Record(r.Context(), employeeID, recordReq)
	if err != nil {
		slog.Error("Record attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance recorded successfully", recordResponse)
}

// ListMine implements AttendanceHandler.
func (a *AttendanceHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	a.list(w, r, userID)
}

// ListForEmployee implements AttendanceHandler. HR only.
func (a *AttendanceHandlerImpl) ListForEmployee(w http.ResponseWriter, r *http.Request) {
	a.list(w, r, chi.URLParam(r, "employeeID"))
}

func (a *AttendanceHandlerImpl) list(w http.ResponseWriter, r *http.Request, employeeID string) {
	queryReq, err := parseAttendanceQuery(r)
	if err != nil {
		response.BadRequest(w, "month and year must be numeric", nil)
		return
	}

	records, err := a.attendanceService.Query(r.Context(), employeeID, queryReq)
	if err != nil {
		slog.Error("List attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

func parseAttendanceQuery(r *http.Request) (attendance.QueryAttendanceRequest, error) {
	var req attendance.QueryAttendanceRequest

	if raw := r.URL.Query().Get("month"); raw != "" {
		month, err := strconv.Atoi(raw)
		if err != nil {
			return req, err
		}
		req.Month = &month
	}
	if raw := r.URL.Query().Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return req, err
		}
		req.Year = &year
	}
	return req, nil
}
