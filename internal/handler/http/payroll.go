package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/wellpay/wellpay-backend-go/internal/domain/payroll"
	"github.com/wellpay/wellpay-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	GeneratePayslip(w http.ResponseWriter, r *http.Request)
	ListMyPayslips(w http.ResponseWriter, r *http.Request)
	ListEmployeePayslips(w http.ResponseWriter, r *http.Request)
	RecordOvertime(w http.ResponseWriter, r *http.Request)
	ListMyStressRecords(w http.ResponseWriter, r *http.Request)
	StressDashboard(w http.ResponseWriter, r *http.Request)
	EmployeeStressHistory(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// GeneratePayslip implements PayrollHandler. Generating twice for the same
// period returns the original payslip unchanged.
func (p *PayrollHandlerImpl) GeneratePayslip(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var generateReq payroll.GeneratePayslipRequest
	if err := json.NewDecoder(r.Body).Decode(&generateReq); err != nil {
		slog.Error("GeneratePayslip decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	payslipResponse, err := p.payrollService.GeneratePayslip(r.Context(), userID, generateReq)
	if err != nil {
		slog.Error("GeneratePayslip service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payslip generated successfully", payslipResponse)
}

// ListMyPayslips implements PayrollHandler.
func (p *PayrollHandlerImpl) ListMyPayslips(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	payslips, err := p.payrollService.ListPayslips(r.Context(), userID)
	if err != nil {
		slog.Error("ListMyPayslips service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, payslips)
}

// ListEmployeePayslips implements PayrollHandler. HR only.
func (p *PayrollHandlerImpl) ListEmployeePayslips(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	payslips, err := p.payrollService.ListPayslips(r.Context(), employeeID)
	if err != nil {
		slog.Error("ListEmployeePayslips service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, payslips)
}

// RecordOvertime implements PayrollHandler.
func (p *PayrollHandlerImpl) RecordOvertime(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var overtimeReq payroll.RecordOvertimeRequest
	if err := json.NewDecoder(r.Body).Decode(&overtimeReq); err != nil {
		slog.Error("RecordOvertime decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	recordResponse, err := p.payrollService.RecordOvertime(r.Context(), userID, overtimeReq)
	if err != nil {
		slog.Error("RecordOvertime service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime recorded successfully", recordResponse)
}

// ListMyStressRecords implements PayrollHandler.
func (p *PayrollHandlerImpl) ListMyStressRecords(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	records, err := p.payrollService.ListStressRecords(r.Context(), userID)
	if err != nil {
		slog.Error("ListMyStressRecords service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// StressDashboard implements PayrollHandler.
func (p *PayrollHandlerImpl) StressDashboard(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	dashboardResponse, err := p.payrollService.StressDashboard(r.Context(), userID)
	if err != nil {
		slog.Error("StressDashboard service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, dashboardResponse)
}

// EmployeeStressHistory implements PayrollHandler. HR only.
func (p *PayrollHandlerImpl) EmployeeStressHistory(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	historyResponse, err := p.payrollService.StressHistory(r.Context(), employeeID)
	if err != nil {
		slog.Error("EmployeeStressHistory service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, historyResponse)
}
