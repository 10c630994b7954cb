package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/wellpay/wellpay-backend-go/internal/domain/reminder"
	"github.com/wellpay/wellpay-backend-go/internal/handler/http/response"
)

type ReminderHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ReminderHandlerImpl struct {
	reminderService reminder.ReminderService
}

func NewReminderHandler(reminderService reminder.ReminderService) ReminderHandler {
	return &ReminderHandlerImpl{reminderService: reminderService}
}

// Create implements ReminderHandler.
func (h *ReminderHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var createReq reminder.CreateReminderRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create reminder decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	reminderResponse, err := h.reminderService.Create(r.Context(), userID, createReq)
	if err != nil {
		slog.Error("Create reminder service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Reminder created successfully", reminderResponse)
}

// List implements ReminderHandler.
func (h *ReminderHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	reminders, err := h.reminderService.List(r.Context(), userID)
	if err != nil {
		slog.Error("List reminders service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, reminders)
}

// Update implements ReminderHandler.
func (h *ReminderHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var updateReq reminder.UpdateReminderRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update reminder decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	reminderResponse, err := h.reminderService.Update(r.Context(), userID, chi.URLParam(r, "reminderID"), updateReq)
	if err != nil {
		slog.Error("Update reminder service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Reminder updated successfully", reminderResponse)
}

// Delete implements ReminderHandler.
func (h *ReminderHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.reminderService.Delete(r.Context(), userID, chi.URLParam(r, "reminderID")); err != nil {
		slog.Error("Delete reminder service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Reminder deleted successfully", nil)
}
