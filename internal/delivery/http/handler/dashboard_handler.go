package handler

import (
	"errors"
	"net/http"
	"strconv"

	"gym-portal/internal/usecase"
	"gym-portal/pkg/response"

	"github.com/gorilla/mux"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{dashboardUsecase: dashboardUsecase}
}

// ListNotifications handles GET /api/dashboard/notifications?sort=date|type
func (h *DashboardHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.dashboardUsecase.ListNotifications(r.Context(), r.URL.Query().Get("sort"))
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidSort) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalServerError(w, "Error fetching notifications")
		return
	}

	response.OK(w, notifications)
}

// DeleteNotification handles DELETE /api/dashboard/notifications/{id}
func (h *DashboardHandler) DeleteNotification(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid notification ID")
		return
	}

	if err := h.dashboardUsecase.DeleteNotification(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrNotificationNotFound) {
			response.NotFound(w, "Notification not found")
			return
		}
		response.InternalServerError(w, "Error deleting notification")
		return
	}

	response.NoContent(w)
}

func (h *DashboardHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	response.OK(w, h.dashboardUsecase.GetProgress(r.Context()))
}
