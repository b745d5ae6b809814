package http

import (
	"net/http"

	"gym-portal/internal/delivery/http/handler"
	"gym-portal/internal/delivery/http/middleware"
	"gym-portal/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	userHandler       *handler.UserHandler
	dashboardHandler  *handler.DashboardHandler
	loggingMiddleware *middleware.LoggingMiddleware
	corsMiddleware    *middleware.CORSMiddleware
}

func NewRouter(
	userHandler *handler.UserHandler,
	dashboardHandler *handler.DashboardHandler,
	loggingMiddleware *middleware.LoggingMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		userHandler:       userHandler,
		dashboardHandler:  dashboardHandler,
		loggingMiddleware: loggingMiddleware,
		corsMiddleware:    corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Users
	api.HandleFunc("/users", r.userHandler.ListUsers).Methods(http.MethodGet)
	api.HandleFunc("/users/signup", r.userHandler.Signup).Methods(http.MethodPost, http.MethodOptions)

	// Dashboard
	dashboard := api.PathPrefix("/dashboard").Subrouter()
	dashboard.HandleFunc("/notifications", r.dashboardHandler.ListNotifications).Methods(http.MethodGet)
	dashboard.HandleFunc("/notifications/{id}", r.dashboardHandler.DeleteNotification).Methods(http.MethodDelete, http.MethodOptions)
	dashboard.HandleFunc("/progress", r.dashboardHandler.GetProgress).Methods(http.MethodGet)

	r.router.NotFoundHandler = http.HandlerFunc(r.notFound)
	r.router.MethodNotAllowedHandler = http.HandlerFunc(r.methodNotAllowed)

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	response.OK(w, map[string]string{"status": "ok"})
}

func (r *Router) notFound(w http.ResponseWriter, req *http.Request) {
	response.NotFound(w, "Route not found")
}

func (r *Router) methodNotAllowed(w http.ResponseWriter, req *http.Request) {
	response.Error(w, http.StatusMethodNotAllowed, "Method not allowed")
}
