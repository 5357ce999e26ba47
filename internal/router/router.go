package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"esupport-inventory/internal/config"
	"esupport-inventory/internal/handler"
	"esupport-inventory/internal/middleware"
)

// NewRouter creates a new router and sets up the routes with security middleware.
func NewRouter(h handler.AdminHandlerInterface, cfg *config.Config, logger *zap.Logger) *mux.Router {
	r := mux.NewRouter()

	securityMW := middleware.NewSecurityMiddleware(&cfg.Security)
	loggingMW := middleware.NewLoggingMiddleware(logger)

	// Order matters: the client IP and request id must exist before logging and rate limiting.
	r.Use(securityMW.SecurityHeaders)
	r.Use(securityMW.CORS)
	r.Use(securityMW.TrustedProxy)
	r.Use(loggingMW.RequestID)
	r.Use(loggingMW.LogRequests)
	r.Use(securityMW.RateLimit)
	r.Use(securityMW.RequestTimeout)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/health", h.HealthHandler).Methods(http.MethodGet)

	r.HandleFunc("/admin/", h.IndexHandler).Methods(http.MethodGet)
	r.HandleFunc("/admin", h.IndexHandler).Methods(http.MethodGet)

	admin := r.PathPrefix("/admin").Subrouter()

	admin.HandleFunc("/companies", h.ListCompaniesHandler).Methods(http.MethodGet)
	admin.HandleFunc("/companies", h.CreateCompanyHandler).Methods(http.MethodPost)
	admin.HandleFunc("/companies/{id}", h.GetCompanyHandler).Methods(http.MethodGet)
	admin.HandleFunc("/companies/{id}", h.UpdateCompanyHandler).Methods(http.MethodPut)
	admin.HandleFunc("/companies/{id}", h.DeleteCompanyHandler).Methods(http.MethodDelete)

	admin.HandleFunc("/employees", h.ListEmployeesHandler).Methods(http.MethodGet)
	admin.HandleFunc("/employees", h.CreateEmployeeHandler).Methods(http.MethodPost)
	admin.HandleFunc("/employees/{id}", h.GetEmployeeHandler).Methods(http.MethodGet)
	admin.HandleFunc("/employees/{id}", h.UpdateEmployeeHandler).Methods(http.MethodPut)
	admin.HandleFunc("/employees/{id}", h.DeleteEmployeeHandler).Methods(http.MethodDelete)

	// models before {id} so it is not taken for an id
	admin.HandleFunc("/computers/models", h.ComputerModelsHandler).Methods(http.MethodGet)
	admin.HandleFunc("/computers", h.ListComputersHandler).Methods(http.MethodGet)
	admin.HandleFunc("/computers", h.CreateComputerHandler).Methods(http.MethodPost)
	admin.HandleFunc("/computers/{id}", h.GetComputerHandler).Methods(http.MethodGet)
	admin.HandleFunc("/computers/{id}", h.UpdateComputerHandler).Methods(http.MethodPut)
	admin.HandleFunc("/computers/{id}", h.DeleteComputerHandler).Methods(http.MethodDelete)

	admin.HandleFunc("/service-actions", h.ListServiceActionsHandler).Methods(http.MethodGet)
	admin.HandleFunc("/service-actions", h.CreateServiceActionHandler).Methods(http.MethodPost)
	admin.HandleFunc("/service-actions/{id}", h.GetServiceActionHandler).Methods(http.MethodGet)
	admin.HandleFunc("/service-actions/{id}", h.UpdateServiceActionHandler).Methods(http.MethodPut)
	admin.HandleFunc("/service-actions/{id}", h.DeleteServiceActionHandler).Methods(http.MethodDelete)

	admin.HandleFunc("/computer-report", h.AdminComputerReportHandler).Methods(http.MethodGet)

	r.HandleFunc("/reports/computers", h.ComputerReportHandler).Methods(http.MethodGet)

	// Preflight requests only need a matching route; CORS answers them.
	r.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	return r
}
