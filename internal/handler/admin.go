package handler

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"esupport-inventory/internal/config"
	"esupport-inventory/internal/repository"
)

// Constants for timeouts
const (
	DefaultTimeout     = 10 * time.Second
	LongRunningTimeout = 15 * time.Second
)

// Dependencies are the services behind the back-office handlers
type Dependencies struct {
	Companies      CompanyService
	Employees      EmployeeService
	Computers      ComputerService
	ServiceActions ServiceActionService
	Report         ReportQuery
}

// Panel describes one registered back-office list
type Panel struct {
	Name    string   `json:"name"`
	Title   string   `json:"title"`
	Path    string   `json:"path"`
	Filters []string `json:"filters"`
}

// AdminHandler handles the back-office and report HTTP requests.
type AdminHandler struct {
	deps   Dependencies
	admin  config.AdminConfig
	logger *zap.Logger

	ErrorHandler   *ErrorHandler
	ResponseHelper *ResponseHelper
}

// NewAdminHandler creates an AdminHandler presenting the back-office configured by admin
func NewAdminHandler(deps Dependencies, admin config.AdminConfig, logger *zap.Logger) *AdminHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("handler")

	return &AdminHandler{
		deps:           deps,
		admin:          admin,
		logger:         logger,
		ErrorHandler:   NewErrorHandler(logger),
		ResponseHelper: NewResponseHelper(admin.PageSize),
	}
}

// Panels returns the registered back-office lists in menu order
func Panels() []Panel {
	return []Panel{
		{Name: "companies", Title: "Companies", Path: "/admin/companies", Filters: repository.CompanyFilterKeys()},
		{Name: "employees", Title: "Employees", Path: "/admin/employees", Filters: repository.EmployeeFilterKeys()},
		{Name: "computers", Title: "Computers", Path: "/admin/computers", Filters: repository.ComputerFilterKeys()},
		{Name: "service_actions", Title: "Service actions", Path: "/admin/service-actions", Filters: repository.ServiceActionFilterKeys()},
		{Name: "computer_report", Title: "Computer report", Path: "/admin/computer-report", Filters: []string{"company"}},
	}
}

// IndexHandler returns the back-office branding and its panels
func (h *AdminHandler) IndexHandler(w http.ResponseWriter, r *http.Request) {
	h.ErrorHandler.SendJSONResponse(w, http.StatusOK, map[string]interface{}{
		"site_header": h.admin.SiteHeader,
		"site_title":  h.admin.SiteTitle,
		"index_title": h.admin.IndexTitle,
		"panels":      Panels(),
	})
}

// HealthHandler provides a health check endpoint
func (h *AdminHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	h.ErrorHandler.SendSuccessResponse(w, http.StatusOK, "Service is healthy", h.ResponseHelper.CreateHealthCheckData())
}

// AdminComputerReportHandler serves the report inside the back-office. An
// unknown company yields an empty report.
func (h *AdminHandler) AdminComputerReportHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.ResponseHelper.CreateRequestContext(r, LongRunningTimeout)
	defer cancel()

	result, err := h.deps.Report.ForAdmin(ctx, r.URL.Query().Get("company"))
	if err != nil {
		h.ErrorHandler.HandleError(w, err, "build computer report")
		return
	}

	h.ErrorHandler.SendJSONResponse(w, http.StatusOK, result)
}

// ComputerReportHandler serves the plain report. An unknown company is a 404.
func (h *AdminHandler) ComputerReportHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.ResponseHelper.CreateRequestContext(r, LongRunningTimeout)
	defer cancel()

	result, err := h.deps.Report.ForReport(ctx, r.URL.Query().Get("company"))
	if err != nil {
		h.ErrorHandler.HandleError(w, err, "build computer report")
		return
	}

	h.ErrorHandler.SendJSONResponse(w, http.StatusOK, result)
}
