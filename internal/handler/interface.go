package handler

import (
	"context"
	"net/http"

	"esupport-inventory/internal/model"
	"esupport-inventory/internal/report"
	"esupport-inventory/internal/repository"
)

// AdminHandlerInterface defines the contract for the back-office and report HTTP handlers.
type AdminHandlerInterface interface {
	// Back-office index and health
	IndexHandler(w http.ResponseWriter, r *http.Request)
	HealthHandler(w http.ResponseWriter, r *http.Request)

	// Companies
	CreateCompanyHandler(w http.ResponseWriter, r *http.Request)
	ListCompaniesHandler(w http.ResponseWriter, r *http.Request)
	GetCompanyHandler(w http.ResponseWriter, r *http.Request)
	UpdateCompanyHandler(w http.ResponseWriter, r *http.Request)
	DeleteCompanyHandler(w http.ResponseWriter, r *http.Request)

	// Employees
	CreateEmployeeHandler(w http.ResponseWriter, r *http.Request)
	ListEmployeesHandler(w http.ResponseWriter, r *http.Request)
	GetEmployeeHandler(w http.ResponseWriter, r *http.Request)
	UpdateEmployeeHandler(w http.ResponseWriter, r *http.Request)
	DeleteEmployeeHandler(w http.ResponseWriter, r *http.Request)

	// Computers
	CreateComputerHandler(w http.ResponseWriter, r *http.Request)
	ListComputersHandler(w http.ResponseWriter, r *http.Request)
	GetComputerHandler(w http.ResponseWriter, r *http.Request)
	UpdateComputerHandler(w http.ResponseWriter, r *http.Request)
	DeleteComputerHandler(w http.ResponseWriter, r *http.Request)
	ComputerModelsHandler(w http.ResponseWriter, r *http.Request)

	// Service actions
	CreateServiceActionHandler(w http.ResponseWriter, r *http.Request)
	ListServiceActionsHandler(w http.ResponseWriter, r *http.Request)
	GetServiceActionHandler(w http.ResponseWriter, r *http.Request)
	UpdateServiceActionHandler(w http.ResponseWriter, r *http.Request)
	DeleteServiceActionHandler(w http.ResponseWriter, r *http.Request)

	// Computer report
	AdminComputerReportHandler(w http.ResponseWriter, r *http.Request)
	ComputerReportHandler(w http.ResponseWriter, r *http.Request)
}

// Ensure AdminHandler implements AdminHandlerInterface at compile time
var _ AdminHandlerInterface = (*AdminHandler)(nil)

// CompanyService is what the handlers need from the company service.
type CompanyService interface {
	CreateCompany(ctx context.Context, company model.Company) (*model.Company, error)
	GetCompany(ctx context.Context, id uint) (*model.Company, error)
	UpdateCompany(ctx context.Context, id uint, updates model.Company) (*model.Company, error)
	DeleteCompany(ctx context.Context, id uint) error
	ListCompanies(ctx context.Context, q repository.ListQuery) (*repository.Page[model.Company], error)
	CompanyChoices(ctx context.Context) ([]model.CompanyChoice, error)
}

// EmployeeService is what the handlers need from the employee service.
type EmployeeService interface {
	CreateEmployee(ctx context.Context, employee model.Employee) (*model.Employee, error)
	GetEmployee(ctx context.Context, id uint) (*model.Employee, error)
	UpdateEmployee(ctx context.Context, id uint, updates model.Employee) (*model.Employee, error)
	DeleteEmployee(ctx context.Context, id uint) error
	ListEmployees(ctx context.Context, q repository.ListQuery) (*repository.Page[repository.EmployeeListItem], error)
}

// ComputerService is what the handlers need from the computer service.
type ComputerService interface {
	CreateComputer(ctx context.Context, computer model.Computer) (*model.Computer, error)
	GetComputer(ctx context.Context, id uint) (*model.Computer, error)
	UpdateComputer(ctx context.Context, id uint, updates model.Computer) (*model.Computer, error)
	DeleteComputer(ctx context.Context, id uint) error
	ListComputers(ctx context.Context, q repository.ListQuery) (*repository.Page[repository.ComputerListItem], error)
	ComputerModels(ctx context.Context) ([]string, error)
}

// ServiceActionService is what the handlers need from the service action service.
type ServiceActionService interface {
	CreateServiceAction(ctx context.Context, action model.ServiceAction) (*model.ServiceAction, error)
	GetServiceAction(ctx context.Context, id uint) (*model.ServiceAction, error)
	UpdateServiceAction(ctx context.Context, id uint, updates model.ServiceAction) (*model.ServiceAction, error)
	DeleteServiceAction(ctx context.Context, id uint) error
	ListServiceActions(ctx context.Context, q repository.ListQuery) (*repository.Page[model.ServiceAction], error)
}

// ReportQuery runs the computer report under the admin or the plain policy.
type ReportQuery interface {
	ForAdmin(ctx context.Context, rawCompanyID string) (*report.Result, error)
	ForReport(ctx context.Context, rawCompanyID string) (*report.Result, error)
}
