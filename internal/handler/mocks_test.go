package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"esupport-inventory/internal/config"
	"esupport-inventory/internal/model"
	"esupport-inventory/internal/report"
	"esupport-inventory/internal/repository"
	"esupport-inventory/pkg/errors"
)

// Mock implementations for testing

type MockCompanyService struct {
	CreateCompanyFunc  func(ctx context.Context, company model.Company) (*model.Company, error)
	GetCompanyFunc     func(ctx context.Context, id uint) (*model.Company, error)
	UpdateCompanyFunc  func(ctx context.Context, id uint, updates model.Company) (*model.Company, error)
	DeleteCompanyFunc  func(ctx context.Context, id uint) error
	ListCompaniesFunc  func(ctx context.Context, q repository.ListQuery) (*repository.Page[model.Company], error)
	CompanyChoicesFunc func(ctx context.Context) ([]model.CompanyChoice, error)
}

func (m *MockCompanyService) CreateCompany(ctx context.Context, company model.Company) (*model.Company, error) {
	if m.CreateCompanyFunc != nil {
		return m.CreateCompanyFunc(ctx, company)
	}
	company.ID = 1
	return &company, nil
}

func (m *MockCompanyService) GetCompany(ctx context.Context, id uint) (*model.Company, error) {
	if m.GetCompanyFunc != nil {
		return m.GetCompanyFunc(ctx, id)
	}
	return nil, errors.NotFoundError("company")
}

func (m *MockCompanyService) UpdateCompany(ctx context.Context, id uint, updates model.Company) (*model.Company, error) {
	if m.UpdateCompanyFunc != nil {
		return m.UpdateCompanyFunc(ctx, id, updates)
	}
	updates.ID = id
	return &updates, nil
}

func (m *MockCompanyService) DeleteCompany(ctx context.Context, id uint) error {
	if m.DeleteCompanyFunc != nil {
		return m.DeleteCompanyFunc(ctx, id)
	}
	return nil
}

func (m *MockCompanyService) ListCompanies(ctx context.Context, q repository.ListQuery) (*repository.Page[model.Company], error) {
	if m.ListCompaniesFunc != nil {
		return m.ListCompaniesFunc(ctx, q)
	}
	return &repository.Page[model.Company]{Items: []model.Company{}}, nil
}

func (m *MockCompanyService) CompanyChoices(ctx context.Context) ([]model.CompanyChoice, error) {
	if m.CompanyChoicesFunc != nil {
		return m.CompanyChoicesFunc(ctx)
	}
	return []model.CompanyChoice{}, nil
}

type MockEmployeeService struct {
	CreateEmployeeFunc func(ctx context.Context, employee model.Employee) (*model.Employee, error)
	GetEmployeeFunc    func(ctx context.Context, id uint) (*model.Employee, error)
	UpdateEmployeeFunc func(ctx context.Context, id uint, updates model.Employee) (*model.Employee, error)
	DeleteEmployeeFunc func(ctx context.Context, id uint) error
	ListEmployeesFunc  func(ctx context.Context, q repository.ListQuery) (*repository.Page[repository.EmployeeListItem], error)
}

func (m *MockEmployeeService) CreateEmployee(ctx context.Context, employee model.Employee) (*model.Employee, error) {
	if m.CreateEmployeeFunc != nil {
		return m.CreateEmployeeFunc(ctx, employee)
	}
	employee.ID = 1
	return &employee, nil
}

func (m *MockEmployeeService) GetEmployee(ctx context.Context, id uint) (*model.Employee, error) {
	if m.GetEmployeeFunc != nil {
		return m.GetEmployeeFunc(ctx, id)
	}
	return nil, errors.NotFoundError("employee")
}

func (m *MockEmployeeService) UpdateEmployee(ctx context.Context, id uint, updates model.Employee) (*model.Employee, error) {
	if m.UpdateEmployeeFunc != nil {
		return m.UpdateEmployeeFunc(ctx, id, updates)
	}
	updates.ID = id
	return &updates, nil
}

func (m *MockEmployeeService) DeleteEmployee(ctx context.Context, id uint) error {
	if m.DeleteEmployeeFunc != nil {
		return m.DeleteEmployeeFunc(ctx, id)
	}
	return nil
}

func (m *MockEmployeeService) ListEmployees(ctx context.Context, q repository.ListQuery) (*repository.Page[repository.EmployeeListItem], error) {
	if m.ListEmployeesFunc != nil {
		return m.ListEmployeesFunc(ctx, q)
	}
	return &repository.Page[repository.EmployeeListItem]{Items: []repository.EmployeeListItem{}}, nil
}

type MockComputerService struct {
	CreateComputerFunc func(ctx context.Context, computer model.Computer) (*model.Computer, error)
	GetComputerFunc    func(ctx context.Context, id uint) (*model.Computer, error)
	UpdateComputerFunc func(ctx context.Context, id uint, updates model.Computer) (*model.Computer, error)
	DeleteComputerFunc func(ctx context.Context, id uint) error
	ListComputersFunc  func(ctx context.Context, q repository.ListQuery) (*repository.Page[repository.ComputerListItem], error)
	ComputerModelsFunc func(ctx context.Context) ([]string, error)
}

func (m *MockComputerService) CreateComputer(ctx context.Context, computer model.Computer) (*model.Computer, error) {
	if m.CreateComputerFunc != nil {
		return m.CreateComputerFunc(ctx, computer)
	}
	computer.ID = 1
	return &computer, nil
}

func (m *MockComputerService) GetComputer(ctx context.Context, id uint) (*model.Computer, error) {
	if m.GetComputerFunc != nil {
		return m.GetComputerFunc(ctx, id)
	}
	return nil, errors.NotFoundError("computer")
}

func (m *MockComputerService) UpdateComputer(ctx context.Context, id uint, updates model.Computer) (*model.Computer, error) {
	if m.UpdateComputerFunc != nil {
		return m.UpdateComputerFunc(ctx, id, updates)
	}
	updates.ID = id
	return &updates, nil
}

func (m *MockComputerService) DeleteComputer(ctx context.Context, id uint) error {
	if m.DeleteComputerFunc != nil {
		return m.DeleteComputerFunc(ctx, id)
	}
	return nil
}

func (m *MockComputerService) ListComputers(ctx context.Context, q repository.ListQuery) (*repository.Page[repository.ComputerListItem], error) {
	if m.ListComputersFunc != nil {
		return m.ListComputersFunc(ctx, q)
	}
	return &repository.Page[repository.ComputerListItem]{Items: []repository.ComputerListItem{}}, nil
}

func (m *MockComputerService) ComputerModels(ctx context.Context) ([]string, error) {
	if m.ComputerModelsFunc != nil {
		return m.ComputerModelsFunc(ctx)
	}
	return []string{}, nil
}

type MockServiceActionService struct {
	CreateServiceActionFunc func(ctx context.Context, action model.ServiceAction) (*model.ServiceAction, error)
	GetServiceActionFunc    func(ctx context.Context, id uint) (*model.ServiceAction, error)
	UpdateServiceActionFunc func(ctx context.Context, id uint, updates model.ServiceAction) (*model.ServiceAction, error)
	DeleteServiceActionFunc func(ctx context.Context, id uint) error
	ListServiceActionsFunc  func(ctx context.Context, q repository.ListQuery) (*repository.Page[model.ServiceAction], error)
}

func (m *MockServiceActionService) CreateServiceAction(ctx context.Context, action model.ServiceAction) (*model.ServiceAction, error) {
	if m.CreateServiceActionFunc != nil {
		return m.CreateServiceActionFunc(ctx, action)
	}
	action.ID = 1
	return &action, nil
}

func (m *MockServiceActionService) GetServiceAction(ctx context.Context, id uint) (*model.ServiceAction, error) {
	if m.GetServiceActionFunc != nil {
		return m.GetServiceActionFunc(ctx, id)
	}
	return nil, errors.NotFoundError("service action")
}

func (m *MockServiceActionService) UpdateServiceAction(ctx context.Context, id uint, updates model.ServiceAction) (*model.ServiceAction, error) {
	if m.UpdateServiceActionFunc != nil {
		return m.UpdateServiceActionFunc(ctx, id, updates)
	}
	updates.ID = id
	return &updates, nil
}

func (m *MockServiceActionService) DeleteServiceAction(ctx context.Context, id uint) error {
	if m.DeleteServiceActionFunc != nil {
		return m.DeleteServiceActionFunc(ctx, id)
	}
	return nil
}

func (m *MockServiceActionService) ListServiceActions(ctx context.Context, q repository.ListQuery) (*repository.Page[model.ServiceAction], error) {
	if m.ListServiceActionsFunc != nil {
		return m.ListServiceActionsFunc(ctx, q)
	}
	return &repository.Page[model.ServiceAction]{Items: []model.ServiceAction{}}, nil
}

type MockReportQuery struct {
	ForAdminFunc  func(ctx context.Context, rawCompanyID string) (*report.Result, error)
	ForReportFunc func(ctx context.Context, rawCompanyID string) (*report.Result, error)
}

func (m *MockReportQuery) ForAdmin(ctx context.Context, rawCompanyID string) (*report.Result, error) {
	if m.ForAdminFunc != nil {
		return m.ForAdminFunc(ctx, rawCompanyID)
	}
	return &report.Result{Companies: []report.CompanyRow{}, Computers: []report.ComputerRow{}}, nil
}

func (m *MockReportQuery) ForReport(ctx context.Context, rawCompanyID string) (*report.Result, error) {
	if m.ForReportFunc != nil {
		return m.ForReportFunc(ctx, rawCompanyID)
	}
	return &report.Result{Companies: []report.CompanyRow{}, Computers: []report.ComputerRow{}}, nil
}

// Test helpers

type testMocks struct {
	companies      *MockCompanyService
	employees      *MockEmployeeService
	computers      *MockComputerService
	serviceActions *MockServiceActionService
	report         *MockReportQuery
}

func createTestHandler() (*AdminHandler, *testMocks) {
	m := &testMocks{
		companies:      &MockCompanyService{},
		employees:      &MockEmployeeService{},
		computers:      &MockComputerService{},
		serviceActions: &MockServiceActionService{},
		report:         &MockReportQuery{},
	}
	h := NewAdminHandler(Dependencies{
		Companies:      m.companies,
		Employees:      m.employees,
		Computers:      m.computers,
		ServiceActions: m.serviceActions,
		Report:         m.report,
	}, config.DefaultAdminConfig(), zap.NewNop())
	return h, m
}

func createJSONRequest(method, url string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if s, ok := body.(string); ok {
		buf.WriteString(s)
	} else if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func withID(req *http.Request, id string) *http.Request {
	return mux.SetURLVars(req, map[string]string{"id": id})
}

func decodeBody(rr *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	_ = json.Unmarshal(rr.Body.Bytes(), &body)
	return body
}
