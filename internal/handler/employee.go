package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"esupport-inventory/internal/model"
	"esupport-inventory/internal/repository"
)

// CreateEmployeeHandler handles the creation of a new employee.
func (h *AdminHandler) CreateEmployeeHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.ResponseHelper.CreateRequestContext(r, DefaultTimeout)
	defer cancel()

	var employee model.Employee
	if err := json.NewDecoder(r.Body).Decode(&employee); err != nil {
		h.ErrorHandler.HandleJSONDecodeError(w, err)
		return
	}

	created, err := h.deps.Employees.CreateEmployee(ctx, employee)
	if err != nil {
		h.ErrorHandler.HandleError(w, err, "create employee")
		return
	}

	h.ErrorHandler.SendSuccessResponse(w, http.StatusCreated, "Employee created successfully", created)
}

// ListEmployeesHandler lists employees with their computer counts.
func (h *AdminHandler) ListEmployeesHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.ResponseHelper.CreateRequestContext(r, LongRunningTimeout)
	defer cancel()

	params := h.ResponseHelper.ParsePaginationParams(r)
	q := h.ResponseHelper.ParseListQuery(r, repository.EmployeeFilterKeys(), params)

	page, err := h.deps.Employees.ListEmployees(ctx, q)
	if err != nil {
		h.ErrorHandler.HandleError(w, err, "list employees")
		return
	}

	meta := h.ResponseHelper.CalculatePaginationMeta(params, page.TotalCount)
	h.ErrorHandler.SendJSONResponse(w, http.StatusOK,
		h.ResponseHelper.CreatePaginatedListResponseData("employees", page.Items, meta, q, nil))
}

// GetEmployeeHandler returns an employee with the computers assigned to them.
func (h *AdminHandler) GetEmployeeHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.ResponseHelper.CreateRequestContext(r, DefaultTimeout)
	defer cancel()

	id, valid := h.ErrorHandler.ParseAndValidateID(w, mux.Vars(r)["id"])
	if !valid {
		return
	}

	employee, err := h.deps.Employees.GetEmployee(ctx, id)
	if err != nil {
		h.ErrorHandler.HandleError(w, err, "retrieve employee")
		return
	}

	h.ErrorHandler.SendJSONResponse(w, http.StatusOK, employee)
}

// UpdateEmployeeHandler replaces the editable fields of an employee.
func (h *AdminHandler) UpdateEmployeeHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.ResponseHelper.CreateRequestContext(r, DefaultTimeout)
	defer cancel()

	id, valid := h.ErrorHandler.ParseAndValidateID(w, mux.Vars(r)["id"])
	if !valid {
		return
	}

	var employee model.Employee
	if err := json.NewDecoder(r.Body).Decode(&employee); err != nil {
		h.ErrorHandler.HandleJSONDecodeError(w, err)
		return
	}

	updated, err := h.deps.Employees.UpdateEmployee(ctx, id, employee)
	if err != nil {
		h.ErrorHandler.HandleError(w, err, "update employee")
		return
	}

	h.ErrorHandler.SendSuccessResponse(w, http.StatusOK, "Employee updated successfully", updated)
}

// DeleteEmployeeHandler deletes an employee. Their computers stay, unassigned.
func (h *AdminHandler) DeleteEmployeeHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.ResponseHelper.CreateRequestContext(r, DefaultTimeout)
	defer cancel()

	id, valid := h.ErrorHandler.ParseAndValidateID(w, mux.Vars(r)["id"])
	if !valid {
		return
	}

	if err := h.deps.Employees.DeleteEmployee(ctx, id); err != nil {
		h.ErrorHandler.HandleError(w, err, "delete employee")
		return
	}

	h.ErrorHandler.SendSuccessResponse(w, http.StatusOK, "Employee deleted successfully", map[string]uint{"id": id})
}
