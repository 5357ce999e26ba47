package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"esupport-inventory/internal/model"
	"esupport-inventory/internal/repository"
)

// CreateComputerHandler handles the creation of a new computer.
func (h *AdminHandler) CreateComputerHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.ResponseHelper.CreateRequestContext(r, DefaultTimeout)
	defer cancel()

	var req computerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrorHandler.HandleJSONDecodeError(w, err)
		return
	}

	computer, fields := req.toModel()
	if len(fields) > 0 {
		h.ErrorHandler.HandleValidationErrors(w, fields)
		return
	}

	created, err := h.deps.Computers.CreateComputer(ctx, computer)
	if err != nil {
		h.ErrorHandler.HandleError(w, err, "create computer")
		return
	}

	h.ErrorHandler.SendSuccessResponse(w, http.StatusCreated, "Computer created successfully", created)
}

// ListComputersHandler lists computers with the assigned employee's company
// and the company choices for the filter selector.
func (h *AdminHandler) ListComputersHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.ResponseHelper.CreateRequestContext(r, LongRunningTimeout)
	defer cancel()

	params := h.ResponseHelper.ParsePaginationParams(r)
	q := h.ResponseHelper.ParseListQuery(r, repository.ComputerFilterKeys(), params)

	page, err := h.deps.Computers.ListComputers(ctx, q)
	if err != nil {
		h.ErrorHandler.HandleError(w, err, "list computers")
		return
	}

	extra, err := h.companySelector(ctx, r)
	if err != nil {
		h.ErrorHandler.HandleError(w, err, "list companies")
		return
	}

	meta := h.ResponseHelper.CalculatePaginationMeta(params, page.TotalCount)
	h.ErrorHandler.SendJSONResponse(w, http.StatusOK,
		h.ResponseHelper.CreatePaginatedListResponseData("computers", page.Items, meta, q, extra))
}

// GetComputerHandler returns a computer with its assignee and service history.
func (h *AdminHandler) GetComputerHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.ResponseHelper.CreateRequestContext(r, DefaultTimeout)
	defer cancel()

	id, valid := h.ErrorHandler.ParseAndValidateID(w, mux.Vars(r)["id"])
	if !valid {
		return
	}

	computer, err := h.deps.Computers.GetComputer(ctx, id)
	if err != nil {
		h.ErrorHandler.HandleError(w, err, "retrieve computer")
		return
	}

	h.ErrorHandler.SendJSONResponse(w, http.StatusOK, computer)
}

// UpdateComputerHandler replaces the editable fields of a computer.
func (h *AdminHandler) UpdateComputerHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.ResponseHelper.CreateRequestContext(r, DefaultTimeout)
	defer cancel()

	id, valid := h.ErrorHandler.ParseAndValidateID(w, mux.Vars(r)["id"])
	if !valid {
		return
	}

	var req computerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrorHandler.HandleJSONDecodeError(w, err)
		return
	}

	computer, fields := req.toModel()
	if len(fields) > 0 {
		h.ErrorHandler.HandleValidationErrors(w, fields)
		return
	}

	updated, err := h.deps.Computers.UpdateComputer(ctx, id, computer)
	if err != nil {
		h.ErrorHandler.HandleError(w, err, "update computer")
		return
	}

	h.ErrorHandler.SendSuccessResponse(w, http.StatusOK, "Computer updated successfully", updated)
}

// DeleteComputerHandler deletes a computer and its service history.
func (h *AdminHandler) DeleteComputerHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.ResponseHelper.CreateRequestContext(r, DefaultTimeout)
	defer cancel()

	id, valid := h.ErrorHandler.ParseAndValidateID(w, mux.Vars(r)["id"])
	if !valid {
		return
	}

	if err := h.deps.Computers.DeleteComputer(ctx, id); err != nil {
		h.ErrorHandler.HandleError(w, err, "delete computer")
		return
	}

	h.ErrorHandler.SendSuccessResponse(w, http.StatusOK, "Computer deleted successfully", map[string]uint{"id": id})
}

// ComputerModelsHandler returns the distinct non-empty computer models for the model filter.
func (h *AdminHandler) ComputerModelsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.ResponseHelper.CreateRequestContext(r, DefaultTimeout)
	defer cancel()

	models, err := h.deps.Computers.ComputerModels(ctx)
	if err != nil {
		h.ErrorHandler.HandleError(w, err, "list computer models")
		return
	}

	h.ErrorHandler.SendJSONResponse(w, http.StatusOK, map[string]interface{}{"models": models})
}

// companySelector returns the company_choices and selected_company entries
// shared by the computer and service action lists.
func (h *AdminHandler) companySelector(ctx context.Context, r *http.Request) (map[string]interface{}, error) {
	choices, err := h.deps.Companies.CompanyChoices(ctx)
	if err != nil {
		return nil, err
	}
	if choices == nil {
		choices = []model.CompanyChoice{}
	}

	return map[string]interface{}{
		"company_choices":  choices,
		"selected_company": r.URL.Query().Get("company"),
	}, nil
}
