package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"esupport-inventory/internal/model"
	"esupport-inventory/internal/repository"
)

// CreateCompanyHandler handles the creation of a new company.
func (h *AdminHandler) CreateCompanyHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.ResponseHelper.CreateRequestContext(r, DefaultTimeout)
	defer cancel()

	var company model.Company
	if err := json.NewDecoder(r.Body).Decode(&company); err != nil {
		h.ErrorHandler.HandleJSONDecodeError(w, err)
		return
	}

	created, err := h.deps.Companies.CreateCompany(ctx, company)
	if err != nil {
		h.ErrorHandler.HandleError(w, err, "create company")
		return
	}

	h.ErrorHandler.SendSuccessResponse(w, http.StatusCreated, "Company created successfully", created)
}

// ListCompaniesHandler lists companies with search, filters and pagination.
func (h *AdminHandler) ListCompaniesHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.ResponseHelper.CreateRequestContext(r, LongRunningTimeout)
	defer cancel()

	params := h.ResponseHelper.ParsePaginationParams(r)
	q := h.ResponseHelper.ParseListQuery(r, repository.CompanyFilterKeys(), params)

	page, err := h.deps.Companies.ListCompanies(ctx, q)
	if err != nil {
		h.ErrorHandler.HandleError(w, err, "list companies")
		return
	}

	meta := h.ResponseHelper.CalculatePaginationMeta(params, page.TotalCount)
	h.ErrorHandler.SendJSONResponse(w, http.StatusOK,
		h.ResponseHelper.CreatePaginatedListResponseData("companies", page.Items, meta, q, nil))
}

// GetCompanyHandler handles the retrieval of a single company by ID.
func (h *AdminHandler) GetCompanyHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.ResponseHelper.CreateRequestContext(r, DefaultTimeout)
	defer cancel()

	id, valid := h.ErrorHandler.ParseAndValidateID(w, mux.Vars(r)["id"])
	if !valid {
		return
	}

	company, err := h.deps.Companies.GetCompany(ctx, id)
	if err != nil {
		h.ErrorHandler.HandleError(w, err, "retrieve company")
		return
	}

	h.ErrorHandler.SendJSONResponse(w, http.StatusOK, company)
}

// UpdateCompanyHandler replaces the editable fields of a company.
func (h *AdminHandler) UpdateCompanyHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.ResponseHelper.CreateRequestContext(r, DefaultTimeout)
	defer cancel()

	id, valid := h.ErrorHandler.ParseAndValidateID(w, mux.Vars(r)["id"])
	if !valid {
		return
	}

	var company model.Company
	if err := json.NewDecoder(r.Body).Decode(&company); err != nil {
		h.ErrorHandler.HandleJSONDecodeError(w, err)
		return
	}

	updated, err := h.deps.Companies.UpdateCompany(ctx, id, company)
	if err != nil {
		h.ErrorHandler.HandleError(w, err, "update company")
		return
	}

	h.ErrorHandler.SendSuccessResponse(w, http.StatusOK, "Company updated successfully", updated)
}

// DeleteCompanyHandler deletes a company together with its employees, computers and their history.
func (h *AdminHandler) DeleteCompanyHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.ResponseHelper.CreateRequestContext(r, DefaultTimeout)
	defer cancel()

	id, valid := h.ErrorHandler.ParseAndValidateID(w, mux.Vars(r)["id"])
	if !valid {
		return
	}

	if err := h.deps.Companies.DeleteCompany(ctx, id); err != nil {
		h.ErrorHandler.HandleError(w, err, "delete company")
		return
	}

	h.ErrorHandler.SendSuccessResponse(w, http.StatusOK, "Company deleted successfully", map[string]uint{"id": id})
}
