package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"esupport-inventory/internal/repository"
)

// CreateServiceActionHandler records a new service action on a computer.
func (h *AdminHandler) CreateServiceActionHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.ResponseHelper.CreateRequestContext(r, DefaultTimeout)
	defer cancel()

	var req serviceActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrorHandler.HandleJSONDecodeError(w, err)
		return
	}

	action, fields := req.toModel()
	if len(fields) > 0 {
		h.ErrorHandler.HandleValidationErrors(w, fields)
		return
	}

	created, err := h.deps.ServiceActions.CreateServiceAction(ctx, action)
	if err != nil {
		h.ErrorHandler.HandleError(w, err, "create service action")
		return
	}

	h.ErrorHandler.SendSuccessResponse(w, http.StatusCreated, "Service action created successfully", created)
}

// ListServiceActionsHandler lists service actions, newest first, with the
// date hierarchy filters and the company selector.
func (h *AdminHandler) ListServiceActionsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.ResponseHelper.CreateRequestContext(r, LongRunningTimeout)
	defer cancel()

	params := h.ResponseHelper.ParsePaginationParams(r)
	q := h.ResponseHelper.ParseListQuery(r, repository.ServiceActionFilterKeys(), params)

	page, err := h.deps.ServiceActions.ListServiceActions(ctx, q)
	if err != nil {
		h.ErrorHandler.HandleError(w, err, "list service actions")
		return
	}

	extra, err := h.companySelector(ctx, r)
	if err != nil {
		h.ErrorHandler.HandleError(w, err, "list companies")
		return
	}

	meta := h.ResponseHelper.CalculatePaginationMeta(params, page.TotalCount)
	h.ErrorHandler.SendJSONResponse(w, http.StatusOK,
		h.ResponseHelper.CreatePaginatedListResponseData("service_actions", page.Items, meta, q, extra))
}

// GetServiceActionHandler returns a single service action with its computer.
func (h *AdminHandler) GetServiceActionHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.ResponseHelper.CreateRequestContext(r, DefaultTimeout)
	defer cancel()

	id, valid := h.ErrorHandler.ParseAndValidateID(w, mux.Vars(r)["id"])
	if !valid {
		return
	}

	action, err := h.deps.ServiceActions.GetServiceAction(ctx, id)
	if err != nil {
		h.ErrorHandler.HandleError(w, err, "retrieve service action")
		return
	}

	h.ErrorHandler.SendJSONResponse(w, http.StatusOK, action)
}

// UpdateServiceActionHandler replaces the editable fields of a service action.
func (h *AdminHandler) UpdateServiceActionHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.ResponseHelper.CreateRequestContext(r, DefaultTimeout)
	defer cancel()

	id, valid := h.ErrorHandler.ParseAndValidateID(w, mux.Vars(r)["id"])
	if !valid {
		return
	}

	var req serviceActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrorHandler.HandleJSONDecodeError(w, err)
		return
	}

	action, fields := req.toModel()
	if len(fields) > 0 {
		h.ErrorHandler.HandleValidationErrors(w, fields)
		return
	}

	updated, err := h.deps.ServiceActions.UpdateServiceAction(ctx, id, action)
	if err != nil {
		h.ErrorHandler.HandleError(w, err, "update service action")
		return
	}

	h.ErrorHandler.SendSuccessResponse(w, http.StatusOK, "Service action updated successfully", updated)
}

// DeleteServiceActionHandler deletes a service action.
func (h *AdminHandler) DeleteServiceActionHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.ResponseHelper.CreateRequestContext(r, DefaultTimeout)
	defer cancel()

	id, valid := h.ErrorHandler.ParseAndValidateID(w, mux.Vars(r)["id"])
	if !valid {
		return
	}

	if err := h.deps.ServiceActions.DeleteServiceAction(ctx, id); err != nil {
		h.ErrorHandler.HandleError(w, err, "delete service action")
		return
	}

	h.ErrorHandler.SendSuccessResponse(w, http.StatusOK, "Service action deleted successfully", map[string]uint{"id": id})
}
