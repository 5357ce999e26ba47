package handler

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"esupport-inventory/internal/model"
)

const dateMessage = "must be a date in YYYY-MM-DD format"

// computerRequest is the JSON body of computer writes. Dates travel as YYYY-MM-DD.
type computerRequest struct {
	Name         string      `json:"name"`
	Model        string      `json:"model"`
	Brand        model.Brand `json:"brand"`
	ServiceTag   string      `json:"service_tag"`
	PurchaseDate string      `json:"purchase_date"`
	WarrantyEnd  string      `json:"warranty_end"`
	CompanyID    *uint       `json:"company_id"`
	AssignedToID *uint       `json:"assigned_to_id"`
}

func (req computerRequest) toModel() (model.Computer, map[string]string) {
	fields := map[string]string{}
	computer := model.Computer{
		Name:         req.Name,
		Model:        req.Model,
		Brand:        req.Brand,
		ServiceTag:   req.ServiceTag,
		PurchaseDate: optionalDate(req.PurchaseDate, "purchase_date", fields),
		WarrantyEnd:  optionalDate(req.WarrantyEnd, "warranty_end", fields),
		CompanyID:    req.CompanyID,
		AssignedToID: req.AssignedToID,
	}
	return computer, fields
}

// serviceActionRequest is the JSON body of service action writes. Cost
// accepts a JSON number or string.
type serviceActionRequest struct {
	ComputerID  uint                `json:"computer_id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	ActionDate  string              `json:"action_date"`
	Cost        decimal.Decimal     `json:"cost"`
	Status      model.ServiceStatus `json:"status"`
}

func (req serviceActionRequest) toModel() (model.ServiceAction, map[string]string) {
	fields := map[string]string{}
	action := model.ServiceAction{
		ComputerID:  req.ComputerID,
		Title:       req.Title,
		Description: req.Description,
		Cost:        req.Cost,
		Status:      req.Status,
	}
	if d := optionalDate(req.ActionDate, "action_date", fields); d != nil {
		action.ActionDate = *d
	}
	return action, fields
}

// optionalDate parses raw as a calendar date, recording a field problem when it is malformed
func optionalDate(raw, field string, fields map[string]string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if d, err := time.Parse(time.DateOnly, raw); err == nil {
		return &d
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t
	}
	fields[field] = dateMessage
	return nil
}
