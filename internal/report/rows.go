package report

import (
	"time"

	"esupport-inventory/internal/model"
)

// CompanyRow is a company as shown by the report.
type CompanyRow struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	VATID   string `json:"vat_id"`
	City    string `json:"city"`
	Address string `json:"address"`
}

// EmployeeRow is the employee a computer is assigned to.
type EmployeeRow struct {
	ID          uint   `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Position    string `json:"position"`
	PhoneNumber string `json:"phone_number"`
}

// ServiceActionRow is one entry of a computer's service history.
type ServiceActionRow struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ActionDate  string `json:"action_date"`
	Cost        string `json:"cost"`
	Status      string `json:"status"`
}

// ComputerRow is a computer with its assignee and full service history.
// ServiceActions is never nil.
type ComputerRow struct {
	ID             uint               `json:"id"`
	Name           string             `json:"name"`
	Model          string             `json:"model"`
	Brand          string             `json:"brand"`
	ServiceTag     string             `json:"service_tag"`
	PurchaseDate   *string            `json:"purchase_date"`
	WarrantyEnd    *string            `json:"warranty_end"`
	AssignedTo     *EmployeeRow       `json:"assigned_to"`
	ServiceActions []ServiceActionRow `json:"service_actions"`
}

func companyRow(c model.Company) CompanyRow {
	return CompanyRow{
		ID:      c.ID,
		Name:    c.Name,
		VATID:   c.VATID,
		City:    c.City,
		Address: c.Address,
	}
}

func employeeRow(e *model.Employee) *EmployeeRow {
	if e == nil {
		return nil
	}
	return &EmployeeRow{
		ID:          e.ID,
		FirstName:   e.FirstName,
		LastName:    e.LastName,
		FullName:    e.FullName(),
		Email:       e.Email,
		Position:    e.Position,
		PhoneNumber: e.PhoneNumber,
	}
}

func computerRow(c model.Computer) ComputerRow {
	actions := make([]ServiceActionRow, 0, len(c.ServiceActions))
	for _, a := range c.ServiceActions {
		actions = append(actions, ServiceActionRow{
			ID:          a.ID,
			Title:       a.Title,
			Description: a.Description,
			ActionDate:  a.ActionDate.Format(time.DateOnly),
			Cost:        a.Cost.StringFixed(2),
			Status:      string(a.Status),
		})
	}

	return ComputerRow{
		ID:             c.ID,
		Name:           c.Name,
		Model:          c.Model,
		Brand:          string(c.Brand),
		ServiceTag:     c.ServiceTag,
		PurchaseDate:   formatDate(c.PurchaseDate),
		WarrantyEnd:    formatDate(c.WarrantyEnd),
		AssignedTo:     employeeRow(c.AssignedTo),
		ServiceActions: actions,
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.DateOnly)
	return &s
}
