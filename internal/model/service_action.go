package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceStatus is the state of a service action.
type ServiceStatus string

const (
	StatusOpen ServiceStatus = "open"
	StatusDone ServiceStatus = "done"
)

// Valid reports whether s is open or done.
func (s ServiceStatus) Valid() bool {
	return s == StatusOpen || s == StatusDone
}

// ServiceActionOrder is the default ordering: newest action first, ties by newest id.
const ServiceActionOrder = "action_date DESC, id DESC"

// ServiceAction is a maintenance or repair event on one computer.
type ServiceAction struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	ComputerID  uint            `gorm:"not null;index" json:"computer_id"`
	Computer    *Computer       `gorm:"foreignKey:ComputerID" json:"computer,omitempty"`
	Title       string          `gorm:"size:200;not null" json:"title"`
	Description string          `gorm:"type:text" json:"description"`
	ActionDate  time.Time       `gorm:"type:date;not null;index" json:"action_date"`
	Cost        decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"cost"`
	Status      ServiceStatus   `gorm:"size:50;not null;index" json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
