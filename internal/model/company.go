package model

import "time"

// Company is a customer organisation owning employees and computers.
type Company struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:200;not null;uniqueIndex" json:"name"`
	VATID     string    `gorm:"column:vat_id;size:32" json:"vat_id"`
	City      string    `gorm:"size:120;index" json:"city"`
	Address   string    `gorm:"size:255" json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Employees []Employee `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE" json:"employees,omitempty"`
	Computers []Computer `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE" json:"computers,omitempty"`
}

// CompanyChoice is the id/name pair used to populate company selectors.
type CompanyChoice struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
