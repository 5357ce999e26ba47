package model

import "time"

// Brand is the computer manufacturer.
type Brand string

const (
	BrandDell   Brand = "Dell"
	BrandHP     Brand = "HP"
	BrandLenovo Brand = "Lenovo"
	BrandApple  Brand = "Apple"
	BrandAcer   Brand = "Acer"
	BrandAsus   Brand = "Asus"
	BrandOther  Brand = "Other"
)

// Brands lists every accepted brand in display order.
var Brands = []Brand{BrandDell, BrandHP, BrandLenovo, BrandApple, BrandAcer, BrandAsus, BrandOther}

// Valid reports whether b is one of Brands.
func (b Brand) Valid() bool {
	for _, known := range Brands {
		if b == known {
			return true
		}
	}
	return false
}

// Computer is a tracked hardware asset. Both the owning company and the
// assigned employee are optional.
type Computer struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Name         string     `gorm:"size:200;not null;index" json:"name"`
	Model        string     `gorm:"size:200;not null" json:"model"`
	Brand        Brand      `gorm:"size:50;not null" json:"brand"`
	ServiceTag   string     `gorm:"size:120;not null;uniqueIndex" json:"service_tag"`
	PurchaseDate *time.Time `gorm:"type:date" json:"purchase_date"`
	WarrantyEnd  *time.Time `gorm:"type:date" json:"warranty_end"`
	CompanyID    *uint      `gorm:"index" json:"company_id"`
	Company      *Company   `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	AssignedToID *uint      `gorm:"index" json:"assigned_to_id"`
	AssignedTo   *Employee  `gorm:"foreignKey:AssignedToID" json:"assigned_to,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	ServiceActions []ServiceAction `gorm:"foreignKey:ComputerID;constraint:OnDelete:CASCADE" json:"service_actions,omitempty"`
}

// Label returns "name / service tag".
func (c Computer) Label() string {
	return c.Name + " / " + c.ServiceTag
}

// CompanyName is the company of the assigned employee, or "-" when the
// computer is unassigned or the employee was loaded without its company.
func (c Computer) CompanyName() string {
	if c.AssignedTo != nil && c.AssignedTo.Company != nil {
		return c.AssignedTo.Company.Name
	}
	return "-"
}
