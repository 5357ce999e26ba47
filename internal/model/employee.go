package model

import "time"

// Employee works for exactly one company and may have computers assigned.
type Employee struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CompanyID   uint      `gorm:"not null;uniqueIndex:idx_employees_company_email" json:"company_id"`
	Company     *Company  `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	FirstName   string    `gorm:"size:120;not null" json:"first_name"`
	LastName    string    `gorm:"size:120;not null" json:"last_name"`
	Email       string    `gorm:"size:254;uniqueIndex:idx_employees_company_email,where:email <> ''" json:"email"`
	Position    string    `gorm:"size:120" json:"position"`
	PhoneNumber string    `gorm:"size:32" json:"phone_number"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Blank e-mails are excluded from the (company, email) unique index.
	// Deleting an employee keeps the computers and clears their assignment.
	Computers []Computer `gorm:"foreignKey:AssignedToID;constraint:OnDelete:SET NULL" json:"computers,omitempty"`
}

// FullName returns "First Last".
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
