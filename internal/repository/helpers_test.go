package repository

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"esupport-inventory/internal/database"
	"esupport-inventory/internal/model"
)

func setupTestDB(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "inventory.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func ptr[T any](v T) *T {
	return &v
}

func day(s string) time.Time {
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return d
}

func seedCompany(t testing.TB, db *gorm.DB, name, city string) *model.Company {
	t.Helper()
	c := &model.Company{Name: name, City: city}
	require.NoError(t, db.Create(c).Error)
	return c
}

func seedEmployee(t testing.TB, db *gorm.DB, companyID uint, first, last, email string) *model.Employee {
	t.Helper()
	e := &model.Employee{CompanyID: companyID, FirstName: first, LastName: last, Email: email}
	require.NoError(t, db.Omit("Company", "Computers").Create(e).Error)
	return e
}

func seedComputer(t testing.TB, db *gorm.DB, name, tag string, companyID, assignedTo *uint) *model.Computer {
	t.Helper()
	c := &model.Computer{
		Name:         name,
		Model:        "Latitude 5440",
		Brand:        model.BrandDell,
		ServiceTag:   tag,
		CompanyID:    companyID,
		AssignedToID: assignedTo,
	}
	require.NoError(t, db.Omit("Company", "AssignedTo", "ServiceActions").Create(c).Error)
	return c
}

func seedServiceAction(t testing.TB, db *gorm.DB, computerID uint, title, date string, status model.ServiceStatus) *model.ServiceAction {
	t.Helper()
	a := &model.ServiceAction{
		ComputerID: computerID,
		Title:      title,
		ActionDate: day(date),
		Cost:       decimal.Zero,
		Status:     status,
	}
	require.NoError(t, db.Omit("Computer").Create(a).Error)
	return a
}

func count(t testing.TB, db *gorm.DB, m interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(m).Count(&n).Error)
	return n
}
