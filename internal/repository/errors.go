package repository

import (
	"errors"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Custom errors for better error handling
var (
	ErrCompanyNotFound        = errors.New("company not found")
	ErrEmployeeNotFound       = errors.New("employee not found")
	ErrComputerNotFound       = errors.New("computer not found")
	ErrServiceActionNotFound  = errors.New("service action not found")
	ErrDuplicateCompanyName   = errors.New("company with this name already exists")
	ErrDuplicateEmployeeEmail = errors.New("employee with this email already exists in the company")
	ErrDuplicateServiceTag    = errors.New("computer with this service tag already exists")
	ErrInvalidReference       = errors.New("referenced record does not exist")
	ErrInvalidFilter          = errors.New("invalid filter value")
)

// postgres SQLSTATE codes
const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// isDuplicateKey recognises unique violations from gorm's translator, lib/pq and sqlite
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqUniqueViolation
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// isForeignKeyViolation recognises foreign key violations from gorm's translator, lib/pq and sqlite
func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqForeignKeyViolation
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
