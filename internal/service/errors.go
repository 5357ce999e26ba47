package service

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"esupport-inventory/internal/repository"
	"esupport-inventory/pkg/errors"
	"esupport-inventory/pkg/validation"
)

// translateError maps repository failures onto application errors. Errors that
// already are application errors pass through unchanged.
func translateError(err error, resource, operation string) error {
	if err == nil {
		return nil
	}
	if appErr, ok := errors.AsAppError(err); ok {
		return appErr
	}

	switch {
	case stderrors.Is(err, repository.ErrCompanyNotFound):
		return errors.NotFoundError("company")
	case stderrors.Is(err, repository.ErrEmployeeNotFound):
		return errors.NotFoundError("employee")
	case stderrors.Is(err, repository.ErrComputerNotFound):
		return errors.NotFoundError("computer")
	case stderrors.Is(err, repository.ErrServiceActionNotFound):
		return errors.NotFoundError("service action")
	case stderrors.Is(err, repository.ErrDuplicateCompanyName):
		return errors.AlreadyExistsError("company with this name").WithDetail("name", "must be unique")
	case stderrors.Is(err, repository.ErrDuplicateEmployeeEmail):
		return errors.AlreadyExistsError("employee with this email in the company").WithDetail("email", "must be unique within the company")
	case stderrors.Is(err, repository.ErrDuplicateServiceTag):
		return errors.AlreadyExistsError("computer with this service tag").WithDetail("service_tag", "must be unique")
	case stderrors.Is(err, repository.ErrInvalidReference):
		return errors.InvalidReferenceError(strings.TrimPrefix(err.Error(), repository.ErrInvalidReference.Error()+": "))
	case stderrors.Is(err, repository.ErrInvalidFilter):
		return errors.InvalidParameterError("filter").WithDetail("filter", err.Error())
	case stderrors.Is(err, context.DeadlineExceeded):
		return errors.TimeoutError(operation)
	}

	return errors.DatabaseError("failed to "+operation+" "+resource, err)
}

func validationError(fields validation.FieldErrors) error {
	if len(fields) == 0 {
		return nil
	}
	return errors.ValidationErrorWithDetails("Validation failed", fields)
}

// dateOnly truncates t to midnight UTC of its calendar day
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dateOnlyPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := dateOnly(*t)
	return &d
}

// referenceCheck reports a missing referenced row as an invalid reference
func referenceCheck(ctx context.Context, exists func(context.Context, uint) (bool, error), id uint, resource string) error {
	ok, err := exists(ctx, id)
	if err != nil {
		return translateError(err, resource, "check")
	}
	if !ok {
		return errors.InvalidReferenceError(resource)
	}
	return nil
}
