// Package report builds the per-company computer report: the selected company,
// the full company list for the selector, and that company's computers with
// their assignee and service history.
package report

import (
	"context"
	stderrors "errors"
	"strings"

	"go.uber.org/zap"

	"esupport-inventory/internal/repository"
	"esupport-inventory/pkg/errors"
)

// Policy decides what an unknown or malformed company identifier produces.
type Policy int

const (
	// Lenient treats an unresolvable identifier as no selection.
	Lenient Policy = iota
	// Strict reports an unresolvable identifier as a missing company.
	Strict
)

func (p Policy) String() string {
	if p == Strict {
		return "strict"
	}
	return "lenient"
}

// Result is the report payload. Company is nil when nothing is selected;
// Companies and Computers are never nil.
type Result struct {
	Company   *CompanyRow   `json:"company"`
	Companies []CompanyRow  `json:"companies"`
	Computers []ComputerRow `json:"computers"`
}

// Query runs the computer report. It only reads.
type Query struct {
	repo   repository.ReportRepository
	logger *zap.Logger
}

// NewQuery creates a report query over repo
func NewQuery(repo repository.ReportRepository, logger *zap.Logger) *Query {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Query{
		repo:   repo,
		logger: logger.Named("report"),
	}
}

// ForAdmin runs the report for the administrative panel: an unknown or
// malformed identifier yields an empty selection rather than an error.
func (q *Query) ForAdmin(ctx context.Context, rawCompanyID string) (*Result, error) {
	return q.Run(ctx, rawCompanyID, Lenient)
}

// ForReport runs the plain report: an unknown or malformed identifier is a
// not-found error.
func (q *Query) ForReport(ctx context.Context, rawCompanyID string) (*Result, error) {
	return q.Run(ctx, rawCompanyID, Strict)
}

// Run resolves rawCompanyID under policy and assembles the report.
// An empty identifier is never an error.
func (q *Query) Run(ctx context.Context, rawCompanyID string, policy Policy) (*Result, error) {
	companies, err := q.repo.ListCompanies(ctx)
	if err != nil {
		return nil, q.storageError("failed to list companies", err)
	}

	result := &Result{
		Companies: make([]CompanyRow, 0, len(companies)),
		Computers: []ComputerRow{},
	}
	for _, c := range companies {
		result.Companies = append(result.Companies, companyRow(c))
	}

	raw := strings.TrimSpace(rawCompanyID)
	if raw == "" {
		return result, nil
	}

	id, err := repository.ParseID(raw)
	if err != nil {
		return q.unresolved(result, raw, policy)
	}

	company, err := q.repo.GetCompany(ctx, id)
	if err != nil {
		if stderrors.Is(err, repository.ErrCompanyNotFound) {
			return q.unresolved(result, raw, policy)
		}
		return nil, q.storageError("failed to load company", err)
	}

	computers, err := q.repo.ListCompanyComputers(ctx, company.ID)
	if err != nil {
		return nil, q.storageError("failed to load company computers", err)
	}

	row := companyRow(*company)
	result.Company = &row
	for _, c := range computers {
		result.Computers = append(result.Computers, computerRow(c))
	}

	q.logger.Debug("computer report built",
		zap.Uint("company_id", company.ID),
		zap.Int("computers", len(result.Computers)),
	)
	return result, nil
}

func (q *Query) unresolved(empty *Result, raw string, policy Policy) (*Result, error) {
	q.logger.Debug("company not resolved",
		zap.String("company", raw),
		zap.Stringer("policy", policy),
	)
	if policy == Strict {
		return nil, errors.NotFoundError("company")
	}
	return empty, nil
}

func (q *Query) storageError(message string, err error) error {
	if stderrors.Is(err, context.DeadlineExceeded) {
		return errors.TimeoutError("computer report")
	}
	q.logger.Error(message, zap.Error(err))
	return errors.DatabaseError(message, err)
}
