package invoice

import (
	"context"
	"errors"
	"time"

	"github.com/nicholasDWinters/biztime-exercise/internal/company"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=invoice
type Repository interface {
	ListInvoices(ctx context.Context) ([]*Invoice, error)
	ListByCompany(ctx context.Context, compCode string) ([]*Invoice, error)
	GetInvoice(ctx context.Context, id int) (*Invoice, error)
	CreateInvoice(ctx context.Context, inv *Invoice) error
	UpdateAmount(ctx context.Context, id int, amt float64) (*Invoice, error)
	DeleteInvoice(ctx context.Context, id int) error
	CreateInvoices(ctx context.Context, invs []*Invoice) error
}

// CompanyDirectory resolves company codes referenced by invoices.
// Satisfied by *company.Service.
type CompanyDirectory interface {
	Get(ctx context.Context, code string) (*company.Company, error)
}

type Service struct {
	repo      Repository
	companies CompanyDirectory
}

func NewService(repo Repository, companies CompanyDirectory) *Service {
	return &Service{repo: repo, companies: companies}
}

type CreateParams struct {
	CompCode string
	Amt      float64
}

// ImportParams carries one invoice row from a bulk import.
type ImportParams struct {
	CompCode string
	Amt      float64
	Paid     bool
	PaidDate *time.Time
}

func (s *Service) List(ctx context.Context) ([]*Invoice, error) {
	return s.repo.ListInvoices(ctx)
}

// ListByCompany returns a company's invoices ordered by id ascending.
func (s *Service) ListByCompany(ctx context.Context, compCode string) ([]*Invoice, error) {
	return s.repo.ListByCompany(ctx, compCode)
}

// Get resolves an invoice by id and embeds its owning company.
func (s *Service) Get(ctx context.Context, id int) (*Invoice, error) {
	inv, err := s.repo.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}

	c, err := s.companies.Get(ctx, inv.CompCode)
	if err != nil {
		return nil, err
	}

	inv.Company = c

	return inv, nil
}

// Create resolves the referenced company before inserting, so a
// dangling comp_code reads as a not-found rather than a storage error.
// The existence check and the insert are separate round-trips; a
// concurrent company deletion between them surfaces as a constraint
// violation.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Invoice, error) {
	if _, err := s.companies.Get(ctx, params.CompCode); err != nil {
		if errors.Is(err, company.ErrNotFound) {
			return nil, &UnknownCompanyError{Code: params.CompCode}
		}

		return nil, err
	}

	inv := &Invoice{
		CompCode: params.CompCode,
		Amt:      params.Amt,
	}
	if err := s.repo.CreateInvoice(ctx, inv); err != nil {
		return nil, err
	}

	return inv, nil
}

// UpdateAmount changes an invoice's amount. The id is immutable;
// callers reject payloads that include it before reaching this point.
func (s *Service) UpdateAmount(ctx context.Context, id int, amt float64) (*Invoice, error) {
	return s.repo.UpdateAmount(ctx, id, amt)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.DeleteInvoice(ctx, id)
}

// CreateBatch inserts a set of imported invoices in a single database
// transaction. Every referenced company is resolved first; nothing is
// written when any code is unknown.
func (s *Service) CreateBatch(ctx context.Context, params []ImportParams) ([]*Invoice, error) {
	if len(params) == 0 {
		return nil, nil
	}

	seen := make(map[string]struct{}, len(params))

	for _, p := range params {
		if _, ok := seen[p.CompCode]; ok {
			continue
		}

		seen[p.CompCode] = struct{}{}

		if _, err := s.companies.Get(ctx, p.CompCode); err != nil {
			if errors.Is(err, company.ErrNotFound) {
				return nil, &UnknownCompanyError{Code: p.CompCode}
			}

			return nil, err
		}
	}

	invs := make([]*Invoice, len(params))
	for i, p := range params {
		invs[i] = &Invoice{
			CompCode: p.CompCode,
			Amt:      p.Amt,
			Paid:     p.Paid,
			PaidDate: p.PaidDate,
		}
	}

	if err := s.repo.CreateInvoices(ctx, invs); err != nil {
		return nil, err
	}

	return invs, nil
}
