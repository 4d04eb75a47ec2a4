package company

import (
	"context"

	"github.com/nicholasDWinters/biztime-exercise/internal/slug"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=company
type Repository interface {
	ListCompanies(ctx context.Context) ([]*Company, error)
	GetCompany(ctx context.Context, code string) (*Company, error)
	CreateCompany(ctx context.Context, c *Company) error
	UpdateCompany(ctx context.Context, code, name, description string) (*Company, error)
	DeleteCompany(ctx context.Context, code string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Code        string // derived from Name when empty
	Name        string
	Description string
}

func (s *Service) List(ctx context.Context) ([]*Company, error) {
	return s.repo.ListCompanies(ctx)
}

// Get resolves a company by code, reporting ErrNotFound for absent codes.
func (s *Service) Get(ctx context.Context, code string) (*Company, error) {
	return s.repo.GetCompany(ctx, code)
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Company, error) {
	code := params.Code
	if code == "" {
		code = slug.Make(params.Name)
	}

	c := &Company{
		Code:        code,
		Name:        params.Name,
		Description: params.Description,
	}
	if err := s.repo.CreateCompany(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

// Update replaces the mutable fields of a company. The code itself is
// immutable; callers reject payloads that try to change it before
// reaching this point.
func (s *Service) Update(ctx context.Context, code, name, description string) (*Company, error) {
	return s.repo.UpdateCompany(ctx, code, name, description)
}

func (s *Service) Delete(ctx context.Context, code string) error {
	return s.repo.DeleteCompany(ctx, code)
}
