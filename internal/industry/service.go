package industry

import (
	"context"

	"github.com/nicholasDWinters/biztime-exercise/internal/company"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=industry
type Repository interface {
	ListMemberships(ctx context.Context) ([]Membership, error)
	GetIndustry(ctx context.Context, code string) (*Industry, error)
	CreateIndustry(ctx context.Context, ind *Industry) error
	AddCompany(ctx context.Context, comCode, industryCode string) error
}

// CompanyDirectory resolves company codes referenced by associations.
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

// List groups company names under their industry name. One joined
// query, grouped here; industries without companies map to an empty
// slice.
func (s *Service) List(ctx context.Context) (map[string][]string, error) {
	memberships, err := s.repo.ListMemberships(ctx)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]string, len(memberships))

	for _, m := range memberships {
		if _, ok := grouped[m.Industry]; !ok {
			grouped[m.Industry] = []string{}
		}

		if m.Company != nil {
			grouped[m.Industry] = append(grouped[m.Industry], *m.Company)
		}
	}

	return grouped, nil
}

func (s *Service) Get(ctx context.Context, code string) (*Industry, error) {
	return s.repo.GetIndustry(ctx, code)
}

func (s *Service) Create(ctx context.Context, code, name string) (*Industry, error) {
	ind := &Industry{Code: code, Name: name}
	if err := s.repo.CreateIndustry(ctx, ind); err != nil {
		return nil, err
	}

	return ind, nil
}

// AddCompany associates a company with an industry. Both sides are
// resolved before the insert so a dangling reference reads as a
// not-found rather than a constraint violation.
func (s *Service) AddCompany(ctx context.Context, comCode, industryCode string) error {
	if _, err := s.companies.Get(ctx, comCode); err != nil {
		return err
	}

	if _, err := s.repo.GetIndustry(ctx, industryCode); err != nil {
		return err
	}

	return s.repo.AddCompany(ctx, comCode, industryCode)
}
