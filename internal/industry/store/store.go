package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nicholasDWinters/biztime-exercise/internal/industry"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// ListMemberships returns one row per (industry, company) pair in a
// single joined query. Industries without companies come back once
// with a NULL company name.
func (s *Store) ListMemberships(ctx context.Context) ([]industry.Membership, error) {
	query := `
		SELECT i.industry, c.name
		FROM industries i
		LEFT JOIN companies_industries ci ON i.code = ci.industry_code
		LEFT JOIN companies c ON ci.com_code = c.code
		ORDER BY i.industry, c.name
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing industry memberships: %w", err)
	}
	defer rows.Close()

	var memberships []industry.Membership

	for rows.Next() {
		var m industry.Membership

		var comp sql.NullString

		if err := rows.Scan(&m.Industry, &comp); err != nil {
			return nil, fmt.Errorf("scanning membership: %w", err)
		}

		if comp.Valid {
			m.Company = &comp.String
		}

		memberships = append(memberships, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating membership rows: %w", err)
	}

	return memberships, nil
}

func (s *Store) GetIndustry(ctx context.Context, code string) (*industry.Industry, error) {
	query := `SELECT code, industry FROM industries WHERE code = $1`

	var ind industry.Industry

	err := s.db.QueryRowContext(ctx, query, code).Scan(&ind.Code, &ind.Name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, industry.ErrNotFound
		}

		return nil, fmt.Errorf("getting industry: %w", err)
	}

	return &ind, nil
}

func (s *Store) CreateIndustry(ctx context.Context, ind *industry.Industry) error {
	query := `
		INSERT INTO industries (code, industry)
		VALUES ($1, $2)
		RETURNING code, industry
	`

	err := s.db.QueryRowContext(ctx, query, ind.Code, ind.Name).Scan(&ind.Code, &ind.Name)
	if err != nil {
		return fmt.Errorf("creating industry: %w", err)
	}

	return nil
}

func (s *Store) AddCompany(ctx context.Context, comCode, industryCode string) error {
	query := `
		INSERT INTO companies_industries (com_code, industry_code)
		VALUES ($1, $2)
	`

	_, err := s.db.ExecContext(ctx, query, comCode, industryCode)
	if err != nil {
		return fmt.Errorf("adding company to industry: %w", err)
	}

	return nil
}
