package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nicholasDWinters/biztime-exercise/internal/company"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanCompany reads a company row. Expected column order: code, name, description.
func scanCompany(s scanner) (*company.Company, error) {
	var c company.Company

	var desc sql.NullString

	if err := s.Scan(&c.Code, &c.Name, &desc); err != nil {
		return nil, err
	}

	c.Description = desc.String

	return &c, nil
}

func (s *Store) ListCompanies(ctx context.Context) ([]*company.Company, error) {
	query := `SELECT code, name, description FROM companies ORDER BY code`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing companies: %w", err)
	}
	defer rows.Close()

	var companies []*company.Company

	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning company: %w", err)
		}

		companies = append(companies, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating company rows: %w", err)
	}

	return companies, nil
}

func (s *Store) GetCompany(ctx context.Context, code string) (*company.Company, error) {
	query := `SELECT code, name, description FROM companies WHERE code = $1`

	c, err := scanCompany(s.db.QueryRowContext(ctx, query, code))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, company.ErrNotFound
		}

		return nil, fmt.Errorf("getting company: %w", err)
	}

	return c, nil
}

func (s *Store) CreateCompany(ctx context.Context, c *company.Company) error {
	query := `
		INSERT INTO companies (code, name, description)
		VALUES ($1, $2, $3)
		RETURNING code, name, description
	`

	created, err := scanCompany(s.db.QueryRowContext(ctx, query, c.Code, c.Name, c.Description))
	if err != nil {
		return fmt.Errorf("creating company: %w", err)
	}

	*c = *created

	return nil
}

// UpdateCompany rewrites the mutable fields of a company. A zero-row
// RETURNING means the code does not exist.
func (s *Store) UpdateCompany(ctx context.Context, code, name, description string) (*company.Company, error) {
	query := `
		UPDATE companies
		SET name = $1, description = $2
		WHERE code = $3
		RETURNING code, name, description
	`

	c, err := scanCompany(s.db.QueryRowContext(ctx, query, name, description, code))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, company.ErrNotFound
		}

		return nil, fmt.Errorf("updating company: %w", err)
	}

	return c, nil
}

// DeleteCompany removes a company; invoices and industry associations
// go with it through the schema's ON DELETE CASCADE.
func (s *Store) DeleteCompany(ctx context.Context, code string) error {
	query := `DELETE FROM companies WHERE code = $1 RETURNING code`

	var deleted string

	err := s.db.QueryRowContext(ctx, query, code).Scan(&deleted)
	if err != nil {
		if err == sql.ErrNoRows {
			return company.ErrNotFound
		}

		return fmt.Errorf("deleting company: %w", err)
	}

	return nil
}
