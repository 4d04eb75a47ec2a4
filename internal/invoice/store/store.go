package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nicholasDWinters/biztime-exercise/internal/invoice"
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

// scanInvoice reads an invoice row. Expected column order:
// id, comp_code, amt, paid, add_date, paid_date.
func scanInvoice(s scanner) (*invoice.Invoice, error) {
	var inv invoice.Invoice

	var paidDate sql.NullTime

	if err := s.Scan(&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &inv.AddDate, &paidDate); err != nil {
		return nil, err
	}

	if paidDate.Valid {
		inv.PaidDate = &paidDate.Time
	}

	return &inv, nil
}

const selectInvoiceColumns = `id, comp_code, amt, paid, add_date, paid_date`

func (s *Store) ListInvoices(ctx context.Context) ([]*invoice.Invoice, error) {
	query := `SELECT ` + selectInvoiceColumns + ` FROM invoices ORDER BY id`

	return s.queryInvoices(ctx, query)
}

func (s *Store) ListByCompany(ctx context.Context, compCode string) ([]*invoice.Invoice, error) {
	query := `SELECT ` + selectInvoiceColumns + ` FROM invoices WHERE comp_code = $1 ORDER BY id`

	return s.queryInvoices(ctx, query, compCode)
}

func (s *Store) queryInvoices(ctx context.Context, query string, args ...any) ([]*invoice.Invoice, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}
	defer rows.Close()

	var invs []*invoice.Invoice

	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning invoice: %w", err)
		}

		invs = append(invs, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating invoice rows: %w", err)
	}

	return invs, nil
}

func (s *Store) GetInvoice(ctx context.Context, id int) (*invoice.Invoice, error) {
	query := `SELECT ` + selectInvoiceColumns + ` FROM invoices WHERE id = $1`

	inv, err := scanInvoice(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, invoice.ErrNotFound
		}

		return nil, fmt.Errorf("getting invoice: %w", err)
	}

	return inv, nil
}

// CreateInvoice inserts a new invoice; paid, add_date and paid_date
// take their schema defaults and come back through RETURNING.
func (s *Store) CreateInvoice(ctx context.Context, inv *invoice.Invoice) error {
	query := `
		INSERT INTO invoices (comp_code, amt)
		VALUES ($1, $2)
		RETURNING ` + selectInvoiceColumns

	created, err := scanInvoice(s.db.QueryRowContext(ctx, query, inv.CompCode, inv.Amt))
	if err != nil {
		return fmt.Errorf("creating invoice: %w", err)
	}

	*inv = *created

	return nil
}

func (s *Store) UpdateAmount(ctx context.Context, id int, amt float64) (*invoice.Invoice, error) {
	query := `
		UPDATE invoices
		SET amt = $1
		WHERE id = $2
		RETURNING ` + selectInvoiceColumns

	inv, err := scanInvoice(s.db.QueryRowContext(ctx, query, amt, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, invoice.ErrNotFound
		}

		return nil, fmt.Errorf("updating invoice: %w", err)
	}

	return inv, nil
}

func (s *Store) DeleteInvoice(ctx context.Context, id int) error {
	query := `DELETE FROM invoices WHERE id = $1 RETURNING id`

	var deleted int

	err := s.db.QueryRowContext(ctx, query, id).Scan(&deleted)
	if err != nil {
		if err == sql.ErrNoRows {
			return invoice.ErrNotFound
		}

		return fmt.Errorf("deleting invoice: %w", err)
	}

	return nil
}

// CreateInvoices inserts a batch of imported invoices in one database
// transaction; either every row lands or none do.
func (s *Store) CreateInvoices(ctx context.Context, invs []*invoice.Invoice) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning batch insert: %w", err)
	}
	defer dbTx.Rollback()

	query := `
		INSERT INTO invoices (comp_code, amt, paid, paid_date)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + selectInvoiceColumns

	for _, inv := range invs {
		created, err := scanInvoice(dbTx.QueryRowContext(ctx, query, inv.CompCode, inv.Amt, inv.Paid, inv.PaidDate))
		if err != nil {
			return fmt.Errorf("creating invoice: %w", err)
		}

		*inv = *created
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing batch insert: %w", err)
	}

	return nil
}
