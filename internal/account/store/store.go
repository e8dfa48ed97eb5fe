package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/gfmartins/revenda/internal/account"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectAccountColumns = `
	a.id, a.nome, a.banco, a.agencia, a.numero, a.ativo, a.created_at, a.updated_at
`

func scanAccount(s scanner) (*account.Account, error) {
	var a account.Account

	if err := s.Scan(
		&a.ID, &a.Nome, &a.Banco, &a.Agencia, &a.Numero, &a.Ativo, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &a, nil
}

func (s *Store) CreateAccount(ctx context.Context, a *account.Account) error {
	query := `
		INSERT INTO contas (nome, banco, agencia, numero, ativo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		a.Nome, a.Banco, a.Agencia, a.Numero, a.Ativo,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating account: %w", err)
	}

	return nil
}

func (s *Store) GetAccount(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	query := `SELECT ` + selectAccountColumns + ` FROM contas a WHERE a.id = $1`

	a, err := scanAccount(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, account.ErrNotFound
		}

		return nil, fmt.Errorf("getting account: %w", err)
	}

	return a, nil
}

func (s *Store) ListAccounts(ctx context.Context, onlyActive bool) ([]*account.Account, error) {
	query := `SELECT ` + selectAccountColumns + ` FROM contas a`
	if onlyActive {
		query += ` WHERE a.ativo`
	}

	query += ` ORDER BY a.nome ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	defer rows.Close()

	var as []*account.Account

	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}

		as = append(as, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating account rows: %w", err)
	}

	return as, nil
}

func (s *Store) UpdateAccount(ctx context.Context, a *account.Account) error {
	query := `
		UPDATE contas
		SET nome = $1, banco = $2, agencia = $3, numero = $4, ativo = $5, updated_at = NOW()
		WHERE id = $6
	`

	_, err := s.db.ExecContext(ctx, query, a.Nome, a.Banco, a.Agencia, a.Numero, a.Ativo, a.ID)
	if err != nil {
		return fmt.Errorf("updating account: %w", err)
	}

	return nil
}

// GetBalance derives the current balance from the ledger: inflows minus
// outflows over non-deleted transactions on the account.
func (s *Store) GetBalance(ctx context.Context, id uuid.UUID) (int64, error) {
	query := `
		SELECT COALESCE(SUM(CASE WHEN tipo = 'ENTRADA' THEN valor ELSE -valor END), 0)
		FROM transacoes
		WHERE conta_id = $1 AND deleted_at IS NULL
	`

	var saldo int64
	if err := s.db.QueryRowContext(ctx, query, id).Scan(&saldo); err != nil {
		return 0, fmt.Errorf("computing balance: %w", err)
	}

	return saldo, nil
}
