package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/gfmartins/revenda/internal/expense"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateExpense(ctx context.Context, e *expense.VehicleExpense) error {
	query := `
		INSERT INTO despesas_veiculo (veiculo_id, descricao, valor, data, categoria_id, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		e.VeiculoID, e.Descricao, e.Valor, e.Data, e.CategoriaID,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating expense: %w", err)
	}

	return nil
}

func (s *Store) ListExpensesByVehicle(ctx context.Context, veiculoID uuid.UUID) ([]*expense.VehicleExpense, error) {
	query := `
		SELECT id, veiculo_id, descricao, valor, data, categoria_id, created_at
		FROM despesas_veiculo
		WHERE veiculo_id = $1
		ORDER BY data DESC
	`

	rows, err := s.db.QueryContext(ctx, query, veiculoID)
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}
	defer rows.Close()

	var es []*expense.VehicleExpense

	for rows.Next() {
		var e expense.VehicleExpense

		var categoriaID *uuid.UUID

		if err := rows.Scan(&e.ID, &e.VeiculoID, &e.Descricao, &e.Valor, &e.Data, &categoriaID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning expense: %w", err)
		}

		e.CategoriaID = categoriaID
		es = append(es, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating expense rows: %w", err)
	}

	return es, nil
}

func (s *Store) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM despesas_veiculo WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting expense: %w", err)
	}

	return nil
}
