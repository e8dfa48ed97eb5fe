package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/gfmartins/revenda/internal/vehicle"
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

const selectVehicleColumns = `
	v.id, v.placa, v.marca, v.modelo, v.ano, v.cor, v.km, v.custo, v.preco_venda, v.status,
	v.created_at, v.updated_at, v.deleted_at
`

func scanVehicle(s scanner) (*vehicle.Vehicle, error) {
	var v vehicle.Vehicle

	var statusStr string

	if err := s.Scan(
		&v.ID, &v.Placa, &v.Marca, &v.Modelo, &v.Ano, &v.Cor, &v.Km, &v.Custo, &v.PrecoVenda, &statusStr,
		&v.CreatedAt, &v.UpdatedAt, &v.DeletedAt,
	); err != nil {
		return nil, err
	}

	v.Status = vehicle.Status(statusStr)

	return &v, nil
}

func (s *Store) CreateVehicle(ctx context.Context, v *vehicle.Vehicle) error {
	query := `
		INSERT INTO veiculos (placa, marca, modelo, ano, cor, km, custo, preco_venda, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		v.Placa, v.Marca, v.Modelo, v.Ano, v.Cor, v.Km, v.Custo, v.PrecoVenda, v.Status,
	).Scan(&v.ID, &v.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating vehicle: %w", err)
	}

	return nil
}

func (s *Store) GetVehicle(ctx context.Context, id uuid.UUID) (*vehicle.Vehicle, error) {
	query := `SELECT ` + selectVehicleColumns + `
		FROM veiculos v
		WHERE v.id = $1 AND v.deleted_at IS NULL`

	v, err := scanVehicle(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, vehicle.ErrNotFound
		}

		return nil, fmt.Errorf("getting vehicle: %w", err)
	}

	return v, nil
}

func (s *Store) ListVehicles(ctx context.Context, filter vehicle.ListFilter) ([]*vehicle.Vehicle, error) {
	query := `SELECT ` + selectVehicleColumns + `
		FROM veiculos v
		WHERE v.deleted_at IS NULL`

	var args []any

	argIdx := 1

	if filter.Status != nil {
		query += fmt.Sprintf(" AND v.status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.Busca != "" {
		query += fmt.Sprintf(" AND (v.placa ILIKE '%%' || $%d || '%%' OR v.marca ILIKE '%%' || $%d || '%%' OR v.modelo ILIKE '%%' || $%d || '%%')", argIdx, argIdx, argIdx)

		args = append(args, filter.Busca)
		argIdx++
	}

	query += " ORDER BY v.created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing vehicles: %w", err)
	}
	defer rows.Close()

	var vs []*vehicle.Vehicle

	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning vehicle: %w", err)
		}

		vs = append(vs, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating vehicle rows: %w", err)
	}

	return vs, nil
}

func (s *Store) UpdateVehicle(ctx context.Context, v *vehicle.Vehicle) error {
	query := `
		UPDATE veiculos
		SET placa = $1, marca = $2, modelo = $3, ano = $4, cor = $5, km = $6, custo = $7, preco_venda = $8, status = $9, updated_at = NOW()
		WHERE id = $10 AND deleted_at IS NULL
	`

	_, err := s.db.ExecContext(ctx, query,
		v.Placa, v.Marca, v.Modelo, v.Ano, v.Cor, v.Km, v.Custo, v.PrecoVenda, v.Status, v.ID,
	)
	if err != nil {
		return fmt.Errorf("updating vehicle: %w", err)
	}

	return nil
}

func (s *Store) UpdateStatus(ctx context.Context, id uuid.UUID, status vehicle.Status) error {
	query := `
		UPDATE veiculos
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND deleted_at IS NULL
	`

	_, err := s.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("updating vehicle status: %w", err)
	}

	return nil
}

func (s *Store) DeleteVehicle(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE veiculos
		SET deleted_at = NOW()
		WHERE id = $1
	`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting vehicle: %w", err)
	}

	return nil
}
