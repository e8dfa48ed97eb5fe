package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/gfmartins/revenda/internal/partner"
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

const selectPartnerColumns = `
	p.id, p.nome, p.cpf_cnpj, p.telefone, p.email, p.tipo, p.participacao,
	p.created_at, p.updated_at, p.deleted_at
`

func scanPartner(s scanner) (*partner.Partner, error) {
	var p partner.Partner

	var tipoStr string

	if err := s.Scan(
		&p.ID, &p.Nome, &p.CpfCnpj, &p.Telefone, &p.Email, &tipoStr, &p.Participacao,
		&p.CreatedAt, &p.UpdatedAt, &p.DeletedAt,
	); err != nil {
		return nil, err
	}

	p.Tipo = partner.Tipo(tipoStr)

	return &p, nil
}

func (s *Store) CreatePartner(ctx context.Context, p *partner.Partner) error {
	query := `
		INSERT INTO parceiros (nome, cpf_cnpj, telefone, email, tipo, participacao, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		p.Nome, p.CpfCnpj, p.Telefone, p.Email, p.Tipo, p.Participacao,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating partner: %w", err)
	}

	return nil
}

func (s *Store) GetPartner(ctx context.Context, id uuid.UUID) (*partner.Partner, error) {
	query := `SELECT ` + selectPartnerColumns + `
		FROM parceiros p
		WHERE p.id = $1 AND p.deleted_at IS NULL`

	p, err := scanPartner(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, partner.ErrNotFound
		}

		return nil, fmt.Errorf("getting partner: %w", err)
	}

	return p, nil
}

func (s *Store) ListPartners(ctx context.Context, filter partner.ListFilter) ([]*partner.Partner, error) {
	query := `SELECT ` + selectPartnerColumns + `
		FROM parceiros p
		WHERE p.deleted_at IS NULL`

	var args []any

	if filter.Tipo != nil {
		query += " AND p.tipo = $1"

		args = append(args, *filter.Tipo)
	}

	query += " ORDER BY p.nome ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing partners: %w", err)
	}
	defer rows.Close()

	var ps []*partner.Partner

	for rows.Next() {
		p, err := scanPartner(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning partner: %w", err)
		}

		ps = append(ps, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating partner rows: %w", err)
	}

	return ps, nil
}

func (s *Store) UpdatePartner(ctx context.Context, p *partner.Partner) error {
	query := `
		UPDATE parceiros
		SET nome = $1, cpf_cnpj = $2, telefone = $3, email = $4, tipo = $5, participacao = $6, updated_at = NOW()
		WHERE id = $7 AND deleted_at IS NULL
	`

	_, err := s.db.ExecContext(ctx, query,
		p.Nome, p.CpfCnpj, p.Telefone, p.Email, p.Tipo, p.Participacao, p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating partner: %w", err)
	}

	return nil
}

func (s *Store) DeletePartner(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE parceiros
		SET deleted_at = NOW()
		WHERE id = $1
	`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting partner: %w", err)
	}

	return nil
}
