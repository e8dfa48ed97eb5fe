package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/gfmartins/revenda/internal/title"
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

const selectTitleColumns = `
	t.id, t.tipo, t.status, t.valor_total, t.valor_pago, t.emissao, t.vencimento,
	t.parcela, t.total_parcelas, t.pedido_id, t.despesa_id, t.parceiro_id, t.categoria_id,
	p.nome as parceiro_nome, c.nome as categoria_nome,
	t.created_at, t.updated_at
`

const titleJoins = `
	FROM titulos t
	LEFT JOIN parceiros p ON t.parceiro_id = p.id
	LEFT JOIN categorias c ON t.categoria_id = c.id
`

func scanTitle(s scanner) (*title.Title, error) {
	var t title.Title

	var tipoStr, statusStr string

	var parceiroNome, categoriaNome sql.NullString

	if err := s.Scan(
		&t.ID, &tipoStr, &statusStr, &t.ValorTotal, &t.ValorPago, &t.Emissao, &t.Vencimento,
		&t.Parcela, &t.TotalParcelas, &t.PedidoID, &t.DespesaID, &t.ParceiroID, &t.CategoriaID,
		&parceiroNome, &categoriaNome,
		&t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		return nil, err
	}

	t.Tipo = title.Tipo(tipoStr)
	t.Status = title.Status(statusStr)
	t.ParceiroNome = parceiroNome.String
	t.CategoriaNome = categoriaNome.String

	return &t, nil
}

const insertTitle = `
	INSERT INTO titulos (tipo, status, valor_total, valor_pago, emissao, vencimento, parcela, total_parcelas, pedido_id, despesa_id, parceiro_id, categoria_id, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
	RETURNING id, created_at
`

func insertArgs(t *title.Title) []any {
	return []any{
		t.Tipo, t.Status, t.ValorTotal, t.ValorPago, t.Emissao, t.Vencimento,
		t.Parcela, t.TotalParcelas, t.PedidoID, t.DespesaID, t.ParceiroID, t.CategoriaID,
	}
}

func (s *Store) CreateTitle(ctx context.Context, t *title.Title) error {
	err := s.db.QueryRowContext(ctx, insertTitle, insertArgs(t)...).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating title: %w", err)
	}

	return nil
}

// CreateTitles inserts installments inside one database transaction so an
// order never ends up with a partial schedule.
func (s *Store) CreateTitles(ctx context.Context, ts []*title.Title) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning titles tx: %w", err)
	}
	defer dbTx.Rollback()

	for _, t := range ts {
		if err := dbTx.QueryRowContext(ctx, insertTitle, insertArgs(t)...).Scan(&t.ID, &t.CreatedAt); err != nil {
			return fmt.Errorf("creating title: %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing titles: %w", err)
	}

	return nil
}

func (s *Store) GetTitle(ctx context.Context, id uuid.UUID) (*title.Title, error) {
	query := `SELECT ` + selectTitleColumns + titleJoins + ` WHERE t.id = $1`

	t, err := scanTitle(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, title.ErrNotFound
		}

		return nil, fmt.Errorf("getting title: %w", err)
	}

	return t, nil
}

func (s *Store) ListTitles(ctx context.Context, filter title.ListFilter) ([]*title.Title, error) {
	query := `SELECT ` + selectTitleColumns + titleJoins + ` WHERE 1=1`

	var args []any

	argIdx := 1

	if len(filter.Statuses) > 0 {
		query += fmt.Sprintf(" AND t.status = ANY($%d)", argIdx)

		statuses := make([]string, len(filter.Statuses))
		for i, st := range filter.Statuses {
			statuses[i] = string(st)
		}

		args = append(args, statuses)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND t.vencimento >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND t.vencimento <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	if filter.Tipo != nil {
		query += fmt.Sprintf(" AND t.tipo = $%d", argIdx)

		args = append(args, *filter.Tipo)
		argIdx++
	}

	query += " ORDER BY t.vencimento DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing titles: %w", err)
	}
	defer rows.Close()

	var ts []*title.Title

	for rows.Next() {
		t, err := scanTitle(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning title: %w", err)
		}

		ts = append(ts, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating title rows: %w", err)
	}

	return ts, nil
}

func (s *Store) UpdateTitle(ctx context.Context, t *title.Title) error {
	query := `
		UPDATE titulos
		SET tipo = $1, status = $2, valor_total = $3, vencimento = $4, parceiro_id = $5, categoria_id = $6, updated_at = NOW()
		WHERE id = $7
	`

	_, err := s.db.ExecContext(ctx, query,
		t.Tipo,
		t.Status,
		t.ValorTotal,
		t.Vencimento,
		t.ParceiroID,
		t.CategoriaID,
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating title: %w", err)
	}

	return nil
}

func (s *Store) RegisterPayment(ctx context.Context, id uuid.UUID, valorPago int64, status title.Status) error {
	query := `
		UPDATE titulos
		SET valor_pago = $1, status = $2, updated_at = NOW()
		WHERE id = $3
	`

	_, err := s.db.ExecContext(ctx, query, valorPago, status, id)
	if err != nil {
		return fmt.Errorf("registering payment: %w", err)
	}

	return nil
}
