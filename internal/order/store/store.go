package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/gfmartins/revenda/internal/order"
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

const selectOrderColumns = `
	o.id, o.numero, o.tipo, o.veiculo_id, o.parceiro_id, o.valor_total, o.parcelas, o.data,
	p.nome as parceiro_nome, v.marca || ' ' || v.modelo as veiculo_nome,
	o.created_at
`

const orderJoins = `
	FROM pedidos o
	LEFT JOIN parceiros p ON o.parceiro_id = p.id
	LEFT JOIN veiculos v ON o.veiculo_id = v.id
`

func scanOrder(s scanner) (*order.Order, error) {
	var o order.Order

	var tipoStr string

	var parceiroNome, veiculoNome sql.NullString

	if err := s.Scan(
		&o.ID, &o.Numero, &tipoStr, &o.VeiculoID, &o.ParceiroID, &o.ValorTotal, &o.Parcelas, &o.Data,
		&parceiroNome, &veiculoNome,
		&o.CreatedAt,
	); err != nil {
		return nil, err
	}

	o.Tipo = order.Tipo(tipoStr)
	o.ParceiroNome = parceiroNome.String
	o.VeiculoNome = veiculoNome.String

	return &o, nil
}

// CreateOrder assigns the next sequential numero for the order kind
// (C-0001, V-0001, ...) and inserts the row in one database transaction so
// concurrent orders cannot claim the same number.
func (s *Store) CreateOrder(ctx context.Context, o *order.Order) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning order tx: %w", err)
	}
	defer dbTx.Rollback()

	prefix := "C"
	if o.Tipo == order.TipoVenda {
		prefix = "V"
	}

	var seq int64
	if err := dbTx.QueryRowContext(ctx,
		`SELECT COUNT(*) + 1 FROM pedidos WHERE tipo = $1`, o.Tipo,
	).Scan(&seq); err != nil {
		return fmt.Errorf("sequencing order number: %w", err)
	}

	o.Numero = fmt.Sprintf("%s-%04d", prefix, seq)

	err = dbTx.QueryRowContext(ctx, `
		INSERT INTO pedidos (numero, tipo, veiculo_id, parceiro_id, valor_total, parcelas, data, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`, o.Numero, o.Tipo, o.VeiculoID, o.ParceiroID, o.ValorTotal, o.Parcelas, o.Data,
	).Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating order: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing order: %w", err)
	}

	return nil
}

func (s *Store) GetOrder(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	query := `SELECT ` + selectOrderColumns + orderJoins + ` WHERE o.id = $1`

	o, err := scanOrder(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, order.ErrNotFound
		}

		return nil, fmt.Errorf("getting order: %w", err)
	}

	return o, nil
}

func (s *Store) ListOrders(ctx context.Context, filter order.ListFilter) ([]*order.Order, error) {
	query := `SELECT ` + selectOrderColumns + orderJoins + ` WHERE 1=1`

	var args []any

	argIdx := 1

	if filter.Tipo != nil {
		query += fmt.Sprintf(" AND o.tipo = $%d", argIdx)

		args = append(args, *filter.Tipo)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND o.data >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND o.data <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += " ORDER BY o.data DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	defer rows.Close()

	var orders []*order.Order

	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning order: %w", err)
		}

		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order rows: %w", err)
	}

	return orders, nil
}

// GetRefs resolves order ids to their display reference and kind. Ids that
// match no order are simply absent from the map.
func (s *Store) GetRefs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]order.Ref, error) {
	strIDs := make([]string, len(ids))
	for i, id := range ids {
		strIDs[i] = id.String()
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, numero, tipo FROM pedidos WHERE id = ANY($1)`, strIDs)
	if err != nil {
		return nil, fmt.Errorf("resolving order refs: %w", err)
	}
	defer rows.Close()

	refs := make(map[uuid.UUID]order.Ref, len(ids))

	for rows.Next() {
		var id uuid.UUID

		var numero, tipoStr string

		if err := rows.Scan(&id, &numero, &tipoStr); err != nil {
			return nil, fmt.Errorf("scanning order ref: %w", err)
		}

		refs[id] = order.Ref{Numero: numero, Tipo: order.Tipo(tipoStr)}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order refs: %w", err)
	}

	return refs, nil
}
