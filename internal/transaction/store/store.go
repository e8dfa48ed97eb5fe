package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/gfmartins/revenda/internal/transaction"
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

const selectTransactionColumns = `
	t.id, t.valor, t.data, t.tipo, t.tipo_transacao, t.descricao,
	t.titulo_id, t.conta_id, t.parceiro_id, t.transferencia_id,
	p.nome as parceiro_nome, c.nome as conta_nome, ti.pedido_id,
	t.created_at, t.deleted_at
`

// scanTransaction reads a transaction row with its joined labels.
// Expected column order matches selectTransactionColumns.
func scanTransaction(s scanner) (*transaction.Transaction, error) {
	var tx transaction.Transaction

	var tipoStr, tagStr string

	var parceiroNome, contaNome sql.NullString

	if err := s.Scan(
		&tx.ID, &tx.Valor, &tx.Data, &tipoStr, &tagStr, &tx.Descricao,
		&tx.TituloID, &tx.ContaID, &tx.ParceiroID, &tx.TransferenciaID,
		&parceiroNome, &contaNome, &tx.PedidoID,
		&tx.CreatedAt, &tx.DeletedAt,
	); err != nil {
		return nil, err
	}

	tx.Tipo = transaction.Tipo(tipoStr)
	tx.TipoTransacao = transaction.TipoTransacao(tagStr)
	tx.ParceiroNome = parceiroNome.String
	tx.ContaNome = contaNome.String

	return &tx, nil
}

const transactionJoins = `
	FROM transacoes t
	LEFT JOIN parceiros p ON t.parceiro_id = p.id
	LEFT JOIN contas c ON t.conta_id = c.id
	LEFT JOIN titulos ti ON t.titulo_id = ti.id
`

const insertTransaction = `
	INSERT INTO transacoes (valor, data, tipo, tipo_transacao, descricao, titulo_id, conta_id, parceiro_id, transferencia_id, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
	RETURNING id, created_at
`

func (s *Store) CreateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	err := s.db.QueryRowContext(ctx, insertTransaction,
		tx.Valor,
		tx.Data,
		tx.Tipo,
		tx.TipoTransacao,
		tx.Descricao,
		tx.TituloID,
		tx.ContaID,
		tx.ParceiroID,
		tx.TransferenciaID,
	).Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}

	return nil
}

func (s *Store) GetTransaction(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + transactionJoins + `
		WHERE t.id = $1 AND t.deleted_at IS NULL`

	tx, err := scanTransaction(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, transaction.ErrNotFound
		}

		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	return tx, nil
}

func (s *Store) ListTransactions(ctx context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + transactionJoins + `
		WHERE t.deleted_at IS NULL`

	var args []any

	argIdx := 1

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND t.data >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND t.data <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	if filter.Tipo != nil {
		query += fmt.Sprintf(" AND t.tipo = $%d", argIdx)

		args = append(args, *filter.Tipo)
		argIdx++
	}

	if filter.TipoTransacao != nil {
		query += fmt.Sprintf(" AND t.tipo_transacao = $%d", argIdx)

		args = append(args, *filter.TipoTransacao)
		argIdx++
	}

	if filter.TagContains != "" {
		query += fmt.Sprintf(" AND t.tipo_transacao LIKE '%%' || $%d || '%%'", argIdx)

		args = append(args, filter.TagContains)
		argIdx++
	}

	query += " ORDER BY t.data DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []*transaction.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transaction rows: %w", err)
	}

	return txs, nil
}

func (s *Store) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE transacoes
		SET deleted_at = NOW()
		WHERE id = $1
	`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}

	return nil
}

// CreateTransfer inserts both legs of a transfer in one database transaction
// so a half-written pair never becomes visible.
func (s *Store) CreateTransfer(ctx context.Context, saida, entrada *transaction.Transaction) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transfer tx: %w", err)
	}
	defer dbTx.Rollback()

	for _, leg := range []*transaction.Transaction{saida, entrada} {
		err := dbTx.QueryRowContext(ctx, insertTransaction,
			leg.Valor,
			leg.Data,
			leg.Tipo,
			leg.TipoTransacao,
			leg.Descricao,
			leg.TituloID,
			leg.ContaID,
			leg.ParceiroID,
			leg.TransferenciaID,
		).Scan(&leg.ID, &leg.CreatedAt)
		if err != nil {
			return fmt.Errorf("creating transfer leg: %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transfer: %w", err)
	}

	return nil
}
