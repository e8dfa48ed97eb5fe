package store

import (
	"context"
	"database/sql"
	"fmt"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// FindMatch prefers the longest matching pattern so "PIX RECEBIDO JOAO"
// beats "PIX" when both apply.
func (s *Store) FindMatch(ctx context.Context, rawDescription string) (string, error) {
	query := `
		SELECT descricao_preferida
		FROM descricao_mappings
		WHERE $1 ILIKE '%' || padrao || '%'
		ORDER BY LENGTH(padrao) DESC, created_at DESC
		LIMIT 1
	`

	var preferida string

	err := s.db.QueryRowContext(ctx, query, rawDescription).Scan(&preferida)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}

		return "", fmt.Errorf("finding match: %w", err)
	}

	return preferida, nil
}

func (s *Store) CreateMapping(ctx context.Context, padrao, descricaoPreferida string) error {
	query := `
		INSERT INTO descricao_mappings (padrao, descricao_preferida, created_at)
		VALUES ($1, $2, NOW())
	`

	if _, err := s.db.ExecContext(ctx, query, padrao, descricaoPreferida); err != nil {
		return fmt.Errorf("creating mapping: %w", err)
	}

	return nil
}
