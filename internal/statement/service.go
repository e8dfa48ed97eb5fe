package statement

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/gfmartins/revenda/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=statement
type Suggester interface {
	Suggest(ctx context.Context, rawDescription string) (string, error)
}

type TransactionCreator interface {
	Create(ctx context.Context, params transaction.CreateParams) (*transaction.Transaction, error)
}

type Service struct {
	parser       *Parser
	suggestions  Suggester
	transactions TransactionCreator
}

func NewService(suggestions Suggester, transactions TransactionCreator) *Service {
	return &Service{
		parser:       NewParser(),
		suggestions:  suggestions,
		transactions: transactions,
	}
}

// Preview parses the upload and annotates each row with a learned
// description suggestion. Nothing is persisted; the user reviews and edits
// before confirming.
func (s *Service) Preview(ctx context.Context, r io.Reader) ([]Row, error) {
	rows, err := s.parser.Parse(r)
	if err != nil {
		return nil, err
	}

	for i := range rows {
		suggestion, err := s.suggestions.Suggest(ctx, rows[i].Descricao)
		if err != nil {
			return nil, fmt.Errorf("suggesting description for %q: %w", rows[i].Descricao, err)
		}

		rows[i].Sugestao = suggestion
	}

	return rows, nil
}

// Import records the confirmed rows as manual transactions on the account.
// Rows keep their bank description unless a suggestion was accepted, in
// which case the caller sends the edited row back with Descricao replaced.
func (s *Service) Import(ctx context.Context, contaID uuid.UUID, rows []Row) ([]*transaction.Transaction, error) {
	created := make([]*transaction.Transaction, 0, len(rows))

	for _, row := range rows {
		tipo := transaction.TipoSaida
		if row.Entrada {
			tipo = transaction.TipoEntrada
		}

		tx, err := s.transactions.Create(ctx, transaction.CreateParams{
			Valor:     row.Valor,
			Data:      row.Data,
			Tipo:      tipo,
			Descricao: row.Descricao,
			ContaID:   &contaID,
		})
		if err != nil {
			return created, fmt.Errorf("importing row %q: %w", row.Descricao, err)
		}

		created = append(created, tx)
	}

	return created, nil
}
