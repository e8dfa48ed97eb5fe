package account

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=account
type Repository interface {
	CreateAccount(ctx context.Context, a *Account) error
	GetAccount(ctx context.Context, id uuid.UUID) (*Account, error)
	ListAccounts(ctx context.Context, onlyActive bool) ([]*Account, error)
	UpdateAccount(ctx context.Context, a *Account) error
	GetBalance(ctx context.Context, id uuid.UUID) (int64, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Nome    string
	Banco   string
	Agencia string
	Numero  string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Account, error) {
	a := &Account{
		Nome:    params.Nome,
		Banco:   params.Banco,
		Agencia: params.Agencia,
		Numero:  params.Numero,
		Ativo:   true,
	}
	if err := s.repo.CreateAccount(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Account, error) {
	return s.repo.GetAccount(ctx, id)
}

func (s *Service) List(ctx context.Context, onlyActive bool) ([]*Account, error) {
	return s.repo.ListAccounts(ctx, onlyActive)
}

func (s *Service) Update(ctx context.Context, a *Account) error {
	return s.repo.UpdateAccount(ctx, a)
}

func (s *Service) Deactivate(ctx context.Context, id uuid.UUID) error {
	a, err := s.repo.GetAccount(ctx, id)
	if err != nil {
		return err
	}

	a.Ativo = false

	return s.repo.UpdateAccount(ctx, a)
}

// Balance sums the account's ledger movements (inflows minus outflows).
func (s *Service) Balance(ctx context.Context, id uuid.UUID) (int64, error) {
	return s.repo.GetBalance(ctx, id)
}
