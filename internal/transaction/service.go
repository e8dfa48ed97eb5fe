package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	GetTransaction(ctx context.Context, id uuid.UUID) (*Transaction, error)
	ListTransactions(ctx context.Context, filter ListFilter) ([]*Transaction, error)
	DeleteTransaction(ctx context.Context, id uuid.UUID) error
	CreateTransfer(ctx context.Context, saida, entrada *Transaction) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Valor         int64
	Data          time.Time
	Tipo          Tipo
	TipoTransacao TipoTransacao
	Descricao     string
	TituloID      *uuid.UUID
	ContaID       *uuid.UUID
	ParceiroID    *uuid.UUID
}

// ListFilter narrows the transaction query. EndDate is inclusive; callers
// that mean "whole day" must extend it to end-of-day themselves.
type ListFilter struct {
	StartDate     *time.Time
	EndDate       *time.Time
	Tipo          *Tipo
	TipoTransacao *TipoTransacao
	TagContains   string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Transaction, error) {
	if params.Valor <= 0 {
		return nil, ErrInvalidAmount
	}

	tipoTransacao := params.TipoTransacao
	if tipoTransacao == "" {
		tipoTransacao = TransacaoManual
	}

	tx := &Transaction{
		Valor:         params.Valor,
		Data:          params.Data,
		Tipo:          params.Tipo,
		TipoTransacao: tipoTransacao,
		Descricao:     params.Descricao,
		TituloID:      params.TituloID,
		ContaID:       params.ContaID,
		ParceiroID:    params.ParceiroID,
	}
	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx, filter)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteTransaction(ctx, id)
}

type TransferParams struct {
	ContaOrigemID  uuid.UUID
	ContaDestinoID uuid.UUID
	Valor          int64
	Data           time.Time
	Descricao      string
}

// Transfer records both legs of an account transfer atomically. The legs
// share a fresh TransferenciaID so the pairing survives into the history.
func (s *Service) Transfer(ctx context.Context, params TransferParams) (*Transaction, *Transaction, error) {
	if params.Valor <= 0 {
		return nil, nil, ErrInvalidAmount
	}

	if params.ContaOrigemID == params.ContaDestinoID {
		return nil, nil, ErrSameAccount
	}

	transferID := uuid.New()

	saida := &Transaction{
		Valor:           params.Valor,
		Data:            params.Data,
		Tipo:            TipoSaida,
		TipoTransacao:   TransacaoTransferenciaOut,
		Descricao:       params.Descricao,
		ContaID:         &params.ContaOrigemID,
		TransferenciaID: &transferID,
	}
	entrada := &Transaction{
		Valor:           params.Valor,
		Data:            params.Data,
		Tipo:            TipoEntrada,
		TipoTransacao:   TransacaoTransferenciaIn,
		Descricao:       params.Descricao,
		ContaID:         &params.ContaDestinoID,
		TransferenciaID: &transferID,
	}

	if err := s.repo.CreateTransfer(ctx, saida, entrada); err != nil {
		return nil, nil, err
	}

	return saida, entrada, nil
}

type WithdrawalParams struct {
	ParceiroID uuid.UUID
	ContaID    uuid.UUID
	Valor      int64
	Data       time.Time
	Descricao  string
}

// Withdrawal records an owner withdrawal (retirada de socio) as an outflow.
func (s *Service) Withdrawal(ctx context.Context, params WithdrawalParams) (*Transaction, error) {
	return s.Create(ctx, CreateParams{
		Valor:         params.Valor,
		Data:          params.Data,
		Tipo:          TipoSaida,
		TipoTransacao: TransacaoRetiradaSocio,
		Descricao:     params.Descricao,
		ContaID:       &params.ContaID,
		ParceiroID:    &params.ParceiroID,
	})
}

// Credit records a capital contribution from a partner as an inflow.
func (s *Service) Credit(ctx context.Context, params WithdrawalParams) (*Transaction, error) {
	return s.Create(ctx, CreateParams{
		Valor:         params.Valor,
		Data:          params.Data,
		Tipo:          TipoEntrada,
		TipoTransacao: TransacaoCreditoSocio,
		Descricao:     params.Descricao,
		ContaID:       &params.ContaID,
		ParceiroID:    &params.ParceiroID,
	})
}

// OpeningBalance seeds an account with its initial balance entry.
func (s *Service) OpeningBalance(ctx context.Context, contaID uuid.UUID, valor int64, data time.Time) (*Transaction, error) {
	return s.Create(ctx, CreateParams{
		Valor:         valor,
		Data:          data,
		Tipo:          TipoEntrada,
		TipoTransacao: TransacaoSaldoInicial,
		Descricao:     "Saldo inicial",
		ContaID:       &contaID,
	})
}
