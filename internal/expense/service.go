package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gfmartins/revenda/internal/title"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=expense
type Repository interface {
	CreateExpense(ctx context.Context, e *VehicleExpense) error
	ListExpensesByVehicle(ctx context.Context, veiculoID uuid.UUID) ([]*VehicleExpense, error)
	DeleteExpense(ctx context.Context, id uuid.UUID) error
}

// TitleCreator emits the payable generated by a vehicle expense.
type TitleCreator interface {
	Create(ctx context.Context, params title.CreateParams) (*title.Title, error)
}

type Service struct {
	repo   Repository
	titles TitleCreator
}

func NewService(repo Repository, titles TitleCreator) *Service {
	return &Service{repo: repo, titles: titles}
}

type CreateParams struct {
	VeiculoID   uuid.UUID
	Descricao   string
	Valor       int64
	Data        time.Time
	Vencimento  time.Time
	ParceiroID  *uuid.UUID
	CategoriaID *uuid.UUID
}

// Create records the expense and the payable title that settles it. The
// title carries DespesaID so the history classifies it as a vehicle expense.
func (s *Service) Create(ctx context.Context, params CreateParams) (*VehicleExpense, error) {
	if params.Valor <= 0 {
		return nil, ErrInvalidAmount
	}

	e := &VehicleExpense{
		VeiculoID:   params.VeiculoID,
		Descricao:   params.Descricao,
		Valor:       params.Valor,
		Data:        params.Data,
		CategoriaID: params.CategoriaID,
	}

	if err := s.repo.CreateExpense(ctx, e); err != nil {
		return nil, err
	}

	if _, err := s.titles.Create(ctx, title.CreateParams{
		Tipo:        title.TipoPagar,
		ValorTotal:  e.Valor,
		Emissao:     e.Data,
		Vencimento:  params.Vencimento,
		DespesaID:   &e.ID,
		ParceiroID:  params.ParceiroID,
		CategoriaID: params.CategoriaID,
	}); err != nil {
		return nil, fmt.Errorf("creating expense title: %w", err)
	}

	return e, nil
}

func (s *Service) ListByVehicle(ctx context.Context, veiculoID uuid.UUID) ([]*VehicleExpense, error) {
	return s.repo.ListExpensesByVehicle(ctx, veiculoID)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteExpense(ctx, id)
}
