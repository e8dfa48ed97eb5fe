package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gfmartins/revenda/internal/title"
	"github.com/gfmartins/revenda/internal/vehicle"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=order
type Repository interface {
	CreateOrder(ctx context.Context, o *Order) error
	GetOrder(ctx context.Context, id uuid.UUID) (*Order, error)
	ListOrders(ctx context.Context, filter ListFilter) ([]*Order, error)
	GetRefs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]Ref, error)
}

// TitleCreator emits the installment titles generated by an order.
type TitleCreator interface {
	CreateBatch(ctx context.Context, params []title.CreateParams) ([]*title.Title, error)
}

// VehicleMarker moves the traded vehicle to its post-order status.
type VehicleMarker interface {
	UpdateStatus(ctx context.Context, id uuid.UUID, status vehicle.Status) error
}

type Service struct {
	repo     Repository
	titles   TitleCreator
	vehicles VehicleMarker
}

func NewService(repo Repository, titles TitleCreator, vehicles VehicleMarker) *Service {
	return &Service{repo: repo, titles: titles, vehicles: vehicles}
}

type CreateParams struct {
	Tipo               Tipo
	VeiculoID          uuid.UUID
	ParceiroID         uuid.UUID
	ValorTotal         int64
	Parcelas           int
	Data               time.Time
	PrimeiroVencimento time.Time
	CategoriaID        *uuid.UUID
}

type ListFilter struct {
	Tipo      *Tipo
	StartDate *time.Time
	EndDate   *time.Time
}

// installmentInterval spaces the due dates of consecutive installments.
const installmentInterval = 30

// Create records the order, emits one title per installment and updates the
// vehicle status. Installments split the total evenly in centavos, with the
// rounding remainder on the last one so the schedule always sums to the total.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Order, error) {
	if params.ValorTotal <= 0 {
		return nil, ErrInvalidAmount
	}

	if params.Parcelas < 1 {
		return nil, ErrInvalidParcelas
	}

	o := &Order{
		Tipo:       params.Tipo,
		VeiculoID:  params.VeiculoID,
		ParceiroID: params.ParceiroID,
		ValorTotal: params.ValorTotal,
		Parcelas:   params.Parcelas,
		Data:       params.Data,
	}

	if err := s.repo.CreateOrder(ctx, o); err != nil {
		return nil, err
	}

	if _, err := s.titles.CreateBatch(ctx, s.installmentParams(o, params)); err != nil {
		return nil, fmt.Errorf("creating order titles: %w", err)
	}

	vehicleStatus := vehicle.StatusEmEstoque
	if o.Tipo == TipoVenda {
		vehicleStatus = vehicle.StatusVendido
	}

	if err := s.vehicles.UpdateStatus(ctx, o.VeiculoID, vehicleStatus); err != nil {
		return nil, fmt.Errorf("updating vehicle status: %w", err)
	}

	return o, nil
}

func (s *Service) installmentParams(o *Order, params CreateParams) []title.CreateParams {
	tituloTipo := title.TipoPagar
	if o.Tipo == TipoVenda {
		tituloTipo = title.TipoReceber
	}

	base := o.ValorTotal / int64(o.Parcelas)
	remainder := o.ValorTotal - base*int64(o.Parcelas)

	out := make([]title.CreateParams, o.Parcelas)

	for i := 0; i < o.Parcelas; i++ {
		valor := base
		if i == o.Parcelas-1 {
			valor += remainder
		}

		parcela := i + 1
		total := o.Parcelas

		out[i] = title.CreateParams{
			Tipo:          tituloTipo,
			ValorTotal:    valor,
			Emissao:       o.Data,
			Vencimento:    params.PrimeiroVencimento.AddDate(0, 0, i*installmentInterval),
			Parcela:       &parcela,
			TotalParcelas: &total,
			PedidoID:      &o.ID,
			ParceiroID:    &o.ParceiroID,
			CategoriaID:   params.CategoriaID,
		}
	}

	return out
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Order, error) {
	return s.repo.GetOrder(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Order, error) {
	return s.repo.ListOrders(ctx, filter)
}

// Refs resolves order ids to display references in one batch. Unknown ids
// are omitted from the result rather than reported as errors.
func (s *Service) Refs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]Ref, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]Ref{}, nil
	}

	return s.repo.GetRefs(ctx, ids)
}
