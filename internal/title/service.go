package title

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gfmartins/revenda/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=title
type Repository interface {
	CreateTitle(ctx context.Context, t *Title) error
	CreateTitles(ctx context.Context, ts []*Title) error
	GetTitle(ctx context.Context, id uuid.UUID) (*Title, error)
	ListTitles(ctx context.Context, filter ListFilter) ([]*Title, error)
	UpdateTitle(ctx context.Context, t *Title) error
	RegisterPayment(ctx context.Context, id uuid.UUID, valorPago int64, status Status) error
}

// TransactionCreator records the ledger movement produced by a payoff.
type TransactionCreator interface {
	Create(ctx context.Context, params transaction.CreateParams) (*transaction.Transaction, error)
}

type Service struct {
	repo Repository
	txs  TransactionCreator
}

func NewService(repo Repository, txs TransactionCreator) *Service {
	return &Service{repo: repo, txs: txs}
}

type CreateParams struct {
	Tipo          Tipo
	ValorTotal    int64
	Emissao       time.Time
	Vencimento    time.Time
	Parcela       *int
	TotalParcelas *int
	PedidoID      *uuid.UUID
	DespesaID     *uuid.UUID
	ParceiroID    *uuid.UUID
	CategoriaID   *uuid.UUID
}

// ListFilter narrows the title query. Statuses is required by the store
// contract; the due-date window bounds Vencimento inclusively.
type ListFilter struct {
	Statuses  []Status
	StartDate *time.Time
	EndDate   *time.Time
	Tipo      *Tipo
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Title, error) {
	if params.ValorTotal <= 0 {
		return nil, ErrInvalidAmount
	}

	t := newTitle(params)
	if err := s.repo.CreateTitle(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

// CreateBatch inserts a set of titles together, used by order creation to
// emit all installments at once.
func (s *Service) CreateBatch(ctx context.Context, params []CreateParams) ([]*Title, error) {
	if len(params) == 0 {
		return nil, nil
	}

	ts := make([]*Title, len(params))

	for i, p := range params {
		if p.ValorTotal <= 0 {
			return nil, ErrInvalidAmount
		}

		ts[i] = newTitle(p)
	}

	if err := s.repo.CreateTitles(ctx, ts); err != nil {
		return nil, err
	}

	return ts, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Title, error) {
	return s.repo.GetTitle(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Title, error) {
	return s.repo.ListTitles(ctx, filter)
}

func (s *Service) Update(ctx context.Context, t *Title) error {
	return s.repo.UpdateTitle(ctx, t)
}

type PayParams struct {
	Valor   int64
	Data    time.Time
	ContaID *uuid.UUID
}

// Pay registers a partial or full payoff (baixa) on the title. It records
// the ledger transaction and recomputes the stored status: PAGO once the
// paid amount reaches the total, PARCIAL otherwise.
func (s *Service) Pay(ctx context.Context, id uuid.UUID, params PayParams) (*Title, error) {
	if params.Valor <= 0 {
		return nil, ErrInvalidAmount
	}

	t, err := s.repo.GetTitle(ctx, id)
	if err != nil {
		return nil, err
	}

	if t.Status == StatusPago || t.Status == StatusCancelado {
		return nil, ErrAlreadySettled
	}

	if params.Valor > t.ValorRestante() {
		return nil, ErrOverpayment
	}

	valorPago := t.ValorPago + params.Valor

	status := StatusParcial
	if valorPago >= t.ValorTotal {
		status = StatusPago
	}

	tag := transaction.TransacaoPagamentoTitulo
	tipo := transaction.TipoSaida

	if t.Tipo == TipoReceber {
		tag = transaction.TransacaoRecebimentoTitulo
		tipo = transaction.TipoEntrada
	}

	if _, err := s.txs.Create(ctx, transaction.CreateParams{
		Valor:         params.Valor,
		Data:          params.Data,
		Tipo:          tipo,
		TipoTransacao: tag,
		Descricao:     paymentDescription(t),
		TituloID:      &t.ID,
		ContaID:       params.ContaID,
		ParceiroID:    t.ParceiroID,
	}); err != nil {
		return nil, fmt.Errorf("recording payoff transaction: %w", err)
	}

	if err := s.repo.RegisterPayment(ctx, id, valorPago, status); err != nil {
		return nil, fmt.Errorf("registering payment: %w", err)
	}

	t.ValorPago = valorPago
	t.Status = status

	return t, nil
}

// Cancel voids a title that never received a payment.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) error {
	t, err := s.repo.GetTitle(ctx, id)
	if err != nil {
		return err
	}

	if t.ValorPago > 0 {
		return ErrHasPayments
	}

	if t.Status == StatusPago || t.Status == StatusCancelado {
		return ErrAlreadySettled
	}

	t.Status = StatusCancelado

	return s.repo.UpdateTitle(ctx, t)
}

func newTitle(params CreateParams) *Title {
	return &Title{
		Tipo:          params.Tipo,
		Status:        StatusPendente,
		ValorTotal:    params.ValorTotal,
		Emissao:       params.Emissao,
		Vencimento:    params.Vencimento,
		Parcela:       params.Parcela,
		TotalParcelas: params.TotalParcelas,
		PedidoID:      params.PedidoID,
		DespesaID:     params.DespesaID,
		ParceiroID:    params.ParceiroID,
		CategoriaID:   params.CategoriaID,
	}
}

func paymentDescription(t *Title) string {
	verb := "Pagamento"
	if t.Tipo == TipoReceber {
		verb = "Recebimento"
	}

	if t.Parcela != nil && t.TotalParcelas != nil {
		return fmt.Sprintf("%s de titulo %d/%d", verb, *t.Parcela, *t.TotalParcelas)
	}

	return verb + " de titulo"
}
