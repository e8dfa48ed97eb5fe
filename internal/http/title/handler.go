package title

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/gfmartins/revenda/internal/title"
)

type Notifier interface {
	Notify(tabela, acao string)
}

type Handler struct {
	svc      *title.Service
	notifier Notifier
}

func NewHandler(svc *title.Service, notifier Notifier) *Handler {
	return &Handler{svc: svc, notifier: notifier}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Post("/{id}/baixa", h.pay)
	r.Post("/{id}/cancelamento", h.cancel)
}

type titleResponse struct {
	ID            uuid.UUID    `json:"id"`
	Tipo          title.Tipo   `json:"tipo"`
	Status        title.Status `json:"status"`
	ValorTotal    int64        `json:"valor_total"`
	ValorPago     int64        `json:"valor_pago"`
	ValorRestante int64        `json:"valor_restante"`
	Emissao       time.Time    `json:"emissao"`
	Vencimento    time.Time    `json:"vencimento"`
	Parcela       *int         `json:"parcela,omitempty"`
	TotalParcelas *int         `json:"total_parcelas,omitempty"`
	PedidoID      *uuid.UUID   `json:"pedido_id,omitempty"`
	DespesaID     *uuid.UUID   `json:"despesa_id,omitempty"`
	ParceiroID    *uuid.UUID   `json:"parceiro_id,omitempty"`
	ParceiroNome  string       `json:"parceiro_nome,omitempty"`
	CategoriaID   *uuid.UUID   `json:"categoria_id,omitempty"`
	CategoriaNome string       `json:"categoria_nome,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
}

func toResponse(t *title.Title) titleResponse {
	return titleResponse{
		ID:            t.ID,
		Tipo:          t.Tipo,
		Status:        t.Status,
		ValorTotal:    t.ValorTotal,
		ValorPago:     t.ValorPago,
		ValorRestante: t.ValorRestante(),
		Emissao:       t.Emissao,
		Vencimento:    t.Vencimento,
		Parcela:       t.Parcela,
		TotalParcelas: t.TotalParcelas,
		PedidoID:      t.PedidoID,
		DespesaID:     t.DespesaID,
		ParceiroID:    t.ParceiroID,
		ParceiroNome:  t.ParceiroNome,
		CategoriaID:   t.CategoriaID,
		CategoriaNome: t.CategoriaNome,
		CreatedAt:     t.CreatedAt,
	}
}

type createTitleRequest struct {
	Tipo        title.Tipo `json:"tipo"`
	ValorTotal  int64      `json:"valor_total"`
	Emissao     time.Time  `json:"emissao"`
	Vencimento  time.Time  `json:"vencimento"`
	ParceiroID  *uuid.UUID `json:"parceiro_id,omitempty"`
	CategoriaID *uuid.UUID `json:"categoria_id,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createTitleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	t, err := h.svc.Create(r.Context(), title.CreateParams{
		Tipo:        req.Tipo,
		ValorTotal:  req.ValorTotal,
		Emissao:     req.Emissao,
		Vencimento:  req.Vencimento,
		ParceiroID:  req.ParceiroID,
		CategoriaID: req.CategoriaID,
	})
	if err != nil {
		if errors.Is(err, title.ErrInvalidAmount) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	h.notifier.Notify("titulos", "create")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(t)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := title.ListFilter{}

	if s := r.URL.Query().Get("status"); s != "" {
		filter.Statuses = []title.Status{title.Status(s)}
	} else {
		filter.Statuses = title.UnresolvedStatuses
	}

	if s := r.URL.Query().Get("tipo"); s != "" {
		tipo := title.Tipo(s)
		filter.Tipo = &tipo
	}

	if s := r.URL.Query().Get("data_inicio"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.StartDate = &t
		}
	}

	if s := r.URL.Query().Get("data_fim"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.EndDate = &t
		}
	}

	titles, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]titleResponse, len(titles))
	for i, t := range titles {
		resp[i] = toResponse(t)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	t, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, title.ErrNotFound) {
			http.Error(w, "title not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(t)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type payRequest struct {
	Valor   int64      `json:"valor"`
	Data    time.Time  `json:"data"`
	ContaID *uuid.UUID `json:"conta_id,omitempty"`
}

func (h *Handler) pay(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req payRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	t, err := h.svc.Pay(r.Context(), id, title.PayParams{
		Valor:   req.Valor,
		Data:    req.Data,
		ContaID: req.ContaID,
	})
	if err != nil {
		switch {
		case errors.Is(err, title.ErrNotFound):
			http.Error(w, "title not found", http.StatusNotFound)
		case errors.Is(err, title.ErrInvalidAmount),
			errors.Is(err, title.ErrOverpayment),
			errors.Is(err, title.ErrAlreadySettled):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}

		return
	}

	h.notifier.Notify("titulos", "update")
	h.notifier.Notify("transacoes", "create")

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(t)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) cancel(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Cancel(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, title.ErrNotFound):
			http.Error(w, "title not found", http.StatusNotFound)
		case errors.Is(err, title.ErrHasPayments), errors.Is(err, title.ErrAlreadySettled):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}

		return
	}

	h.notifier.Notify("titulos", "update")

	w.WriteHeader(http.StatusNoContent)
}
