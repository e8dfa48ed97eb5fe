package order

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/gfmartins/revenda/internal/order"
)

type Notifier interface {
	Notify(tabela, acao string)
}

type Handler struct {
	svc      *order.Service
	notifier Notifier
}

func NewHandler(svc *order.Service, notifier Notifier) *Handler {
	return &Handler{svc: svc, notifier: notifier}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
}

type orderResponse struct {
	ID           uuid.UUID  `json:"id"`
	Numero       string     `json:"numero"`
	Tipo         order.Tipo `json:"tipo"`
	VeiculoID    uuid.UUID  `json:"veiculo_id"`
	VeiculoNome  string     `json:"veiculo_nome,omitempty"`
	ParceiroID   uuid.UUID  `json:"parceiro_id"`
	ParceiroNome string     `json:"parceiro_nome,omitempty"`
	ValorTotal   int64      `json:"valor_total"`
	Parcelas     int        `json:"parcelas"`
	Data         time.Time  `json:"data"`
	CreatedAt    time.Time  `json:"created_at"`
}

func toResponse(o *order.Order) orderResponse {
	return orderResponse{
		ID:           o.ID,
		Numero:       o.Numero,
		Tipo:         o.Tipo,
		VeiculoID:    o.VeiculoID,
		VeiculoNome:  o.VeiculoNome,
		ParceiroID:   o.ParceiroID,
		ParceiroNome: o.ParceiroNome,
		ValorTotal:   o.ValorTotal,
		Parcelas:     o.Parcelas,
		Data:         o.Data,
		CreatedAt:    o.CreatedAt,
	}
}

type createOrderRequest struct {
	Tipo               order.Tipo `json:"tipo"`
	VeiculoID          uuid.UUID  `json:"veiculo_id"`
	ParceiroID         uuid.UUID  `json:"parceiro_id"`
	ValorTotal         int64      `json:"valor_total"`
	Parcelas           int        `json:"parcelas"`
	Data               time.Time  `json:"data"`
	PrimeiroVencimento time.Time  `json:"primeiro_vencimento"`
	CategoriaID        *uuid.UUID `json:"categoria_id,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	o, err := h.svc.Create(r.Context(), order.CreateParams{
		Tipo:               req.Tipo,
		VeiculoID:          req.VeiculoID,
		ParceiroID:         req.ParceiroID,
		ValorTotal:         req.ValorTotal,
		Parcelas:           req.Parcelas,
		Data:               req.Data,
		PrimeiroVencimento: req.PrimeiroVencimento,
		CategoriaID:        req.CategoriaID,
	})
	if err != nil {
		if errors.Is(err, order.ErrInvalidAmount) || errors.Is(err, order.ErrInvalidParcelas) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	h.notifier.Notify("pedidos", "create")
	h.notifier.Notify("titulos", "create")
	h.notifier.Notify("veiculos", "update")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(o)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := order.ListFilter{}

	if s := r.URL.Query().Get("tipo"); s != "" {
		tipo := order.Tipo(s)
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

	orders, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]orderResponse, len(orders))
	for i, o := range orders {
		resp[i] = toResponse(o)
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

	o, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(o)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
