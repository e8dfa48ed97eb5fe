package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/gfmartins/revenda/internal/transaction"
)

type Notifier interface {
	Notify(tabela, acao string)
}

type Handler struct {
	svc      *transaction.Service
	notifier Notifier
}

func NewHandler(svc *transaction.Service, notifier Notifier) *Handler {
	return &Handler{svc: svc, notifier: notifier}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Delete("/{id}", h.delete)
	r.Post("/transferencias", h.transfer)
	r.Post("/retiradas", h.withdrawal)
	r.Post("/creditos", h.credit)
	r.Post("/saldo-inicial", h.openingBalance)
}

type createTransactionRequest struct {
	Valor      int64            `json:"valor"`
	Data       time.Time        `json:"data"`
	Tipo       transaction.Tipo `json:"tipo"`
	Descricao  string           `json:"descricao"`
	ContaID    *uuid.UUID       `json:"conta_id,omitempty"`
	ParceiroID *uuid.UUID       `json:"parceiro_id,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tx, err := h.svc.Create(r.Context(), transaction.CreateParams{
		Valor:      req.Valor,
		Data:       req.Data,
		Tipo:       req.Tipo,
		Descricao:  req.Descricao,
		ContaID:    req.ContaID,
		ParceiroID: req.ParceiroID,
	})
	if err != nil {
		if errors.Is(err, transaction.ErrInvalidAmount) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	h.notifier.Notify("transacoes", "create")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(tx)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := transaction.ListFilter{}

	if s := r.URL.Query().Get("tipo"); s != "" {
		tipo := transaction.Tipo(s)
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

	txs, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(txs)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	tx, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, transaction.ErrNotFound) {
			http.Error(w, "transaction not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(tx)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.notifier.Notify("transacoes", "delete")

	w.WriteHeader(http.StatusNoContent)
}

type transferRequest struct {
	ContaOrigemID  uuid.UUID `json:"conta_origem_id"`
	ContaDestinoID uuid.UUID `json:"conta_destino_id"`
	Valor          int64     `json:"valor"`
	Data           time.Time `json:"data"`
	Descricao      string    `json:"descricao"`
}

type transferResponse struct {
	Saida   transactionResponse `json:"saida"`
	Entrada transactionResponse `json:"entrada"`
}

func (h *Handler) transfer(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	saida, entrada, err := h.svc.Transfer(r.Context(), transaction.TransferParams{
		ContaOrigemID:  req.ContaOrigemID,
		ContaDestinoID: req.ContaDestinoID,
		Valor:          req.Valor,
		Data:           req.Data,
		Descricao:      req.Descricao,
	})
	if err != nil {
		if errors.Is(err, transaction.ErrInvalidAmount) || errors.Is(err, transaction.ErrSameAccount) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	h.notifier.Notify("transacoes", "create")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(transferResponse{
		Saida:   toResponse(saida),
		Entrada: toResponse(entrada),
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type partnerMovementRequest struct {
	ParceiroID uuid.UUID `json:"parceiro_id"`
	ContaID    uuid.UUID `json:"conta_id"`
	Valor      int64     `json:"valor"`
	Data       time.Time `json:"data"`
	Descricao  string    `json:"descricao"`
}

func (h *Handler) withdrawal(w http.ResponseWriter, r *http.Request) {
	h.partnerMovement(w, r, h.svc.Withdrawal)
}

func (h *Handler) credit(w http.ResponseWriter, r *http.Request) {
	h.partnerMovement(w, r, h.svc.Credit)
}

// partnerMovement shares the request handling of retiradas and creditos;
// only the service call differs.
func (h *Handler) partnerMovement(
	w http.ResponseWriter,
	r *http.Request,
	create func(ctx context.Context, params transaction.WithdrawalParams) (*transaction.Transaction, error),
) {
	var req partnerMovementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tx, err := create(r.Context(), transaction.WithdrawalParams{
		ParceiroID: req.ParceiroID,
		ContaID:    req.ContaID,
		Valor:      req.Valor,
		Data:       req.Data,
		Descricao:  req.Descricao,
	})
	if err != nil {
		if errors.Is(err, transaction.ErrInvalidAmount) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	h.notifier.Notify("transacoes", "create")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(tx)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type openingBalanceRequest struct {
	ContaID uuid.UUID `json:"conta_id"`
	Valor   int64     `json:"valor"`
	Data    time.Time `json:"data"`
}

func (h *Handler) openingBalance(w http.ResponseWriter, r *http.Request) {
	var req openingBalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tx, err := h.svc.OpeningBalance(r.Context(), req.ContaID, req.Valor, req.Data)
	if err != nil {
		if errors.Is(err, transaction.ErrInvalidAmount) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	h.notifier.Notify("transacoes", "create")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(tx)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
