package expense

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/gfmartins/revenda/internal/expense"
)

type Notifier interface {
	Notify(tabela, acao string)
}

type Handler struct {
	svc      *expense.Service
	notifier Notifier
}

func NewHandler(svc *expense.Service, notifier Notifier) *Handler {
	return &Handler{svc: svc, notifier: notifier}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/veiculo/{veiculoID}", h.listByVehicle)
	r.Delete("/{id}", h.delete)
}

type expenseResponse struct {
	ID          uuid.UUID  `json:"id"`
	VeiculoID   uuid.UUID  `json:"veiculo_id"`
	Descricao   string     `json:"descricao"`
	Valor       int64      `json:"valor"`
	Data        time.Time  `json:"data"`
	CategoriaID *uuid.UUID `json:"categoria_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func toResponse(e *expense.VehicleExpense) expenseResponse {
	return expenseResponse{
		ID:          e.ID,
		VeiculoID:   e.VeiculoID,
		Descricao:   e.Descricao,
		Valor:       e.Valor,
		Data:        e.Data,
		CategoriaID: e.CategoriaID,
		CreatedAt:   e.CreatedAt,
	}
}

type createExpenseRequest struct {
	VeiculoID   uuid.UUID  `json:"veiculo_id"`
	Descricao   string     `json:"descricao"`
	Valor       int64      `json:"valor"`
	Data        time.Time  `json:"data"`
	Vencimento  time.Time  `json:"vencimento"`
	ParceiroID  *uuid.UUID `json:"parceiro_id,omitempty"`
	CategoriaID *uuid.UUID `json:"categoria_id,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	e, err := h.svc.Create(r.Context(), expense.CreateParams{
		VeiculoID:   req.VeiculoID,
		Descricao:   req.Descricao,
		Valor:       req.Valor,
		Data:        req.Data,
		Vencimento:  req.Vencimento,
		ParceiroID:  req.ParceiroID,
		CategoriaID: req.CategoriaID,
	})
	if err != nil {
		if errors.Is(err, expense.ErrInvalidAmount) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	h.notifier.Notify("despesas_veiculo", "create")
	h.notifier.Notify("titulos", "create")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(e)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) listByVehicle(w http.ResponseWriter, r *http.Request) {
	veiculoID, err := uuid.Parse(chi.URLParam(r, "veiculoID"))
	if err != nil {
		http.Error(w, "invalid vehicle id", http.StatusBadRequest)
		return
	}

	expenses, err := h.svc.ListByVehicle(r.Context(), veiculoID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]expenseResponse, len(expenses))
	for i, e := range expenses {
		resp[i] = toResponse(e)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
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

	h.notifier.Notify("despesas_veiculo", "delete")

	w.WriteHeader(http.StatusNoContent)
}
