package category

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/gfmartins/revenda/internal/category"
)

type Notifier interface {
	Notify(tabela, acao string)
}

type Handler struct {
	svc      *category.Service
	notifier Notifier
}

func NewHandler(svc *category.Service, notifier Notifier) *Handler {
	return &Handler{svc: svc, notifier: notifier}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Delete("/{id}", h.delete)
}

type categoryResponse struct {
	ID        uuid.UUID         `json:"id"`
	Nome      string            `json:"nome"`
	Natureza  category.Natureza `json:"natureza"`
	CreatedAt time.Time         `json:"created_at"`
}

type createCategoryRequest struct {
	Nome     string            `json:"nome"`
	Natureza category.Natureza `json:"natureza"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.svc.Create(r.Context(), req.Nome, req.Natureza)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.notifier.Notify("categorias", "create")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(categoryResponse{
		ID:        c.ID,
		Nome:      c.Nome,
		Natureza:  c.Natureza,
		CreatedAt: c.CreatedAt,
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]categoryResponse, len(categories))
	for i, c := range categories {
		resp[i] = categoryResponse{
			ID:        c.ID,
			Nome:      c.Nome,
			Natureza:  c.Natureza,
			CreatedAt: c.CreatedAt,
		}
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

	h.notifier.Notify("categorias", "delete")

	w.WriteHeader(http.StatusNoContent)
}
