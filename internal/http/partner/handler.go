package partner

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/gfmartins/revenda/internal/partner"
)

type Notifier interface {
	Notify(tabela, acao string)
}

type Handler struct {
	svc      *partner.Service
	notifier Notifier
}

func NewHandler(svc *partner.Service, notifier Notifier) *Handler {
	return &Handler{svc: svc, notifier: notifier}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type partnerResponse struct {
	ID           uuid.UUID    `json:"id"`
	Nome         string       `json:"nome"`
	CpfCnpj      string       `json:"cpf_cnpj"`
	Telefone     string       `json:"telefone"`
	Email        string       `json:"email"`
	Tipo         partner.Tipo `json:"tipo"`
	Participacao int          `json:"participacao"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    *time.Time   `json:"updated_at,omitempty"`
}

func toResponse(p *partner.Partner) partnerResponse {
	return partnerResponse{
		ID:           p.ID,
		Nome:         p.Nome,
		CpfCnpj:      p.CpfCnpj,
		Telefone:     p.Telefone,
		Email:        p.Email,
		Tipo:         p.Tipo,
		Participacao: p.Participacao,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

type createPartnerRequest struct {
	Nome         string       `json:"nome"`
	CpfCnpj      string       `json:"cpf_cnpj"`
	Telefone     string       `json:"telefone"`
	Email        string       `json:"email"`
	Tipo         partner.Tipo `json:"tipo"`
	Participacao int          `json:"participacao"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createPartnerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.Create(r.Context(), partner.CreateParams{
		Nome:         req.Nome,
		CpfCnpj:      req.CpfCnpj,
		Telefone:     req.Telefone,
		Email:        req.Email,
		Tipo:         req.Tipo,
		Participacao: req.Participacao,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.notifier.Notify("parceiros", "create")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := partner.ListFilter{}

	if s := r.URL.Query().Get("tipo"); s != "" {
		tipo := partner.Tipo(s)
		filter.Tipo = &tipo
	}

	partners, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]partnerResponse, len(partners))
	for i, p := range partners {
		resp[i] = toResponse(p)
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

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, partner.ErrNotFound) {
			http.Error(w, "partner not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updatePartnerRequest struct {
	Nome         *string       `json:"nome,omitempty"`
	CpfCnpj      *string       `json:"cpf_cnpj,omitempty"`
	Telefone     *string       `json:"telefone,omitempty"`
	Email        *string       `json:"email,omitempty"`
	Tipo         *partner.Tipo `json:"tipo,omitempty"`
	Participacao *int          `json:"participacao,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updatePartnerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, partner.ErrNotFound) {
			http.Error(w, "partner not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.Nome != nil {
		p.Nome = *req.Nome
	}

	if req.CpfCnpj != nil {
		p.CpfCnpj = *req.CpfCnpj
	}

	if req.Telefone != nil {
		p.Telefone = *req.Telefone
	}

	if req.Email != nil {
		p.Email = *req.Email
	}

	if req.Tipo != nil {
		p.Tipo = *req.Tipo
	}

	if req.Participacao != nil {
		p.Participacao = *req.Participacao
	}

	if err := h.svc.Update(r.Context(), p); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.notifier.Notify("parceiros", "update")

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(p)); err != nil {
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

	h.notifier.Notify("parceiros", "delete")

	w.WriteHeader(http.StatusNoContent)
}
