package vehicle

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/gfmartins/revenda/internal/vehicle"
)

// Notifier fans out change events to connected clients.
type Notifier interface {
	Notify(tabela, acao string)
}

type Handler struct {
	svc      *vehicle.Service
	notifier Notifier
}

func NewHandler(svc *vehicle.Service, notifier Notifier) *Handler {
	return &Handler{svc: svc, notifier: notifier}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Patch("/{id}/status", h.updateStatus)
	r.Delete("/{id}", h.delete)
}

// PublicRoutes exposes the storefront listing without authentication.
func (h *Handler) PublicRoutes(r chi.Router) {
	r.Get("/", h.listAvailable)
}

type vehicleResponse struct {
	ID         uuid.UUID      `json:"id"`
	Placa      string         `json:"placa"`
	Marca      string         `json:"marca"`
	Modelo     string         `json:"modelo"`
	Ano        int            `json:"ano"`
	Cor        string         `json:"cor"`
	Km         int            `json:"km"`
	Custo      int64          `json:"custo"`
	PrecoVenda int64          `json:"preco_venda"`
	Status     vehicle.Status `json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  *time.Time     `json:"updated_at,omitempty"`
}

func toResponse(v *vehicle.Vehicle) vehicleResponse {
	return vehicleResponse{
		ID:         v.ID,
		Placa:      v.Placa,
		Marca:      v.Marca,
		Modelo:     v.Modelo,
		Ano:        v.Ano,
		Cor:        v.Cor,
		Km:         v.Km,
		Custo:      v.Custo,
		PrecoVenda: v.PrecoVenda,
		Status:     v.Status,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
}

// publicResponse omits the acquisition cost: the storefront must never leak
// what the dealership paid.
type publicResponse struct {
	ID         uuid.UUID `json:"id"`
	Marca      string    `json:"marca"`
	Modelo     string    `json:"modelo"`
	Ano        int       `json:"ano"`
	Cor        string    `json:"cor"`
	Km         int       `json:"km"`
	PrecoVenda int64     `json:"preco_venda"`
}

type createVehicleRequest struct {
	Placa      string `json:"placa"`
	Marca      string `json:"marca"`
	Modelo     string `json:"modelo"`
	Ano        int    `json:"ano"`
	Cor        string `json:"cor"`
	Km         int    `json:"km"`
	Custo      int64  `json:"custo"`
	PrecoVenda int64  `json:"preco_venda"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	v, err := h.svc.Create(r.Context(), vehicle.CreateParams{
		Placa:      req.Placa,
		Marca:      req.Marca,
		Modelo:     req.Modelo,
		Ano:        req.Ano,
		Cor:        req.Cor,
		Km:         req.Km,
		Custo:      req.Custo,
		PrecoVenda: req.PrecoVenda,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.notifier.Notify("veiculos", "create")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(v)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := vehicle.ListFilter{
		Busca: r.URL.Query().Get("busca"),
	}

	if s := r.URL.Query().Get("status"); s != "" {
		status := vehicle.Status(s)
		filter.Status = &status
	}

	vehicles, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]vehicleResponse, len(vehicles))
	for i, v := range vehicles {
		resp[i] = toResponse(v)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) listAvailable(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.svc.ListAvailable(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]publicResponse, len(vehicles))
	for i, v := range vehicles {
		resp[i] = publicResponse{
			ID:         v.ID,
			Marca:      v.Marca,
			Modelo:     v.Modelo,
			Ano:        v.Ano,
			Cor:        v.Cor,
			Km:         v.Km,
			PrecoVenda: v.PrecoVenda,
		}
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

	v, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, vehicle.ErrNotFound) {
			http.Error(w, "vehicle not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(v)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateVehicleRequest struct {
	Placa      *string `json:"placa,omitempty"`
	Marca      *string `json:"marca,omitempty"`
	Modelo     *string `json:"modelo,omitempty"`
	Ano        *int    `json:"ano,omitempty"`
	Cor        *string `json:"cor,omitempty"`
	Km         *int    `json:"km,omitempty"`
	Custo      *int64  `json:"custo,omitempty"`
	PrecoVenda *int64  `json:"preco_venda,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	v, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, vehicle.ErrNotFound) {
			http.Error(w, "vehicle not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.Placa != nil {
		v.Placa = *req.Placa
	}

	if req.Marca != nil {
		v.Marca = *req.Marca
	}

	if req.Modelo != nil {
		v.Modelo = *req.Modelo
	}

	if req.Ano != nil {
		v.Ano = *req.Ano
	}

	if req.Cor != nil {
		v.Cor = *req.Cor
	}

	if req.Km != nil {
		v.Km = *req.Km
	}

	if req.Custo != nil {
		v.Custo = *req.Custo
	}

	if req.PrecoVenda != nil {
		v.PrecoVenda = *req.PrecoVenda
	}

	if err := h.svc.Update(r.Context(), v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.notifier.Notify("veiculos", "update")

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(v)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateStatusRequest struct {
	Status vehicle.Status `json:"status"`
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.UpdateStatus(r.Context(), id, req.Status); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.notifier.Notify("veiculos", "update")

	w.WriteHeader(http.StatusNoContent)
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

	h.notifier.Notify("veiculos", "delete")

	w.WriteHeader(http.StatusNoContent)
}
