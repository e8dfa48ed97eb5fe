package matching

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gfmartins/revenda/internal/matching"
)

type Handler struct {
	svc *matching.Service
}

func NewHandler(svc *matching.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/sugestao", h.suggest)
	r.Post("/", h.learn)
}

type suggestResponse struct {
	Descricao string `json:"descricao"`
	Sugestao  string `json:"sugestao"`
}

func (h *Handler) suggest(w http.ResponseWriter, r *http.Request) {
	descricao := r.URL.Query().Get("descricao")
	if descricao == "" {
		http.Error(w, "descricao query parameter is required", http.StatusBadRequest)
		return
	}

	sugestao, err := h.svc.Suggest(r.Context(), descricao)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(suggestResponse{
		Descricao: descricao,
		Sugestao:  sugestao,
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type learnRequest struct {
	Padrao             string `json:"padrao"`
	DescricaoPreferida string `json:"descricao_preferida"`
}

func (h *Handler) learn(w http.ResponseWriter, r *http.Request) {
	var req learnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.Learn(r.Context(), req.Padrao, req.DescricaoPreferida); err != nil {
		if errors.Is(err, matching.ErrEmptyPattern) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusCreated)
}
