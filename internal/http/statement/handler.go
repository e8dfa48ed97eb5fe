package statement

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/gfmartins/revenda/internal/statement"
)

// maxUploadSize bounds statement uploads; bank exports are small files.
const maxUploadSize = 10 << 20

type Notifier interface {
	Notify(tabela, acao string)
}

type Handler struct {
	svc      *statement.Service
	notifier Notifier
}

func NewHandler(svc *statement.Service, notifier Notifier) *Handler {
	return &Handler{svc: svc, notifier: notifier}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.preview)
	r.Post("/confirmar", h.confirm)
}

type rowDTO struct {
	Data      time.Time `json:"data"`
	Descricao string    `json:"descricao"`
	Valor     int64     `json:"valor"`
	Entrada   bool      `json:"entrada"`
	Sugestao  string    `json:"sugestao,omitempty"`
}

type previewResponse struct {
	Rows []rowDTO `json:"rows"`
}

func (h *Handler) preview(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	rows, err := h.svc.Preview(r.Context(), file)
	if err != nil {
		if errors.Is(err, statement.ErrUnknownFormat) || errors.Is(err, statement.ErrEmptyFile) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	resp := previewResponse{Rows: make([]rowDTO, len(rows))}
	for i, row := range rows {
		resp.Rows[i] = rowDTO{
			Data:      row.Data,
			Descricao: row.Descricao,
			Valor:     row.Valor,
			Entrada:   row.Entrada,
			Sugestao:  row.Sugestao,
		}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type confirmRequest struct {
	ContaID uuid.UUID `json:"conta_id"`
	Rows    []rowDTO  `json:"rows"`
}

type confirmResponse struct {
	Imported int `json:"imported"`
}

func (h *Handler) confirm(w http.ResponseWriter, r *http.Request) {
	var req confirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.ContaID == uuid.Nil {
		http.Error(w, "conta_id is required", http.StatusBadRequest)
		return
	}

	rows := make([]statement.Row, len(req.Rows))
	for i, dto := range req.Rows {
		rows[i] = statement.Row{
			Data:      dto.Data,
			Descricao: dto.Descricao,
			Valor:     dto.Valor,
			Entrada:   dto.Entrada,
		}
	}

	created, err := h.svc.Import(r.Context(), req.ContaID, rows)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.notifier.Notify("transacoes", "create")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(confirmResponse{Imported: len(created)}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
