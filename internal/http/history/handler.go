package history

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/gfmartins/revenda/internal/history"
)

type Handler struct {
	svc *history.Service
}

func NewHandler(svc *history.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/totais", h.totals)
	r.Get("/export.csv", h.exportCSV)
}

type entryResponse struct {
	ID            string                `json:"id"`
	Data          time.Time             `json:"data"`
	TipoMovimento history.TipoMovimento `json:"tipo_movimento"`
	Descricao     string                `json:"descricao"`
	Valor         int64                 `json:"valor"`
	ValorExibicao int64                 `json:"valor_exibicao"`
	Status        history.Status        `json:"status"`
	Origem        history.Origem        `json:"origem"`
	Parceiro      string                `json:"parceiro,omitempty"`
	Conta         string                `json:"conta,omitempty"`
	PedidoRef     string                `json:"pedido_ref,omitempty"`
	PedidoID      *uuid.UUID            `json:"pedido_id,omitempty"`
	Fonte         history.Fonte         `json:"fonte"`
	Emissao       *time.Time            `json:"emissao,omitempty"`
	ValorPago     int64                 `json:"valor_pago,omitempty"`
	ValorRestante int64                 `json:"valor_restante,omitempty"`
	Parcela       string                `json:"parcela,omitempty"`
	TituloID      *uuid.UUID            `json:"titulo_id,omitempty"`
}

type pageResponse struct {
	Entries    []entryResponse `json:"entries"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	TotalPages int             `json:"total_pages"`
}

func toEntryResponse(e *history.Entry) entryResponse {
	return entryResponse{
		ID:            e.ID,
		Data:          e.Data,
		TipoMovimento: e.TipoMovimento,
		Descricao:     e.Descricao,
		Valor:         e.Valor,
		ValorExibicao: e.ValorExibicao(),
		Status:        e.Status,
		Origem:        e.Origem,
		Parceiro:      e.Parceiro,
		Conta:         e.Conta,
		PedidoRef:     e.PedidoRef,
		PedidoID:      e.PedidoID,
		Fonte:         e.Fonte,
		Emissao:       e.Emissao,
		ValorPago:     e.ValorPago,
		ValorRestante: e.ValorRestante,
		Parcela:       e.Parcela,
		TituloID:      e.TituloID,
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := parseFilter(r)

	page, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := pageResponse{
		Entries:    make([]entryResponse, len(page.Entries)),
		Total:      page.Total,
		Page:       page.Page,
		TotalPages: page.TotalPages,
	}
	for i := range page.Entries {
		resp.Entries[i] = toEntryResponse(&page.Entries[i])
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type totalsResponse struct {
	EntradasRealizadas int64 `json:"entradas_realizadas"`
	SaidasRealizadas   int64 `json:"saidas_realizadas"`
	APagarPendente     int64 `json:"a_pagar_pendente"`
	AReceberPendente   int64 `json:"a_receber_pendente"`
	SaldoPeriodo       int64 `json:"saldo_periodo"`
}

func (h *Handler) totals(w http.ResponseWriter, r *http.Request) {
	inicio := parseDate(r, "data_inicio")
	fim := parseDate(r, "data_fim")

	totals, err := h.svc.Totals(r.Context(), inicio, fim)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(totalsResponse{
		EntradasRealizadas: totals.EntradasRealizadas,
		SaidasRealizadas:   totals.SaidasRealizadas,
		APagarPendente:     totals.APagarPendente,
		AReceberPendente:   totals.AReceberPendente,
		SaldoPeriodo:       totals.SaldoPeriodo,
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// exportCSV streams the whole filtered feed, ignoring pagination: an export
// is always complete.
func (h *Handler) exportCSV(w http.ResponseWriter, r *http.Request) {
	filter := parseFilter(r)
	filter.Page = 1
	filter.PageSize = int(^uint(0) >> 1)

	page, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("historico_%s.csv", time.Now().Format("20060102"))

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := history.WriteCSV(w, page.Entries); err != nil {
		slog.Error("failed to write csv export", "error", err)
	}
}

func parseFilter(r *http.Request) history.Filter {
	filter := history.Filter{
		DataInicio: parseDate(r, "data_inicio"),
		DataFim:    parseDate(r, "data_fim"),
		Busca:      r.URL.Query().Get("busca"),
	}

	if s := r.URL.Query().Get("tipo_movimento"); s != "" {
		movimento := history.TipoMovimento(s)
		filter.TipoMovimento = &movimento
	}

	if s := r.URL.Query().Get("status"); s != "" {
		status := history.Status(s)
		filter.Status = &status
	}

	if s := r.URL.Query().Get("origem"); s != "" {
		origem := history.Origem(s)
		filter.Origem = &origem
	}

	if s := r.URL.Query().Get("page"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			filter.Page = n
		}
	}

	if s := r.URL.Query().Get("page_size"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			filter.PageSize = n
		}
	}

	return filter
}

func parseDate(r *http.Request, param string) *time.Time {
	s := r.URL.Query().Get(param)
	if s == "" {
		return nil
	}

	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil
	}

	return &t
}
