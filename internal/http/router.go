package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/gfmartins/revenda/internal/auth"
	accounth "github.com/gfmartins/revenda/internal/http/account"
	authh "github.com/gfmartins/revenda/internal/http/auth"
	categoryh "github.com/gfmartins/revenda/internal/http/category"
	expenseh "github.com/gfmartins/revenda/internal/http/expense"
	historyh "github.com/gfmartins/revenda/internal/http/history"
	matchingh "github.com/gfmartins/revenda/internal/http/matching"
	orderh "github.com/gfmartins/revenda/internal/http/order"
	partnerh "github.com/gfmartins/revenda/internal/http/partner"
	statementh "github.com/gfmartins/revenda/internal/http/statement"
	titleh "github.com/gfmartins/revenda/internal/http/title"
	transactionh "github.com/gfmartins/revenda/internal/http/transaction"
	vehicleh "github.com/gfmartins/revenda/internal/http/vehicle"
	"github.com/gfmartins/revenda/internal/realtime"
)

type Handlers struct {
	Auth         *authh.Handler
	Vehicles     *vehicleh.Handler
	Partners     *partnerh.Handler
	Categories   *categoryh.Handler
	Accounts     *accounth.Handler
	Transactions *transactionh.Handler
	Titles       *titleh.Handler
	Orders       *orderh.Handler
	Expenses     *expenseh.Handler
	History      *historyh.Handler
	Statement    *statementh.Handler
	Matching     *matchingh.Handler
}

// New assembles the full route tree: the authenticated back office under
// /api/v1, the open storefront under /public/v1 and the login endpoint.
func New(authSvc *auth.Service, hub *realtime.Hub, allowedOrigins []string, h Handlers) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Route("/auth", func(r chi.Router) {
		r.Use(corsMiddleware(allowedOrigins))
		r.Use(middleware.AllowContentType("application/json"))
		h.Auth.Routes(r)
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(corsMiddleware(allowedOrigins))
		r.Use(authh.Middleware(authSvc))

		r.Get("/ws", hub.ServeWS)

		r.Route("/veiculos", jsonRoutes(h.Vehicles.Routes))
		r.Route("/parceiros", jsonRoutes(h.Partners.Routes))
		r.Route("/categorias", jsonRoutes(h.Categories.Routes))
		r.Route("/contas", jsonRoutes(h.Accounts.Routes))
		r.Route("/transacoes", jsonRoutes(h.Transactions.Routes))
		r.Route("/titulos", jsonRoutes(h.Titles.Routes))
		r.Route("/pedidos", jsonRoutes(h.Orders.Routes))
		r.Route("/despesas", jsonRoutes(h.Expenses.Routes))
		r.Route("/historico", h.History.Routes)
		r.Route("/importacao", h.Statement.Routes)
		r.Route("/matching", jsonRoutes(h.Matching.Routes))
	})

	// The storefront is world-readable by design.
	router.Route("/public/v1", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{AllowedOrigins: []string{"*"}, AllowedMethods: []string{http.MethodGet}}))
		r.Route("/veiculos", h.Vehicles.PublicRoutes)
	})

	return router
}

func jsonRoutes(routes func(chi.Router)) func(chi.Router) {
	return func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		routes(r)
	}
}

func corsMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})
}
