package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/trapit/trapit/api/trapit" // Swagger docs
	"github.com/trapit/trapit/internal/trapit/metrics"
	"github.com/trapit/trapit/internal/trapit/service"
	"github.com/trapit/trapit/internal/trapit/store"
	"github.com/trapit/trapit/pkg/httpx"
	"github.com/trapit/trapit/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	AccountService  *service.AccountService
	RecoveryService *service.RecoveryService
	TrapService     *service.TrapService

	// Gatherer backs /metrics. The route is not registered when nil.
	Gatherer prometheus.Gatherer
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger, allowedOrigins []string) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORS(allowedOrigins),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerRecovery()
	r.registerTraps()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			TrapIT Backend API
//	@version		1.0.0
//	@description	Accounts, password recovery by emailed one-time code, and trap registration for the TrapIT pest-trap app.
//	@description
//	@description	Requests are unauthenticated JSON. Every error body is {"message": "..."}.
//
//	@host			localhost:3000
//	@BasePath		/
//
//	@schemes		http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AccountService: r.AccountService}

	r.Mux.HandleFunc("POST /api/auth/register", h.HandleRegister)
	r.Mux.HandleFunc("POST /api/auth/login", h.HandleLogin)
	r.Mux.HandleFunc("PUT /api/auth/update-name", h.HandleUpdateName)
	r.Mux.HandleFunc("POST /api/auth/change-password", h.HandleChangePassword)
}

func (r *Router) registerRecovery() {
	h := &RecoveryHandler{RecoveryService: r.RecoveryService}

	r.Mux.HandleFunc("POST /api/auth/forgot-password/send-otp", h.HandleSendOTP)
	r.Mux.HandleFunc("POST /api/auth/forgot-password/verify-otp", h.HandleVerifyOTP)
	r.Mux.HandleFunc("POST /api/auth/forgot-password/reset-password", h.HandleResetPassword)
}

func (r *Router) registerTraps() {
	h := &TrapsHandler{TrapService: r.TrapService}

	r.Mux.HandleFunc("POST /api/traps", h.HandleCreate)
	r.Mux.HandleFunc("GET /api/traps/user/{email}", h.HandleList)
	r.Mux.HandleFunc("PUT /api/traps/{trapId}/status", h.HandleUpdateStatus)
	r.Mux.HandleFunc("DELETE /api/traps/{trapId}", h.HandleDelete)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /{$}", RootHandler())
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))

	if r.Gatherer != nil {
		r.Mux.Handle("GET /metrics", metrics.Handler(r.Gatherer))
	}
}
