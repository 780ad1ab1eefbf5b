package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"fintrack/internal/core"
	applog "fintrack/internal/log"
	"fintrack/internal/metrics"
	"fintrack/internal/middleware/security"
	"fintrack/internal/middleware/trace"
)

// RecordService creates, lists and deletes incomes and expenses.
type RecordService interface {
	CreateIncome(ctx context.Context, in core.IncomeInput) (core.Income, error)
	ListIncomes(ctx context.Context) ([]core.Income, error)
	DeleteIncome(ctx context.Context, id string) error
	CreateExpense(ctx context.Context, in core.ExpenseInput) (core.Expense, error)
	ListExpenses(ctx context.Context) ([]core.Expense, error)
	DeleteExpense(ctx context.Context, id string) error
}

// DashboardReader produces the aggregated dashboard.
type DashboardReader interface {
	Summary(ctx context.Context) (core.DashboardSummary, error)
}

// Pinger reports whether the record store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Options configures NewServer. Zero values fall back to defaults.
type Options struct {
	Addr           string
	APIPrefix      string
	CORSOrigins    []string
	RequestTimeout time.Duration
	Logger         *applog.Logger
	// Metrics enables /metrics and request observation when non-nil.
	Metrics *metrics.Collector
}

const (
	defaultAPIPrefix      = "/api"
	defaultRequestTimeout = 10 * time.Second
	readyTimeout          = 2 * time.Second
)

type Server struct {
	http.Server
	records   RecordService
	dashboard DashboardReader
	store     Pinger
}

// NewServer configures routes and middleware, returning a ready-to-run http.Server.
func NewServer(opts Options, records RecordService, dashboard DashboardReader, store Pinger) *Server {
	if opts.APIPrefix == "" {
		opts.APIPrefix = defaultAPIPrefix
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = defaultRequestTimeout
	}
	if len(opts.CORSOrigins) == 0 {
		opts.CORSOrigins = []string{"*"}
	}
	if opts.Logger == nil {
		opts.Logger = applog.New(applog.DefaultConfig())
	}

	s := &Server{
		records:   records,
		dashboard: dashboard,
		store:     store,
	}

	var observer trace.Observer
	if opts.Metrics != nil {
		observer = opts.Metrics
	}

	r := chi.NewRouter()
	// trace wraps Recoverer so recovered panics are logged and counted as 500s.
	r.Use(trace.NewMiddleware(opts.Logger.WithComponent(applog.ComponentHTTP), observer).Middleware)
	r.Use(chimw.Recoverer)
	r.Use(security.NewCORS(opts.CORSOrigins).Middleware)
	r.Use(security.NewHeadersMiddleware(security.DefaultHeadersConfig()).Middleware)
	r.NotFound(handleNotFound)
	r.MethodNotAllowed(handleMethodNotAllowed)

	r.Get("/healthz", handleHealth)
	r.Get("/readyz", s.handleReady)
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}

	api := chi.NewRouter()
	api.Use(chimw.Timeout(opts.RequestTimeout))
	api.Use(applog.ComponentMiddleware(applog.ComponentRecords))
	api.NotFound(handleNotFound)
	api.MethodNotAllowed(handleMethodNotAllowed)

	api.Get("/", handleRoot)

	api.Post("/income", s.handleCreateIncome)
	api.Get("/income", s.handleListIncomes)
	api.Delete("/income/{id}", s.handleDeleteIncome)

	api.Post("/expense", s.handleCreateExpense)
	api.Get("/expense", s.handleListExpenses)
	api.Delete("/expense/{id}", s.handleDeleteExpense)

	api.Get("/dashboard", s.handleDashboard)

	r.Mount(opts.APIPrefix, api)

	s.Server = http.Server{
		Addr:              opts.Addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}
