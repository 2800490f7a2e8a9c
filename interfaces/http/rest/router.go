package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"shoplist-backend/application/commands/bus"
	querybus "shoplist-backend/application/queries/bus"
	"shoplist-backend/infrastructure/config"
	"shoplist-backend/interfaces/http/rest/handlers"
	"shoplist-backend/interfaces/http/rest/middleware"
	"shoplist-backend/pkg/auth"
	"shoplist-backend/pkg/observability"
)

// Router creates and configures the HTTP router
type Router struct {
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	resolver   auth.PrincipalResolver
	cfg        *config.Config
	metrics    *observability.Metrics
	logger     *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	resolver auth.PrincipalResolver,
	cfg *config.Config,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *Router {
	return &Router{
		commandBus: commandBus,
		queryBus:   queryBus,
		resolver:   resolver,
		cfg:        cfg,
		metrics:    metrics,
		logger:     logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))
	router.Use(middleware.RequestMetrics(rt.metrics))

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:3000"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID", "X-User-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	listHandler := handlers.NewListHandler(rt.commandBus, rt.queryBus, rt.cfg.Awid, rt.logger)
	itemHandler := handlers.NewItemHandler(rt.commandBus, rt.queryBus, rt.cfg.Awid, rt.logger)

	router.Route("/list", func(r chi.Router) {
		r.Use(middleware.Authenticate(rt.resolver, rt.cfg.Awid, rt.logger))

		r.Post("/create", listHandler.Create)
		r.Get("/get", listHandler.Get)
		r.Get("/list", listHandler.List)
		r.Post("/update", listHandler.Update)
		r.Post("/updateArchived", listHandler.UpdateArchived)
		r.Post("/delete", listHandler.Delete)
		r.Post("/addMember", listHandler.AddMember)
		r.Post("/removeMember", listHandler.RemoveMember)
		r.Post("/leaveList", listHandler.LeaveList)
	})

	router.Route("/item", func(r chi.Router) {
		r.Use(middleware.Authenticate(rt.resolver, rt.cfg.Awid, rt.logger))

		r.Post("/add", itemHandler.Add)
		r.Post("/remove", itemHandler.Remove)
		r.Post("/resolve", itemHandler.Resolve)
		r.Get("/list", itemHandler.ListItems)
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
