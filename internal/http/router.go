package http

import (
	"context"
	"log/slog"

	"github.com/geocoder89/employeehub/internal/config"
	"github.com/geocoder89/employeehub/internal/http/handlers"
	"github.com/geocoder89/employeehub/internal/http/middlewares"
	"github.com/geocoder89/employeehub/internal/observability"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Deps are the collaborators the router wires into handlers. Employees is required; the rest may be nil.
type Deps struct {
	Employees handlers.EmployeesStore
	Ping      func(context.Context) error
	Prom      *observability.Prom
	Gatherer  prometheus.Gatherer
}

func NewRouter(log *slog.Logger, cfg config.Config, deps Deps) *gin.Engine {
	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(cfg.ServiceName))
	r.Use(middlewares.RequestID())
	r.Use(middlewares.RequestLogger(log))
	if deps.Prom != nil {
		r.Use(deps.Prom.GinHandleMiddleware())
	}
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware(cfg.CORSAllowedOrigins))

	handlers.RegisterValidators()

	h := handlers.NewHealthHandler(deps.Ping)
	r.GET("/healthz", h.Healthz)
	r.GET("/readyz", h.Readyz)

	if deps.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	r.GET("/docs", handlers.SwaggerUI)
	r.GET("/docs/openapi.yaml", handlers.OpenAPISpec)

	employeesHandler := handlers.NewEmployeesHandler(deps.Employees, log, deps.Prom, cfg.ExposeInternalErrors)

	api := r.Group("/api")
	api.Use(middlewares.RequireJSON(), middlewares.MaxBodyBytes(cfg.MaxBodyBytes))
	{
		api.POST("/employees", employeesHandler.CreateEmployee)
		api.GET("/employees", employeesHandler.ListEmployees)
	}

	return r
}
