package api

import (
	"net/http"

	"github.com/beka-birhanu/vinom-originshift/api/i"
	"github.com/gin-gonic/gin"
)

// Router manages the HTTP server and its controllers.
type Router struct {
	addr           string
	baseURL        string
	controllers    []i.Controller
	metricsHandler http.Handler
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr           string         // Address to listen on
	BaseURL        string         // Base URL for API routes
	Controllers    []i.Controller // Controllers mounted under BaseURL/v1
	MetricsHandler http.Handler   // Served at /metrics when set
}

// NewRouter creates a new Router instance with the given configuration.
func NewRouter(config Config) *Router {
	return &Router{
		addr:           config.Addr,
		baseURL:        config.BaseURL,
		controllers:    config.Controllers,
		metricsHandler: config.MetricsHandler,
	}
}

// Handler builds the gin engine with every controller mounted under
// <baseURL>/v1.
func (r *Router) Handler() *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	if r.metricsHandler != nil {
		router.GET("/metrics", gin.WrapH(r.metricsHandler))
	}

	api := router.Group(r.baseURL)
	{
		v1 := api.Group("/v1")
		for _, c := range r.controllers {
			c.Register(v1)
		}
	}

	return router
}

// Run starts the HTTP server.
func (r *Router) Run() error {
	gin.ForceConsoleColor()
	return r.Handler().Run(r.addr)
}
