// Package api wires HTTP controllers into a gin engine.
package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Controller registers its routes on a versioned group.
type Controller interface {
	Register(*gin.RouterGroup)
}

// Router manages the HTTP server and its controllers.
type Router struct {
	addr        string
	baseURL     string
	controllers []Controller
	log         *logrus.Logger
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr        string // Address to listen on
	BaseURL     string // Base URL for API routes
	Controllers []Controller
	Logger      *logrus.Logger
}

// NewRouter creates a new Router instance with the given configuration.
func NewRouter(config Config) *Router {
	if config.Logger == nil {
		config.Logger = logrus.StandardLogger()
	}
	return &Router{
		addr:        config.Addr,
		baseURL:     config.BaseURL,
		controllers: config.Controllers,
		log:         config.Logger,
	}
}

// Engine builds the gin engine with every controller mounted under
// <baseURL>/v1.
func (r *Router) Engine() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(r.log))

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
	r.log.WithField("addr", r.addr).Info("http server listening")
	return r.Engine().Run(r.addr)
}

// requestLogger logs one line per request through logrus.
func requestLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		entry := log.WithFields(logrus.Fields{
			"method":  ctx.Request.Method,
			"path":    ctx.Request.URL.Path,
			"status":  ctx.Writer.Status(),
			"latency": time.Since(start).String(),
		})
		if len(ctx.Errors) > 0 {
			entry.WithError(ctx.Errors.Last()).Warn("request failed")
			return
		}
		entry.Debug("request handled")
	}
}
