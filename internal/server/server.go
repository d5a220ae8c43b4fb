package server

import (
	"context"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/passkeyhq/delegate-relay/internal/config"
	"github.com/passkeyhq/delegate-relay/internal/events"
	"github.com/passkeyhq/delegate-relay/internal/logger"
	"github.com/passkeyhq/delegate-relay/internal/middleware"
	"github.com/passkeyhq/delegate-relay/internal/types"
	"go.uber.org/zap"
)

// RelaySubmitter is the submission capability the gateway fronts.
type RelaySubmitter interface {
	Submit(ctx context.Context, req *types.RelayDelegateRequest, hooks *events.Hooks) (*types.RelayDelegateResponse, error)
}

// Server is the relay gateway: it accepts signed delegate actions over HTTP
// and streams the submission lifecycle back to the caller as Server-Sent
// Events, one event per ActionSSEEvent.
type Server struct {
	engine    *gin.Engine
	submitter RelaySubmitter
	cfg       *config.Config
}

// New wires up the gateway routes and middleware.
func New(cfg *config.Config, submitter RelaySubmitter) *Server {
	if cfg.Stage == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.CorrelationID())
	engine.Use(configureCORS(cfg.AllowedOrigins))

	s := &Server{
		engine:    engine,
		submitter: submitter,
		cfg:       cfg,
	}

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.POST("/v1/relay", s.relayDelegate)

	return s
}

// Handler exposes the underlying handler for an http.Server.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func configureCORS(allowedOrigins []string) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	if len(allowedOrigins) > 0 {
		corsConfig.AllowOrigins = allowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, middleware.CorrelationIDHeader)
	return cors.New(corsConfig)
}

// relayDelegate submits a signed delegate upstream while streaming lifecycle
// events to the client. The terminal "result" event carries the normalized
// relayer response, or the transport error when no response was obtained.
func (s *Server) relayDelegate(c *gin.Context) {
	var req types.RelayDelegateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid relay request: " + err.Error()})
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	hooks := &events.Hooks{
		OnEvent: func(ev events.ActionSSEEvent) {
			c.SSEvent("action", ev)
			c.Writer.Flush()
		},
	}

	resp, err := s.submitter.Submit(c.Request.Context(), &req, hooks)
	if err != nil {
		if logger.Log != nil {
			logger.Error("relay submission failed",
				zap.String("correlation_id", middleware.GetCorrelationID(c)),
				zap.String("hash", req.Hash),
				zap.Error(err))
		}
		c.SSEvent("result", gin.H{"ok": false, "error": err.Error()})
		c.Writer.Flush()
		return
	}

	c.SSEvent("result", resp)
	c.Writer.Flush()
}
