// Package web is the HTTP surface of the rashii server: the auth endpoints,
// the four CRUD resources, the stats endpoint, and the cron-triggered
// reminder dispatch.
package web

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rashii/rashii/internal/common"
	"github.com/rashii/rashii/internal/logging"
	"github.com/rashii/rashii/internal/server/config"
	"github.com/rashii/rashii/internal/server/services"
	"github.com/rashii/rashii/internal/server/users"
)

// Deps bundles everything the HTTP layer needs.
type Deps struct {
	Config   *config.Config
	Logger   logging.Logger
	Registry *users.Registry
	DB       *sql.DB

	Auth      *services.AuthService
	Promises  *services.PromiseService
	Reminders *services.ReminderService
	Credits   *services.CreditService
	Notes     *services.NoteService
	Stats     *services.StatsService
	Dispatch  *services.DispatchService
}

type Server struct {
	cfg      *config.Config
	logger   logging.Logger
	registry *users.Registry
	db       *sql.DB
	router   *gin.Engine

	auth      *services.AuthService
	promises  *services.PromiseService
	reminders *services.ReminderService
	credits   *services.CreditService
	notes     *services.NoteService
	stats     *services.StatsService
	dispatch  *services.DispatchService
}

func NewServer(deps Deps) *Server {
	if deps.Config.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:       deps.Config,
		logger:    deps.Logger.With("module", "web"),
		registry:  deps.Registry,
		db:        deps.DB,
		router:    gin.New(),
		auth:      deps.Auth,
		promises:  deps.Promises,
		reminders: deps.Reminders,
		credits:   deps.Credits,
		notes:     deps.Notes,
		stats:     deps.Stats,
		dispatch:  deps.Dispatch,
	}

	s.router.Use(gin.Recovery())
	s.registerRoutes()

	return s
}

func (s *Server) registerRoutes() {
	r := s.router

	r.POST("/auth", s.handleLogin)
	r.DELETE("/auth", s.handleLogout)

	r.GET("/stats", s.handleStats)
	r.GET("/health", s.handleHealth)
	r.GET("/cron/send-reminders", s.handleDispatch)

	auth := s.requireSession()

	// Reads are intentionally ungated; only mutations need a session.
	r.GET("/promises", s.listPromises)
	r.GET("/promises/:id", s.getPromise)
	r.POST("/promises", auth, s.createPromise)
	r.PATCH("/promises/:id", auth, s.updatePromise)
	r.DELETE("/promises/:id", auth, s.deletePromise)

	r.GET("/reminders", s.listReminders)
	r.POST("/reminders", auth, s.createReminder)
	r.PATCH("/reminders/:id", auth, s.updateReminder)
	r.DELETE("/reminders/:id", auth, s.deleteReminder)

	r.GET("/credits", s.listCredits)
	r.POST("/credits", auth, s.createCredit)
	r.PATCH("/credits/:id", auth, s.updateCredit)
	r.DELETE("/credits/:id", auth, s.deleteCredit)

	r.GET("/notes", s.listNotes)
	r.POST("/notes", auth, s.createNote)
	r.PATCH("/notes/:id", auth, s.updateNote)
	r.DELETE("/notes/:id", auth, s.deleteNote)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully
// within the configured timeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.EndpointAddr,
		Handler: s.router,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "err", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.cfg.EndpointAddr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// respondError maps service errors onto the small status taxonomy the
// client understands; everything unexpected becomes a logged 500 with a
// generic message.
func (s *Server) respondError(c *gin.Context, err error, genericMsg string) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, common.ErrorUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	case errors.Is(err, common.ErrorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	default:
		s.logger.Error(c.Request.Context(), genericMsg, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": genericMsg})
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	if err := s.db.PingContext(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.stats.Counts(c.Request.Context()))
}
