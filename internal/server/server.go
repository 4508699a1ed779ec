// Package server is the HTTP front end of the tutor: it decodes the
// session cookie and form, hands them to tutor.Tutor and renders or
// redirects according to the outcome.
package server

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abhisek/fractiz/internal/metrics"
	"github.com/abhisek/fractiz/internal/session"
	"github.com/abhisek/fractiz/internal/store"
	"github.com/abhisek/fractiz/internal/tutor"
)

//go:embed templates/*.html
var templateFS embed.FS

// eventTimeout bounds each event-log write.
const eventTimeout = 2 * time.Second

// Options configures a Server.
type Options struct {
	Tutor *tutor.Tutor
	Codec *session.Codec

	// Events receives graded answers and resets. Defaults to store.NopRepo.
	Events store.EventRepo

	// Metrics enables /metrics and request instrumentation when set.
	Metrics *metrics.Metrics

	// Logger defaults to zap.L().
	Logger *zap.Logger

	CookieName   string
	SecureCookie bool

	// RateLimit is the number of POSTs allowed per client IP per minute.
	// Zero disables limiting.
	RateLimit int
}

// Server serves the tutor over HTTP.
type Server struct {
	opts    Options
	log     *zap.Logger
	limiter *ipLimiter
	router  *gin.Engine
}

// New builds the server and its routes.
func New(opts Options) (*Server, error) {
	if opts.Tutor == nil || opts.Codec == nil {
		return nil, errors.New("server: tutor and codec are required")
	}
	if opts.Events == nil {
		opts.Events = store.NopRepo{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.L()
	}
	if opts.CookieName == "" {
		opts.CookieName = "fractiz_session"
	}

	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	s := &Server{opts: opts, log: opts.Logger}
	if opts.RateLimit > 0 {
		s.limiter = newIPLimiter(opts.RateLimit)
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(gin.Recovery(), requestLogger(s.log), secureHeaders())
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware())
		r.GET("/metrics", opts.Metrics.Handler())
	}
	r.GET("/healthz", s.handleHealth)

	index := []gin.HandlerFunc{s.handleIndex}
	if s.limiter != nil {
		index = append([]gin.HandlerFunc{postRateLimit(s.limiter)}, index...)
	}
	r.GET("/", index...)
	r.POST("/", index...)

	s.router = r
	return s, nil
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.log.Info("server stopped")
	return nil
}

func (s *Server) handleIndex(c *gin.Context) {
	state := s.loadSession(c)

	req := tutor.Request{
		Action: tutor.ActionShow,
		Level:  c.Query("level"),
		Index:  c.Query("i"),
	}
	if c.Request.Method == http.MethodPost {
		req.Action = tutor.ActionFromNav(c.PostForm("nav"))
		req.Answer = c.PostForm("answer")
	}

	out := s.opts.Tutor.Handle(req, state)
	s.record(c.Request.Context(), state, out)
	s.saveSession(c, out.State)

	if out.Redirect != nil {
		c.Redirect(http.StatusFound, out.Redirect.URL())
		return
	}
	c.HTML(http.StatusOK, "index.html", out.View)
}

func (s *Server) handleHealth(c *gin.Context) {
	cat := s.opts.Tutor.Catalog()
	status := "ok"
	if cat.Empty() {
		status = "degraded"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    status,
		"exercises": cat.Len(),
		"error":     s.opts.Tutor.LoadError(),
	})
}

// loadSession decodes the session cookie. A missing or invalid cookie
// starts a fresh session.
func (s *Server) loadSession(c *gin.Context) session.State {
	raw, err := c.Cookie(s.opts.CookieName)
	if err != nil || raw == "" {
		s.observeSession("new")
		return session.New()
	}
	state, err := s.opts.Codec.Decode(raw)
	if err != nil {
		s.log.Warn("invalid session cookie, starting fresh", zap.Error(err), zap.String("client_ip", c.ClientIP()))
		s.observeSession("invalid")
		return session.New()
	}
	s.observeSession("valid")
	return state
}

func (s *Server) saveSession(c *gin.Context, state session.State) {
	token, err := s.opts.Codec.Encode(state)
	if err != nil {
		s.log.Error("encode session", zap.Error(err))
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.opts.CookieName, token, 0, "/", "", s.opts.SecureCookie, true)
}

func (s *Server) observeSession(outcome string) {
	if s.opts.Metrics != nil {
		s.opts.Metrics.ObserveSession(outcome)
	}
}

// record writes graded answers and resets to the event log and metrics.
// Failures are logged and never change the response.
func (s *Server) record(ctx context.Context, before session.State, out tutor.Outcome) {
	if out.Graded == nil && !out.Reset {
		return
	}
	if m := s.opts.Metrics; m != nil {
		if g := out.Graded; g != nil {
			m.ObserveAnswer(string(g.Category), string(g.Exercise.Level))
		}
		if out.Reset {
			m.ObserveReset()
		}
	}
	if g := out.Graded; g != nil {
		s.log.Debug("answer graded",
			zap.String("session", out.State.ID),
			zap.String("exercise", g.Exercise.Name),
			zap.String("category", string(g.Category)),
			zap.Bool("correct", g.Correct))
	}

	ctx, cancel := context.WithTimeout(ctx, eventTimeout)
	defer cancel()
	if err := tutor.Record(ctx, s.opts.Events, before, out); err != nil {
		s.log.Error("record events", zap.Error(err), zap.String("session", out.State.ID))
	}
}
