package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/placemate/placemate/internal/access"
	"github.com/placemate/placemate/internal/logging"
	"github.com/placemate/placemate/internal/server/data"
	"github.com/placemate/placemate/internal/server/email"
	"github.com/placemate/placemate/metrics"
)

type Options struct {
	// DBFile is the path of the sqlite database. Ignored when
	// DBConnectionString selects postgres.
	DBFile             string
	DBConnectionString string

	// BaseURL is the externally reachable address of this server, used to
	// build the approve and deny links embedded in confirmation emails.
	BaseURL string

	// SessionDuration is how long an organization access key stays valid.
	SessionDuration time.Duration

	EmailFromAddress string
	EmailFromName    string
	SendgridApiKey   string
	// EmailTestMode captures outgoing email in memory instead of sending it.
	EmailTestMode bool

	Addr ListenerOptions
}

type ListenerOptions struct {
	HTTP    string
	Metrics string
}

type Server struct {
	options         Options
	db              *gorm.DB
	Addrs           Addrs
	routines        []routine
	metricsRegistry *prometheus.Registry
}

type Addrs struct {
	HTTP    net.Addr
	Metrics net.Addr
}

type routine struct {
	run  func() error
	stop func()
}

// New creates a Server, and initializes it. The returned Server is ready to
// run.
func New(options Options) (*Server, error) {
	if options.SessionDuration == 0 {
		options.SessionDuration = 12 * time.Hour
	}
	if options.BaseURL == "" {
		options.BaseURL = "http://" + options.Addr.HTTP
	}

	server := &Server{options: options}

	driver, err := getDatabaseDriver(options)
	if err != nil {
		return nil, fmt.Errorf("database driver: %w", err)
	}

	db, err := data.NewDB(driver)
	if err != nil {
		return nil, fmt.Errorf("db: %w", err)
	}
	server.db = db

	server.metricsRegistry = prometheus.NewRegistry()
	server.metricsRegistry.MustRegister(access.StaleAccountResets)

	configureEmail(options)

	if err := server.listen(); err != nil {
		return nil, fmt.Errorf("listening: %w", err)
	}

	return server, nil
}

// DB returns the database connection pool used by the server. It is
// primarily used by tests to create fixture data.
func (s *Server) DB() *gorm.DB {
	return s.db
}

// Run starts the server routines and blocks until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	group, ctx := errgroup.WithContext(ctx)

	for i := range s.routines {
		group.Go(s.routines[i].run)
	}

	logging.Infof("starting placemate server - http:%s metrics:%s", s.Addrs.HTTP, s.Addrs.Metrics)

	<-ctx.Done()
	for i := range s.routines {
		s.routines[i].stop()
	}

	err := group.Wait()

	if sqlDB, dbErr := s.db.DB(); dbErr == nil {
		if closeErr := sqlDB.Close(); closeErr != nil {
			logging.L.Warn().Err(closeErr).Msg("failed to close database connection")
		}
	}

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (s *Server) listen() error {
	router := s.GenerateRoutes(s.metricsRegistry)

	metricsServer := &http.Server{
		ReadHeaderTimeout: 30 * time.Second,
		ReadTimeout:       60 * time.Second,
		Addr:              s.options.Addr.Metrics,
		Handler:           metrics.NewHandler(s.metricsRegistry),
	}

	var err error
	s.Addrs.Metrics, err = s.setupServer(metricsServer)
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		ReadHeaderTimeout: 30 * time.Second,
		ReadTimeout:       60 * time.Second,
		Addr:              s.options.Addr.HTTP,
		Handler:           router,
	}
	s.Addrs.HTTP, err = s.setupServer(httpServer)
	if err != nil {
		return err
	}
	return nil
}

func (s *Server) setupServer(server *http.Server) (net.Addr, error) {
	if server.Addr == "" {
		server.Addr = "127.0.0.1:"
	}
	l, err := net.Listen("tcp", server.Addr)
	if err != nil {
		return nil, err
	}
	logging.Infof("listening on %s", l.Addr().String())

	s.routines = append(s.routines, routine{
		run: func() error {
			err := server.Serve(l)
			if !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
		stop: func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			_ = server.Shutdown(shutdownCtx)
		},
	})
	return l.Addr(), nil
}

func getDatabaseDriver(options Options) (gorm.Dialector, error) {
	if options.DBConnectionString != "" {
		return data.NewPostgresDriver(options.DBConnectionString)
	}
	return data.NewSQLiteDriver(options.DBFile)
}

func configureEmail(options Options) {
	if len(options.EmailFromAddress) > 0 {
		email.FromAddress = options.EmailFromAddress
	}
	if len(options.EmailFromName) > 0 {
		email.FromName = options.EmailFromName
	}
	if len(options.SendgridApiKey) > 0 {
		email.SendgridAPIKey = options.SendgridApiKey
	}
	if options.EmailTestMode {
		email.TestMode = true
	}
}
