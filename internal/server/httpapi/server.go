// Package httpapi exposes the sighting API over HTTP/JSON using gorilla/mux.
//
// Routes (all under /api):
//
//	POST /users/signup    register, body {"username","password"}
//	POST /users/login     login, responds {"token"}
//	GET  /animals/all     sighting names, bearer token required
//	GET  /animals/{name}  one sighting, bearer token required
//
// Photos can additionally be served from a local directory under /photos/.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/animalspotter/internal/logging"
	"github.com/dmitrijs2005/animalspotter/internal/server/models"
	"github.com/dmitrijs2005/animalspotter/internal/server/services"
	"github.com/gorilla/mux"
)

// shutdownTimeout bounds how long in-flight requests may take once Run's
// context is cancelled.
const shutdownTimeout = 5 * time.Second

type UserService interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	Authenticate(token string) (string, error)
}

type SightingService interface {
	ListNames(ctx context.Context) ([]string, error)
	Get(ctx context.Context, name string) (*services.SightingView, error)
}

type Server struct {
	address   string
	logger    logging.Logger
	users     UserService
	sightings SightingService
	photoDir  string
	router    *mux.Router
}

func NewServer(address string, l logging.Logger, us UserService, ss SightingService, photoDir string) *Server {
	s := &Server{
		address:   address,
		logger:    l.With("module", "http_server"),
		users:     us,
		sightings: ss,
		photoDir:  photoDir,
	}
	s.router = s.routes()
	return s
}

// routes registers every endpoint on the root router. Nested subrouters are
// avoided: mux drops a method mismatch as soon as a sibling route's inherited
// prefix matches, which would turn 405 into 404.
func (s *Server) routes() *mux.Router {
	r := mux.NewRouter().UseEncodedPath()
	r.Use(s.requestID, s.logRequests)
	r.MethodNotAllowedHandler = http.HandlerFunc(s.methodNotAllowed)

	r.HandleFunc("/api/users/signup", s.signUp).Methods(http.MethodPost)
	r.HandleFunc("/api/users/login", s.login).Methods(http.MethodPost)

	// "all" is registered first, so a sighting literally named "all" is
	// only reachable through the listing.
	r.Handle("/api/animals/all", s.requireAuth(http.HandlerFunc(s.listSightings))).Methods(http.MethodGet)
	r.Handle("/api/animals/{name}", s.requireAuth(http.HandlerFunc(s.getSighting))).Methods(http.MethodGet)

	if s.photoDir != "" {
		r.PathPrefix("/photos/").Handler(
			http.StripPrefix("/photos/", http.FileServer(http.Dir(s.photoDir))))
	}

	return r
}

// Handler returns the fully wired router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled and then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown failed", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
