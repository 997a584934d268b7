package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/raptortest/qa-automation/internal/config"
)

// DefaultShutdownTimeout bounds how long in-flight requests may finish
const DefaultShutdownTimeout = 30 * time.Second

// ServerDependencies holds all dependencies needed for the server
type ServerDependencies struct {
	ServerConfig     config.ServerConfig
	LoginHandler     http.Handler
	SignupHandler    http.Handler
	DashboardHandler http.Handler
	ProfileHandler   http.Handler
	SettingsHandler  http.Handler
	LogoutHandler    http.Handler
}

// NewRouter maps the fixture's pages onto deps' handlers. Anything else is 404.
func NewRouter(deps ServerDependencies) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/{$}", deps.LoginHandler)
	mux.Handle("/auth", deps.LoginHandler)
	mux.Handle("/login", deps.LoginHandler)
	mux.Handle("/signup", deps.SignupHandler)
	mux.Handle("/dashboard", deps.DashboardHandler)
	mux.Handle("/profile", deps.ProfileHandler)
	mux.Handle("/settings", deps.SettingsHandler)
	mux.Handle("/logout", deps.LogoutHandler)
	return mux
}

// Server is a running fixture application
type Server struct {
	http     *http.Server
	listener net.Listener
	done     chan struct{}
}

// StartServer listens on the configured port and serves in the background
func StartServer(deps ServerDependencies) (*Server, error) {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", deps.ServerConfig.Port))
	if err != nil {
		return nil, fmt.Errorf("failed to create listener: %w", err)
	}

	s := &Server{
		http: &http.Server{
			Handler:           NewRouter(deps),
			ReadHeaderTimeout: 10 * time.Second,
		},
		listener: listener,
		done:     make(chan struct{}),
	}

	go func() {
		defer close(s.done)
		log.Printf("Server listening on %s", listener.Addr().String())
		if err := s.http.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Server error: %v", err)
		}
	}()

	return s, nil
}

// Port is the TCP port the server accepted connections on
func (s *Server) Port() int {
	return s.listener.Addr().(*net.TCPAddr).Port
}

// Shutdown lets in-flight requests finish for up to timeout, then drops the
// remaining connections. It returns once the serve loop has exited.
func (s *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		log.Printf("Graceful shutdown gave up after %s, closing connections", timeout)
		if err := s.http.Close(); err != nil {
			return fmt.Errorf("could not stop server: %w", err)
		}
	}
	<-s.done

	log.Println("Server stopped")
	return nil
}

// RunServe serves the fixture application until ctx is cancelled
func RunServe(ctx context.Context, deps ServerDependencies) error {
	s, err := StartServer(deps)
	if err != nil {
		return err
	}

	<-ctx.Done()
	log.Printf("Shutting down server: %v", context.Cause(ctx))
	return s.Shutdown(DefaultShutdownTimeout)
}
