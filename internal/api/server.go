package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/snapchat-ads-report/internal/api/handler"
	"github.com/vfg2006/snapchat-ads-report/internal/api/handler/router"
	"github.com/vfg2006/snapchat-ads-report/pkg/middleware"
)

// Server recebe o redirect do fluxo de autorização do Snap.
type Server struct {
	httpServer *http.Server
	listener   net.Listener
}

func New(addr, callbackPath string, verifier handler.CallbackVerifier, codes chan<- string) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authorization(callbackPath, verifier, codes)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              listener.Addr().String(),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
		listener: listener,
	}

	return srv, nil
}

func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Run serve até o contexto ser cancelado ou chegar um sinal de término.
func (s *Server) Run(ctx context.Context) error {
	serveErr := make(chan error, 1)

	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("api: callback server listening")

		if err := s.httpServer.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Error("api: callback server failed")
			serveErr <- err
		}
		close(serveErr)
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	var runErr error
	select {
	case <-done:
		logrus.Info("api: interrupt received")
		runErr = context.Canceled
	case <-ctx.Done():
		logrus.Debug("api: context done, stopping callback server")
	case err, ok := <-serveErr:
		if ok {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("api: error during shutdown")
		return err
	}

	return runErr
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Debug("api: callback server stopped")
	return nil
}
