package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 5 * time.Second

// newRouter wires the middleware chain in front of the static file handler.
// Every path falls through to the file server.
func newRouter(dir string) *mux.Router {
	router := mux.NewRouter()
	router.Use(loggingMiddleware, corsMiddleware)
	router.PathPrefix("/").Handler(fileHandler(dir))
	return router
}

func serveURL(port int) string {
	return fmt.Sprintf("http://localhost:%d/%s", port, walletPage)
}

func isAddrInUse(err error) bool {
	return errors.Is(err, syscall.EADDRINUSE)
}

// bindDiagnostic turns a bind failure into the message shown to the user.
// An occupied port gets an actionable suggestion instead of a raw error.
func bindDiagnostic(err error, port int) string {
	if isAddrInUse(err) {
		return fmt.Sprintf("port %d is already in use, try: wallet-serve %d", port, port+1)
	}
	return fmt.Sprintf("error starting server: %v", err)
}

// Run loads the configuration, checks the wallet page precondition, binds
// the listener and serves until interrupted.
func Run() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := loadConfig(os.Args[1:])

	if err := checkWalletPage(cfg.Dir); err != nil {
		logrus.WithField("dir", cfg.Dir).Error(err)
		os.Exit(1)
	}

	// Bind explicitly so bind failures are classified before serving starts.
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		logrus.Error(bindDiagnostic(err, cfg.Port))
		os.Exit(1)
	}

	url := serveURL(cfg.Port)
	logrus.Info("starting local development server")
	logrus.WithField("dir", cfg.Dir).Info("serving files")
	logrus.Infof("server running at http://localhost:%d", cfg.Port)
	logrus.WithField("url", url).Info("wallet interface")
	logrus.Info("this should fix MetaMask detection issues, press Ctrl+C to stop")

	srv := &http.Server{Handler: newRouter(cfg.Dir)}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	openBrowser(url)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logrus.WithError(err).Warn("forced shutdown")
		}
		logrus.Info("server stopped, goodbye!")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Error("server error")
			os.Exit(1)
		}
	}
}
