package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/internal/handlers"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/status"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
	"github.com/carson-networks/ledger-server/internal/session"
	"github.com/carson-networks/ledger-server/internal/storage"
)

const shutdownTimeout = 10 * time.Second

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Service  *service.Service
	Storage  *storage.Storage
	Sessions *session.Resolver
}

// Handler builds the huma API on a fresh ServeMux and returns it.
func (r *Rest) Handler() http.Handler {
	handlers.ConfigureErrors()

	mux := http.NewServeMux()
	api := humago.New(mux, huma.DefaultConfig("Ledger API", "1.0.0"))
	api.UseMiddleware(logging.Middleware(r.Logger))

	sessions := r.Sessions
	if sessions == nil {
		sessions = session.NewResolver(nil)
	}

	status.NewHandler(r.Storage).Register(api)
	transaction.Register(api, r.Service.Transaction, sessions)

	return mux
}

// Serve listens until ctx is cancelled and then shuts the server down,
// letting in-flight requests finish.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	r.Logger.Info("HttpServer.Serve.shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		return err
	}
	return nil
}
