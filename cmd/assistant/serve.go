package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"gitlab.com/dirk.krummacker/contacts-assistant/internal/logger"
	"gitlab.com/dirk.krummacker/contacts-assistant/internal/service"
	"go.uber.org/zap"
)

// shutdownTimeout bounds how long running requests may take once a stop signal arrived.
const shutdownTimeout = 10 * time.Second

// serveCommand exposes the address book over the REST API until SIGINT or SIGTERM.
func serveCommand(a *app) *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the address book over a REST API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if port == 0 {
				port = a.cfg.HTTP.Port
			}
			if a.cfg.Environment == logger.ProductionEnvironment {
				gin.SetMode(gin.ReleaseMode)
			}
			router := service.SetupHttpRouter(a.book,
				service.WithAccessLog(!strings.EqualFold(a.cfg.HTTP.Logging, "off")))

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return listenAndServe(ctx, fmt.Sprintf(":%d", port), router)
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 0, "port to listen on, overrides PORT")
	return cmd
}

// listenAndServe runs the HTTP server until ctx is done and then shuts it down gracefully.
func listenAndServe(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(ctx, "listening", zap.String("addr", addr))
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

	logger.Info(ctx, "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
