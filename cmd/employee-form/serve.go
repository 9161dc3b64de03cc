package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/geocoder89/employeehub/internal/config"
	"github.com/geocoder89/employeehub/internal/observability"
	"github.com/geocoder89/employeehub/internal/web"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func newServeCmd(opts *rootOptions, defaultPort int) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the employee form in the browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), opts, port)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", defaultPort, "Port to serve the form on (or set WEB_PORT)")
	return cmd
}

func runServe(ctx context.Context, opts *rootOptions, port int) error {
	log := observability.NewLogger(opts.env)
	if opts.env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           web.NewRouter(log, opts.client()),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      opts.timeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("form server starting", "port", port, "api", opts.apiURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serve form: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("form server shutting down")
	shutdownCtx, cancel := config.WithTimeout(10 * time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
