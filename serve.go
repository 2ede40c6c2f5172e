package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/leodahal4/portfolio/internal/config"
	"github.com/leodahal4/portfolio/internal/content"
	"github.com/leodahal4/portfolio/internal/page"
	"github.com/leodahal4/portfolio/internal/schedule"
	"github.com/leodahal4/portfolio/internal/visitors"
	"github.com/leodahal4/portfolio/internal/web"
)

const (
	shutdownTimeout   = 10 * time.Second
	retentionInterval = 24 * time.Hour
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the portfolio web server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}
	gin.SetMode(cfg.GinMode)

	site := content.Default()
	if err := site.Validate(); err != nil {
		return errors.Wrap(err, "portfolio content")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	clock := schedule.RealClock()
	registry := page.NewRegistry(clock, cfg.SessionTTL, sessionFactory(cfg, site, clock))
	defer registry.Close()

	var (
		store   *visitors.Store
		tracker *visitors.Tracker
	)
	if cfg.TrackVisitors {
		store, err = visitors.Open(cfg.DatabasePath)
		if err != nil {
			return err
		}
		defer store.Close()
		tracker = visitors.NewTracker(store, visitors.NewHasher(cfg.HashSalt))
		log.Println("Privacy: Visitor tracking enabled with hashed IP addresses")
	}

	srv, err := web.New(registry, tracker)
	if err != nil {
		return err
	}
	httpServer := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("Listening on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "http server")
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		return registry.Run(gCtx, cfg.SweepInterval)
	})
	if store != nil {
		g.Go(func() error {
			return visitors.RunRetention(gCtx, store, cfg.VisitorRetention, retentionInterval)
		})
	}

	err = g.Wait()
	if tracker != nil {
		tracker.Wait()
	}
	log.Println("Server stopped")
	return err
}
