package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	checkoutapp "github.com/dwikikusuma/kikuchan-store/internal/checkout/app"
	checkoutadapter "github.com/dwikikusuma/kikuchan-store/internal/checkout/infra/adapter"
	"github.com/dwikikusuma/kikuchan-store/internal/storefront/httpapi"
	"github.com/dwikikusuma/kikuchan-store/internal/storefront/view"
	"github.com/dwikikusuma/kikuchan-store/pkg/config"
	"github.com/dwikikusuma/kikuchan-store/pkg/shutdown"
)

const healthService = "kikuchan.storefront"

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the storefront HTTP server and the gRPC health endpoint",
		Action: func(c *cli.Context) error {
			return serve(c.Context)
		},
	}
}

func serve(root context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := newLogger(cfg, os.Stdout)
	if cfg.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := shutdown.WithSignals(root, log)
	defer cancel()

	slot, closeSlot, err := openSlot(ctx, cfg, log)
	if err != nil {
		log.Error("cart slot open failed", slog.Any("err", err))
		return err
	}
	defer closeSlot()

	catalog := newCatalog()
	cart := newCart(ctx, catalog, slot, log)
	checkout := checkoutapp.NewService(checkoutadapter.NewCartServiceReader(cart), log)

	msgs := view.JapaneseMessages()
	store := httpapi.NewSession(view.StorePage(), cart, catalog, checkout, msgs, log)
	about := httpapi.NewSession(view.AboutPage(), cart, catalog, checkout, msgs, log)
	srv := httpapi.NewServer(cart, msgs, log, store, about)

	httpAddr := fmt.Sprintf(":%d", cfg.HTTPPort)
	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	grpcAddr := fmt.Sprintf(":%d", cfg.GRPCPort)
	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		log.Error("listen failed", slog.Any("err", err), slog.String("addr", grpcAddr))
		return err
	}
	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(healthService, healthpb.HealthCheckResponse_SERVING)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("http server starting", slog.String("addr", httpAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		log.Info("grpc health starting", slog.String("addr", grpcAddr))
		if err := grpcServer.Serve(lis); err != nil {
			return fmt.Errorf("grpc serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown requested")
		hs.Shutdown()

		stopCtx, stopCancel := context.WithTimeout(context.Background(), shutdown.Grace)
		defer stopCancel()

		if err := httpServer.Shutdown(stopCtx); err != nil {
			log.Error("http shutdown error", slog.Any("err", err))
		}

		stopped := make(chan struct{})
		go func() {
			grpcServer.GracefulStop()
			close(stopped)
		}()
		select {
		case <-stopCtx.Done():
			log.Warn("graceful stop timeout, forcing stop")
			grpcServer.Stop()
		case <-stopped:
		}
		return nil
	})

	err = g.Wait()
	if err != nil {
		log.Error("server stopped with error", slog.Any("err", err))
		return err
	}
	log.Info("bye")
	return nil
}
