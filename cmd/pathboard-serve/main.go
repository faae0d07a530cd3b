package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"pathboard/internal/config"
	"pathboard/internal/discord"
	"pathboard/internal/render"
	"pathboard/internal/server"
)

func main() {
	var cfgPath string
	var addr string

	flag.StringVar(&cfgPath, "config", "", "optional YAML config file")
	flag.StringVar(&addr, "addr", "", "listen address, overrides the config")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Error("loading config", "error", err)
		os.Exit(1)
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}

	renderOpts := render.Options{
		CellSize:   cfg.Render.CellSize,
		FrameDelay: cfg.Render.FrameDelayMs,
		StepLabel:  cfg.Render.StepLabel,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	srv := server.New(logger, renderOpts)
	httpServer := &http.Server{Addr: cfg.Server.Addr, Handler: srv.Handler()}

	g.Go(func() error {
		logger.Info("http server listening", "addr", cfg.Server.Addr)
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if cfg.Discord.Enabled {
		bot, err := discord.NewBot(
			cfg.Discord.Token,
			cfg.Discord.CommandPrefix,
			cfg.Discord.BotAdmins,
			renderOpts,
			logger,
		)
		if err != nil {
			logger.Error("creating discord bot", "error", err)
			os.Exit(1)
		}
		g.Go(func() error {
			return bot.Start(ctx)
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error("shutting down", "error", err)
		os.Exit(1)
	}
	logger.Info("stopped")
}
