package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zqrup/esphome-sub000/internal/apiserver"
	"github.com/zqrup/esphome-sub000/internal/config"
	"github.com/zqrup/esphome-sub000/internal/entity"
	"github.com/zqrup/esphome-sub000/internal/server"
	"github.com/zqrup/esphome-sub000/internal/store"
	"github.com/zqrup/esphome-sub000/internal/websocket"
)

var version = "0.2.0-dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve", "start":
		serve()
	case "version":
		fmt.Printf("esphome-sub000 v%s\n", version)
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func serve() {
	cfgPath := "apiserverd.yaml"
	if len(os.Args) > 2 {
		cfgPath = os.Args[2]
	}

	logger, startupCloser := setupLogger("info", "json", "stdout")
	if startupCloser != nil {
		defer startupCloser.Close()
	}
	logger.Info("esphome-sub000 starting", "version", version)

	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "path", cfgPath, "error", err)
		os.Exit(1)
	}

	if startupCloser != nil {
		_ = startupCloser.Close()
		startupCloser = nil
	}
	logger, logCloser := setupLogger(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)
	if logCloser != nil {
		defer logCloser.Close()
	}

	st, err := store.New("./data")
	if err != nil {
		logger.Error("failed to open persistence store", "error", err)
		os.Exit(1)
	}

	registry := entity.NewRegistry()

	apiServer, err := apiserver.New(cfg, registry, st, logger)
	if err != nil {
		logger.Error("failed to build api server", "error", err)
		os.Exit(1)
	}
	if err := apiServer.Start(); err != nil {
		logger.Error("failed to start api server", "error", err)
		os.Exit(1)
	}

	adminServer := server.New(cfg, apiServer, logger)
	apiServer.SetEventSink(func(eventType string, data interface{}) {
		adminServer.Events().BroadcastEvent("events", websocket.Event{Type: eventType, Data: data})
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go apiServer.Run(context.Background(), 10*time.Millisecond)

	go func() {
		if err := adminServer.Start(); err != nil {
			logger.Error("admin server error", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	logger.Info("esphome-sub000 ready", "api_address", cfg.API.Address, "admin_address", cfg.Admin.Address)

	<-quit
	logger.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := adminServer.Stop(ctx); err != nil {
		logger.Error("admin server shutdown error", "error", err)
	}

	if err := apiServer.Stop(); err != nil {
		logger.Error("api server shutdown error", "error", err)
	}

	logger.Info("esphome-sub000 stopped")
}

func setupLogger(level, format, output string) (*slog.Logger, io.Closer) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	writer, closer := resolveLogOutput(output)
	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	if format == "text" {
		handler = slog.NewTextHandler(writer, opts)
	} else {
		handler = slog.NewJSONHandler(writer, opts)
	}

	return slog.New(handler), closer
}

func resolveLogOutput(output string) (io.Writer, io.Closer) {
	switch output {
	case "", "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	default:
		f, err := os.OpenFile(output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return os.Stdout, nil
		}
		return f, f
	}
}

func printUsage() {
	fmt.Println(`esphome-sub000 - native device-control API server

Usage:
  apiserverd <command> [options]

Commands:
  serve [config]   Start the server (default config: apiserverd.yaml)
  start [config]   Alias for serve
  version          Show version
  help             Show this help

Signals:
  SIGINT/SIGTERM   Graceful shutdown

Examples:
  apiserverd serve
  apiserverd serve /etc/esphome-sub000/apiserverd.yaml
  apiserverd version`)
}
