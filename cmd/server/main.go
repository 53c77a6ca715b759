package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/tickify/tickify/internal/config"
	"github.com/tickify/tickify/internal/domain/account"
	"github.com/tickify/tickify/internal/domain/session"
	"github.com/tickify/tickify/internal/domain/ticket"
	"github.com/tickify/tickify/internal/mcp"
	"github.com/tickify/tickify/internal/repository"
	"github.com/tickify/tickify/internal/store"
	"github.com/tickify/tickify/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	// Stdio mode keeps stdout clean for JSON-RPC.
	logWriter := os.Stdout
	if cfg.MCP.Mode == "stdio" {
		logWriter = os.Stderr
	}
	logger := slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	if err := ensureStoreDir(cfg.Store.Path); err != nil {
		logger.Error("failed to prepare store path", "error", err)
		os.Exit(1)
	}

	st, err := store.NewSQLite(cfg.Store.Path)
	if err != nil {
		logger.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer st.Close()

	credentialRepo := repository.NewCredentialRepository(st)
	sessionRepo := repository.NewSessionRepository(st)
	ticketRepo := repository.NewTicketRepository(st)

	sessionSvc := session.NewService(sessionRepo, logger)
	accountSvc := account.NewService(credentialRepo, sessionRepo, st, logger)
	ticketSvc := ticket.NewService(ticketRepo, logger)

	if cfg.MCP.Mode == "stdio" {
		runStdioMode(logger, mcp.NewServer(ticketSvc, logger))
		return
	}

	handler := web.NewHandler(accountSvc, sessionSvc, ticketSvc, cfg.Web.FlashSecret, logger)
	router := web.NewRouter(handler, logger)

	if cfg.MCP.Enabled {
		mcpServer := mcp.NewServer(ticketSvc, logger)
		mcpHandler := sdkmcp.NewStreamableHTTPHandler(
			func(r *http.Request) *sdkmcp.Server { return mcpServer },
			&sdkmcp.StreamableHTTPOptions{},
		)
		router.Handle("/mcp", mcpHandler)
		router.Handle("/mcp/", mcpHandler)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", "addr", addr, "store", cfg.Store.Path, "mcp", cfg.MCP.Enabled)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	waitForShutdown(logger, httpServer)
}

func runStdioMode(logger *slog.Logger, server *sdkmcp.Server) {
	logger.Info("starting stdio transport")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-stop
		logger.Info("shutting down")
		cancel()
	}()

	if err := server.Run(ctx, &sdkmcp.StdioTransport{}); err != nil {
		logger.Error("stdio server error", "error", err)
		os.Exit(1)
	}
}

func waitForShutdown(logger *slog.Logger, server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

func ensureStoreDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
