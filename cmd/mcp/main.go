package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"todoapi/config"
	"todoapi/di"
	"todoapi/shared/logger"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	// stdout carries the protocol stream, so logs go to stderr.
	logger.InitStderrLogger()

	logger.SetLogLevel(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := di.InitializeAgent()

	if err := server.Serve(ctx, mcp.NewStdioTransport()); err != nil && ctx.Err() == nil {
		log.Fatal().Err(err).Msg("MCP server exited with error")
	}
}
