package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/undivisible/perplexity-mcp-poke/pkg/config"
	"github.com/undivisible/perplexity-mcp-poke/pkg/fetch"
	"github.com/undivisible/perplexity-mcp-poke/pkg/mcpserver"
	"github.com/undivisible/perplexity-mcp-poke/pkg/search"
	"github.com/undivisible/perplexity-mcp-poke/pkg/tools"
)

func main() {
	// Logging goes to stderr; stdout belongs to the stdio transport.
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		configPath string
		transport  string
		addr       string
		verbose    bool
	)
	flag.StringVar(&configPath, "config", "", "Path to YAML config file (optional)")
	flag.StringVar(&transport, "transport", "", "MCP transport: stdio, sse, or http")
	flag.StringVar(&addr, "addr", "", "Listen address for sse/http transports")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	if transport != "" {
		cfg.Server.Transport = transport
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}

	provider, err := search.NewProviderChain(&cfg.Search)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to configure search provider")
	}

	pages := fetch.NewClient(cfg.Fetch)
	service := search.NewService(provider, pages, log.Logger)

	registry := tools.NewRegistry()
	registry.Register(tools.NewWebSearch(service))
	registry.Register(tools.NewFetchWebpage(pages))

	server := mcpserver.New(cfg.Server, registry, log.Logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server exited")
	}
}
