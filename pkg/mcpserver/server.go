// Package mcpserver exposes the registered tools over a selectable MCP
// transport. The tool implementations are transport-agnostic; transports are
// purely a configuration choice.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/undivisible/perplexity-mcp-poke/pkg/tools"
)

const (
	serverName    = "perplexity-mcp-poke"
	serverVersion = "0.1.0"

	shutdownTimeout = 5 * time.Second
)

// Server hosts the MCP session over the configured transport.
type Server struct {
	cfg Config
	log zerolog.Logger
	mcp *mcp.Server
}

// New builds an MCP server with every tool in the registry attached.
func New(cfg Config, registry *tools.Registry, log zerolog.Logger) *Server {
	s := &Server{
		cfg: cfg.WithDefaults(),
		log: log.With().Str("component", "mcpserver").Logger(),
	}
	s.mcp = mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}, nil)
	s.mcp.AddReceivingMiddleware(loggingMiddleware(s.log))

	for _, tool := range registry.All() {
		s.addTool(tool)
	}
	return s
}

func (s *Server) addTool(tool *tools.Tool) {
	def := tool.Tool
	execute := tool.Execute
	s.mcp.AddTool(&def, func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args map[string]any
		if len(req.Params.Arguments) > 0 {
			if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
				return nil, fmt.Errorf("invalid arguments for %s: %w", def.Name, err)
			}
		}
		result, err := execute(ctx, args)
		if err != nil {
			return nil, err
		}
		return toCallToolResult(result), nil
	})
}

// toCallToolResult converts the internal tool result into the wire shape.
// Error envelopes stay ordinary results carrying a status field, matching
// the per-operation envelope contract; IsError is set for clients that
// only check the protocol flag.
func toCallToolResult(result *tools.Result) *mcp.CallToolResult {
	out := &mcp.CallToolResult{IsError: result.IsError()}
	for _, block := range result.Content {
		if block.Type == "text" {
			out.Content = append(out.Content, &mcp.TextContent{Text: block.Text})
		}
	}
	if len(out.Content) == 0 && result.Error != "" {
		out.Content = append(out.Content, &mcp.TextContent{Text: result.Error})
	}
	return out
}

// Run serves until ctx is cancelled or the transport fails.
func (s *Server) Run(ctx context.Context) error {
	if s.cfg.Transport == TransportStdio {
		s.log.Info().Str("transport", TransportStdio).Msg("Serving MCP")
		return s.mcp.Run(ctx, &mcp.StdioTransport{})
	}
	handler, err := s.transportHandler()
	if err != nil {
		return err
	}
	return s.serveHTTP(ctx, handler)
}

// transportHandler returns the http.Handler for the configured network
// transport.
func (s *Server) transportHandler() (http.Handler, error) {
	getServer := func(*http.Request) *mcp.Server { return s.mcp }
	switch s.cfg.Transport {
	case TransportSSE:
		return mcp.NewSSEHandler(getServer, nil), nil
	case TransportHTTP:
		return mcp.NewStreamableHTTPHandler(getServer, nil), nil
	default:
		return nil, fmt.Errorf("unknown transport %q", s.cfg.Transport)
	}
}

func (s *Server) serveHTTP(ctx context.Context, handler http.Handler) error {
	listener, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}
	srv := &http.Server{Handler: handler}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(listener)
	}()
	s.log.Info().
		Str("transport", s.cfg.Transport).
		Str("addr", listener.Addr().String()).
		Msg("Serving MCP")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// loggingMiddleware tags every incoming RPC with a request id and records
// its latency.
func loggingMiddleware(log zerolog.Logger) mcp.Middleware {
	return func(next mcp.MethodHandler) mcp.MethodHandler {
		return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
			requestID := uuid.NewString()
			start := time.Now()
			result, err := next(ctx, method, req)
			evt := log.Debug()
			if err != nil {
				evt = log.Warn().Err(err)
			}
			evt.Str("request_id", requestID).
				Str("method", method).
				Dur("took", time.Since(start)).
				Msg("RPC handled")
			return result, err
		}
	}
}
