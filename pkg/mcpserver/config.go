package mcpserver

import "strings"

const (
	TransportStdio = "stdio"
	TransportSSE   = "sse"
	TransportHTTP  = "http"

	DefaultAddr = ":8000"
)

// Config controls how the MCP server is exposed.
type Config struct {
	// Transport selects stdio, sse, or http (streamable HTTP).
	Transport string `yaml:"transport"`
	// Addr is the listen address for the sse and http transports.
	Addr string `yaml:"addr"`
}

func (c Config) WithDefaults() Config {
	if strings.TrimSpace(c.Transport) == "" {
		c.Transport = TransportStdio
	}
	if strings.TrimSpace(c.Addr) == "" {
		c.Addr = DefaultAddr
	}
	return c
}
