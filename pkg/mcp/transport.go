package mcp

import (
	"fmt"
	"os"
	"os/exec"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tarsy-bot/tarsy/pkg/config"
)

// newTransport builds the MCP SDK transport for a server definition. Env
// values and URLs were already template-expanded by the config loader.
func newTransport(cfg config.TransportConfig) (mcpsdk.Transport, error) {
	switch cfg.Type {
	case config.TransportTypeStdio:
		if cfg.Command == "" {
			return nil, fmt.Errorf("stdio transport requires command")
		}
		cmd := exec.Command(cfg.Command, cfg.Args...)
		cmd.Env = os.Environ()
		for k, v := range cfg.Env {
			cmd.Env = append(cmd.Env, k+"="+v)
		}
		return &mcpsdk.CommandTransport{Command: cmd}, nil

	case config.TransportTypeHTTP:
		if cfg.URL == "" {
			return nil, fmt.Errorf("http transport requires url")
		}
		return &mcpsdk.StreamableClientTransport{Endpoint: cfg.URL}, nil

	default:
		return nil, fmt.Errorf("unsupported transport type: %s", cfg.Type)
	}
}
