// Package mcp exposes the game service as MCP tools over stdio.
package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/soma-satoro/pyreach/internal/services/game/service"
)

const (
	serverName    = "pyreach-game"
	serverVersion = "1.0.0"
)

// Server binds the game service's tools to an MCP server.
type Server struct {
	mcpServer *mcp.Server
}

// NewServer creates an MCP server with every game tool registered.
func NewServer(svc *service.Service) *Server {
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)

	mcp.AddTool(mcpServer, CharacterCreateTool(), CharacterCreateHandler(svc))
	mcp.AddTool(mcpServer, CharacterGetTool(), CharacterGetHandler(svc))
	mcp.AddTool(mcpServer, HealthGetTool(), HealthGetHandler(svc))
	mcp.AddTool(mcpServer, HealthDamageTool(), HealthDamageHandler(svc))
	mcp.AddTool(mcpServer, HealthHealTool(), HealthHealHandler(svc))
	mcp.AddTool(mcpServer, HealthClearTool(), HealthClearHandler(svc))
	mcp.AddTool(mcpServer, HealthSetMaxTool(), HealthSetMaxHandler(svc))
	mcp.AddTool(mcpServer, ClarityGetTool(), ClarityGetHandler(svc))
	mcp.AddTool(mcpServer, ClarityDamageTool(), ClarityDamageHandler(svc))
	mcp.AddTool(mcpServer, ClarityHealTool(), ClarityHealHandler(svc))
	mcp.AddTool(mcpServer, ClarityConditionsTool(), ClarityConditionsHandler())

	return &Server{mcpServer: mcpServer}
}

// Serve runs the MCP server on stdio and blocks until it stops or the
// context ends. A context cancellation is a normal shutdown, not an error.
func (s *Server) Serve(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}
