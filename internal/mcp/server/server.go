// Copyright 2026 The Makebridge Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package server implements an MCP server that exposes the Make platform
// API as tools. There is a single tool catalog; every handler validates its
// arguments, calls exactly one API client method, and shapes the outcome
// into the MCP result envelope.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/makebridge/makebridge/internal/makeapi"
)

// Server wraps the MCP server and provides Make platform tools
type Server struct {
	mcpServer   *mcpserver.MCPServer
	client      makeapi.Client
	name        string
	version     string
	rateLimiter *RateLimiter
	logger      *slog.Logger

	// handlers is the single dispatch table built from the tool catalog.
	// Kept alongside the MCP server registration so invocation can be
	// exercised directly in tests.
	handlers map[string]mcpserver.ToolHandlerFunc
	tools    []mcp.Tool
}

// ServerConfig configures the MCP server
type ServerConfig struct {
	// Name is the server name (default: "makebridge")
	Name string

	// Version is the makebridge version
	Version string

	// LogLevel controls logging verbosity (debug, info, warn, error)
	LogLevel string

	// Client is the Make API client the tools call into (required).
	// Injected rather than constructed here so tests can substitute a
	// double for the remote API.
	Client makeapi.Client
}

// createLogger creates a logger with the specified log level.
// Writes to stderr to avoid interfering with MCP stdio protocol.
func createLogger(levelStr string) (*slog.Logger, error) {
	var level slog.Level

	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info", "":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", levelStr)
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})

	return slog.New(handler), nil
}

// NewServer creates a new MCP server instance
func NewServer(config ServerConfig) (*Server, error) {
	if config.Name == "" {
		config.Name = "makebridge"
	}
	if config.Version == "" {
		config.Version = "dev"
	}
	if config.Client == nil {
		return nil, fmt.Errorf("API client is required")
	}

	logger, err := createLogger(config.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	// Create the underlying MCP server
	srv := mcpserver.NewMCPServer(config.Name, config.Version)

	// Create rate limiter (30 mutations/min, 120 calls/min)
	rateLimiter := NewRateLimiter(30, 120)

	s := &Server{
		mcpServer:   srv,
		client:      config.Client,
		name:        config.Name,
		version:     config.Version,
		rateLimiter: rateLimiter,
		logger:      logger,
		handlers:    make(map[string]mcpserver.ToolHandlerFunc),
	}

	s.registerTools()

	return s, nil
}

// registerTools registers the tool catalog with the MCP server.
func (s *Server) registerTools() {
	for _, def := range s.catalog() {
		handler := s.withCommon(def.Tool.Name, def.Mutating, def.Handler)
		s.handlers[def.Tool.Name] = handler
		s.tools = append(s.tools, def.Tool)
		s.mcpServer.AddTool(def.Tool, handler)
	}
}

// withCommon wraps a handler with rate limiting and invocation logging.
func (s *Server) withCommon(name string, mutating bool, h mcpserver.ToolHandlerFunc) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if !s.rateLimiter.AllowCall() {
			return errorResponse("Rate limit exceeded. Please try again later."), nil
		}
		if mutating && !s.rateLimiter.AllowMutation() {
			return errorResponse("Rate limit exceeded for mutating operations. Please try again later."), nil
		}

		invocationID := uuid.NewString()
		s.logger.Debug("tool invocation",
			slog.String("tool", name),
			slog.String("invocation_id", invocationID))

		result, err := h(ctx, request)
		if err != nil {
			s.logger.Error("tool invocation failed",
				slog.String("tool", name),
				slog.String("invocation_id", invocationID),
				slog.String("error", err.Error()))
		}
		return result, err
	}
}

// Tools returns the registered tool catalog.
func (s *Server) Tools() []mcp.Tool {
	return s.tools
}

// CallTool routes an invocation to the matching handler. An unknown tool
// name yields an error-flagged result, never a fault.
func (s *Server) CallTool(ctx context.Context, name string, args map[string]interface{}) (*mcp.CallToolResult, error) {
	handler, ok := s.handlers[name]
	if !ok {
		return errorResponse(fmt.Sprintf("unknown tool: %s", name)), nil
	}

	var request mcp.CallToolRequest
	request.Params.Name = name
	request.Params.Arguments = args
	return handler(ctx, request)
}

// Run starts the MCP server using stdio transport
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("Starting makebridge MCP server", slog.String("version", s.version))

	if err := mcpserver.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("MCP server error: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down makebridge MCP server")
	// The mcp-go server doesn't have an explicit shutdown method
	// Returning from ServeStdio() is sufficient
	return nil
}

// errorResponse creates an error-flagged tool result.
func errorResponse(message string) *mcp.CallToolResult {
	return mcp.NewToolResultError(message)
}

// textResponse creates a success tool result with one text content block.
func textResponse(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

// jsonResponse pretty-prints v into a single text content block.
func jsonResponse(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return textResponse(string(data)), nil
}

// apiResult converts an API client failure into an error-flagged result.
// Remote API errors are expected and become user-visible text carrying the
// status code and detail; anything else propagates as a fault since it
// indicates a defect rather than an upstream failure.
func apiResult(err error) (*mcp.CallToolResult, error) {
	var apiErr *makeapi.APIError
	if errors.As(err, &apiErr) {
		return errorResponse(apiErr.Error()), nil
	}
	return nil, err
}
