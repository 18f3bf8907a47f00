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

package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// handleListConnections implements the list_connections tool
func (s *Server) handleListConnections(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	teamID, err := optionalInt64(request, "teamId")
	if err != nil {
		return errorResponse(err.Error()), nil
	}
	pg, err := paginationArgs(request)
	if err != nil {
		return errorResponse(err.Error()), nil
	}

	connections, err := s.client.ListConnections(ctx, teamID, pg)
	if err != nil {
		return apiResult(err)
	}

	return jsonResponse(connections)
}

// handleListHooks implements the list_hooks tool
func (s *Server) handleListHooks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	teamID, err := optionalInt64(request, "teamId")
	if err != nil {
		return errorResponse(err.Error()), nil
	}
	pg, err := paginationArgs(request)
	if err != nil {
		return errorResponse(err.Error()), nil
	}

	hooks, err := s.client.ListHooks(ctx, teamID, pg)
	if err != nil {
		return apiResult(err)
	}

	return jsonResponse(hooks)
}
