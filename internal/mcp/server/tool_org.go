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

// handleListTeams implements the list_teams tool
func (s *Server) handleListTeams(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	orgID, err := optionalInt64(request, "organizationId")
	if err != nil {
		return errorResponse(err.Error()), nil
	}
	pg, err := paginationArgs(request)
	if err != nil {
		return errorResponse(err.Error()), nil
	}

	teams, err := s.client.ListTeams(ctx, orgID, pg)
	if err != nil {
		return apiResult(err)
	}

	return jsonResponse(teams)
}

// handleListOrganizations implements the list_organizations tool
func (s *Server) handleListOrganizations(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pg, err := paginationArgs(request)
	if err != nil {
		return errorResponse(err.Error()), nil
	}

	orgs, err := s.client.ListOrganizations(ctx, pg)
	if err != nil {
		return apiResult(err)
	}

	return jsonResponse(orgs)
}

// handleGetCurrentUser implements the get_current_user tool
func (s *Server) handleGetCurrentUser(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	user, err := s.client.GetCurrentUser(ctx)
	if err != nil {
		return apiResult(err)
	}

	return jsonResponse(user)
}
