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
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/makebridge/makebridge/internal/makeapi"
)

// handleListScenarios implements the list_scenarios tool
func (s *Server) handleListScenarios(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	teamID, err := optionalInt64(request, "teamId")
	if err != nil {
		return errorResponse(err.Error()), nil
	}
	orgID, err := optionalInt64(request, "organizationId")
	if err != nil {
		return errorResponse(err.Error()), nil
	}
	folderID, err := optionalInt64(request, "folderId")
	if err != nil {
		return errorResponse(err.Error()), nil
	}
	pg, err := paginationArgs(request)
	if err != nil {
		return errorResponse(err.Error()), nil
	}

	scenarios, err := s.client.ListScenarios(ctx, &makeapi.ListScenariosOptions{
		TeamID:         teamID,
		OrganizationID: orgID,
		FolderID:       folderID,
		Pagination:     pg,
	})
	if err != nil {
		return apiResult(err)
	}

	return jsonResponse(scenarios)
}

// handleGetScenario implements the get_scenario tool
func (s *Server) handleGetScenario(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	scenarioID, err := requireID(request, "scenarioId")
	if err != nil {
		return errorResponse(err.Error()), nil
	}

	scenario, err := s.client.GetScenario(ctx, scenarioID)
	if err != nil {
		return apiResult(err)
	}

	return jsonResponse(scenario)
}

// handleCreateScenario implements the create_scenario tool
func (s *Server) handleCreateScenario(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	blueprint, err := request.RequireString("blueprint")
	if err != nil {
		return errorResponse("missing or invalid \"blueprint\" argument: must be a string"), nil
	}
	teamID, err := requireID(request, "teamId")
	if err != nil {
		return errorResponse(err.Error()), nil
	}
	scheduling, err := optionalString(request, "scheduling")
	if err != nil {
		return errorResponse(err.Error()), nil
	}
	folderID, err := optionalInt64(request, "folderId")
	if err != nil {
		return errorResponse(err.Error()), nil
	}

	req := &makeapi.CreateScenarioRequest{
		Blueprint: blueprint,
		TeamID:    teamID,
		FolderID:  folderID,
	}
	if scheduling != nil {
		req.Scheduling = *scheduling
	}

	scenario, err := s.client.CreateScenario(ctx, req)
	if err != nil {
		return apiResult(err)
	}

	return jsonResponse(scenario)
}

// handleUpdateScenario implements the update_scenario tool
func (s *Server) handleUpdateScenario(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	scenarioID, err := requireID(request, "scenarioId")
	if err != nil {
		return errorResponse(err.Error()), nil
	}
	name, err := optionalString(request, "name")
	if err != nil {
		return errorResponse(err.Error()), nil
	}
	blueprint, err := optionalString(request, "blueprint")
	if err != nil {
		return errorResponse(err.Error()), nil
	}
	scheduling, err := optionalString(request, "scheduling")
	if err != nil {
		return errorResponse(err.Error()), nil
	}
	folderID, err := optionalInt64(request, "folderId")
	if err != nil {
		return errorResponse(err.Error()), nil
	}

	req := &makeapi.UpdateScenarioRequest{FolderID: folderID}
	if name != nil {
		req.Name = *name
	}
	if blueprint != nil {
		req.Blueprint = *blueprint
	}
	if scheduling != nil {
		req.Scheduling = *scheduling
	}

	scenario, err := s.client.UpdateScenario(ctx, scenarioID, req)
	if err != nil {
		return apiResult(err)
	}

	return jsonResponse(scenario)
}

// handleDeleteScenario implements the delete_scenario tool
func (s *Server) handleDeleteScenario(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	scenarioID, err := requireID(request, "scenarioId")
	if err != nil {
		return errorResponse(err.Error()), nil
	}

	if err := s.client.DeleteScenario(ctx, scenarioID); err != nil {
		return apiResult(err)
	}

	return textResponse(fmt.Sprintf("Scenario %d deleted.", scenarioID)), nil
}

// handleActivateScenario implements the activate_scenario tool
func (s *Server) handleActivateScenario(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	scenarioID, err := requireID(request, "scenarioId")
	if err != nil {
		return errorResponse(err.Error()), nil
	}

	scenario, err := s.client.ActivateScenario(ctx, scenarioID)
	if err != nil {
		return apiResult(err)
	}

	return jsonResponse(scenario)
}

// handleDeactivateScenario implements the deactivate_scenario tool
func (s *Server) handleDeactivateScenario(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	scenarioID, err := requireID(request, "scenarioId")
	if err != nil {
		return errorResponse(err.Error()), nil
	}

	scenario, err := s.client.DeactivateScenario(ctx, scenarioID)
	if err != nil {
		return apiResult(err)
	}

	return jsonResponse(scenario)
}

// handleRunScenario implements the run_scenario tool
func (s *Server) handleRunScenario(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	scenarioID, err := requireID(request, "scenarioId")
	if err != nil {
		return errorResponse(err.Error()), nil
	}
	data, err := optionalObject(request, "data")
	if err != nil {
		return errorResponse(err.Error()), nil
	}
	responsive, err := optionalBool(request, "responsive")
	if err != nil {
		return errorResponse(err.Error()), nil
	}

	var req *makeapi.RunScenarioRequest
	if data != nil || responsive != nil {
		req = &makeapi.RunScenarioRequest{
			Data:       data,
			Responsive: responsive,
		}
	}

	run, err := s.client.RunScenario(ctx, scenarioID, req)
	if err != nil {
		return apiResult(err)
	}

	return jsonResponse(run)
}

// handleCloneScenario implements the clone_scenario tool
func (s *Server) handleCloneScenario(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	scenarioID, err := requireID(request, "scenarioId")
	if err != nil {
		return errorResponse(err.Error()), nil
	}
	name, err := request.RequireString("name")
	if err != nil {
		return errorResponse("missing or invalid \"name\" argument: must be a string"), nil
	}
	teamID, err := optionalInt64(request, "teamId")
	if err != nil {
		return errorResponse(err.Error()), nil
	}

	scenario, err := s.client.CloneScenario(ctx, scenarioID, &makeapi.CloneScenarioRequest{
		Name:   name,
		TeamID: teamID,
	})
	if err != nil {
		return apiResult(err)
	}

	return jsonResponse(scenario)
}

// handleGetScenarioBlueprint implements the get_scenario_blueprint tool
func (s *Server) handleGetScenarioBlueprint(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	scenarioID, err := requireID(request, "scenarioId")
	if err != nil {
		return errorResponse(err.Error()), nil
	}

	blueprint, err := s.client.GetScenarioBlueprint(ctx, scenarioID)
	if err != nil {
		return apiResult(err)
	}

	return jsonResponse(blueprint)
}

// handleGetScenarioLogs implements the get_scenario_logs tool
func (s *Server) handleGetScenarioLogs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	scenarioID, err := requireID(request, "scenarioId")
	if err != nil {
		return errorResponse(err.Error()), nil
	}
	pg, err := paginationArgs(request)
	if err != nil {
		return errorResponse(err.Error()), nil
	}

	logs, err := s.client.GetScenarioLogs(ctx, scenarioID, pg)
	if err != nil {
		return apiResult(err)
	}

	return jsonResponse(logs)
}
