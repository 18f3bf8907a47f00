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
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// toolDef binds one catalog entry to its handler. Mutating entries draw
// from the stricter rate limit bucket.
type toolDef struct {
	Tool     mcp.Tool
	Mutating bool
	Handler  mcpserver.ToolHandlerFunc
}

func numberProp(description string) map[string]interface{} {
	return map[string]interface{}{"type": "number", "description": description}
}

func stringProp(description string) map[string]interface{} {
	return map[string]interface{}{"type": "string", "description": description}
}

func boolProp(description string) map[string]interface{} {
	return map[string]interface{}{"type": "boolean", "description": description}
}

func objectProp(description string) map[string]interface{} {
	return map[string]interface{}{"type": "object", "description": description}
}

// withPagination adds the paging controls shared by every list tool.
func withPagination(props map[string]interface{}) map[string]interface{} {
	props["offset"] = numberProp("Number of items to skip (explicit 0 is honored)")
	props["limit"] = numberProp("Maximum number of items to return")
	props["sortBy"] = stringProp("Field to sort results by")
	props["sortDir"] = stringProp("Sort direction: 'asc' or 'desc'")
	return props
}

// catalog is the single source of truth for the exposed tools. Both the
// MCP registration and the dispatch table are built from it.
func (s *Server) catalog() []toolDef {
	return []toolDef{
		// Scenarios
		{
			Tool: mcp.Tool{
				Name:        "list_scenarios",
				Description: "List automation scenarios, optionally filtered by team, organization, or folder.",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: withPagination(map[string]interface{}{
						"teamId":         numberProp("Filter scenarios by team ID"),
						"organizationId": numberProp("Filter scenarios by organization ID"),
						"folderId":       numberProp("Filter scenarios by folder ID"),
					}),
				},
			},
			Handler: s.handleListScenarios,
		},
		{
			Tool: mcp.Tool{
				Name:        "get_scenario",
				Description: "Get details of a single scenario by ID.",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]interface{}{
						"scenarioId": numberProp("The scenario ID"),
					},
					Required: []string{"scenarioId"},
				},
			},
			Handler: s.handleGetScenario,
		},
		{
			Tool: mcp.Tool{
				Name:        "create_scenario",
				Description: "Create a new scenario from a blueprint JSON string.",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]interface{}{
						"blueprint":  stringProp("Scenario blueprint as a JSON string"),
						"teamId":     numberProp("Team the scenario belongs to"),
						"scheduling": stringProp("Scheduling definition as a JSON string"),
						"folderId":   numberProp("Folder to place the scenario in"),
					},
					Required: []string{"blueprint", "teamId"},
				},
			},
			Mutating: true,
			Handler:  s.handleCreateScenario,
		},
		{
			Tool: mcp.Tool{
				Name:        "update_scenario",
				Description: "Update a scenario's name, blueprint, scheduling, or folder.",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]interface{}{
						"scenarioId": numberProp("The scenario ID"),
						"name":       stringProp("New scenario name"),
						"blueprint":  stringProp("New blueprint as a JSON string"),
						"scheduling": stringProp("New scheduling definition as a JSON string"),
						"folderId":   numberProp("Folder to move the scenario to"),
					},
					Required: []string{"scenarioId"},
				},
			},
			Mutating: true,
			Handler:  s.handleUpdateScenario,
		},
		{
			Tool: mcp.Tool{
				Name:        "delete_scenario",
				Description: "Delete a scenario permanently.",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]interface{}{
						"scenarioId": numberProp("The scenario ID"),
					},
					Required: []string{"scenarioId"},
				},
			},
			Mutating: true,
			Handler:  s.handleDeleteScenario,
		},
		{
			Tool: mcp.Tool{
				Name:        "activate_scenario",
				Description: "Activate a scenario so it runs on its schedule.",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]interface{}{
						"scenarioId": numberProp("The scenario ID"),
					},
					Required: []string{"scenarioId"},
				},
			},
			Mutating: true,
			Handler:  s.handleActivateScenario,
		},
		{
			Tool: mcp.Tool{
				Name:        "deactivate_scenario",
				Description: "Deactivate a scenario so it stops running on its schedule.",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]interface{}{
						"scenarioId": numberProp("The scenario ID"),
					},
					Required: []string{"scenarioId"},
				},
			},
			Mutating: true,
			Handler:  s.handleDeactivateScenario,
		},
		{
			Tool: mcp.Tool{
				Name:        "run_scenario",
				Description: "Trigger one execution of a scenario, optionally with input data.",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]interface{}{
						"scenarioId": numberProp("The scenario ID"),
						"data":       objectProp("Input data passed to the scenario run"),
						"responsive": boolProp("Wait for the execution to finish before responding"),
					},
					Required: []string{"scenarioId"},
				},
			},
			Mutating: true,
			Handler:  s.handleRunScenario,
		},
		{
			Tool: mcp.Tool{
				Name:        "clone_scenario",
				Description: "Clone a scenario, optionally into another team.",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]interface{}{
						"scenarioId": numberProp("The scenario ID to clone"),
						"name":       stringProp("Name for the cloned scenario"),
						"teamId":     numberProp("Team to clone the scenario into"),
					},
					Required: []string{"scenarioId", "name"},
				},
			},
			Mutating: true,
			Handler:  s.handleCloneScenario,
		},
		{
			Tool: mcp.Tool{
				Name:        "get_scenario_blueprint",
				Description: "Get a scenario's blueprint (module graph) and scheduling.",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]interface{}{
						"scenarioId": numberProp("The scenario ID"),
					},
					Required: []string{"scenarioId"},
				},
			},
			Handler: s.handleGetScenarioBlueprint,
		},
		{
			Tool: mcp.Tool{
				Name:        "get_scenario_logs",
				Description: "Get execution logs for a scenario.",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: withPagination(map[string]interface{}{
						"scenarioId": numberProp("The scenario ID"),
					}),
					Required: []string{"scenarioId"},
				},
			},
			Handler: s.handleGetScenarioLogs,
		},

		// Connections and hooks
		{
			Tool: mcp.Tool{
				Name:        "list_connections",
				Description: "List app connections (credential references), optionally filtered by team.",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: withPagination(map[string]interface{}{
						"teamId": numberProp("Filter connections by team ID"),
					}),
				},
			},
			Handler: s.handleListConnections,
		},
		{
			Tool: mcp.Tool{
				Name:        "list_hooks",
				Description: "List webhooks, optionally filtered by team.",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: withPagination(map[string]interface{}{
						"teamId": numberProp("Filter webhooks by team ID"),
					}),
				},
			},
			Handler: s.handleListHooks,
		},

		// Data stores
		{
			Tool: mcp.Tool{
				Name:        "list_data_stores",
				Description: "List data stores, optionally filtered by team.",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: withPagination(map[string]interface{}{
						"teamId": numberProp("Filter data stores by team ID"),
					}),
				},
			},
			Handler: s.handleListDataStores,
		},
		{
			Tool: mcp.Tool{
				Name:        "get_data_store",
				Description: "Get details of a single data store by ID.",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]interface{}{
						"dataStoreId": numberProp("The data store ID"),
					},
					Required: []string{"dataStoreId"},
				},
			},
			Handler: s.handleGetDataStore,
		},
		{
			Tool: mcp.Tool{
				Name:        "create_data_store",
				Description: "Create a new data store in a team.",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]interface{}{
						"name":            stringProp("Name for the data store"),
						"teamId":          numberProp("Team the data store belongs to"),
						"datastructureId": numberProp("Data structure describing record shape"),
						"maxSizeMB":       numberProp("Maximum size in megabytes"),
					},
					Required: []string{"name", "teamId"},
				},
			},
			Mutating: true,
			Handler:  s.handleCreateDataStore,
		},
		{
			Tool: mcp.Tool{
				Name:        "delete_data_store",
				Description: "Delete a data store and all of its records.",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]interface{}{
						"dataStoreId": numberProp("The data store ID"),
					},
					Required: []string{"dataStoreId"},
				},
			},
			Mutating: true,
			Handler:  s.handleDeleteDataStore,
		},
		{
			Tool: mcp.Tool{
				Name:        "list_data_store_records",
				Description: "List records held in a data store.",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: withPagination(map[string]interface{}{
						"dataStoreId": numberProp("The data store ID"),
					}),
					Required: []string{"dataStoreId"},
				},
			},
			Handler: s.handleListDataStoreRecords,
		},
		{
			Tool: mcp.Tool{
				Name:        "create_data_store_record",
				Description: "Add a record to a data store.",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]interface{}{
						"dataStoreId": numberProp("The data store ID"),
						"key":         stringProp("Record key (generated by the platform when omitted)"),
						"data":        objectProp("Record data as a key-value mapping"),
					},
					Required: []string{"dataStoreId", "data"},
				},
			},
			Mutating: true,
			Handler:  s.handleCreateDataStoreRecord,
		},

		// Organization
		{
			Tool: mcp.Tool{
				Name:        "list_teams",
				Description: "List teams, optionally filtered by organization.",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: withPagination(map[string]interface{}{
						"organizationId": numberProp("Filter teams by organization ID"),
					}),
				},
			},
			Handler: s.handleListTeams,
		},
		{
			Tool: mcp.Tool{
				Name:        "list_organizations",
				Description: "List organizations the API token has access to.",
				InputSchema: mcp.ToolInputSchema{
					Type:       "object",
					Properties: withPagination(map[string]interface{}{}),
				},
			},
			Handler: s.handleListOrganizations,
		},
		{
			Tool: mcp.Tool{
				Name:        "get_current_user",
				Description: "Get the user the configured API token authenticates as.",
				InputSchema: mcp.ToolInputSchema{
					Type:       "object",
					Properties: map[string]interface{}{},
				},
			},
			Handler: s.handleGetCurrentUser,
		},
	}
}
