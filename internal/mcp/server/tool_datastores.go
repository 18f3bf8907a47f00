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

// handleListDataStores implements the list_data_stores tool
func (s *Server) handleListDataStores(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	teamID, err := optionalInt64(request, "teamId")
	if err != nil {
		return errorResponse(err.Error()), nil
	}
	pg, err := paginationArgs(request)
	if err != nil {
		return errorResponse(err.Error()), nil
	}

	stores, err := s.client.ListDataStores(ctx, teamID, pg)
	if err != nil {
		return apiResult(err)
	}

	return jsonResponse(stores)
}

// handleGetDataStore implements the get_data_store tool
func (s *Server) handleGetDataStore(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dataStoreID, err := requireID(request, "dataStoreId")
	if err != nil {
		return errorResponse(err.Error()), nil
	}

	store, err := s.client.GetDataStore(ctx, dataStoreID)
	if err != nil {
		return apiResult(err)
	}

	return jsonResponse(store)
}

// handleCreateDataStore implements the create_data_store tool
func (s *Server) handleCreateDataStore(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return errorResponse("missing or invalid \"name\" argument: must be a string"), nil
	}
	teamID, err := requireID(request, "teamId")
	if err != nil {
		return errorResponse(err.Error()), nil
	}
	datastructureID, err := optionalInt64(request, "datastructureId")
	if err != nil {
		return errorResponse(err.Error()), nil
	}
	maxSizeMB, err := optionalInt(request, "maxSizeMB")
	if err != nil {
		return errorResponse(err.Error()), nil
	}

	store, err := s.client.CreateDataStore(ctx, &makeapi.CreateDataStoreRequest{
		Name:            name,
		TeamID:          teamID,
		DatastructureID: datastructureID,
		MaxSizeMB:       maxSizeMB,
	})
	if err != nil {
		return apiResult(err)
	}

	return jsonResponse(store)
}

// handleDeleteDataStore implements the delete_data_store tool
func (s *Server) handleDeleteDataStore(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dataStoreID, err := requireID(request, "dataStoreId")
	if err != nil {
		return errorResponse(err.Error()), nil
	}

	if err := s.client.DeleteDataStore(ctx, dataStoreID); err != nil {
		return apiResult(err)
	}

	return textResponse(fmt.Sprintf("Data store %d deleted.", dataStoreID)), nil
}

// handleListDataStoreRecords implements the list_data_store_records tool
func (s *Server) handleListDataStoreRecords(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dataStoreID, err := requireID(request, "dataStoreId")
	if err != nil {
		return errorResponse(err.Error()), nil
	}
	pg, err := paginationArgs(request)
	if err != nil {
		return errorResponse(err.Error()), nil
	}

	records, err := s.client.ListDataStoreRecords(ctx, dataStoreID, pg)
	if err != nil {
		return apiResult(err)
	}

	return jsonResponse(records)
}

// handleCreateDataStoreRecord implements the create_data_store_record tool
func (s *Server) handleCreateDataStoreRecord(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dataStoreID, err := requireID(request, "dataStoreId")
	if err != nil {
		return errorResponse(err.Error()), nil
	}
	data, err := optionalObject(request, "data")
	if err != nil {
		return errorResponse(err.Error()), nil
	}
	if data == nil {
		return errorResponse("missing required \"data\" argument: must be an object"), nil
	}
	key, err := optionalString(request, "key")
	if err != nil {
		return errorResponse(err.Error()), nil
	}

	req := &makeapi.CreateDataStoreRecordRequest{Data: data}
	if key != nil {
		req.Key = *key
	}

	record, err := s.client.CreateDataStoreRecord(ctx, dataStoreID, req)
	if err != nil {
		return apiResult(err)
	}

	return jsonResponse(record)
}
