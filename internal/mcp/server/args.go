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
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/makebridge/makebridge/internal/makeapi"
)

// Argument extraction helpers. A genuinely absent optional field yields a
// nil pointer, never a zero default, so the API client can distinguish
// "not provided" from an explicit zero or empty string.

// requireID extracts a required numeric identifier argument.
func requireID(request mcp.CallToolRequest, key string) (int64, error) {
	v, err := request.RequireInt(key)
	if err != nil {
		return 0, fmt.Errorf("missing or invalid %q argument: must be a number", key)
	}
	return int64(v), nil
}

// optionalInt64 returns the argument as *int64, or nil when absent.
func optionalInt64(request mcp.CallToolRequest, key string) (*int64, error) {
	args := request.GetArguments()
	raw, ok := args[key]
	if !ok || raw == nil {
		return nil, nil
	}

	switch v := raw.(type) {
	case float64:
		n := int64(v)
		return &n, nil
	case int:
		n := int64(v)
		return &n, nil
	case int64:
		return &v, nil
	default:
		return nil, fmt.Errorf("invalid %q argument: must be a number", key)
	}
}

// optionalInt returns the argument as *int, or nil when absent.
func optionalInt(request mcp.CallToolRequest, key string) (*int, error) {
	v, err := optionalInt64(request, key)
	if err != nil || v == nil {
		return nil, err
	}
	n := int(*v)
	return &n, nil
}

// optionalString returns the argument as *string, or nil when absent.
// An explicitly provided empty string is preserved.
func optionalString(request mcp.CallToolRequest, key string) (*string, error) {
	args := request.GetArguments()
	raw, ok := args[key]
	if !ok || raw == nil {
		return nil, nil
	}

	s, ok := raw.(string)
	if !ok {
		return nil, fmt.Errorf("invalid %q argument: must be a string", key)
	}
	return &s, nil
}

// optionalBool returns the argument as *bool, or nil when absent.
func optionalBool(request mcp.CallToolRequest, key string) (*bool, error) {
	args := request.GetArguments()
	raw, ok := args[key]
	if !ok || raw == nil {
		return nil, nil
	}

	b, ok := raw.(bool)
	if !ok {
		return nil, fmt.Errorf("invalid %q argument: must be a boolean", key)
	}
	return &b, nil
}

// optionalObject returns the argument as a map, or nil when absent.
func optionalObject(request mcp.CallToolRequest, key string) (map[string]interface{}, error) {
	args := request.GetArguments()
	raw, ok := args[key]
	if !ok || raw == nil {
		return nil, nil
	}

	m, ok := raw.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("invalid %q argument: must be an object", key)
	}
	return m, nil
}

// paginationArgs assembles the optional paging controls shared by every
// list tool. Returns nil when no paging argument was provided.
func paginationArgs(request mcp.CallToolRequest) (*makeapi.Pagination, error) {
	offset, err := optionalInt(request, "offset")
	if err != nil {
		return nil, err
	}
	limit, err := optionalInt(request, "limit")
	if err != nil {
		return nil, err
	}
	sortBy, err := optionalString(request, "sortBy")
	if err != nil {
		return nil, err
	}
	sortDir, err := optionalString(request, "sortDir")
	if err != nil {
		return nil, err
	}

	if offset == nil && limit == nil && sortBy == nil && sortDir == nil {
		return nil, nil
	}
	return &makeapi.Pagination{
		Offset:  offset,
		Limit:   limit,
		SortBy:  sortBy,
		SortDir: sortDir,
	}, nil
}
