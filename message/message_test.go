//
// Tencent is pleased to support the open source community by making docretrieval available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// docretrieval is licensed under the Apache License Version 2.0.
//
//

package message

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleIsValid(t *testing.T) {
	for _, r := range []Role{RoleSystem, RoleUser, RoleAssistant, RoleTool} {
		assert.True(t, r.IsValid())
	}
	assert.False(t, Role("narrator").IsValid())
	assert.False(t, Role("").IsValid())
}

func TestConstructors(t *testing.T) {
	user := NewUserMessage("hello")
	assert.Equal(t, RoleUser, user.Role)
	assert.Equal(t, "hello", user.Content)

	call := ToolCall{
		Type: "function",
		ID:   "call-1",
		Function: FunctionCall{
			Name:      "search_docs",
			Arguments: []byte(`{"section_id":"doc1:p1"}`),
		},
	}
	asst := NewToolCallMessage(call)
	assert.Equal(t, RoleAssistant, asst.Role)
	require.Len(t, asst.ToolCalls, 1)
	assert.Equal(t, "search_docs", asst.ToolCalls[0].Function.Name)

	resp := NewToolMessage("call-1", "search_docs", `{"ok":true}`)
	assert.Equal(t, RoleTool, resp.Role)
	assert.Equal(t, "call-1", resp.ToolID)
	assert.Equal(t, "search_docs", resp.ToolName)
}

func TestToolCallJSONRoundTrip(t *testing.T) {
	in := NewToolCallMessage(ToolCall{
		Type: "function",
		ID:   "call-7",
		Function: FunctionCall{
			Name:      "search_docs",
			Arguments: []byte(`{"section_id":"doc7:para2"}`),
		},
	})
	payload, err := json.Marshal(in)
	require.NoError(t, err)

	var out Message
	require.NoError(t, json.Unmarshal(payload, &out))
	require.Len(t, out.ToolCalls, 1)
	assert.Equal(t, in.ToolCalls[0].Function.Name, out.ToolCalls[0].Function.Name)
	assert.JSONEq(t, string(in.ToolCalls[0].Function.Arguments), string(out.ToolCalls[0].Function.Arguments))
}
