//
// Tencent is pleased to support the open source community by making docretrieval available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// docretrieval is licensed under the Apache License Version 2.0.
//
//

// Package message defines the conversation transcript types consumed by evaluators.
package message

// Role represents the role of the author of a message.
type Role string

// Role constants for the fixed set of message authors.
const (
	// RoleSystem is the role of the system.
	RoleSystem Role = "system"
	// RoleUser is the role of the user.
	RoleUser Role = "user"
	// RoleAssistant is the role of the assistant.
	RoleAssistant Role = "assistant"
	// RoleTool is the role of a tool response.
	RoleTool Role = "tool"
)

// IsValid checks if the role is one of the defined constants.
func (r Role) IsValid() bool {
	switch r {
	case RoleSystem, RoleUser, RoleAssistant, RoleTool:
		return true
	default:
		return false
	}
}

// Message represents a single message in a conversation transcript.
type Message struct {
	// Role is the role of the message author.
	Role Role `json:"role"`
	// Content is the message content.
	Content string `json:"content,omitempty"`
	// ToolID is the ID of the tool call answered by a tool response.
	ToolID string `json:"tool_id,omitempty"`
	// ToolName is the name of the tool answered by a tool response.
	ToolName string `json:"tool_name,omitempty"`
	// ToolCalls is the optional tool calls recorded for the message.
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`
}

// ToolCall represents a recorded call to a tool (function) in a message.
type ToolCall struct {
	// Type of the tool. Currently, only `function` is supported.
	Type string `json:"type"`
	// Function holds the invoked function and its serialized arguments.
	Function FunctionCall `json:"function,omitempty"`
	// ID of the tool call as reported by the model.
	ID string `json:"id,omitempty"`
}

// FunctionCall represents the function invoked by a tool call.
type FunctionCall struct {
	// Name of the invoked function.
	Name string `json:"name"`
	// Arguments passed to the function, json-encoded. The payload is not
	// guaranteed to be valid JSON; consumers must tolerate malformed entries.
	Arguments []byte `json:"arguments,omitempty"`
}

// NewUserMessage creates a user message with the given content.
func NewUserMessage(content string) Message {
	return Message{
		Role:    RoleUser,
		Content: content,
	}
}

// NewAssistantMessage creates an assistant message with the given content.
func NewAssistantMessage(content string) Message {
	return Message{
		Role:    RoleAssistant,
		Content: content,
	}
}

// NewToolCallMessage creates an assistant message carrying the given tool calls.
func NewToolCallMessage(toolCalls ...ToolCall) Message {
	return Message{
		Role:      RoleAssistant,
		ToolCalls: toolCalls,
	}
}

// NewToolMessage creates a tool response message for the given tool call.
func NewToolMessage(toolID, toolName, content string) Message {
	return Message{
		Role:     RoleTool,
		ToolID:   toolID,
		ToolName: toolName,
		Content:  content,
	}
}
