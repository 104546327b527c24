//
// Tencent is pleased to support the open source community by making docretrieval available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// docretrieval is licensed under the Apache License Version 2.0.
//
//

package local

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/docretrieval/evalset"
	"trpc.group/trpc-go/docretrieval/message"
)

func TestManagerRoundTrip(t *testing.T) {
	ctx := context.Background()
	baseDir := t.TempDir()
	m := New(WithBaseDir(baseDir))
	defer m.Close()

	_, err := m.Get(ctx, "app", "set")
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = m.Create(ctx, "app", "set")
	require.NoError(t, err)
	_, statErr := os.Stat(filepath.Join(baseDir, "app", "set.evalset.json"))
	require.NoError(t, statErr)

	evalCase := &evalset.EvalCase{
		EvalID: "case-1",
		Transcript: []message.Message{
			message.NewToolCallMessage(message.ToolCall{
				Type: "function",
				Function: message.FunctionCall{
					Name:      "search_docs",
					Arguments: []byte(`{"section_id":"doc7:para2"}`),
				},
			}),
		},
		State: evalset.State{
			"target_documents": []any{"doc7"},
		},
	}
	require.NoError(t, m.AddCase(ctx, "app", "set", evalCase))

	// A fresh manager over the same directory must see the persisted data.
	reopened := New(WithBaseDir(baseDir))
	defer reopened.Close()
	got, err := reopened.GetCase(ctx, "app", "set", "case-1")
	require.NoError(t, err)
	require.Len(t, got.Transcript, 1)
	assert.Equal(t, "search_docs", got.Transcript[0].ToolCalls[0].Function.Name)
	assert.Equal(t, []any{"doc7"}, got.State["target_documents"])
}

func TestManagerCaseUpdateDelete(t *testing.T) {
	ctx := context.Background()
	m := New(WithBaseDir(t.TempDir()))
	defer m.Close()

	_, err := m.Create(ctx, "app", "set")
	require.NoError(t, err)
	require.NoError(t, m.AddCase(ctx, "app", "set", &evalset.EvalCase{EvalID: "case-1"}))
	assert.Error(t, m.AddCase(ctx, "app", "set", &evalset.EvalCase{EvalID: "case-1"}))

	require.NoError(t, m.UpdateCase(ctx, "app", "set", &evalset.EvalCase{EvalID: "case-1", Description: "updated"}))
	got, err := m.GetCase(ctx, "app", "set", "case-1")
	require.NoError(t, err)
	assert.Equal(t, "updated", got.Description)

	require.NoError(t, m.DeleteCase(ctx, "app", "set", "case-1"))
	_, err = m.GetCase(ctx, "app", "set", "case-1")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCreateExistingSetKeepsCases(t *testing.T) {
	ctx := context.Background()
	m := New(WithBaseDir(t.TempDir()))
	defer m.Close()

	_, err := m.Create(ctx, "app", "set")
	require.NoError(t, err)
	require.NoError(t, m.AddCase(ctx, "app", "set", &evalset.EvalCase{EvalID: "case-1"}))

	es, err := m.Create(ctx, "app", "set")
	require.NoError(t, err)
	assert.Len(t, es.EvalCases, 1)
}
