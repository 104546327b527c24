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

	"trpc.group/trpc-go/docretrieval/evalresult"
	"trpc.group/trpc-go/docretrieval/status"
)

func sampleResult(id string) *evalresult.EvalSetResult {
	return &evalresult.EvalSetResult{
		EvalSetResultID: id,
		EvalSetID:       "set-1",
		EvalCaseResults: []*evalresult.EvalCaseResult{
			{
				EvalSetID:       "set-1",
				EvalID:          "case-1",
				FinalEvalStatus: status.EvalStatusPassed,
			},
		},
	}
}

func TestSaveAndGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := New(WithBaseDir(t.TempDir()))
	defer m.Close()

	id, err := m.Save(ctx, "app", sampleResult("result-1"))
	require.NoError(t, err)
	assert.Equal(t, "result-1", id)

	got, err := m.Get(ctx, "app", id)
	require.NoError(t, err)
	assert.Equal(t, "result-1", got.EvalSetResultID)
	assert.Equal(t, "set-1", got.EvalSetID)
	require.Len(t, got.EvalCaseResults, 1)
	assert.Equal(t, status.EvalStatusPassed, got.EvalCaseResults[0].FinalEvalStatus)
	assert.NotNil(t, got.CreationTimestamp)
}

func TestSaveAssignsID(t *testing.T) {
	ctx := context.Background()
	baseDir := t.TempDir()
	m := New(WithBaseDir(baseDir))

	id, err := m.Save(ctx, "app", sampleResult(""))
	require.NoError(t, err)
	require.NotEmpty(t, id)

	_, err = os.Stat(filepath.Join(baseDir, "app", id+".evalset_result.json"))
	require.NoError(t, err)
}

func TestGetMissing(t *testing.T) {
	ctx := context.Background()
	m := New(WithBaseDir(t.TempDir()))

	_, err := m.Get(ctx, "app", "absent")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestListIgnoresUnrelatedFiles(t *testing.T) {
	ctx := context.Background()
	baseDir := t.TempDir()
	m := New(WithBaseDir(baseDir))

	_, err := m.Save(ctx, "app", sampleResult("result-1"))
	require.NoError(t, err)
	_, err = m.Save(ctx, "app", sampleResult("result-2"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(baseDir, "app", "notes.txt"), []byte("x"), 0o644))

	ids, err := m.List(ctx, "app")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"result-1", "result-2"}, ids)

	ids, err = m.List(ctx, "other-app")
	require.NoError(t, err)
	assert.Empty(t, ids)
}
