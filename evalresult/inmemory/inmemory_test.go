//
// Tencent is pleased to support the open source community by making docretrieval available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// docretrieval is licensed under the Apache License Version 2.0.
//
//

package inmemory

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/docretrieval/evalresult"
	"trpc.group/trpc-go/docretrieval/status"
)

func sampleResult() *evalresult.EvalSetResult {
	return &evalresult.EvalSetResult{
		EvalSetID: "set-1",
		EvalCaseResults: []*evalresult.EvalCaseResult{
			{
				EvalSetID:       "set-1",
				EvalID:          "case-1",
				FinalEvalStatus: status.EvalStatusPassed,
				EvalMetricResults: []*evalresult.EvalMetricResult{
					{MetricName: "recall", Score: 1.0, EvalStatus: status.EvalStatusPassed, Threshold: 0.5},
				},
			},
		},
	}
}

func TestSaveAssignsIDAndTimestamp(t *testing.T) {
	ctx := context.Background()
	m := New()
	defer m.Close()

	id, err := m.Save(ctx, "app", sampleResult())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := m.Get(ctx, "app", id)
	require.NoError(t, err)
	assert.Equal(t, id, got.EvalSetResultID)
	assert.Equal(t, id, got.EvalSetResultName)
	assert.NotNil(t, got.CreationTimestamp)
	require.Len(t, got.EvalCaseResults, 1)
	assert.Equal(t, "case-1", got.EvalCaseResults[0].EvalID)
}

func TestSaveValidation(t *testing.T) {
	ctx := context.Background()
	m := New()

	_, err := m.Save(ctx, "", sampleResult())
	assert.Error(t, err)
	_, err = m.Save(ctx, "app", nil)
	assert.Error(t, err)
}

func TestGetMissing(t *testing.T) {
	ctx := context.Background()
	m := New()

	_, err := m.Get(ctx, "app", "nope")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestGetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	m := New()

	id, err := m.Save(ctx, "app", sampleResult())
	require.NoError(t, err)

	first, err := m.Get(ctx, "app", id)
	require.NoError(t, err)
	first.EvalCaseResults[0].FinalEvalStatus = status.EvalStatusFailed

	second, err := m.Get(ctx, "app", id)
	require.NoError(t, err)
	assert.Equal(t, status.EvalStatusPassed, second.EvalCaseResults[0].FinalEvalStatus)
}

func TestListScopedByApp(t *testing.T) {
	ctx := context.Background()
	m := New()

	first, err := m.Save(ctx, "app-a", sampleResult())
	require.NoError(t, err)
	_, err = m.Save(ctx, "app-b", sampleResult())
	require.NoError(t, err)

	ids, err := m.List(ctx, "app-a")
	require.NoError(t, err)
	assert.Equal(t, []string{first}, ids)

	ids, err = m.List(ctx, "app-absent")
	require.NoError(t, err)
	assert.Empty(t, ids)
}
