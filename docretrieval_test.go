//
// Tencent is pleased to support the open source community by making docretrieval available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// docretrieval is licensed under the Apache License Version 2.0.
//
//

package docretrieval

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/docretrieval/evalresult"
	evalresultinmemory "trpc.group/trpc-go/docretrieval/evalresult/inmemory"
	"trpc.group/trpc-go/docretrieval/evalset"
	evalsetinmemory "trpc.group/trpc-go/docretrieval/evalset/inmemory"
	"trpc.group/trpc-go/docretrieval/evaluator/retrieval"
	"trpc.group/trpc-go/docretrieval/message"
	"trpc.group/trpc-go/docretrieval/metric"
	metricinmemory "trpc.group/trpc-go/docretrieval/metric/inmemory"
	"trpc.group/trpc-go/docretrieval/status"
)

const (
	testApp     = "docs-agent"
	testEvalSet = "retrieval-smoke"
	searchTool  = "search_documents"
)

func sectionCall(sectionID string) message.Message {
	return message.NewToolCallMessage(message.ToolCall{
		Type: "function",
		Function: message.FunctionCall{
			Name:      searchTool,
			Arguments: []byte(fmt.Sprintf(`{"section_id":%q}`, sectionID)),
		},
	})
}

func seedEvalSet(t *testing.T) evalset.Manager {
	t.Helper()
	ctx := context.Background()
	m := evalsetinmemory.New()
	_, err := m.Create(ctx, testApp, testEvalSet)
	require.NoError(t, err)
	require.NoError(t, m.AddCase(ctx, testApp, testEvalSet, &evalset.EvalCase{
		EvalID: "exact-hit",
		Transcript: []message.Message{
			message.NewUserMessage("where is the refund policy?"),
			sectionCall("doc7:para2"),
		},
		State: evalset.State{"target_documents": []string{"doc7"}},
	}))
	require.NoError(t, m.AddCase(ctx, testApp, testEvalSet, &evalset.EvalCase{
		EvalID: "partial-hit",
		Transcript: []message.Message{
			sectionCall("a:1"),
			sectionCall("b:1"),
		},
		State: evalset.State{"target_documents": []string{"a", "c"}},
	}))
	return m
}

func seedMetrics(t *testing.T) metric.Manager {
	t.Helper()
	ctx := context.Background()
	m := metricinmemory.New()
	for _, name := range []string{
		metric.MetricRetrievedCount,
		metric.MetricTargetCount,
		metric.MetricRecall,
		metric.MetricPrecision,
	} {
		threshold := 1.0
		if name == metric.MetricRecall || name == metric.MetricPrecision {
			threshold = 0.5
		}
		require.NoError(t, m.Set(ctx, testApp, testEvalSet, &metric.EvalMetric{
			MetricName: name,
			Threshold:  threshold,
		}))
	}
	return m
}

func TestNewValidation(t *testing.T) {
	_, err := New("")
	assert.Error(t, err)
	_, err = New(testApp, WithEvalSetManager(nil))
	assert.Error(t, err)
	_, err = New(testApp, WithEvalResultManager(nil))
	assert.Error(t, err)
	_, err = New(testApp, WithMetricManager(nil))
	assert.Error(t, err)
	_, err = New(testApp, WithRegistry(nil))
	assert.Error(t, err)
}

func TestEvaluateEndToEnd(t *testing.T) {
	ctx := context.Background()
	resultManager := evalresultinmemory.New()
	e, err := New(testApp,
		WithEvalSetManager(seedEvalSet(t)),
		WithMetricManager(seedMetrics(t)),
		WithEvalResultManager(resultManager),
		WithRubric(retrieval.New(searchTool)),
	)
	require.NoError(t, err)
	defer e.Close()

	result, err := e.Evaluate(ctx, testEvalSet)
	require.NoError(t, err)
	assert.Equal(t, testApp, result.AppName)
	assert.Equal(t, testEvalSet, result.EvalSetID)
	assert.Equal(t, status.EvalStatusPassed, result.OverallStatus)
	assert.Greater(t, result.ExecutionTime, time.Duration(0))

	require.NotNil(t, result.EvalResult)
	require.Len(t, result.EvalResult.EvalCaseResults, 2)

	byID := make(map[string]*evalresult.EvalCaseResult)
	for _, caseResult := range result.EvalResult.EvalCaseResults {
		byID[caseResult.EvalID] = caseResult
	}
	exact := byID["exact-hit"]
	require.NotNil(t, exact)
	assert.Equal(t, status.EvalStatusPassed, exact.FinalEvalStatus)
	require.Len(t, exact.EvalMetricResults, 4)
	scores := make(map[string]float64)
	for _, metricResult := range exact.EvalMetricResults {
		scores[metricResult.MetricName] = metricResult.Score
	}
	assert.Equal(t, 1.0, scores[metric.MetricRetrievedCount])
	assert.Equal(t, 1.0, scores[metric.MetricTargetCount])
	assert.Equal(t, 1.0, scores[metric.MetricRecall])
	assert.Equal(t, 1.0, scores[metric.MetricPrecision])

	partial := byID["partial-hit"]
	require.NotNil(t, partial)
	assert.Equal(t, status.EvalStatusPassed, partial.FinalEvalStatus)
	for _, metricResult := range partial.EvalMetricResults {
		switch metricResult.MetricName {
		case metric.MetricRecall, metric.MetricPrecision:
			assert.Equal(t, 0.5, metricResult.Score, metricResult.MetricName)
		case metric.MetricRetrievedCount, metric.MetricTargetCount:
			assert.Equal(t, 2.0, metricResult.Score, metricResult.MetricName)
		}
	}

	// The run is persisted under the app.
	ids, err := resultManager.List(ctx, testApp)
	require.NoError(t, err)
	require.Len(t, ids, 1)
	assert.Equal(t, result.EvalResult.EvalSetResultID, ids[0])
}

func TestEvaluateNoMetricsConfigured(t *testing.T) {
	ctx := context.Background()
	e, err := New(testApp,
		WithEvalSetManager(seedEvalSet(t)),
		WithRubric(retrieval.New(searchTool)),
	)
	require.NoError(t, err)
	defer e.Close()

	_, err = e.Evaluate(ctx, testEvalSet)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no metrics configured")
}

func TestEvaluateEmptyEvalSetID(t *testing.T) {
	e, err := New(testApp)
	require.NoError(t, err)
	defer e.Close()

	_, err = e.Evaluate(context.Background(), "")
	require.Error(t, err)
}
