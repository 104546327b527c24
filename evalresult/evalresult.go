//
// Tencent is pleased to support the open source community by making docretrieval available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// docretrieval is licensed under the Apache License Version 2.0.
//
//

// Package evalresult defines the persisted outcome of an evaluation run.
package evalresult

import (
	"context"

	"trpc.group/trpc-go/docretrieval/epochtime"
	"trpc.group/trpc-go/docretrieval/evaluator"
	"trpc.group/trpc-go/docretrieval/status"
)

// EvalSetResult represents the evaluation result for an entire eval set.
type EvalSetResult struct {
	// EvalSetResultID uniquely identifies this result.
	EvalSetResultID string `json:"evalSetResultId,omitempty"`
	// EvalSetResultName is the name of this result.
	EvalSetResultName string `json:"evalSetResultName,omitempty"`
	// EvalSetID identifies the eval set.
	EvalSetID string `json:"evalSetId,omitempty"`
	// EvalCaseResults contains results for each eval case.
	EvalCaseResults []*EvalCaseResult `json:"evalCaseResults,omitempty"`
	// Summary aggregates the case results for easier inspection.
	Summary *EvalSetResultSummary `json:"summary,omitempty"`
	// CreationTimestamp when this result was created.
	CreationTimestamp *epochtime.EpochTime `json:"creationTimestamp,omitempty"`
}

// EvalCaseResult represents the result of a single evaluation case.
type EvalCaseResult struct {
	// EvalSetID identifies the eval set.
	EvalSetID string `json:"evalSetId,omitempty"`
	// EvalID identifies the eval case.
	EvalID string `json:"evalId,omitempty"`
	// FinalEvalStatus is the final eval status for this eval case.
	FinalEvalStatus status.EvalStatus `json:"finalEvalStatus,omitempty"`
	// EvalMetricResults contains the result for each evaluated metric.
	EvalMetricResults []*EvalMetricResult `json:"evalMetricResults,omitempty"`
	// ErrorMessage contains the error message when evaluation execution failed.
	ErrorMessage string `json:"errorMessage,omitempty"`
}

// EvalMetricResult represents the result of a single metric evaluation.
type EvalMetricResult struct {
	// MetricName identifies the metric.
	MetricName string `json:"metricName,omitempty"`
	// Score obtained for this metric.
	Score float64 `json:"score,omitempty"`
	// EvalStatus of this metric evaluation.
	EvalStatus status.EvalStatus `json:"evalStatus,omitempty"`
	// Threshold that was used.
	Threshold float64 `json:"threshold,omitempty"`
	// Details contains additional metric-specific information.
	Details *evaluator.Details `json:"details,omitempty"`
}

// Manager defines the interface for managing evaluation results.
type Manager interface {
	// Save stores an evaluation result and returns its ID, assigning one when
	// the result does not carry an ID yet.
	Save(ctx context.Context, appName string, evalSetResult *EvalSetResult) (string, error)
	// Get retrieves an evaluation result by evalSetResultID.
	Get(ctx context.Context, appName, evalSetResultID string) (*EvalSetResult, error)
	// List returns all available evaluation result IDs for the app.
	List(ctx context.Context, appName string) ([]string, error)
	// Close releases resources held by the manager.
	Close() error
}
