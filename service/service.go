//
// Tencent is pleased to support the open source community by making docretrieval available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// docretrieval is licensed under the Apache License Version 2.0.
//
//

// Package service defines the evaluation service interface.
package service

import (
	"context"

	"trpc.group/trpc-go/docretrieval/evalresult"
	"trpc.group/trpc-go/docretrieval/metric"
)

// Service runs configured metrics over the cases of an eval set and persists
// the outcome.
type Service interface {
	// Evaluate evaluates the requested eval set and returns the persisted
	// eval set result.
	Evaluate(ctx context.Context, request *EvaluateRequest) (*evalresult.EvalSetResult, error)
	// Close closes the service and releases owned resources.
	Close() error
}

// EvaluateRequest represents a request for evaluation.
type EvaluateRequest struct {
	// AppName is the name of the app.
	AppName string `json:"app_name"`
	// EvalSetID is the ID of the eval set.
	EvalSetID string `json:"eval_set_id"`
	// EvalCaseIDs restricts evaluation to the listed cases. Empty means all.
	EvalCaseIDs []string `json:"eval_case_ids,omitempty"`
	// EvaluateConfig carries the metrics to evaluate.
	EvaluateConfig *EvaluateConfig `json:"evaluate_config"`
}

// EvaluateConfig configures the metrics of an evaluation run.
type EvaluateConfig struct {
	// EvalMetrics are the metrics to evaluate for each eval case.
	EvalMetrics []*metric.EvalMetric `json:"eval_metrics"`
}
