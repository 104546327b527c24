//
// Tencent is pleased to support the open source community by making docretrieval available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// docretrieval is licensed under the Apache License Version 2.0.
//
//

// Package evaluator defines the scoring interface for retrieval evaluation.
package evaluator

import (
	"context"

	"trpc.group/trpc-go/docretrieval/evalset"
	"trpc.group/trpc-go/docretrieval/metric"
	"trpc.group/trpc-go/docretrieval/status"
)

// Evaluator scores a single eval case against one configured metric.
type Evaluator interface {
	// Name returns the name of this evaluator.
	Name() string
	// Description returns a description of what this evaluator does.
	Description() string
	// Evaluate scores the eval case against the given metric configuration.
	Evaluate(ctx context.Context, evalCase *evalset.EvalCase, evalMetric *metric.EvalMetric) (*EvaluateResult, error)
}

// EvaluateResult is the outcome of scoring one eval case with one metric.
type EvaluateResult struct {
	// Score obtained for the metric.
	Score float64 `json:"score"`
	// Status derived from comparing the score against the metric threshold.
	Status status.EvalStatus `json:"status"`
	// Details contains additional metric-specific information.
	Details *Details `json:"details,omitempty"`
}

// Details contains additional metric-specific information.
type Details struct {
	// Reason is the reason for the evaluation result.
	Reason string `json:"reason,omitempty"`
	// Score is the raw score for the evaluation result.
	Score float64 `json:"score,omitempty"`
}
