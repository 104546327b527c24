//
// Tencent is pleased to support the open source community by making docretrieval available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// docretrieval is licensed under the Apache License Version 2.0.
//
//

package retrieval

import (
	"context"
	"errors"
	"fmt"

	"trpc.group/trpc-go/docretrieval/evalset"
	"trpc.group/trpc-go/docretrieval/evaluator"
	"trpc.group/trpc-go/docretrieval/evaluator/registry"
	"trpc.group/trpc-go/docretrieval/message"
	"trpc.group/trpc-go/docretrieval/metric"
	"trpc.group/trpc-go/docretrieval/status"
)

// metricEvaluator adapts one rubric metric to the evaluator interface.
type metricEvaluator struct {
	name        string
	description string
	score       func(transcript []message.Message, state evalset.State) float64
}

// Name returns the name of this evaluator.
func (e *metricEvaluator) Name() string {
	return e.name
}

// Description returns a description of what this evaluator does.
func (e *metricEvaluator) Description() string {
	return e.description
}

// Evaluate scores the eval case and derives pass/fail from the metric threshold.
func (e *metricEvaluator) Evaluate(ctx context.Context, evalCase *evalset.EvalCase,
	evalMetric *metric.EvalMetric) (*evaluator.EvaluateResult, error) {
	_ = ctx
	if evalCase == nil {
		return nil, errors.New("eval case is nil")
	}
	if evalMetric == nil {
		return nil, fmt.Errorf("metric %s not configured", e.name)
	}
	score := e.score(evalCase.Transcript, evalCase.State)
	evalStatus := status.EvalStatusFailed
	if score >= evalMetric.Threshold {
		evalStatus = status.EvalStatusPassed
	}
	return &evaluator.EvaluateResult{
		Score:  score,
		Status: evalStatus,
		Details: &evaluator.Details{
			Score: score,
		},
	}, nil
}

// Evaluators returns one evaluator per rubric metric. Each may be used
// independently; none shares state beyond the immutable rubric
// configuration.
func (r *Rubric) Evaluators() []evaluator.Evaluator {
	return []evaluator.Evaluator{
		&metricEvaluator{
			name:        metric.MetricRetrievedCount,
			description: "Counts distinct documents retrieved through the configured tool",
			score: func(transcript []message.Message, _ evalset.State) float64 {
				return r.RetrievedCount(transcript)
			},
		},
		&metricEvaluator{
			name:        metric.MetricTargetCount,
			description: "Counts distinct documents expected to be retrieved",
			score: func(_ []message.Message, state evalset.State) float64 {
				return r.TargetCount(state)
			},
		},
		&metricEvaluator{
			name:        metric.MetricRecall,
			description: "Fraction of target documents that were retrieved",
			score:       r.Recall,
		},
		&metricEvaluator{
			name:        metric.MetricPrecision,
			description: "Fraction of retrieved documents that were targets",
			score:       r.Precision,
		},
	}
}

// Register installs the rubric's metric evaluators into the registry under
// their metric names.
func Register(reg registry.Registry, r *Rubric) error {
	if r == nil {
		return errors.New("rubric is nil")
	}
	for _, e := range r.Evaluators() {
		if err := reg.Register(e.Name(), e); err != nil {
			return fmt.Errorf("register evaluator %s: %w", e.Name(), err)
		}
	}
	return nil
}
