//
// Tencent is pleased to support the open source community by making docretrieval available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// docretrieval is licensed under the Apache License Version 2.0.
//
//

// Package docretrieval scores document-retrieval behavior of tool-using
// agents against recorded eval sets.
package docretrieval

import (
	"context"
	"errors"
	"fmt"
	"time"

	"trpc.group/trpc-go/docretrieval/evalresult"
	"trpc.group/trpc-go/docretrieval/evalset"
	"trpc.group/trpc-go/docretrieval/evaluator/registry"
	"trpc.group/trpc-go/docretrieval/metric"
	"trpc.group/trpc-go/docretrieval/service"
	"trpc.group/trpc-go/docretrieval/service/local"
	"trpc.group/trpc-go/docretrieval/status"
)

// Evaluator evaluates the eval sets of an app with its configured metrics.
type Evaluator interface {
	// Evaluate runs evaluation against the specified eval set.
	Evaluate(ctx context.Context, evalSetID string) (*EvaluationResult, error)
	// Close closes the evaluator and releases owned resources.
	Close() error
}

// EvaluationResult contains the outcome of one evaluation run.
type EvaluationResult struct {
	// AppName identifies the app being evaluated.
	AppName string `json:"appName"`
	// EvalSetID identifies the evaluation set used in this run.
	EvalSetID string `json:"evalSetId"`
	// OverallStatus summarizes the evaluation status across cases.
	OverallStatus status.EvalStatus `json:"overallStatus"`
	// ExecutionTime records the total latency for the evaluation run.
	ExecutionTime time.Duration `json:"executionTime"`
	// EvalResult contains the persisted results of the evaluation set.
	EvalResult *evalresult.EvalSetResult `json:"evalSetResult"`
}

// New creates an Evaluator for the given app with the supplied options.
func New(appName string, opt ...Option) (Evaluator, error) {
	if appName == "" {
		return nil, errors.New("app name is empty")
	}
	opts := newOptions(opt...)
	e := &setEvaluator{
		appName:           appName,
		evalSetManager:    opts.evalSetManager,
		evalResultManager: opts.evalResultManager,
		metricManager:     opts.metricManager,
		registry:          opts.registry,
		evalService:       opts.evalService,
	}
	if e.evalSetManager == nil {
		return nil, errors.New("eval set manager is nil")
	}
	if e.evalResultManager == nil {
		return nil, errors.New("eval result manager is nil")
	}
	if e.metricManager == nil {
		return nil, errors.New("metric manager is nil")
	}
	if e.registry == nil {
		return nil, errors.New("registry is nil")
	}
	if e.evalService == nil {
		evalService, err := local.New(
			service.WithEvalSetManager(e.evalSetManager),
			service.WithEvalResultManager(e.evalResultManager),
			service.WithRegistry(e.registry),
			service.WithEvalCaseParallelism(opts.evalCaseParallelism),
			service.WithEvalCaseParallelEvaluationEnabled(opts.evalCaseParallelEvaluationEnabled),
		)
		if err != nil {
			return nil, fmt.Errorf("create eval service: %w", err)
		}
		e.evalService = evalService
	}
	return e, nil
}

// setEvaluator is the default implementation of Evaluator.
type setEvaluator struct {
	appName           string
	evalSetManager    evalset.Manager
	evalResultManager evalresult.Manager
	metricManager     metric.Manager
	registry          registry.Registry
	evalService       service.Service
}

// Evaluate runs the metrics configured for the eval set over all its cases.
func (e *setEvaluator) Evaluate(ctx context.Context, evalSetID string) (*EvaluationResult, error) {
	if evalSetID == "" {
		return nil, errors.New("eval set id is not configured")
	}
	start := time.Now()
	evalMetrics, err := e.configuredMetrics(ctx, evalSetID)
	if err != nil {
		return nil, err
	}
	evalSetResult, err := e.evalService.Evaluate(ctx, &service.EvaluateRequest{
		AppName:   e.appName,
		EvalSetID: evalSetID,
		EvaluateConfig: &service.EvaluateConfig{
			EvalMetrics: evalMetrics,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("evaluate eval set %s: %w", evalSetID, err)
	}
	overallStatus := status.EvalStatusNotEvaluated
	if evalSetResult.Summary != nil {
		overallStatus = evalSetResult.Summary.OverallStatus
	}
	return &EvaluationResult{
		AppName:       e.appName,
		EvalSetID:     evalSetID,
		OverallStatus: overallStatus,
		ExecutionTime: time.Since(start),
		EvalResult:    evalSetResult,
	}, nil
}

// Close closes the evaluator and releases owned resources.
func (e *setEvaluator) Close() error {
	var overallErr error
	if e.evalService != nil {
		if err := e.evalService.Close(); err != nil {
			overallErr = errors.Join(overallErr, fmt.Errorf("close eval service: %w", err))
		}
	}
	if e.evalSetManager != nil {
		if err := e.evalSetManager.Close(); err != nil {
			overallErr = errors.Join(overallErr, fmt.Errorf("close eval set manager: %w", err))
		}
	}
	if e.metricManager != nil {
		if err := e.metricManager.Close(); err != nil {
			overallErr = errors.Join(overallErr, fmt.Errorf("close metric manager: %w", err))
		}
	}
	if e.evalResultManager != nil {
		if err := e.evalResultManager.Close(); err != nil {
			overallErr = errors.Join(overallErr, fmt.Errorf("close eval result manager: %w", err))
		}
	}
	return overallErr
}

// configuredMetrics fetches the metric configuration applied to this run.
func (e *setEvaluator) configuredMetrics(ctx context.Context, evalSetID string) ([]*metric.EvalMetric, error) {
	metricNames, err := e.metricManager.List(ctx, e.appName, evalSetID)
	if err != nil {
		return nil, fmt.Errorf("list metrics: %w", err)
	}
	evalMetrics := make([]*metric.EvalMetric, 0, len(metricNames))
	for _, metricName := range metricNames {
		evalMetric, err := e.metricManager.Get(ctx, e.appName, evalSetID, metricName)
		if err != nil {
			return nil, fmt.Errorf("get metric %s: %w", metricName, err)
		}
		evalMetrics = append(evalMetrics, evalMetric)
	}
	if len(evalMetrics) == 0 {
		return nil, fmt.Errorf("no metrics configured for eval set %s", evalSetID)
	}
	return evalMetrics, nil
}
