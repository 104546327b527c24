//
// Tencent is pleased to support the open source community by making docretrieval available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// docretrieval is licensed under the Apache License Version 2.0.
//
//

// Package local provides a local implementation of service.Service.
package local

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/panjf2000/ants/v2"

	"trpc.group/trpc-go/docretrieval/epochtime"
	"trpc.group/trpc-go/docretrieval/evalresult"
	"trpc.group/trpc-go/docretrieval/evalset"
	"trpc.group/trpc-go/docretrieval/evaluator/registry"
	istatus "trpc.group/trpc-go/docretrieval/internal/status"
	"trpc.group/trpc-go/docretrieval/log"
	"trpc.group/trpc-go/docretrieval/metric"
	"trpc.group/trpc-go/docretrieval/service"
	"trpc.group/trpc-go/docretrieval/status"
)

// local is a local implementation of service.Service.
type local struct {
	evalSetManager                    evalset.Manager
	evalResultManager                 evalresult.Manager
	registry                          registry.Registry
	evalCaseParallelism               int
	evalCaseParallelEvaluationEnabled bool
	evalCaseEvaluationPool            *ants.PoolWithFunc
}

// New returns a new local evaluation service.
// If no service.Option is provided, the service will use the default options.
func New(opt ...service.Option) (service.Service, error) {
	opts := service.NewOptions(opt...)
	if opts.EvalCaseParallelEvaluationEnabled && opts.EvalCaseParallelism <= 0 {
		return nil, errors.New("eval case parallelism must be greater than 0")
	}
	if opts.EvalSetManager == nil {
		return nil, errors.New("eval set manager is nil")
	}
	if opts.EvalResultManager == nil {
		return nil, errors.New("eval result manager is nil")
	}
	if opts.Registry == nil {
		return nil, errors.New("registry is nil")
	}
	svc := &local{
		evalSetManager:                    opts.EvalSetManager,
		evalResultManager:                 opts.EvalResultManager,
		registry:                          opts.Registry,
		evalCaseParallelism:               opts.EvalCaseParallelism,
		evalCaseParallelEvaluationEnabled: opts.EvalCaseParallelEvaluationEnabled,
	}
	if svc.evalCaseParallelEvaluationEnabled {
		pool, err := createEvalCaseEvaluationPool(svc.evalCaseParallelism)
		if err != nil {
			return nil, fmt.Errorf("create eval case evaluation pool: %w", err)
		}
		svc.evalCaseEvaluationPool = pool
	}
	return svc, nil
}

// Close closes the eval service and releases owned resources.
func (s *local) Close() error {
	if s.evalCaseEvaluationPool != nil {
		s.evalCaseEvaluationPool.Release()
	}
	return nil
}

// Evaluate runs the configured metrics over the eval set cases and returns
// the persisted eval set result.
func (s *local) Evaluate(ctx context.Context, req *service.EvaluateRequest) (*evalresult.EvalSetResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	evalCases, err := s.selectCases(ctx, req)
	if err != nil {
		return nil, err
	}
	evalCaseResults, err := s.evaluateCases(ctx, req, evalCases)
	if err != nil {
		return nil, err
	}
	evalSetResult := &evalresult.EvalSetResult{
		EvalSetID:         req.EvalSetID,
		EvalCaseResults:   evalCaseResults,
		CreationTimestamp: epochtime.Now(),
	}
	evalSetResult.Summary = evalresult.Summarize(evalSetResult)
	evalSetResultID, err := s.evalResultManager.Save(ctx, req.AppName, evalSetResult)
	if err != nil {
		return nil, fmt.Errorf("save eval set result: %w", err)
	}
	evalSetResult.EvalSetResultID = evalSetResultID
	evalSetResult.EvalSetResultName = evalSetResultID
	return evalSetResult, nil
}

func validateRequest(req *service.EvaluateRequest) error {
	if req == nil {
		return errors.New("evaluate request is nil")
	}
	if req.AppName == "" {
		return errors.New("app name is empty")
	}
	if req.EvalSetID == "" {
		return errors.New("eval set id is empty")
	}
	if req.EvaluateConfig == nil {
		return errors.New("evaluate config is nil")
	}
	if len(req.EvaluateConfig.EvalMetrics) == 0 {
		return errors.New("evaluate config has no metrics")
	}
	return nil
}

// selectCases loads the eval set and resolves the cases named by the request.
func (s *local) selectCases(ctx context.Context, req *service.EvaluateRequest) ([]*evalset.EvalCase, error) {
	es, err := s.evalSetManager.Get(ctx, req.AppName, req.EvalSetID)
	if err != nil {
		return nil, fmt.Errorf("get eval set %s: %w", req.EvalSetID, err)
	}
	if len(req.EvalCaseIDs) == 0 {
		return es.EvalCases, nil
	}
	byID := make(map[string]*evalset.EvalCase, len(es.EvalCases))
	for _, evalCase := range es.EvalCases {
		byID[evalCase.EvalID] = evalCase
	}
	evalCases := make([]*evalset.EvalCase, 0, len(req.EvalCaseIDs))
	for _, id := range req.EvalCaseIDs {
		evalCase, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("eval case %s not found in eval set %s: %w",
				id, req.EvalSetID, os.ErrNotExist)
		}
		evalCases = append(evalCases, evalCase)
	}
	return evalCases, nil
}

// evaluateCases evaluates the cases serially, or through the worker pool when
// parallel evaluation is enabled. Result order follows case order either way.
func (s *local) evaluateCases(ctx context.Context, req *service.EvaluateRequest,
	evalCases []*evalset.EvalCase) ([]*evalresult.EvalCaseResult, error) {
	results := make([]*evalresult.EvalCaseResult, len(evalCases))
	if !s.evalCaseParallelEvaluationEnabled {
		for i, evalCase := range evalCases {
			results[i] = s.evaluateCase(ctx, req, evalCase)
		}
		return results, nil
	}
	var wg sync.WaitGroup
	for i, evalCase := range evalCases {
		param := evalCaseEvaluationParamPool.Get().(*evalCaseEvaluationParam)
		param.idx = i
		param.ctx = ctx
		param.req = req
		param.evalCase = evalCase
		param.svc = s
		param.results = results
		param.wg = &wg
		wg.Add(1)
		if err := s.evalCaseEvaluationPool.Invoke(param); err != nil {
			wg.Done()
			param.reset()
			evalCaseEvaluationParamPool.Put(param)
			return nil, fmt.Errorf("submit eval case %s: %w", evalCase.EvalID, err)
		}
	}
	wg.Wait()
	return results, nil
}

// evaluateCase runs every configured metric against one eval case. Evaluation
// failures are captured in the case result rather than aborting the run.
func (s *local) evaluateCase(ctx context.Context, req *service.EvaluateRequest,
	evalCase *evalset.EvalCase) *evalresult.EvalCaseResult {
	caseResult := &evalresult.EvalCaseResult{
		EvalSetID: req.EvalSetID,
		EvalID:    evalCase.EvalID,
	}
	var errs error
	metricResults := make([]*evalresult.EvalMetricResult, 0, len(req.EvaluateConfig.EvalMetrics))
	for _, evalMetric := range req.EvaluateConfig.EvalMetrics {
		metricResult, err := s.evaluateMetric(ctx, evalMetric, evalCase)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				// Metrics without a registered evaluator are intentionally absent.
				log.Debugf("skip metric %s for eval case %s: %v", evalMetric.MetricName, evalCase.EvalID, err)
				continue
			}
			errs = multierror.Append(errs, err)
			continue
		}
		metricResults = append(metricResults, metricResult)
	}
	caseResult.EvalMetricResults = metricResults
	if errs != nil {
		caseResult.FinalEvalStatus = status.EvalStatusFailed
		caseResult.ErrorMessage = errs.Error()
		return caseResult
	}
	statuses := make([]status.EvalStatus, 0, len(metricResults))
	for _, metricResult := range metricResults {
		statuses = append(statuses, metricResult.EvalStatus)
	}
	finalStatus, err := istatus.Summarize(statuses)
	if err != nil {
		caseResult.FinalEvalStatus = status.EvalStatusFailed
		caseResult.ErrorMessage = err.Error()
		return caseResult
	}
	caseResult.FinalEvalStatus = finalStatus
	return caseResult
}

// evaluateMetric locates the evaluator registered for the metric and runs the
// evaluation.
func (s *local) evaluateMetric(ctx context.Context, evalMetric *metric.EvalMetric,
	evalCase *evalset.EvalCase) (*evalresult.EvalMetricResult, error) {
	metricEvaluator, err := s.registry.Get(evalMetric.MetricName)
	if err != nil {
		return nil, fmt.Errorf("get evaluator for metric %s: %w", evalMetric.MetricName, err)
	}
	result, err := metricEvaluator.Evaluate(ctx, evalCase, evalMetric)
	if err != nil {
		return nil, fmt.Errorf("run evaluation for metric %s: %w", evalMetric.MetricName, err)
	}
	return &evalresult.EvalMetricResult{
		MetricName: evalMetric.MetricName,
		Score:      result.Score,
		EvalStatus: result.Status,
		Threshold:  evalMetric.Threshold,
		Details:    result.Details,
	}, nil
}
