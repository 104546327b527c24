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
	"trpc.group/trpc-go/docretrieval/evalresult"
	evalresultinmemory "trpc.group/trpc-go/docretrieval/evalresult/inmemory"
	"trpc.group/trpc-go/docretrieval/evalset"
	evalsetinmemory "trpc.group/trpc-go/docretrieval/evalset/inmemory"
	"trpc.group/trpc-go/docretrieval/evaluator/registry"
	"trpc.group/trpc-go/docretrieval/evaluator/retrieval"
	"trpc.group/trpc-go/docretrieval/log"
	"trpc.group/trpc-go/docretrieval/metric"
	metricinmemory "trpc.group/trpc-go/docretrieval/metric/inmemory"
	"trpc.group/trpc-go/docretrieval/service"
)

type options struct {
	evalService                       service.Service
	evalSetManager                    evalset.Manager
	evalResultManager                 evalresult.Manager
	metricManager                     metric.Manager
	registry                          registry.Registry
	evalCaseParallelism               int
	evalCaseParallelEvaluationEnabled bool
}

func newOptions(opt ...Option) *options {
	opts := &options{
		evalSetManager:      evalsetinmemory.New(),
		evalResultManager:   evalresultinmemory.New(),
		metricManager:       metricinmemory.New(),
		registry:            registry.New(),
		evalCaseParallelism: 4,
	}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// Option configures the evaluator.
type Option func(*options)

// WithEvaluationService sets the evaluation service.
// A local service wired to the configured managers is used by default.
func WithEvaluationService(s service.Service) Option {
	return func(o *options) {
		o.evalService = s
	}
}

// WithEvalSetManager sets the eval set manager.
// InMemory eval set manager is used by default.
func WithEvalSetManager(m evalset.Manager) Option {
	return func(o *options) {
		o.evalSetManager = m
	}
}

// WithEvalResultManager sets the eval result manager.
// InMemory eval result manager is used by default.
func WithEvalResultManager(m evalresult.Manager) Option {
	return func(o *options) {
		o.evalResultManager = m
	}
}

// WithMetricManager sets the metric configuration manager.
// InMemory metric manager is used by default.
func WithMetricManager(m metric.Manager) Option {
	return func(o *options) {
		o.metricManager = m
	}
}

// WithRegistry sets the evaluator registry.
// An empty registry is used by default.
func WithRegistry(r registry.Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}

// WithRubric installs the metric evaluators of the given retrieval rubric
// into the configured registry.
func WithRubric(r *retrieval.Rubric) Option {
	return func(o *options) {
		if err := retrieval.Register(o.registry, r); err != nil {
			log.Errorf("register retrieval rubric: %v", err)
		}
	}
}

// WithEvalCaseParallelism sets the number of eval cases evaluated concurrently.
func WithEvalCaseParallelism(parallelism int) Option {
	return func(o *options) {
		o.evalCaseParallelism = parallelism
	}
}

// WithEvalCaseParallelEvaluationEnabled enables concurrent case evaluation.
// Evaluation runs serially by default.
func WithEvalCaseParallelEvaluationEnabled(enabled bool) Option {
	return func(o *options) {
		o.evalCaseParallelEvaluationEnabled = enabled
	}
}
