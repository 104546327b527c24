//
// Tencent is pleased to support the open source community by making docretrieval available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// docretrieval is licensed under the Apache License Version 2.0.
//
//

package service

import (
	"trpc.group/trpc-go/docretrieval/evalresult"
	evalresultinmemory "trpc.group/trpc-go/docretrieval/evalresult/inmemory"
	"trpc.group/trpc-go/docretrieval/evalset"
	evalsetinmemory "trpc.group/trpc-go/docretrieval/evalset/inmemory"
	"trpc.group/trpc-go/docretrieval/evaluator/registry"
)

// defaultEvalCaseParallelism bounds concurrent case evaluation when parallel
// evaluation is enabled without an explicit parallelism.
const defaultEvalCaseParallelism = 4

// Options holds the options for the evaluation service.
type Options struct {
	// EvalSetManager is used to retrieve eval sets.
	EvalSetManager evalset.Manager
	// EvalResultManager is used to store and retrieve eval results.
	EvalResultManager evalresult.Manager
	// Registry is used to look up the evaluator for each metric.
	Registry registry.Registry
	// EvalCaseParallelism is the number of eval cases evaluated concurrently.
	EvalCaseParallelism int
	// EvalCaseParallelEvaluationEnabled enables concurrent case evaluation.
	EvalCaseParallelEvaluationEnabled bool
}

// Option defines a function type for configuring the evaluation service.
type Option func(*Options)

// NewOptions creates a new Options with the default values.
func NewOptions(opt ...Option) *Options {
	opts := &Options{
		EvalSetManager:      evalsetinmemory.New(),
		EvalResultManager:   evalresultinmemory.New(),
		Registry:            registry.New(),
		EvalCaseParallelism: defaultEvalCaseParallelism,
	}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// WithEvalSetManager sets the eval set manager.
// InMemory eval set manager is used by default.
func WithEvalSetManager(m evalset.Manager) Option {
	return func(o *Options) {
		o.EvalSetManager = m
	}
}

// WithEvalResultManager sets the eval result manager.
// InMemory eval result manager is used by default.
func WithEvalResultManager(m evalresult.Manager) Option {
	return func(o *Options) {
		o.EvalResultManager = m
	}
}

// WithRegistry sets the evaluator registry.
// An empty registry is used by default.
func WithRegistry(r registry.Registry) Option {
	return func(o *Options) {
		o.Registry = r
	}
}

// WithEvalCaseParallelism sets the number of eval cases evaluated concurrently.
func WithEvalCaseParallelism(parallelism int) Option {
	return func(o *Options) {
		o.EvalCaseParallelism = parallelism
	}
}

// WithEvalCaseParallelEvaluationEnabled enables concurrent case evaluation.
// Evaluation runs serially by default.
func WithEvalCaseParallelEvaluationEnabled(enabled bool) Option {
	return func(o *Options) {
		o.EvalCaseParallelEvaluationEnabled = enabled
	}
}
