//
// Tencent is pleased to support the open source community by making docretrieval available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// docretrieval is licensed under the Apache License Version 2.0.
//
//

// Package registry maintains the mapping from metric names to the evaluators
// that score them.
package registry

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"trpc.group/trpc-go/docretrieval/evaluator"
)

// Registry maps metric names to evaluators.
type Registry interface {
	// Register binds an evaluator to a metric name, replacing any previous
	// binding for that name.
	Register(metricName string, e evaluator.Evaluator) error
	// Get returns the evaluator bound to metricName. The returned error
	// wraps os.ErrNotExist when no evaluator is registered for the name.
	Get(metricName string) (evaluator.Evaluator, error)
	// List returns the registered metric names in sorted order.
	List() []string
}

type registry struct {
	mu         sync.RWMutex
	evaluators map[string]evaluator.Evaluator
}

// New creates an empty registry.
func New() Registry {
	return &registry{
		evaluators: make(map[string]evaluator.Evaluator),
	}
}

// Register implements Registry.
func (r *registry) Register(metricName string, e evaluator.Evaluator) error {
	if metricName == "" {
		return fmt.Errorf("metric name is empty")
	}
	if e == nil {
		return fmt.Errorf("evaluator for metric %s is nil", metricName)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.evaluators[metricName] = e
	return nil
}

// Get implements Registry.
func (r *registry) Get(metricName string) (evaluator.Evaluator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.evaluators[metricName]
	if !ok {
		return nil, fmt.Errorf("evaluator for metric %s: %w", metricName, os.ErrNotExist)
	}
	return e, nil
}

// List implements Registry.
func (r *registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.evaluators))
	for name := range r.evaluators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
