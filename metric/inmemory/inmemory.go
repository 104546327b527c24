//
// Tencent is pleased to support the open source community by making docretrieval available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// docretrieval is licensed under the Apache License Version 2.0.
//
//

// Package inmemory provides an in-memory storage implementation for metric configuration.
package inmemory

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"trpc.group/trpc-go/docretrieval/internal/clone"
	"trpc.group/trpc-go/docretrieval/metric"
)

// manager implements the metric.Manager interface using in-memory storage.
type manager struct {
	mu sync.RWMutex
	// metrics maps appName -> evalSetID -> metricName -> metric.
	metrics map[string]map[string]map[string]*metric.EvalMetric
}

// New creates a new in-memory metric configuration manager.
func New() metric.Manager {
	return &manager{
		metrics: make(map[string]map[string]map[string]*metric.EvalMetric),
	}
}

// Get returns the metric configuration identified by metricName.
// Returns os.ErrNotExist if the metric is not configured.
func (m *manager) Get(ctx context.Context, appName, evalSetID, metricName string) (*metric.EvalMetric, error) {
	_ = ctx
	m.mu.RLock()
	defer m.mu.RUnlock()
	em, ok := m.metrics[appName][evalSetID][metricName]
	if !ok {
		return nil, fmt.Errorf("%w: metric %s.%s.%s", os.ErrNotExist, appName, evalSetID, metricName)
	}
	cloned, err := clone.Clone(em)
	if err != nil {
		return nil, fmt.Errorf("clone metric %s: %w", metricName, err)
	}
	return cloned, nil
}

// Set stores the metric configuration for the given eval set.
// An existing metric with the same name is overwritten.
func (m *manager) Set(ctx context.Context, appName, evalSetID string, evalMetric *metric.EvalMetric) error {
	_ = ctx
	if evalMetric == nil {
		return errors.New("eval metric is nil")
	}
	if evalMetric.MetricName == "" {
		return errors.New("metric name is empty")
	}
	cloned, err := clone.Clone(evalMetric)
	if err != nil {
		return fmt.Errorf("clone metric %s: %w", evalMetric.MetricName, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.metrics[appName]; !ok {
		m.metrics[appName] = make(map[string]map[string]*metric.EvalMetric)
	}
	if _, ok := m.metrics[appName][evalSetID]; !ok {
		m.metrics[appName][evalSetID] = make(map[string]*metric.EvalMetric)
	}
	m.metrics[appName][evalSetID][evalMetric.MetricName] = cloned
	return nil
}

// Delete removes the metric configuration identified by metricName.
func (m *manager) Delete(ctx context.Context, appName, evalSetID, metricName string) error {
	_ = ctx
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.metrics[appName][evalSetID][metricName]; !ok {
		return fmt.Errorf("%w: metric %s.%s.%s", os.ErrNotExist, appName, evalSetID, metricName)
	}
	delete(m.metrics[appName][evalSetID], metricName)
	return nil
}

// List returns the names of all configured metrics sorted lexicographically.
func (m *manager) List(ctx context.Context, appName, evalSetID string) ([]string, error) {
	_ = ctx
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.metrics[appName][evalSetID]))
	for name := range m.metrics[appName][evalSetID] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Close implements metric.Manager.
func (m *manager) Close() error {
	return nil
}
