//
// Tencent is pleased to support the open source community by making docretrieval available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// docretrieval is licensed under the Apache License Version 2.0.
//
//

// Package metric provides evaluation metric configuration.
package metric

import "context"

// EvalMetric represents a metric used to evaluate a particular aspect of an eval case.
type EvalMetric struct {
	// MetricName identifies the metric.
	MetricName string `json:"metric_name"`
	// Threshold value for this metric. A score greater than or equal to the
	// threshold counts as passed.
	Threshold float64 `json:"threshold"`
	// Config contains metric-specific configuration.
	Config map[string]any `json:"config,omitempty"`
}

// Manager defines the interface for managing per eval set metric configuration.
type Manager interface {
	// Get returns the metric configuration identified by metricName.
	Get(ctx context.Context, appName, evalSetID, metricName string) (*EvalMetric, error)
	// Set stores the metric configuration for the given eval set.
	Set(ctx context.Context, appName, evalSetID string, evalMetric *EvalMetric) error
	// Delete removes the metric configuration identified by metricName.
	Delete(ctx context.Context, appName, evalSetID, metricName string) error
	// List returns the names of all configured metrics for the given eval set.
	List(ctx context.Context, appName, evalSetID string) ([]string, error)
	// Close closes the manager and releases owned resources.
	Close() error
}
