//
// Tencent is pleased to support the open source community by making docretrieval available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// docretrieval is licensed under the Apache License Version 2.0.
//
//

package metric

// Preset metric name constants shared by the evaluator registry and the
// metric configuration managers.
const (
	// MetricRetrievedCount counts distinct documents retrieved via the tool.
	MetricRetrievedCount = "retrieved_count"
	// MetricTargetCount counts distinct documents expected to be retrieved.
	MetricTargetCount = "target_count"
	// MetricRecall is the fraction of target documents that were retrieved.
	MetricRecall = "recall"
	// MetricPrecision is the fraction of retrieved documents that were targets.
	MetricPrecision = "precision"
)
