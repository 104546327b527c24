//
// Tencent is pleased to support the open source community by making docretrieval available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// docretrieval is licensed under the Apache License Version 2.0.
//
//

package evalresult

import (
	"sort"

	istatus "trpc.group/trpc-go/docretrieval/internal/status"
	"trpc.group/trpc-go/docretrieval/status"
)

// EvalSetResultSummary aggregates an eval set result for easier inspection.
type EvalSetResultSummary struct {
	// OverallStatus summarizes the evaluation status across all eval cases.
	OverallStatus status.EvalStatus `json:"overallStatus,omitempty"`
	// CaseStatusCounts counts final statuses of eval cases.
	CaseStatusCounts *EvalStatusCounts `json:"caseStatusCounts,omitempty"`
	// MetricSummaries contains aggregated metric outcomes across all cases.
	MetricSummaries []*EvalMetricSummary `json:"metricSummaries,omitempty"`
}

// EvalMetricSummary summarizes one metric's results across eval cases.
type EvalMetricSummary struct {
	// MetricName identifies the metric.
	MetricName string `json:"metricName,omitempty"`
	// AverageScore is the averaged score across cases that were evaluated.
	AverageScore float64 `json:"averageScore,omitempty"`
	// Threshold is the threshold that was used.
	Threshold float64 `json:"threshold,omitempty"`
	// StatusCounts counts metric statuses across cases.
	StatusCounts *EvalStatusCounts `json:"statusCounts,omitempty"`
}

// EvalStatusCounts records a simple histogram of evaluation statuses.
type EvalStatusCounts struct {
	// Passed is the count of passed statuses.
	Passed int `json:"passed,omitempty"`
	// Failed is the count of failed statuses.
	Failed int `json:"failed,omitempty"`
	// NotEvaluated is the count of not evaluated statuses.
	NotEvaluated int `json:"notEvaluated,omitempty"`
}

func (c *EvalStatusCounts) add(s status.EvalStatus) {
	switch s {
	case status.EvalStatusPassed:
		c.Passed++
	case status.EvalStatusFailed:
		c.Failed++
	default:
		c.NotEvaluated++
	}
}

// Summarize derives the aggregate summary from the case results. The result
// itself is not modified.
func Summarize(result *EvalSetResult) *EvalSetResultSummary {
	if result == nil {
		return nil
	}
	caseCounts := &EvalStatusCounts{}
	caseStatuses := make([]status.EvalStatus, 0, len(result.EvalCaseResults))
	type metricAgg struct {
		summary   *EvalMetricSummary
		scoreSum  float64
		evaluated int
	}
	metrics := make(map[string]*metricAgg)
	for _, caseResult := range result.EvalCaseResults {
		if caseResult == nil {
			continue
		}
		caseCounts.add(caseResult.FinalEvalStatus)
		caseStatuses = append(caseStatuses, caseResult.FinalEvalStatus)
		for _, metricResult := range caseResult.EvalMetricResults {
			if metricResult == nil {
				continue
			}
			agg, ok := metrics[metricResult.MetricName]
			if !ok {
				agg = &metricAgg{summary: &EvalMetricSummary{
					MetricName:   metricResult.MetricName,
					Threshold:    metricResult.Threshold,
					StatusCounts: &EvalStatusCounts{},
				}}
				metrics[metricResult.MetricName] = agg
			}
			agg.summary.StatusCounts.add(metricResult.EvalStatus)
			if metricResult.EvalStatus == status.EvalStatusPassed ||
				metricResult.EvalStatus == status.EvalStatusFailed {
				agg.scoreSum += metricResult.Score
				agg.evaluated++
			}
		}
	}
	summaries := make([]*EvalMetricSummary, 0, len(metrics))
	for _, agg := range metrics {
		if agg.evaluated > 0 {
			agg.summary.AverageScore = agg.scoreSum / float64(agg.evaluated)
		}
		summaries = append(summaries, agg.summary)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].MetricName < summaries[j].MetricName
	})
	// An unexpected status summarizes to Failed, which is the conservative
	// answer for an aggregate view.
	overall, _ := istatus.Summarize(caseStatuses)
	return &EvalSetResultSummary{
		OverallStatus:    overall,
		CaseStatusCounts: caseCounts,
		MetricSummaries:  summaries,
	}
}
