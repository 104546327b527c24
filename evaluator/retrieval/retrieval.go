//
// Tencent is pleased to support the open source community by making docretrieval available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// docretrieval is licensed under the Apache License Version 2.0.
//
//

// Package retrieval scores whether a tool-using agent retrieved the expected
// reference documents.
//
// The rubric inspects tool calls recorded in a conversation transcript,
// parses document identifiers out of a configured argument, resolves the
// expected identifiers from the episode state, and reports four metrics:
// retrieved_count, target_count, recall and precision. All scoring
// operations are pure functions of their inputs and safe for concurrent use
// as long as the configured IDParser is.
package retrieval

import (
	"encoding/json"
	"fmt"

	"trpc.group/trpc-go/docretrieval/evalset"
	"trpc.group/trpc-go/docretrieval/log"
	"trpc.group/trpc-go/docretrieval/message"
)

// emptyArguments is the payload assumed for tool calls without arguments.
var emptyArguments = []byte("{}")

// Rubric checks whether target documents were retrieved by the agent.
type Rubric struct {
	toolName  string
	argName   string
	targetKey string
	parser    IDParser
}

// New creates a retrieval rubric for the tool identified by toolName.
func New(toolName string, opt ...Option) *Rubric {
	opts := newOptions(opt...)
	return &Rubric{
		toolName:  toolName,
		argName:   opts.argName,
		targetKey: opts.targetKey,
		parser:    opts.parser,
	}
}

// RetrievedDocuments extracts normalized document identifiers from calls to
// the configured tool in the transcript. Identifiers are returned in scan
// order with duplicates preserved for inspection; metric operations
// deduplicate before counting.
//
// Transcripts may contain malformed or irrelevant tool calls: entries with
// undecodable argument payloads, a missing argument, or a non-string
// argument value are skipped without aborting the scan.
func (r *Rubric) RetrievedDocuments(transcript []message.Message) []string {
	var retrieved []string
	for _, msg := range transcript {
		if msg.Role != message.RoleAssistant || len(msg.ToolCalls) == 0 {
			continue
		}
		for _, call := range msg.ToolCalls {
			if call.Function.Name != r.toolName {
				continue
			}
			payload := call.Function.Arguments
			if len(payload) == 0 {
				payload = emptyArguments
			}
			var args map[string]any
			if err := json.Unmarshal(payload, &args); err != nil {
				continue
			}
			value, ok := args[r.argName].(string)
			if !ok {
				continue
			}
			retrieved = append(retrieved, r.parser.Parse(value))
		}
	}
	return retrieved
}

// TargetDocuments resolves the normalized target document identifiers from
// the episode state. Recognized locations are probed in a fixed precedence
// order (see targetScopes); a scalar value is coerced into a single-element
// list with a logged warning.
func (r *Rubric) TargetDocuments(state evalset.State) []string {
	value, ok := lookupTargets(state, r.targetKey)
	if !ok {
		return nil
	}
	var raw []string
	switch v := value.(type) {
	case []string:
		raw = v
	case []any:
		raw = make([]string, 0, len(v))
		for _, elem := range v {
			raw = append(raw, stringify(elem))
		}
	default:
		log.Warnf("target documents under %q must be a list, got %T; converting to a single-element list", r.targetKey, value)
		raw = []string{stringify(value)}
	}
	targets := make([]string, 0, len(raw))
	for _, doc := range raw {
		targets = append(targets, r.parser.Parse(doc))
	}
	return targets
}

// RetrievedCount counts how many distinct documents were retrieved.
func (r *Rubric) RetrievedCount(transcript []message.Message) float64 {
	return float64(len(toSet(r.RetrievedDocuments(transcript))))
}

// TargetCount counts how many distinct documents should have been retrieved.
func (r *Rubric) TargetCount(state evalset.State) float64 {
	return float64(len(toSet(r.TargetDocuments(state))))
}

// Recall is the fraction of target documents that were retrieved.
// An empty target set yields 1.0: there was nothing to miss.
func (r *Rubric) Recall(transcript []message.Message, state evalset.State) float64 {
	retrieved := toSet(r.RetrievedDocuments(transcript))
	targets := toSet(r.TargetDocuments(state))
	if len(targets) == 0 {
		return 1.0
	}
	return float64(overlap(retrieved, targets)) / float64(len(targets))
}

// Precision is the fraction of retrieved documents that were targets.
// An empty retrieved set yields 0.0 by convention.
func (r *Rubric) Precision(transcript []message.Message, state evalset.State) float64 {
	retrieved := toSet(r.RetrievedDocuments(transcript))
	targets := toSet(r.TargetDocuments(state))
	if len(retrieved) == 0 {
		return 0.0
	}
	return float64(overlap(retrieved, targets)) / float64(len(retrieved))
}

func stringify(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func overlap(a, b map[string]struct{}) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	count := 0
	for id := range a {
		if _, ok := b[id]; ok {
			count++
		}
	}
	return count
}
