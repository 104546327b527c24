//
// Tencent is pleased to support the open source community by making docretrieval available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// docretrieval is licensed under the Apache License Version 2.0.
//
//

package evalset

import (
	"trpc.group/trpc-go/docretrieval/epochtime"
	"trpc.group/trpc-go/docretrieval/message"
)

// EvalCase represents a single evaluation case: one completed conversation
// plus the run state accumulated while it was produced.
type EvalCase struct {
	// EvalID uniquely identifies this evaluation case.
	EvalID string `json:"evalId,omitempty"`
	// Description of the evaluation case.
	Description string `json:"description,omitempty"`
	// Transcript contains the recorded conversation messages in order.
	Transcript []message.Message `json:"transcript,omitempty"`
	// State contains the accumulated run state for this episode.
	State State `json:"state,omitempty"`
	// CreationTimestamp when this eval case was created.
	CreationTimestamp *epochtime.EpochTime `json:"creationTimestamp,omitempty"`
}

// State is the per-episode key-value bag supplied by the harness that
// produced the transcript. Its shape is owned by that harness; evaluators
// only probe recognized locations inside it.
type State map[string]any
