//
// Tencent is pleased to support the open source community by making docretrieval available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// docretrieval is licensed under the Apache License Version 2.0.
//
//

// Package inmemory provides an in-memory storage implementation for evaluation sets.
package inmemory

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"trpc.group/trpc-go/docretrieval/evalset"
	"trpc.group/trpc-go/docretrieval/internal/clone"
)

// manager implements the evalset.Manager interface using in-memory storage.
//
// The manager keeps an in-memory copy of all eval sets. Each API returns
// deep-cloned objects to avoid accidental mutation by callers.
type manager struct {
	mu sync.RWMutex
	// evalSets maps appName -> evalSetID -> eval set.
	evalSets map[string]map[string]*evalset.EvalSet
}

// New creates a new in-memory evaluation set manager.
func New() evalset.Manager {
	return &manager{
		evalSets: make(map[string]map[string]*evalset.EvalSet),
	}
}

// Get returns an EvalSet identified by evalSetID. If the set does not exist,
// os.ErrNotExist is returned.
func (m *manager) Get(ctx context.Context, appName, evalSetID string) (*evalset.EvalSet, error) {
	_ = ctx
	m.mu.RLock()
	defer m.mu.RUnlock()
	es, ok := m.evalSets[appName][evalSetID]
	if !ok {
		return nil, fmt.Errorf("%w: eval set %s", os.ErrNotExist, evalSetID)
	}
	cloned, err := clone.Clone(es)
	if err != nil {
		return nil, fmt.Errorf("clone eval set %s: %w", evalSetID, err)
	}
	return cloned, nil
}

// Create creates and returns an empty EvalSet given the evalSetID. If the set
// already exists, a cloned copy is returned.
func (m *manager) Create(ctx context.Context, appName, evalSetID string) (*evalset.EvalSet, error) {
	_ = ctx
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.evalSets[appName]; !ok {
		m.evalSets[appName] = make(map[string]*evalset.EvalSet)
	}
	es, ok := m.evalSets[appName][evalSetID]
	if !ok {
		es = &evalset.EvalSet{
			EvalSetID:         evalSetID,
			EvalCases:         []*evalset.EvalCase{},
			CreationTimestamp: time.Now().UTC(),
		}
		m.evalSets[appName][evalSetID] = es
	}
	cloned, err := clone.Clone(es)
	if err != nil {
		return nil, fmt.Errorf("clone eval set %s: %w", evalSetID, err)
	}
	return cloned, nil
}

// GetCase returns an EvalCase if found, otherwise an error.
func (m *manager) GetCase(ctx context.Context, appName, evalSetID, evalCaseID string) (*evalset.EvalCase, error) {
	_ = ctx
	m.mu.RLock()
	defer m.mu.RUnlock()
	es, ok := m.evalSets[appName][evalSetID]
	if !ok {
		return nil, fmt.Errorf("%w: eval set %s", os.ErrNotExist, evalSetID)
	}
	for _, evalCase := range es.EvalCases {
		if evalCase.EvalID != evalCaseID {
			continue
		}
		cloned, err := clone.Clone(evalCase)
		if err != nil {
			return nil, fmt.Errorf("clone eval case %s: %w", evalCaseID, err)
		}
		return cloned, nil
	}
	return nil, fmt.Errorf("%w: eval case %s", os.ErrNotExist, evalCaseID)
}

// AddCase adds the given EvalCase to an existing EvalSet identified by evalSetID.
func (m *manager) AddCase(ctx context.Context, appName, evalSetID string, evalCase *evalset.EvalCase) error {
	_ = ctx
	if evalCase == nil {
		return errors.New("evalCase is nil")
	}
	if evalCase.EvalID == "" {
		return errors.New("evalCase.EvalID is empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	es, ok := m.evalSets[appName][evalSetID]
	if !ok {
		return fmt.Errorf("%w: eval set %s", os.ErrNotExist, evalSetID)
	}
	for _, existing := range es.EvalCases {
		if existing.EvalID == evalCase.EvalID {
			return fmt.Errorf("eval case %s.%s.%s already exists", appName, evalSetID, evalCase.EvalID)
		}
	}
	cloned, err := clone.Clone(evalCase)
	if err != nil {
		return fmt.Errorf("clone eval case %s: %w", evalCase.EvalID, err)
	}
	es.EvalCases = append(es.EvalCases, cloned)
	return nil
}

// UpdateCase updates an existing EvalCase given the evalSetID.
func (m *manager) UpdateCase(ctx context.Context, appName, evalSetID string, updatedEvalCase *evalset.EvalCase) error {
	_ = ctx
	if updatedEvalCase == nil {
		return errors.New("evalCase is nil")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	es, ok := m.evalSets[appName][evalSetID]
	if !ok {
		return fmt.Errorf("%w: eval set %s", os.ErrNotExist, evalSetID)
	}
	for i, existing := range es.EvalCases {
		if existing.EvalID != updatedEvalCase.EvalID {
			continue
		}
		cloned, err := clone.Clone(updatedEvalCase)
		if err != nil {
			return fmt.Errorf("clone eval case %s: %w", updatedEvalCase.EvalID, err)
		}
		es.EvalCases[i] = cloned
		return nil
	}
	return fmt.Errorf("%w: eval case %s", os.ErrNotExist, updatedEvalCase.EvalID)
}

// DeleteCase deletes the given EvalCase identified by evalSetID and evalCaseID.
func (m *manager) DeleteCase(ctx context.Context, appName, evalSetID, evalCaseID string) error {
	_ = ctx
	m.mu.Lock()
	defer m.mu.Unlock()
	es, ok := m.evalSets[appName][evalSetID]
	if !ok {
		return fmt.Errorf("%w: eval set %s", os.ErrNotExist, evalSetID)
	}
	for i, existing := range es.EvalCases {
		if existing.EvalID != evalCaseID {
			continue
		}
		es.EvalCases = append(es.EvalCases[:i], es.EvalCases[i+1:]...)
		return nil
	}
	return fmt.Errorf("%w: eval case %s", os.ErrNotExist, evalCaseID)
}

// Close implements evalset.Manager.
func (m *manager) Close() error {
	return nil
}
