//
// Tencent is pleased to support the open source community by making docretrieval available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// docretrieval is licensed under the Apache License Version 2.0.
//
//

// Package inmemory provides an in-memory storage implementation for evaluation results.
package inmemory

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"trpc.group/trpc-go/docretrieval/epochtime"
	"trpc.group/trpc-go/docretrieval/evalresult"
	"trpc.group/trpc-go/docretrieval/internal/clone"
)

// manager implements the evalresult.Manager interface using in-memory storage.
type manager struct {
	mu sync.RWMutex
	// results maps appName to evalSetResultID to stored result.
	results map[string]map[string]*evalresult.EvalSetResult
}

// New creates a new in-memory evaluation result manager.
func New() evalresult.Manager {
	return &manager{
		results: make(map[string]map[string]*evalresult.EvalSetResult),
	}
}

// Save stores an evaluation result in memory.
func (m *manager) Save(ctx context.Context, appName string,
	evalSetResult *evalresult.EvalSetResult) (string, error) {
	_ = ctx
	if appName == "" {
		return "", errors.New("app name is empty")
	}
	if evalSetResult == nil {
		return "", errors.New("eval set result is nil")
	}
	stored, err := clone.Clone(evalSetResult)
	if err != nil {
		return "", fmt.Errorf("clone eval set result: %w", err)
	}
	if stored.EvalSetResultID == "" {
		stored.EvalSetResultID = evalresult.NewResultID(appName, stored.EvalSetID)
	}
	if stored.EvalSetResultName == "" {
		stored.EvalSetResultName = stored.EvalSetResultID
	}
	if stored.CreationTimestamp == nil {
		stored.CreationTimestamp = epochtime.Now()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	appResults, ok := m.results[appName]
	if !ok {
		appResults = make(map[string]*evalresult.EvalSetResult)
		m.results[appName] = appResults
	}
	appResults[stored.EvalSetResultID] = stored
	return stored.EvalSetResultID, nil
}

// Get retrieves an evaluation result by evalSetResultID from memory.
func (m *manager) Get(ctx context.Context, appName,
	evalSetResultID string) (*evalresult.EvalSetResult, error) {
	_ = ctx
	m.mu.RLock()
	stored, ok := m.results[appName][evalSetResultID]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("eval set result %s.%s not found: %w",
			appName, evalSetResultID, os.ErrNotExist)
	}
	result, err := clone.Clone(stored)
	if err != nil {
		return nil, fmt.Errorf("clone eval set result: %w", err)
	}
	return result, nil
}

// List returns all available evaluation result IDs from memory.
func (m *manager) List(ctx context.Context, appName string) ([]string, error) {
	_ = ctx
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.results[appName]))
	for id := range m.results[appName] {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// Close implements evalresult.Manager.
func (m *manager) Close() error {
	return nil
}
