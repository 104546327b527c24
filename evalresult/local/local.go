//
// Tencent is pleased to support the open source community by making docretrieval available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// docretrieval is licensed under the Apache License Version 2.0.
//
//

// Package local provides a local file storage implementation for evaluation results.
package local

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"trpc.group/trpc-go/docretrieval/epochtime"
	"trpc.group/trpc-go/docretrieval/evalresult"
)

// manager implements the evalresult.Manager interface using local file storage.
// Results live under <baseDir>/<appName>/<evalSetResultID>.evalset_result.json.
type manager struct {
	baseDir string
	locator evalresult.Locator
	mu      sync.Mutex
}

// New creates a new local file evaluation result manager.
func New(opt ...Option) evalresult.Manager {
	opts := newOptions(opt...)
	return &manager{
		baseDir: opts.baseDir,
		locator: evalresult.NewLocator(),
	}
}

// Save stores an evaluation result to a local file.
func (m *manager) Save(ctx context.Context, appName string,
	evalSetResult *evalresult.EvalSetResult) (string, error) {
	_ = ctx
	if appName == "" {
		return "", errors.New("app name is empty")
	}
	if evalSetResult == nil {
		return "", errors.New("eval set result is nil")
	}
	stored := *evalSetResult
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
	if err := m.store(appName, &stored); err != nil {
		return "", err
	}
	return stored.EvalSetResultID, nil
}

// Get retrieves an evaluation result by evalSetResultID from a local file.
func (m *manager) Get(ctx context.Context, appName,
	evalSetResultID string) (*evalresult.EvalSetResult, error) {
	_ = ctx
	m.mu.Lock()
	defer m.mu.Unlock()
	f, err := os.Open(m.locator.Build(m.baseDir, appName, evalSetResultID))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var result evalresult.EvalSetResult
	if err := json.NewDecoder(f).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode eval set result %s: %w", evalSetResultID, err)
	}
	return &result, nil
}

// List returns all available evaluation result IDs from local files.
func (m *manager) List(ctx context.Context, appName string) ([]string, error) {
	_ = ctx
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.locator.List(m.baseDir, appName)
}

// Close implements evalresult.Manager.
func (m *manager) Close() error {
	return nil
}

// store writes the result via a temp file and rename so readers never observe
// a partially written result.
func (m *manager) store(appName string, result *evalresult.EvalSetResult) error {
	if err := os.MkdirAll(filepath.Join(m.baseDir, appName), 0o755); err != nil {
		return err
	}
	path := m.locator.Build(m.baseDir, appName, result.EvalSetResultID)
	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}
