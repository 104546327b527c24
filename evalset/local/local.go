//
// Tencent is pleased to support the open source community by making docretrieval available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// docretrieval is licensed under the Apache License Version 2.0.
//
//

// Package local provides a local file storage implementation for evaluation sets.
package local

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"trpc.group/trpc-go/docretrieval/evalset"
)

// evalSetFileSuffix is the suffix for eval set files.
const evalSetFileSuffix = ".evalset.json"

// manager implements the evalset.Manager interface using local file storage.
// Eval sets live under <baseDir>/<appName>/<evalSetID>.evalset.json.
type manager struct {
	baseDir string
	mu      sync.Mutex
}

// New creates a new local file evaluation set manager.
func New(opt ...Option) evalset.Manager {
	opts := newOptions(opt...)
	return &manager{baseDir: opts.baseDir}
}

// Get returns an EvalSet identified by evalSetID.
func (m *manager) Get(ctx context.Context, appName, evalSetID string) (*evalset.EvalSet, error) {
	_ = ctx
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.load(appName, evalSetID)
}

// Create creates and returns an empty EvalSet given the evalSetID. If the set
// already exists, the stored copy is returned.
func (m *manager) Create(ctx context.Context, appName, evalSetID string) (*evalset.EvalSet, error) {
	_ = ctx
	m.mu.Lock()
	defer m.mu.Unlock()
	es, err := m.load(appName, evalSetID)
	if err == nil {
		return es, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	es = &evalset.EvalSet{
		EvalSetID:         evalSetID,
		EvalCases:         []*evalset.EvalCase{},
		CreationTimestamp: time.Now().UTC(),
	}
	if err := m.store(appName, es); err != nil {
		return nil, err
	}
	return es, nil
}

// GetCase returns an EvalCase if found, otherwise an error.
func (m *manager) GetCase(ctx context.Context, appName, evalSetID, evalCaseID string) (*evalset.EvalCase, error) {
	_ = ctx
	m.mu.Lock()
	defer m.mu.Unlock()
	es, err := m.load(appName, evalSetID)
	if err != nil {
		return nil, err
	}
	for _, evalCase := range es.EvalCases {
		if evalCase.EvalID == evalCaseID {
			return evalCase, nil
		}
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
	es, err := m.load(appName, evalSetID)
	if err != nil {
		return err
	}
	for _, existing := range es.EvalCases {
		if existing.EvalID == evalCase.EvalID {
			return fmt.Errorf("eval case %s.%s.%s already exists", appName, evalSetID, evalCase.EvalID)
		}
	}
	es.EvalCases = append(es.EvalCases, evalCase)
	return m.store(appName, es)
}

// UpdateCase updates an existing EvalCase given the evalSetID.
func (m *manager) UpdateCase(ctx context.Context, appName, evalSetID string, updatedEvalCase *evalset.EvalCase) error {
	_ = ctx
	if updatedEvalCase == nil {
		return errors.New("evalCase is nil")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	es, err := m.load(appName, evalSetID)
	if err != nil {
		return err
	}
	for i, existing := range es.EvalCases {
		if existing.EvalID != updatedEvalCase.EvalID {
			continue
		}
		es.EvalCases[i] = updatedEvalCase
		return m.store(appName, es)
	}
	return fmt.Errorf("%w: eval case %s", os.ErrNotExist, updatedEvalCase.EvalID)
}

// DeleteCase deletes the given EvalCase identified by evalSetID and evalCaseID.
func (m *manager) DeleteCase(ctx context.Context, appName, evalSetID, evalCaseID string) error {
	_ = ctx
	m.mu.Lock()
	defer m.mu.Unlock()
	es, err := m.load(appName, evalSetID)
	if err != nil {
		return err
	}
	for i, existing := range es.EvalCases {
		if existing.EvalID != evalCaseID {
			continue
		}
		es.EvalCases = append(es.EvalCases[:i], es.EvalCases[i+1:]...)
		return m.store(appName, es)
	}
	return fmt.Errorf("%w: eval case %s", os.ErrNotExist, evalCaseID)
}

// Close implements evalset.Manager.
func (m *manager) Close() error {
	return nil
}

func (m *manager) path(appName, evalSetID string) string {
	return filepath.Join(m.baseDir, appName, evalSetID+evalSetFileSuffix)
}

func (m *manager) load(appName, evalSetID string) (*evalset.EvalSet, error) {
	f, err := os.Open(m.path(appName, evalSetID))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var es evalset.EvalSet
	if err := json.NewDecoder(f).Decode(&es); err != nil {
		return nil, fmt.Errorf("decode eval set %s: %w", evalSetID, err)
	}
	return &es, nil
}

// store writes the eval set via a temp file and rename so readers never
// observe a partially written set.
func (m *manager) store(appName string, es *evalset.EvalSet) error {
	if err := os.MkdirAll(filepath.Join(m.baseDir, appName), 0o755); err != nil {
		return err
	}
	path := m.path(appName, es.EvalSetID)
	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(es); err != nil {
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
