//
// Tencent is pleased to support the open source community by making docretrieval available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// docretrieval is licensed under the Apache License Version 2.0.
//
//

// Package mysql provides a MySQL storage implementation for evaluation results.
package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql" // register the mysql driver

	"trpc.group/trpc-go/docretrieval/epochtime"
	"trpc.group/trpc-go/docretrieval/evalresult"
)

var _ evalresult.Manager = (*manager)(nil)

// resultTableSchema is the DDL applied at construction unless skipped.
const resultTableSchema = `CREATE TABLE IF NOT EXISTS %s (
	id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
	app_name VARCHAR(255) NOT NULL,
	eval_set_result_id VARCHAR(512) NOT NULL,
	eval_set_id VARCHAR(512) NOT NULL,
	eval_set_result_name VARCHAR(512) NOT NULL,
	eval_case_results JSON NOT NULL,
	summary JSON NULL,
	created_at TIMESTAMP(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6),
	updated_at TIMESTAMP(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6) ON UPDATE CURRENT_TIMESTAMP(6),
	UNIQUE KEY uk_app_result (app_name, eval_set_result_id)
)`

type manager struct {
	db     *sql.DB
	table  string
	ownsDB bool
}

// New creates a MySQL-backed eval result manager. Either WithDSN or WithDB
// must be provided.
func New(opt ...Option) (evalresult.Manager, error) {
	opts := newOptions(opt...)
	db := opts.db
	ownsDB := false
	if db == nil {
		if opts.dsn == "" {
			return nil, errors.New("either a DSN or a database handle is required")
		}
		opened, err := sql.Open("mysql", opts.dsn)
		if err != nil {
			return nil, fmt.Errorf("open mysql connection: %w", err)
		}
		db = opened
		ownsDB = true
	}
	m := &manager{
		db:     db,
		table:  opts.tablePrefix + "eval_set_results",
		ownsDB: ownsDB,
	}
	if !opts.skipDBInit {
		ctx, cancel := context.WithTimeout(context.Background(), opts.initTimeout)
		defer cancel()
		if _, err := db.ExecContext(ctx, fmt.Sprintf(resultTableSchema, m.table)); err != nil {
			if ownsDB {
				_ = db.Close()
			}
			return nil, fmt.Errorf("init database: %w", err)
		}
	}
	return m, nil
}

// Save upserts an evaluation result into MySQL.
func (m *manager) Save(ctx context.Context, appName string,
	evalSetResult *evalresult.EvalSetResult) (string, error) {
	if appName == "" {
		return "", errors.New("app name is empty")
	}
	if evalSetResult == nil {
		return "", errors.New("eval set result is nil")
	}
	evalSetResultID := evalSetResult.EvalSetResultID
	if evalSetResultID == "" {
		evalSetResultID = evalresult.NewResultID(appName, evalSetResult.EvalSetID)
	}
	evalSetResultName := evalSetResult.EvalSetResultName
	if evalSetResultName == "" {
		evalSetResultName = evalSetResultID
	}
	caseResults := evalSetResult.EvalCaseResults
	if caseResults == nil {
		caseResults = []*evalresult.EvalCaseResult{}
	}
	casePayload, err := json.Marshal(caseResults)
	if err != nil {
		return "", fmt.Errorf("marshal eval case results: %w", err)
	}
	var summaryPayload any
	if evalSetResult.Summary != nil {
		summaryBytes, err := json.Marshal(evalSetResult.Summary)
		if err != nil {
			return "", fmt.Errorf("marshal summary: %w", err)
		}
		summaryPayload = summaryBytes
	}
	query := fmt.Sprintf(
		`INSERT INTO %s (app_name, eval_set_result_id, eval_set_id, eval_set_result_name, eval_case_results, summary)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON DUPLICATE KEY UPDATE
		   eval_set_id = VALUES(eval_set_id),
		   eval_set_result_name = VALUES(eval_set_result_name),
		   eval_case_results = VALUES(eval_case_results),
		   summary = VALUES(summary),
		   updated_at = CURRENT_TIMESTAMP(6)`,
		m.table,
	)
	if _, err := m.db.ExecContext(ctx, query,
		appName, evalSetResultID, evalSetResult.EvalSetID, evalSetResultName,
		casePayload, summaryPayload); err != nil {
		return "", fmt.Errorf("store eval set result %s.%s: %w", appName, evalSetResultID, err)
	}
	return evalSetResultID, nil
}

// Get loads an evaluation result from MySQL.
func (m *manager) Get(ctx context.Context, appName,
	evalSetResultID string) (*evalresult.EvalSetResult, error) {
	if appName == "" {
		return nil, errors.New("app name is empty")
	}
	if evalSetResultID == "" {
		return nil, errors.New("eval set result id is empty")
	}
	var (
		evalSetID   string
		name        string
		casePayload []byte
		summary     sql.NullString
		createdAt   time.Time
	)
	query := fmt.Sprintf(
		"SELECT eval_set_id, eval_set_result_name, eval_case_results, summary, created_at FROM %s WHERE app_name = ? AND eval_set_result_id = ?",
		m.table,
	)
	row := m.db.QueryRowContext(ctx, query, appName, evalSetResultID)
	if err := row.Scan(&evalSetID, &name, &casePayload, &summary, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("eval set result %s.%s not found: %w",
				appName, evalSetResultID, os.ErrNotExist)
		}
		return nil, fmt.Errorf("load eval set result %s.%s: %w", appName, evalSetResultID, err)
	}
	var cases []*evalresult.EvalCaseResult
	if err := json.Unmarshal(casePayload, &cases); err != nil {
		return nil, fmt.Errorf("unmarshal eval case results %s.%s: %w", appName, evalSetResultID, err)
	}
	if cases == nil {
		cases = []*evalresult.EvalCaseResult{}
	}
	var summaryObj *evalresult.EvalSetResultSummary
	if summary.Valid && summary.String != "" {
		var s evalresult.EvalSetResultSummary
		if err := json.Unmarshal([]byte(summary.String), &s); err != nil {
			return nil, fmt.Errorf("unmarshal summary %s.%s: %w", appName, evalSetResultID, err)
		}
		summaryObj = &s
	}
	return &evalresult.EvalSetResult{
		EvalSetResultID:   evalSetResultID,
		EvalSetResultName: name,
		EvalSetID:         evalSetID,
		EvalCaseResults:   cases,
		Summary:           summaryObj,
		CreationTimestamp: &epochtime.EpochTime{Time: createdAt},
	}, nil
}

// List lists evaluation result IDs for the given app from MySQL, most recent
// first.
func (m *manager) List(ctx context.Context, appName string) ([]string, error) {
	if appName == "" {
		return nil, errors.New("app name is empty")
	}
	query := fmt.Sprintf(
		"SELECT eval_set_result_id FROM %s WHERE app_name = ? ORDER BY created_at DESC",
		m.table,
	)
	rows, err := m.db.QueryContext(ctx, query, appName)
	if err != nil {
		return nil, fmt.Errorf("list eval set results for app %s: %w", appName, err)
	}
	defer rows.Close()
	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan eval set result id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list eval set results for app %s: %w", appName, err)
	}
	return ids, nil
}

// Close implements evalresult.Manager. A caller-supplied handle is left open.
func (m *manager) Close() error {
	if m.db == nil || !m.ownsDB {
		return nil
	}
	return m.db.Close()
}
