//
// Tencent is pleased to support the open source community by making docretrieval available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// docretrieval is licensed under the Apache License Version 2.0.
//
//

package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/docretrieval/evalresult"
	"trpc.group/trpc-go/docretrieval/status"
)

func newTestManager(t *testing.T) (evalresult.Manager, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	m, err := New(WithDB(db), WithSkipDBInit(true))
	require.NoError(t, err)
	return m, mock
}

func TestNewRequiresSource(t *testing.T) {
	_, err := New()
	require.Error(t, err)
}

func TestNewInitializesSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS docretrieval_eval_set_results").
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err = New(WithDB(db))
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveUpserts(t *testing.T) {
	m, mock := newTestManager(t)

	mock.ExpectExec("INSERT INTO docretrieval_eval_set_results").
		WithArgs("app", "result-1", "set-1", "result-1",
			sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	id, err := m.Save(context.Background(), "app", &evalresult.EvalSetResult{
		EvalSetResultID: "result-1",
		EvalSetID:       "set-1",
		EvalCaseResults: []*evalresult.EvalCaseResult{
			{EvalID: "case-1", FinalEvalStatus: status.EvalStatusPassed},
		},
		Summary: &evalresult.EvalSetResultSummary{OverallStatus: status.EvalStatusPassed},
	})
	require.NoError(t, err)
	assert.Equal(t, "result-1", id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveAssignsID(t *testing.T) {
	m, mock := newTestManager(t)

	mock.ExpectExec("INSERT INTO docretrieval_eval_set_results").
		WillReturnResult(sqlmock.NewResult(1, 1))

	id, err := m.Save(context.Background(), "app", &evalresult.EvalSetResult{EvalSetID: "set-1"})
	require.NoError(t, err)
	assert.Contains(t, id, "app_set-1_")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveValidation(t *testing.T) {
	m, _ := newTestManager(t)

	_, err := m.Save(context.Background(), "", &evalresult.EvalSetResult{})
	assert.Error(t, err)
	_, err = m.Save(context.Background(), "app", nil)
	assert.Error(t, err)
}

func TestGetDecodesStoredResult(t *testing.T) {
	m, mock := newTestManager(t)

	cases := []*evalresult.EvalCaseResult{
		{EvalID: "case-1", FinalEvalStatus: status.EvalStatusFailed},
	}
	casePayload, err := json.Marshal(cases)
	require.NoError(t, err)
	summaryPayload, err := json.Marshal(&evalresult.EvalSetResultSummary{
		OverallStatus: status.EvalStatusFailed,
	})
	require.NoError(t, err)
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT eval_set_id, eval_set_result_name, eval_case_results, summary, created_at FROM docretrieval_eval_set_results").
		WithArgs("app", "result-1").
		WillReturnRows(sqlmock.NewRows(
			[]string{"eval_set_id", "eval_set_result_name", "eval_case_results", "summary", "created_at"},
		).AddRow("set-1", "nightly", casePayload, string(summaryPayload), createdAt))

	got, err := m.Get(context.Background(), "app", "result-1")
	require.NoError(t, err)
	assert.Equal(t, "result-1", got.EvalSetResultID)
	assert.Equal(t, "nightly", got.EvalSetResultName)
	assert.Equal(t, "set-1", got.EvalSetID)
	require.Len(t, got.EvalCaseResults, 1)
	assert.Equal(t, status.EvalStatusFailed, got.EvalCaseResults[0].FinalEvalStatus)
	require.NotNil(t, got.Summary)
	assert.Equal(t, status.EvalStatusFailed, got.Summary.OverallStatus)
	require.NotNil(t, got.CreationTimestamp)
	assert.Equal(t, createdAt, got.CreationTimestamp.Time)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetMissing(t *testing.T) {
	m, mock := newTestManager(t)

	mock.ExpectQuery("SELECT eval_set_id, eval_set_result_name, eval_case_results, summary, created_at FROM docretrieval_eval_set_results").
		WithArgs("app", "absent").
		WillReturnError(sql.ErrNoRows)

	_, err := m.Get(context.Background(), "app", "absent")
	require.ErrorIs(t, err, os.ErrNotExist)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListReturnsIDs(t *testing.T) {
	m, mock := newTestManager(t)

	mock.ExpectQuery("SELECT eval_set_result_id FROM docretrieval_eval_set_results").
		WithArgs("app").
		WillReturnRows(sqlmock.NewRows([]string{"eval_set_result_id"}).
			AddRow("result-2").AddRow("result-1"))

	ids, err := m.List(context.Background(), "app")
	require.NoError(t, err)
	assert.Equal(t, []string{"result-2", "result-1"}, ids)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCloseLeavesCallerHandleOpen(t *testing.T) {
	m, mock := newTestManager(t)
	require.NoError(t, m.Close())
	require.NoError(t, mock.ExpectationsWereMet())
}
